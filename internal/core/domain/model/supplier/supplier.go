// Package supplier holds the vendor master record.
package supplier

import (
	"errors"
	"strings"

	"logistics/internal/pkg/errs"
)

var ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier constructor")

type Supplier struct {
	id      string
	name    string
	contact string

	isConstructed bool
}

func NewSupplier(id, name, contact string) (*Supplier, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)

	var err error
	if id == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("supplier id"))
	}
	if name == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("supplier name"))
	}
	if err != nil {
		return nil, err
	}

	return &Supplier{id: id, name: name, contact: strings.TrimSpace(contact), isConstructed: true}, nil
}

func (s *Supplier) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSupplierIsNotConstructed
	}
	return nil
}

func (s *Supplier) ID() string { return s.id }
func (s *Supplier) Name() string { return s.name }
func (s *Supplier) Contact() string { return s.contact }
