package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Kind tells a customer sale from a supplier purchase.
type Kind string

const (
	Sale     Kind = "sale"
	Purchase Kind = "purchase"
)

func (k Kind) Validate() error {
	if k != Sale && k != Purchase {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%q is not sale or purchase", string(k)))
	}
	return nil
}

// FreightPayer is the party that pays for shipping.
type FreightPayer string

const (
	FreightClient   FreightPayer = "client"
	FreightCompany  FreightPayer = "company"
	FreightSupplier FreightPayer = "supplier"
)

func (f FreightPayer) Validate() error {
	switch f {
	case FreightClient, FreightCompany, FreightSupplier:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("freight payer is invalid", fmt.Errorf("%q is not client, company or supplier", string(f)))
	}
}

// AddressStatus records where the current destination address came from.
type AddressStatus string

const (
	AddressOriginal        AddressStatus = "original"
	AddressModifiedByEmail AddressStatus = "modified_by_email"
	AddressManualOverride  AddressStatus = "manual_override"
)

func (a AddressStatus) Validate() error {
	switch a {
	case AddressOriginal, AddressModifiedByEmail, AddressManualOverride:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("address status is invalid", fmt.Errorf("%q is not a known address status", string(a)))
	}
}
