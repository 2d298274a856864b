package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrImportCatalogCommandIsNotConstructed = errors.New(
		"ImportCatalogCommand must be created via NewImportCatalogCommand constructor",
	)
	ErrFileIsEmpty = errors.New("uploaded file is empty")
)

// ImportCatalogCommand carries an uploaded .csv or .xlsx file with products,
// suppliers or customers.
type ImportCatalogCommand struct { //nolint:recvcheck //using for validation
	target   services.CatalogTarget
	filename string
	data     []byte

	guard guard.ConstructorGuard
}

func NewImportCatalogCommand(target services.CatalogTarget, filename string, data []byte) (ImportCatalogCommand, error) {
	var errExt, errData error
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".csv" && ext != ".xlsx" {
		errExt = errs.NewValueIsInvalidErrorWithCause("file extension", fmt.Errorf("%q is not .csv or .xlsx", ext))
	}
	if len(data) == 0 {
		errData = ErrFileIsEmpty
	}
	if err := errors.Join(target.Validate(), errExt, errData); err != nil {
		return ImportCatalogCommand{}, err
	}

	return ImportCatalogCommand{
		target:   target,
		filename: filename,
		data:     data,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ImportCatalogCommand) Validate() error {
	return c.guard.Validate(ErrImportCatalogCommandIsNotConstructed)
}

func (c ImportCatalogCommand) Target() services.CatalogTarget { return c.target }
func (c ImportCatalogCommand) Filename() string { return c.filename }
func (c ImportCatalogCommand) Data() []byte { return c.data }
