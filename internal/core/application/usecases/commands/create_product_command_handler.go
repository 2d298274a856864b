package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/product"
	"logistics/internal/pkg/errs"
)

// ErrProductAlreadyExists is returned when the product id is taken.
var ErrProductAlreadyExists = errors.New("product already exists")

// CreateProductCommandHandler adds a product to the catalog. A named supplier
// must already be registered.
type CreateProductCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateProductCommandHandler(uowFactory UoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory}
}

func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	p, err := product.NewProduct(
		cmd.ProductID(), cmd.Name(), cmd.Attributes(), cmd.Stock(), cmd.Cost(), cmd.SupplierID(), cmd.Aisle(),
	)
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	exists, err := productRepo.Exists(ctx, p.ID())
	if err != nil {
		return "", err
	}
	if exists {
		return "", errs.NewConflictError(ErrProductAlreadyExists)
	}

	if p.SupplierID() != "" {
		known, err := uow.SupplierRepository().Exists(ctx, p.SupplierID())
		if err != nil {
			return "", err
		}
		if !known {
			return "", errs.NewObjectNotFoundError("supplier", p.SupplierID())
		}
	}

	if err = productRepo.Add(ctx, p); err != nil {
		return "", err
	}
	if err = uow.Commit(ctx); err != nil {
		return "", err
	}
	return p.ID(), nil
}
