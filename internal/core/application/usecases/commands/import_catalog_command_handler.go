package commands

import (
	"context"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// CatalogImportResult counts imported records, records skipped because
// their id already exists and rows rejected by validation.
type CatalogImportResult struct {
	Imported int
	Existing int
	Rejected int
}

// ImportCatalogCommandHandler decodes a spreadsheet, maps its columns by
// header synonyms and appends the new records.
type ImportCatalogCommandHandler struct {
	uowFactory UoWFactory
	decoder    ports.SpreadsheetDecoder
	mapper     services.CatalogMapper
}

func NewImportCatalogCommandHandler(uowFactory UoWFactory, decoder ports.SpreadsheetDecoder) ImportCatalogCommandHandler {
	return ImportCatalogCommandHandler{
		uowFactory: uowFactory,
		decoder:    decoder,
		mapper:     services.NewCatalogMapper(),
	}
}

func (h *ImportCatalogCommandHandler) Handle(ctx context.Context, cmd ImportCatalogCommand) (CatalogImportResult, error) {
	if err := cmd.Validate(); err != nil {
		return CatalogImportResult{}, err
	}

	sheet, err := h.decoder.Decode(cmd.Filename(), cmd.Data())
	if err != nil {
		return CatalogImportResult{}, err
	}
	batch, err := h.mapper.Map(cmd.Target(), sheet)
	if err != nil {
		return CatalogImportResult{}, err
	}

	result := CatalogImportResult{Rejected: batch.Rejected}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CatalogImportResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = h.importBatch(ctx, uow, batch, &result); err != nil {
		return CatalogImportResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CatalogImportResult{}, err
	}
	return result, nil
}

func (h *ImportCatalogCommandHandler) importBatch(
	ctx context.Context,
	uow UoW,
	batch services.CatalogBatch,
	result *CatalogImportResult,
) error {
	products := uow.ProductRepository()
	for _, p := range batch.Products {
		if err := addIfAbsent(ctx, result, p.ID(), products.Exists, func() error { return products.Add(ctx, p) }); err != nil {
			return err
		}
	}

	suppliers := uow.SupplierRepository()
	for _, s := range batch.Suppliers {
		if err := addIfAbsent(ctx, result, s.ID(), suppliers.Exists, func() error { return suppliers.Add(ctx, s) }); err != nil {
			return err
		}
	}

	customers := uow.CustomerRepository()
	for _, c := range batch.Customers {
		if err := addIfAbsent(ctx, result, c.ID(), customers.Exists, func() error { return customers.Add(ctx, c) }); err != nil {
			return err
		}
	}
	return nil
}

func addIfAbsent(
	ctx context.Context,
	result *CatalogImportResult,
	id string,
	exists func(context.Context, string) (bool, error),
	add func() error,
) error {
	found, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if found {
		result.Existing++
		return nil
	}
	if err = add(); err != nil {
		return err
	}
	result.Imported++
	return nil
}
