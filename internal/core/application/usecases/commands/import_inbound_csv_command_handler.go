package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// InboundImportResult counts what an import did. Created lots were new,
// Existing lots were already known and left alone, IgnoredLines could not
// be parsed.
type InboundImportResult struct {
	Created      int
	Existing     int
	IgnoredLines int
}

// ImportInboundCSVCommandHandler fetches the receiving sheet and adds the
// lots it does not know yet in customs status. Re-importing the same sheet
// creates nothing.
type ImportInboundCSVCommandHandler struct {
	uowFactory UoWFactory
	fetcher    ports.CSVFetcher
	parser     services.InboundCSVParser
}

func NewImportInboundCSVCommandHandler(uowFactory UoWFactory, fetcher ports.CSVFetcher) ImportInboundCSVCommandHandler {
	return ImportInboundCSVCommandHandler{
		uowFactory: uowFactory,
		fetcher:    fetcher,
		parser:     services.NewInboundCSVParser(),
	}
}

func (h *ImportInboundCSVCommandHandler) Handle(ctx context.Context, cmd ImportInboundCSVCommand) (InboundImportResult, error) {
	if err := cmd.Validate(); err != nil {
		return InboundImportResult{}, err
	}

	body, err := h.fetcher.Fetch(ctx, cmd.SourceURL())
	if err != nil {
		return InboundImportResult{}, fmt.Errorf("fetch inbound csv: %w", err)
	}
	defer body.Close()

	parsed, err := h.parser.Parse(body)
	if err != nil {
		return InboundImportResult{}, fmt.Errorf("parse inbound csv: %w", err)
	}

	result := InboundImportResult{IgnoredLines: parsed.Skipped}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return InboundImportResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lotRepo := uow.LotRepository()
	for _, lot := range parsed.Lots {
		exists, existsErr := lotRepo.Exists(ctx, lot.ID())
		if existsErr != nil {
			return InboundImportResult{}, existsErr
		}
		if exists {
			result.Existing++
			continue
		}
		if err = lotRepo.Add(ctx, lot); err != nil {
			return InboundImportResult{}, err
		}
		result.Created++
	}

	if err = uow.Commit(ctx); err != nil {
		return InboundImportResult{}, err
	}
	return result, nil
}
