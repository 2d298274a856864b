package cmd

import (
	"log/slog"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/kafka"
	"logistics/internal/adapters/out/openai"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/sheets"
	"logistics/internal/adapters/out/spreadsheet"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	resetter   *postgres.Resetter
	publisher  ports.EventPublisher
	advisor    ports.Advisor
	exporter   ports.SheetExporter
	fetcher    ports.CSVFetcher
	decoder    ports.SpreadsheetDecoder
	closers    []func() error
}

// NewCompositionRoot wires the adapters. Without Kafka brokers events are
// dropped; without an OpenAI key the advisor answers neutrally.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	root := CompositionRoot{
		configs:  configs,
		gormDB:   gormDB,
		resetter: postgres.NewResetter(gormDB),
		exporter: sheets.NewWebhookExporter(configs.SheetsWebhookURL, nil, logger),
		fetcher:  sheets.NewHTTPFetcher(nil),
		decoder:  spreadsheet.NewDecoder(),
	}

	if len(configs.KafkaBrokers) > 0 {
		publisher, err := kafka.NewOrderEventPublisher(configs.KafkaBrokers, configs.KafkaOrderChangedTopic, logger)
		if err != nil {
			return CompositionRoot{}, err
		}
		root.publisher = publisher
		root.closers = append(root.closers, publisher.Close)
	} else {
		logger.Warn("Kafka brokers are not configured, order events are dropped")
		root.publisher = kafka.NoopPublisher{}
	}

	if configs.OpenAIAPIKey != "" {
		root.advisor = openai.NewAdvisor(configs.OpenAIAPIKey, configs.OpenAIModel, logger)
	} else {
		logger.Warn("OpenAI key is not configured, advisory answers are neutral")
		root.advisor = openai.NoopAdvisor{}
	}

	root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, root.publisher, logger)
	return root, nil
}

// Close releases the adapters that hold connections.
func (c *CompositionRoot) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *CompositionRoot) Resetter() *postgres.Resetter {
	return c.resetter
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) lotUoWFactory() commands.LotUoWFactory {
	return FuncLotUoWFactory(func() commands.LotUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateUpdateStockCommandHandler() commands.UpdateStockCommandHandler {
	return commands.NewUpdateStockCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateBundleCommandHandler() commands.CreateBundleCommandHandler {
	return commands.NewCreateBundleCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateValidatePackingListCommandHandler() commands.ValidatePackingListCommandHandler {
	return commands.NewValidatePackingListCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateInvoiceOrderCommandHandler() commands.InvoiceOrderCommandHandler {
	return commands.NewInvoiceOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApplyAddressChangeCommandHandler() commands.ApplyAddressChangeCommandHandler {
	return commands.NewApplyAddressChangeCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateOverrideAddressCommandHandler() commands.OverrideAddressCommandHandler {
	return commands.NewOverrideAddressCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateClearLotCommandHandler() commands.ClearLotCommandHandler {
	return commands.NewClearLotCommandHandler(c.lotUoWFactory())
}

func (c *CompositionRoot) CreatePutAwayLotCommandHandler() commands.PutAwayLotCommandHandler {
	return commands.NewPutAwayLotCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateImportInboundCSVCommandHandler() commands.ImportInboundCSVCommandHandler {
	return commands.NewImportInboundCSVCommandHandler(c.fullUoWFactory(), c.fetcher)
}

func (c *CompositionRoot) CreateImportCatalogCommandHandler() commands.ImportCatalogCommandHandler {
	return commands.NewImportCatalogCommandHandler(c.fullUoWFactory(), c.decoder)
}

func (c *CompositionRoot) CreateExportSheetsCommandHandler() commands.ExportSheetsCommandHandler {
	return commands.NewExportSheetsCommandHandler(c.fullUoWFactory(), c.exporter)
}

func (c *CompositionRoot) CreatePlanRouteCommandHandler() commands.PlanRouteCommandHandler {
	planner := services.NewRoutePlanner(c.configs.DefaultCarrierID, c.configs.DefaultTruckID)
	return commands.NewPlanRouteCommandHandler(c.fullUoWFactory(), planner, c.advisor)
}

func (c *CompositionRoot) CreateAdvanceRouteCommandHandler() commands.AdvanceRouteCommandHandler {
	return commands.NewAdvanceRouteCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateResetDatabaseCommandHandler() commands.ResetDatabaseCommandHandler {
	return commands.NewResetDatabaseCommandHandler(c.resetter)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackingListQueryHandler() queries.GetPackingListQueryHandler {
	return queries.NewGetPackingListQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInvoiceQueryHandler() queries.GetInvoiceQueryHandler {
	return queries.NewGetInvoiceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPurchaseHistoryQueryHandler() queries.GetPurchaseHistoryQueryHandler {
	return queries.NewGetPurchaseHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListInboundLotsQueryHandler() queries.ListInboundLotsQueryHandler {
	return queries.NewListInboundLotsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteQueryHandler() queries.GetRouteQueryHandler {
	return queries.NewGetRouteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateExportSnapshotQueryHandler() queries.ExportSnapshotQueryHandler {
	return queries.NewExportSnapshotQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAnalyzeEmailQueryHandler() queries.AnalyzeEmailQueryHandler {
	return queries.NewAnalyzeEmailQueryHandler(c.gormDB, c.advisor)
}

func (c *CompositionRoot) CreateAnalyzeOverstockQueryHandler() queries.AnalyzeOverstockQueryHandler {
	return queries.NewAnalyzeOverstockQueryHandler(c.gormDB, c.advisor)
}

func (c *CompositionRoot) CreateStorageAdviceQueryHandler() queries.StorageAdviceQueryHandler {
	return queries.NewStorageAdviceQueryHandler(c.advisor)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLotUoWFactory func() commands.LotUoW

func (f FuncLotUoWFactory) Create() commands.LotUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// HTTPHandlers builds every use case served by the HTTP adapter.
func (c *CompositionRoot) HTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		UpdateStock:         c.CreateUpdateStockCommandHandler(),
		CreateProduct:       c.CreateCreateProductCommandHandler(),
		ChangeOrderStatus:   c.CreateChangeOrderStatusCommandHandler(),
		CreateBundle:        c.CreateCreateBundleCommandHandler(),
		ValidatePackingList: c.CreateValidatePackingListCommandHandler(),
		InvoiceOrder:        c.CreateInvoiceOrderCommandHandler(),
		ApplyAddressChange:  c.CreateApplyAddressChangeCommandHandler(),
		OverrideAddress:     c.CreateOverrideAddressCommandHandler(),
		ClearLot:            c.CreateClearLotCommandHandler(),
		PutAwayLot:          c.CreatePutAwayLotCommandHandler(),
		ImportInboundCSV:    c.CreateImportInboundCSVCommandHandler(),
		ImportCatalog:       c.CreateImportCatalogCommandHandler(),
		ExportSheets:        c.CreateExportSheetsCommandHandler(),
		PlanRoute:           c.CreatePlanRouteCommandHandler(),
		AdvanceRoute:        c.CreateAdvanceRouteCommandHandler(),
		ResetDatabase:       c.CreateResetDatabaseCommandHandler(),

		ListOrders:         c.CreateListOrdersQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetPackingList:     c.CreateGetPackingListQueryHandler(),
		GetInvoice:         c.CreateGetInvoiceQueryHandler(),
		GetPurchaseHistory: c.CreateGetPurchaseHistoryQueryHandler(),
		ListProducts:       c.CreateListProductsQueryHandler(),
		ListInboundLots:    c.CreateListInboundLotsQueryHandler(),
		GetRoute:           c.CreateGetRouteQueryHandler(),
		ExportSnapshot:     c.CreateExportSnapshotQueryHandler(),
		AnalyzeEmail:       c.CreateAnalyzeEmailQueryHandler(),
		AnalyzeOverstock:   c.CreateAnalyzeOverstockQueryHandler(),
		StorageAdvice:      c.CreateStorageAdviceQueryHandler(),
	}
}

// JobManager schedules the sheets sync only when a webhook is configured.
func (c *CompositionRoot) JobManager(logger *slog.Logger) *jobs.JobManager {
	schedules := jobs.Schedules{
		SheetsSync:    c.configs.SheetsSyncSchedule,
		InboundImport: c.configs.InboundImportSchedule,
	}
	if c.configs.SheetsWebhookURL == "" {
		schedules.SheetsSync = ""
	}
	return jobs.NewJobManager(
		schedules,
		c.CreateExportSheetsCommandHandler(),
		c.CreateImportInboundCSVCommandHandler(),
		c.configs.InboundCSVURL,
		logger,
	)
}
