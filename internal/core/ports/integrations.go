package ports

import (
	"context"
	"io"
	"time"

	"logistics/internal/core/domain/services"
)

// OrderChangedEvent is published after a committed change to an order.
type OrderChangedEvent struct {
	OrderID              string    `json:"orderId"`
	Kind                 string    `json:"kind"`
	Status               string    `json:"status"`
	AddressStatus        string    `json:"addressStatus"`
	PackingListValidated bool      `json:"packingListValidated"`
	InvoiceRef           string    `json:"invoiceRef,omitempty"`
	RouteID              string    `json:"routeId,omitempty"`
	OccurredAt           time.Time `json:"occurredAt"`
}

// EventPublisher delivers order events to the message bus.
type EventPublisher interface {
	PublishOrderChanged(ctx context.Context, event OrderChangedEvent) error
}

// SheetPayload is the body pushed to the spreadsheet webhook.
type SheetPayload struct {
	Inventory []SheetInventoryRow `json:"inventory"`
	Orders    []SheetOrderRow     `json:"orders"`
	Inbound   []SheetInboundRow   `json:"inbound"`
}

type SheetInventoryRow struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Family   string  `json:"family"`
	Stock    int     `json:"stock"`
	Cost     float64 `json:"cost"`
	Location string  `json:"location"`
}

type SheetOrderRow struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Customer string  `json:"customer"`
	Total    float64 `json:"total"`
	Status   string  `json:"status"`
}

type SheetInboundRow struct {
	ID         string `json:"id"`
	Supplier   string `json:"supplier"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	TotalItems int    `json:"totalItems"`
}

// SheetExporter pushes a snapshot to the spreadsheet webhook. One attempt, no retry.
type SheetExporter interface {
	Export(ctx context.Context, payload SheetPayload) error
}

// CSVFetcher downloads a published CSV document.
type CSVFetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// SpreadsheetDecoder reads the first worksheet of an uploaded .csv or .xlsx file.
type SpreadsheetDecoder interface {
	Decode(filename string, data []byte) (services.Sheet, error)
}
