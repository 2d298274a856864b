// Package sheets talks to the published spreadsheet: it pushes snapshots to
// the sheet's webhook and downloads CSV exports of its tabs.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"logistics/internal/core/ports"
)

const defaultTimeout = 30 * time.Second

var ErrWebhookNotConfigured = errors.New("spreadsheet webhook url is not configured")

var (
	_ ports.SheetExporter = (*WebhookExporter)(nil)
	_ ports.CSVFetcher    = (*HTTPFetcher)(nil)
)

// StatusError is returned for any non-2xx answer.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Code, e.URL)
}

// WebhookExporter POSTs the payload as JSON. One attempt, no retry.
type WebhookExporter struct {
	client *http.Client
	url    string
	logger *slog.Logger
}

func NewWebhookExporter(url string, client *http.Client, logger *slog.Logger) *WebhookExporter {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &WebhookExporter{client: client, url: url, logger: logger.With("component", "sheets_exporter")}
}

func (e *WebhookExporter) Export(ctx context.Context, payload ports.SheetPayload) error {
	if e.url == "" {
		return ErrWebhookNotConfigured
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: e.url, Code: resp.StatusCode}
	}
	e.logger.InfoContext(ctx, "Spreadsheet export sent",
		"inventory", len(payload.Inventory), "orders", len(payload.Orders), "inbound", len(payload.Inbound))
	return nil
}

// HTTPFetcher downloads published CSV documents.
type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPFetcher{client: client}
}

// Fetch returns the response body; the caller closes it.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}
	return resp.Body, nil
}
