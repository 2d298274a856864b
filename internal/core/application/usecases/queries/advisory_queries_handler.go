package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

type AnalyzeEmailQueryHandler struct {
	db      *gorm.DB
	advisor ports.Advisor
}

func NewAnalyzeEmailQueryHandler(db *gorm.DB, advisor ports.Advisor) AnalyzeEmailQueryHandler {
	return AnalyzeEmailQueryHandler{db: db, advisor: advisor}
}

// Handle returns the advisor's candidate and looks the named order up.
func (h AnalyzeEmailQueryHandler) Handle(ctx context.Context, query AnalyzeEmailQuery) (EmailAnalysis, error) {
	if err := query.Validate(); err != nil {
		return EmailAnalysis{}, err
	}

	candidate, err := h.advisor.ParseAddressChange(ctx, query.Text())
	if err != nil {
		return EmailAnalysis{}, err
	}

	analysis := EmailAnalysis{AddressChangeCandidate: candidate}
	if candidate.OrderID == "" {
		return analysis, nil
	}

	err = h.db.WithContext(ctx).Raw(`SELECT destination_address FROM orders WHERE id = ?`, candidate.OrderID).
		Row().Scan(&analysis.CurrentAddress)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return analysis, nil
	case err != nil:
		return EmailAnalysis{}, err
	}
	analysis.OrderFound = true
	return analysis, nil
}

type AnalyzeOverstockQueryHandler struct {
	db      *gorm.DB
	advisor ports.Advisor
}

func NewAnalyzeOverstockQueryHandler(db *gorm.DB, advisor ports.Advisor) AnalyzeOverstockQueryHandler {
	return AnalyzeOverstockQueryHandler{db: db, advisor: advisor}
}

// Handle hands every product with stock on hand to the advisor, largest
// stock first.
func (h AnalyzeOverstockQueryHandler) Handle(ctx context.Context, query AnalyzeOverstockQuery) ([]ports.OverstockSuggestion, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT name, stock FROM products WHERE stock > 0 ORDER BY stock DESC, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ports.OverstockItem, 0)
	for rows.Next() {
		var item ports.OverstockItem
		if err := rows.Scan(&item.Name, &item.Stock); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []ports.OverstockSuggestion{}, nil
	}

	return h.advisor.AnalyzeOverstock(ctx, items)
}

type StorageAdviceQueryHandler struct {
	advisor ports.Advisor
}

func NewStorageAdviceQueryHandler(advisor ports.Advisor) StorageAdviceQueryHandler {
	return StorageAdviceQueryHandler{advisor: advisor}
}

func (h StorageAdviceQueryHandler) Handle(ctx context.Context, query StorageAdviceQuery) (ports.StorageRecommendation, error) {
	if err := query.Validate(); err != nil {
		return ports.StorageRecommendation{}, err
	}
	return h.advisor.StorageAdvice(ctx, query.Shelf(), query.Item())
}
