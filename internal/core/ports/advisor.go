package ports

import "context"

// InstructionType classifies what an email asks for.
type InstructionType string

const (
	InstructionAddressChange InstructionType = "address_change"
	InstructionHold          InstructionType = "hold"
	InstructionUrgent        InstructionType = "urgent"
)

// AddressChangeCandidate is what the advisor extracted from an email. It is a
// suggestion; nothing changes until an operator applies it.
type AddressChangeCandidate struct {
	HasChange       bool            `json:"hasChange"`
	OrderID         string          `json:"orderId"`
	Provider        string          `json:"provider"`
	NewAddress      string          `json:"newAddress"`
	InstructionType InstructionType `json:"instructionType"`
}

// OverstockItem is the product data handed to the overstock analysis.
type OverstockItem struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// OverstockSuggestion proposes what to do with a slow moving product.
type OverstockSuggestion struct {
	ProductName  string `json:"productName"`
	CurrentStock int    `json:"currentStock"`
	Suggestion   string `json:"suggestion"`
}

// Dimensions are centimetres.
type Dimensions struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

// StorageRecommendation tells how many units fit on a shelf and how.
type StorageRecommendation struct {
	TotalUnits  int    `json:"totalUnits"`
	Arrangement string `json:"arrangement"`
	Efficiency  string `json:"efficiency"`
}

// Advisor is the opaque suggestion engine. Implementations degrade to
// neutral answers (no change, empty list, input order) instead of failing
// the caller when the model is unavailable.
type Advisor interface {
	ParseAddressChange(ctx context.Context, email string) (AddressChangeCandidate, error)
	AnalyzeOverstock(ctx context.Context, items []OverstockItem) ([]OverstockSuggestion, error)
	StorageAdvice(ctx context.Context, shelf, item Dimensions) (StorageRecommendation, error)
	OptimizeRoute(ctx context.Context, addresses []string) ([]string, error)
}
