package queries

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrAnalyzeEmailQueryIsNotConstructed = errors.New(
		"AnalyzeEmailQuery must be created via NewAnalyzeEmailQuery constructor",
	)
	ErrAnalyzeOverstockQueryIsNotConstructed = errors.New(
		"AnalyzeOverstockQuery must be created via NewAnalyzeOverstockQuery constructor",
	)
	ErrStorageAdviceQueryIsNotConstructed = errors.New(
		"StorageAdviceQuery must be created via NewStorageAdviceQuery constructor",
	)
	ErrEmailTextIsRequired = errors.New("email text is required")
)

// AnalyzeEmailQuery asks the advisor whether a customer email requests an
// address change. The answer is a suggestion for the operator to apply.
type AnalyzeEmailQuery struct {
	text string

	guard guard.ConstructorGuard
}

func NewAnalyzeEmailQuery(text string) (AnalyzeEmailQuery, error) {
	if strings.TrimSpace(text) == "" {
		return AnalyzeEmailQuery{}, ErrEmailTextIsRequired
	}
	return AnalyzeEmailQuery{text: text, guard: guard.NewConstructorGuard()}, nil
}

func (q AnalyzeEmailQuery) Validate() error {
	return q.guard.Validate(ErrAnalyzeEmailQueryIsNotConstructed)
}

func (q AnalyzeEmailQuery) Text() string { return q.text }

// EmailAnalysis is the advisor's candidate plus what the warehouse knows
// about the order it names.
type EmailAnalysis struct {
	ports.AddressChangeCandidate
	OrderFound     bool   `json:"orderFound"`
	CurrentAddress string `json:"currentAddress,omitempty"`
}

// AnalyzeOverstockQuery asks for ideas to move slow stock.
type AnalyzeOverstockQuery struct {
	guard guard.ConstructorGuard
}

func NewAnalyzeOverstockQuery() AnalyzeOverstockQuery {
	return AnalyzeOverstockQuery{guard: guard.NewConstructorGuard()}
}

func (q AnalyzeOverstockQuery) Validate() error {
	return q.guard.Validate(ErrAnalyzeOverstockQueryIsNotConstructed)
}

// StorageAdviceQuery asks how many items of a size fit on a shelf.
type StorageAdviceQuery struct {
	shelf ports.Dimensions
	item  ports.Dimensions

	guard guard.ConstructorGuard
}

func NewStorageAdviceQuery(shelf, item ports.Dimensions) (StorageAdviceQuery, error) {
	if err := errors.Join(validDimensions("shelf", shelf), validDimensions("item", item)); err != nil {
		return StorageAdviceQuery{}, err
	}
	return StorageAdviceQuery{shelf: shelf, item: item, guard: guard.NewConstructorGuard()}, nil
}

func (q StorageAdviceQuery) Validate() error {
	return q.guard.Validate(ErrStorageAdviceQueryIsNotConstructed)
}

func (q StorageAdviceQuery) Shelf() ports.Dimensions { return q.shelf }
func (q StorageAdviceQuery) Item() ports.Dimensions { return q.item }

func validDimensions(name string, d ports.Dimensions) error {
	if d.Width <= 0 || d.Depth <= 0 || d.Height <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name+" dimensions are invalid",
			fmt.Errorf("%vx%vx%v must all be greater than 0", d.Width, d.Depth, d.Height))
	}
	return nil
}
