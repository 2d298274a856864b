package openai

import (
	"context"

	"logistics/internal/core/ports"
)

// NoopAdvisor answers every question with the neutral result. Used when no
// API key is configured.
type NoopAdvisor struct{}

var _ ports.Advisor = NoopAdvisor{}

func (NoopAdvisor) ParseAddressChange(context.Context, string) (ports.AddressChangeCandidate, error) {
	return ports.AddressChangeCandidate{}, nil
}

func (NoopAdvisor) AnalyzeOverstock(context.Context, []ports.OverstockItem) ([]ports.OverstockSuggestion, error) {
	return []ports.OverstockSuggestion{}, nil
}

func (NoopAdvisor) StorageAdvice(context.Context, ports.Dimensions, ports.Dimensions) (ports.StorageRecommendation, error) {
	return StorageFallback, nil
}

func (NoopAdvisor) OptimizeRoute(_ context.Context, addresses []string) ([]string, error) {
	return addresses, nil
}
