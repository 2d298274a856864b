package queries_test

import (
	"context"

	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockAdvisor struct {
	mock.Mock
}

func (m *MockAdvisor) ParseAddressChange(ctx context.Context, email string) (ports.AddressChangeCandidate, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(ports.AddressChangeCandidate), args.Error(1)
}

func (m *MockAdvisor) AnalyzeOverstock(ctx context.Context, items []ports.OverstockItem) ([]ports.OverstockSuggestion, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OverstockSuggestion), args.Error(1)
}

func (m *MockAdvisor) StorageAdvice(ctx context.Context, shelf, item ports.Dimensions) (ports.StorageRecommendation, error) {
	args := m.Called(ctx, shelf, item)
	return args.Get(0).(ports.StorageRecommendation), args.Error(1)
}

func (m *MockAdvisor) OptimizeRoute(ctx context.Context, addresses []string) ([]string, error) {
	args := m.Called(ctx, addresses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
