package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ExpTable_Go/internal/catalog"
	"github.com/osse101/ExpTable_Go/internal/domain"
)

type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) LoadTableSettings(ctx context.Context, profile string) domain.TableSettings {
	args := m.Called(ctx, profile)
	return args.Get(0).(domain.TableSettings)
}

func (m *MockSettingsService) SaveTableSettings(ctx context.Context, profile string, ts domain.TableSettings) error {
	args := m.Called(ctx, profile, ts)
	return args.Error(0)
}

type MockBuilder struct {
	mock.Mock
}

func (m *MockBuilder) BuildTable(ctx context.Context, q domain.TableQuery) (*domain.Table, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *MockBuilder) Catalog() *catalog.Catalog {
	args := m.Called()
	return args.Get(0).(*catalog.Catalog)
}

type MockCashableService struct {
	mock.Mock
}

func (m *MockCashableService) Summary(ctx context.Context, profile string) domain.CashableSummary {
	args := m.Called(ctx, profile)
	return args.Get(0).(domain.CashableSummary)
}

func (m *MockCashableService) SetQuantity(ctx context.Context, profile string, price, quantity int) (domain.CashableLine, error) {
	args := m.Called(ctx, profile, price, quantity)
	return args.Get(0).(domain.CashableLine), args.Error(1)
}

func (m *MockCashableService) SumQuantities(qty map[int]int) (domain.CashableSummary, error) {
	args := m.Called(qty)
	return args.Get(0).(domain.CashableSummary), args.Error(1)
}
