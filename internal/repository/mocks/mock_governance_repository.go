package mocks

import (
	"context"

	"identityapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockGovernanceRepository struct {
	mock.Mock
}

func (m *MockGovernanceRepository) ListCategorized(ctx context.Context, tenant string) ([]model.ConnectorCategory, error) {
	args := m.Called(ctx, tenant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ConnectorCategory), args.Error(1)
}

func (m *MockGovernanceRepository) ListByCategory(ctx context.Context, tenant, category string) ([]model.ConnectorConfig, error) {
	args := m.Called(ctx, tenant, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ConnectorConfig), args.Error(1)
}

func (m *MockGovernanceRepository) FindConnector(ctx context.Context, tenant, name string) (*model.ConnectorConfig, error) {
	args := m.Called(ctx, tenant, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ConnectorConfig), args.Error(1)
}

func (m *MockGovernanceRepository) UpdateConfiguration(ctx context.Context, tenant string, values map[string]string) error {
	args := m.Called(ctx, tenant, values)
	return args.Error(0)
}
