package mocks

import (
	"context"

	"identityapi/internal/dto"

	"github.com/stretchr/testify/mock"
)

type MockGovernance struct {
	mock.Mock
}

func (m *MockGovernance) GetConnectorCategories(ctx context.Context, limit, offset *int, filter, sort *string) ([]dto.CategoriesRes, error) {
	args := m.Called(ctx, limit, offset, filter, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CategoriesRes), args.Error(1)
}

func (m *MockGovernance) GetCategory(ctx context.Context, categoryID string) (*dto.CategoryRes, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CategoryRes), args.Error(1)
}

func (m *MockGovernance) GetConnectorsByCategory(ctx context.Context, categoryID string) ([]dto.ConnectorRes, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ConnectorRes), args.Error(1)
}

func (m *MockGovernance) GetConnector(ctx context.Context, categoryID, connectorID string) (*dto.ConnectorRes, error) {
	args := m.Called(ctx, categoryID, connectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConnectorRes), args.Error(1)
}

func (m *MockGovernance) GetConfigPreference(ctx context.Context, attrs []dto.PreferenceSearchAttribute) ([]dto.PreferenceResp, error) {
	args := m.Called(ctx, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.PreferenceResp), args.Error(1)
}

func (m *MockGovernance) UpdateConnectorProperties(ctx context.Context, categoryID, connectorID string, req *dto.ConnectorsPatchReq) error {
	args := m.Called(ctx, categoryID, connectorID, req)
	return args.Error(0)
}
