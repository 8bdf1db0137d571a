package mocks

import (
	"context"

	"identityapi/internal/dto"
	"identityapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockOAuthInbound struct {
	mock.Mock
}

func (m *MockOAuthInbound) PutOAuthInbound(ctx context.Context, app *model.ServiceProvider, oidc *dto.OpenIDConnectConfiguration) (*model.InboundAuthConfig, error) {
	args := m.Called(ctx, app, oidc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InboundAuthConfig), args.Error(1)
}

func (m *MockOAuthInbound) CreateOAuthInbound(ctx context.Context, appName string, oidc *dto.OpenIDConnectConfiguration) (*model.InboundAuthConfig, error) {
	args := m.Called(ctx, appName, oidc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InboundAuthConfig), args.Error(1)
}

func (m *MockOAuthInbound) GetOAuthConfiguration(ctx context.Context, inbound model.InboundAuthConfig) (*dto.OpenIDConnectConfiguration, error) {
	args := m.Called(ctx, inbound)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OpenIDConnectConfiguration), args.Error(1)
}

func (m *MockOAuthInbound) DeleteOAuthInbound(ctx context.Context, inbound model.InboundAuthConfig) error {
	args := m.Called(ctx, inbound)
	return args.Error(0)
}

func (m *MockOAuthInbound) RegenerateClientSecret(ctx context.Context, clientID string) (*dto.OpenIDConnectConfiguration, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OpenIDConnectConfiguration), args.Error(1)
}

func (m *MockOAuthInbound) RevokeOAuthClient(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

func (m *MockOAuthInbound) UpdateCORSOrigins(ctx context.Context, appID string, oidc *dto.OpenIDConnectConfiguration) error {
	args := m.Called(ctx, appID, oidc)
	return args.Error(0)
}
