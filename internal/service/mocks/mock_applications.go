package mocks

import (
	"context"

	"identityapi/internal/dto"

	"github.com/stretchr/testify/mock"
)

type MockApplications struct {
	mock.Mock
}

func (m *MockApplications) Create(ctx context.Context, req *dto.ApplicationModel) (*dto.ApplicationResponseModel, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ApplicationResponseModel), args.Error(1)
}

func (m *MockApplications) Get(ctx context.Context, id string) (*dto.ApplicationResponseModel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ApplicationResponseModel), args.Error(1)
}

func (m *MockApplications) List(ctx context.Context, limit, offset int) (*dto.ApplicationListResponse, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ApplicationListResponse), args.Error(1)
}

func (m *MockApplications) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockApplications) PutOIDC(ctx context.Context, id string, oidc *dto.OpenIDConnectConfiguration) (*dto.OpenIDConnectConfiguration, error) {
	args := m.Called(ctx, id, oidc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OpenIDConnectConfiguration), args.Error(1)
}

func (m *MockApplications) GetOIDC(ctx context.Context, id string) (*dto.OpenIDConnectConfiguration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OpenIDConnectConfiguration), args.Error(1)
}

func (m *MockApplications) DeleteOIDC(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockApplications) RegenerateSecret(ctx context.Context, id string) (*dto.OpenIDConnectConfiguration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OpenIDConnectConfiguration), args.Error(1)
}

func (m *MockApplications) Revoke(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockApplications) PutWSTrust(ctx context.Context, id string, cfg *dto.WSTrustConfiguration) error {
	args := m.Called(ctx, id, cfg)
	return args.Error(0)
}

func (m *MockApplications) GetWSTrust(ctx context.Context, id string) (*dto.WSTrustConfiguration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WSTrustConfiguration), args.Error(1)
}
