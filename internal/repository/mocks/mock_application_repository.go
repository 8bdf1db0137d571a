package mocks

import (
	"context"

	"identityapi/internal/model"
	"identityapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, sp *model.ServiceProvider) (*model.ServiceProvider, error) {
	args := m.Called(ctx, sp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceProvider), args.Error(1)
}

func (m *MockApplicationRepository) FindByResourceID(ctx context.Context, tenant, resourceID string) (*model.ServiceProvider, error) {
	args := m.Called(ctx, tenant, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceProvider), args.Error(1)
}

func (m *MockApplicationRepository) FindByClientID(ctx context.Context, tenant, clientID, inboundType string) (*model.ServiceProvider, error) {
	args := m.Called(ctx, tenant, clientID, inboundType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceProvider), args.Error(1)
}

func (m *MockApplicationRepository) List(ctx context.Context, tenant string, pq repository.PageQuery) (*repository.PageResult[model.ServiceProvider], error) {
	args := m.Called(ctx, tenant, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.ServiceProvider]), args.Error(1)
}

func (m *MockApplicationRepository) UpdateInbound(ctx context.Context, sp *model.ServiceProvider) error {
	args := m.Called(ctx, sp)
	return args.Error(0)
}

func (m *MockApplicationRepository) Delete(ctx context.Context, tenant, resourceID string) error {
	args := m.Called(ctx, tenant, resourceID)
	return args.Error(0)
}

type MockOAuthAppRepository struct {
	mock.Mock
}

func (m *MockOAuthAppRepository) Register(ctx context.Context, app *model.OAuthConsumerApp) (*model.OAuthConsumerApp, error) {
	args := m.Called(ctx, app)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OAuthConsumerApp), args.Error(1)
}

func (m *MockOAuthAppRepository) FindByConsumerKey(ctx context.Context, consumerKey string) (*model.OAuthConsumerApp, error) {
	args := m.Called(ctx, consumerKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OAuthConsumerApp), args.Error(1)
}

func (m *MockOAuthAppRepository) Update(ctx context.Context, app *model.OAuthConsumerApp) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockOAuthAppRepository) Delete(ctx context.Context, consumerKey string) error {
	args := m.Called(ctx, consumerKey)
	return args.Error(0)
}

func (m *MockOAuthAppRepository) RegenerateSecret(ctx context.Context, consumerKey string) (*model.OAuthConsumerApp, error) {
	args := m.Called(ctx, consumerKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OAuthConsumerApp), args.Error(1)
}

func (m *MockOAuthAppRepository) UpdateState(ctx context.Context, consumerKey, state string) error {
	args := m.Called(ctx, consumerKey, state)
	return args.Error(0)
}

type MockCORSRepository struct {
	mock.Mock
}

func (m *MockCORSRepository) ListByApplication(ctx context.Context, tenant, appID string) ([]model.CORSOrigin, error) {
	args := m.Called(ctx, tenant, appID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CORSOrigin), args.Error(1)
}

func (m *MockCORSRepository) Replace(ctx context.Context, tenant, appID string, origins []string) error {
	args := m.Called(ctx, tenant, appID, origins)
	return args.Error(0)
}

type MockTrustedServiceRepository struct {
	mock.Mock
}

func (m *MockTrustedServiceRepository) Add(ctx context.Context, ts *model.TrustedService) error {
	args := m.Called(ctx, ts)
	return args.Error(0)
}

func (m *MockTrustedServiceRepository) Find(ctx context.Context, tenant, audience string) (*model.TrustedService, error) {
	args := m.Called(ctx, tenant, audience)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrustedService), args.Error(1)
}

func (m *MockTrustedServiceRepository) Delete(ctx context.Context, tenant, audience string) error {
	args := m.Called(ctx, tenant, audience)
	return args.Error(0)
}
