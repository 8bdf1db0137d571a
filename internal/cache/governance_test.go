package cache

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"identityapi/internal/config"
	"identityapi/internal/model"
	repoMocks "identityapi/internal/repository/mocks"
)

type memStore struct {
	data   map[string]string
	getErr error
}

func newMemStore() *memStore { return &memStore{data: map[string]string{}} }

func (m *memStore) Get(_ context.Context, ns, key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.data[ns+":"+key]
	if !ok {
		return "", ErrMiss
	}
	return v, nil
}

func (m *memStore) Set(_ context.Context, ns, key, value string, _ time.Duration) error {
	m.data[ns+":"+key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, ns, key string) error {
	delete(m.data, ns+":"+key)
	return nil
}

func TestGovernanceRepository_ListCategorizedCaches(t *testing.T) {
	ctx := context.Background()
	next := new(repoMocks.MockGovernanceRepository)
	store := newMemStore()
	repo := NewGovernanceRepository(next, store, time.Minute, nil)

	categories := []model.ConnectorCategory{{
		Name:       "Account Management",
		Connectors: []model.ConnectorConfig{{Name: "account.lock.handler", Category: "Account Management"}},
	}}
	next.On("ListCategorized", ctx, "carbon.super").Return(categories, nil).Once()

	first, err := repo.ListCategorized(ctx, "carbon.super")
	require.NoError(t, err)
	second, err := repo.ListCategorized(ctx, "carbon.super")
	require.NoError(t, err)

	assert.Equal(t, categories, first)
	assert.Equal(t, categories, second)
	assert.Contains(t, store.data, "governance:carbon.super")
	next.AssertExpectations(t)
}

func TestGovernanceRepository_UpdateInvalidates(t *testing.T) {
	ctx := context.Background()
	next := new(repoMocks.MockGovernanceRepository)
	store := newMemStore()
	store.data["governance:carbon.super"] = "[]"
	repo := NewGovernanceRepository(next, store, time.Minute, nil)

	values := map[string]string{"account.lock.handler.enable": "true"}
	next.On("UpdateConfiguration", ctx, "carbon.super", values).Return(nil).Once()

	require.NoError(t, repo.UpdateConfiguration(ctx, "carbon.super", values))
	assert.NotContains(t, store.data, "governance:carbon.super")
}

func TestGovernanceRepository_UpdateFailureKeepsEntry(t *testing.T) {
	ctx := context.Background()
	next := new(repoMocks.MockGovernanceRepository)
	store := newMemStore()
	store.data["governance:carbon.super"] = "[]"
	repo := NewGovernanceRepository(next, store, time.Minute, nil)

	next.On("UpdateConfiguration", ctx, "carbon.super", mock.Anything).Return(errors.New("db fail")).Once()

	err := repo.UpdateConfiguration(ctx, "carbon.super", map[string]string{"a": "b"})
	assert.EqualError(t, err, "db fail")
	assert.Contains(t, store.data, "governance:carbon.super")
}

func TestGovernanceRepository_StoreErrorFallsThrough(t *testing.T) {
	ctx := context.Background()
	next := new(repoMocks.MockGovernanceRepository)
	store := newMemStore()
	store.getErr = errors.New("connection refused")
	repo := NewGovernanceRepository(next, store, time.Minute, nil)

	next.On("ListCategorized", ctx, "wso2.com").Return([]model.ConnectorCategory{}, nil).Once()

	got, err := repo.ListCategorized(ctx, "wso2.com")
	require.NoError(t, err)
	assert.Empty(t, got)
	next.AssertExpectations(t)
}

func TestGovernanceRepository_WrappedMissIsNotAFailure(t *testing.T) {
	ctx := context.Background()
	next := new(repoMocks.MockGovernanceRepository)
	store := newMemStore()
	store.getErr = fmt.Errorf("redis get: %w", ErrMiss)
	core, logs := observer.New(zap.WarnLevel)
	repo := NewGovernanceRepository(next, store, time.Minute, zap.New(core))

	next.On("ListCategorized", ctx, "carbon.super").Return([]model.ConnectorCategory{}, nil).Once()

	_, err := repo.ListCategorized(ctx, "carbon.super")
	require.NoError(t, err)
	assert.Zero(t, logs.FilterMessage("governance_cache_get_failed").Len())
	next.AssertExpectations(t)
}

func TestNewGovernanceRepository_NilStore(t *testing.T) {
	next := new(repoMocks.MockGovernanceRepository)
	assert.Same(t, next, NewGovernanceRepository(next, nil, time.Minute, nil))
}

func TestNewRedis_Disabled(t *testing.T) {
	assert.Nil(t, NewRedis(config.RedisConfig{}))
}
