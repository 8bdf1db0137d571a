package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"identityapi/internal/model"
	"identityapi/internal/repository"
)

const governanceNamespace = "governance"

// GovernanceRepository caches the categorized connector listing per tenant in
// front of another repository.GovernanceRepository. Cache failures are logged
// and fall through to the backend. Writes drop the tenant's entry.
type GovernanceRepository struct {
	next  repository.GovernanceRepository
	store Store
	ttl   time.Duration
	log   *zap.Logger
}

// NewGovernanceRepository wraps next. A nil store disables caching.
func NewGovernanceRepository(next repository.GovernanceRepository, store Store, ttl time.Duration, log *zap.Logger) repository.GovernanceRepository {
	if store == nil {
		return next
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &GovernanceRepository{next: next, store: store, ttl: ttl, log: log}
}

func (r *GovernanceRepository) ListCategorized(ctx context.Context, tenant string) ([]model.ConnectorCategory, error) {
	if raw, err := r.store.Get(ctx, governanceNamespace, tenant); err == nil {
		var categories []model.ConnectorCategory
		if err := json.Unmarshal([]byte(raw), &categories); err == nil {
			return categories, nil
		}
		r.log.Warn("governance_cache_decode_failed", zap.String("tenant", tenant))
	} else if !errors.Is(err, ErrMiss) {
		r.log.Warn("governance_cache_get_failed", zap.String("tenant", tenant), zap.Error(err))
	}

	categories, err := r.next.ListCategorized(ctx, tenant)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(categories); err == nil {
		if err := r.store.Set(ctx, governanceNamespace, tenant, string(b), r.ttl); err != nil {
			r.log.Warn("governance_cache_set_failed", zap.String("tenant", tenant), zap.Error(err))
		}
	}
	return categories, nil
}

func (r *GovernanceRepository) ListByCategory(ctx context.Context, tenant, category string) ([]model.ConnectorConfig, error) {
	return r.next.ListByCategory(ctx, tenant, category)
}

func (r *GovernanceRepository) FindConnector(ctx context.Context, tenant, name string) (*model.ConnectorConfig, error) {
	return r.next.FindConnector(ctx, tenant, name)
}

func (r *GovernanceRepository) UpdateConfiguration(ctx context.Context, tenant string, values map[string]string) error {
	if err := r.next.UpdateConfiguration(ctx, tenant, values); err != nil {
		return err
	}
	if err := r.store.Delete(ctx, governanceNamespace, tenant); err != nil {
		r.log.Warn("governance_cache_invalidate_failed", zap.String("tenant", tenant), zap.Error(err))
	}
	return nil
}
