package repository

import (
	"context"

	"identityapi/internal/model"
)

// ApplicationRepository persists service providers and their inbound configs.
// Lookups return sql.ErrNoRows when nothing matches.
type ApplicationRepository interface {
	// Create inserts the service provider with its inbound configs and returns the
	// stored record including the generated ResourceID and ID.
	Create(ctx context.Context, sp *model.ServiceProvider) (*model.ServiceProvider, error)

	FindByResourceID(ctx context.Context, tenant, resourceID string) (*model.ServiceProvider, error)

	// FindByClientID resolves the service provider owning an inbound key.
	FindByClientID(ctx context.Context, tenant, clientID, inboundType string) (*model.ServiceProvider, error)

	List(ctx context.Context, tenant string, pq PageQuery) (*PageResult[model.ServiceProvider], error)

	// UpdateInbound replaces the stored inbound configs with sp.InboundConfigs.
	UpdateInbound(ctx context.Context, sp *model.ServiceProvider) error

	// Delete removes a service provider. It returns nil if the row did not exist.
	Delete(ctx context.Context, tenant, resourceID string) error
}

// OAuthAppRepository is the OAuth admin backend.
type OAuthAppRepository interface {
	// Register stores a new consumer app, generating key and secret when empty.
	Register(ctx context.Context, app *model.OAuthConsumerApp) (*model.OAuthConsumerApp, error)
	FindByConsumerKey(ctx context.Context, consumerKey string) (*model.OAuthConsumerApp, error)
	Update(ctx context.Context, app *model.OAuthConsumerApp) error
	Delete(ctx context.Context, consumerKey string) error
	RegenerateSecret(ctx context.Context, consumerKey string) (*model.OAuthConsumerApp, error)
	UpdateState(ctx context.Context, consumerKey, state string) error
}

// CORSRepository manages the CORS origins registered for an application.
type CORSRepository interface {
	ListByApplication(ctx context.Context, tenant, appID string) ([]model.CORSOrigin, error)
	// Replace swaps the application's origins for the given list atomically.
	Replace(ctx context.Context, tenant, appID string, origins []string) error
}

// TrustedServiceRepository is the STS admin backend for WS-Trust relying parties.
type TrustedServiceRepository interface {
	Add(ctx context.Context, ts *model.TrustedService) error
	Find(ctx context.Context, tenant, audience string) (*model.TrustedService, error)
	Delete(ctx context.Context, tenant, audience string) error
}
