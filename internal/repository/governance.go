package repository

import (
	"context"

	"identityapi/internal/model"
)

// GovernanceRepository exposes governance connectors with tenant resolved values.
type GovernanceRepository interface {
	// ListCategorized groups every connector by category, ordered by connector order.
	ListCategorized(ctx context.Context, tenant string) ([]model.ConnectorCategory, error)

	// ListByCategory returns an empty slice, not an error, for unknown categories.
	ListByCategory(ctx context.Context, tenant, category string) ([]model.ConnectorConfig, error)

	// FindConnector returns sql.ErrNoRows when the connector does not exist.
	FindConnector(ctx context.Context, tenant, name string) (*model.ConnectorConfig, error)

	// UpdateConfiguration upserts tenant values keyed by property name.
	UpdateConfiguration(ctx context.Context, tenant string, values map[string]string) error
}
