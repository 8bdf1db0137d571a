package postgres

import (
	"context"
	"database/sql"
	"sort"

	"identityapi/internal/model"
	"identityapi/internal/repository"
)

// GovernancePostgres is a PostgreSQL implementation of repository.GovernanceRepository.
// Property values resolve to the tenant override when present, else the default.
type GovernancePostgres struct {
	db *sql.DB
}

// NewGovernancePostgres creates a new GovernancePostgres repository.
func NewGovernancePostgres(db *sql.DB) *GovernancePostgres {
	return &GovernancePostgres{db: db}
}

var _ repository.GovernanceRepository = (*GovernancePostgres)(nil)

const connectorQuery = `
	SELECT c.name, c.friendly_name, c.category, c.sub_category, c.ord,
	       p.name, p.display_name, p.description, COALESCE(v.value, p.default_value), p.confidential
	FROM governance_connectors c
	LEFT JOIN governance_properties p ON p.connector_name = c.name
	LEFT JOIN governance_property_values v ON v.property_name = p.name AND v.tenant_domain = $1
	WHERE ($2::text = '' OR c.category = $2) AND ($3::text = '' OR c.name = $3)
	ORDER BY c.ord, c.name, p.ord, p.name
`

// ListCategorized groups connectors by category in order of first appearance.
func (r *GovernancePostgres) ListCategorized(ctx context.Context, tenant string) ([]model.ConnectorCategory, error) {
	connectors, err := r.query(ctx, tenant, "", "")
	if err != nil {
		return nil, err
	}
	var categories []model.ConnectorCategory
	index := make(map[string]int)
	for _, c := range connectors {
		i, ok := index[c.Category]
		if !ok {
			i = len(categories)
			index[c.Category] = i
			categories = append(categories, model.ConnectorCategory{Name: c.Category})
		}
		categories[i].Connectors = append(categories[i].Connectors, c)
	}
	return categories, nil
}

// ListByCategory returns the connectors of one category.
func (r *GovernancePostgres) ListByCategory(ctx context.Context, tenant, category string) ([]model.ConnectorConfig, error) {
	if category == "" {
		return []model.ConnectorConfig{}, nil
	}
	return r.query(ctx, tenant, category, "")
}

// FindConnector fetches a single connector by name.
func (r *GovernancePostgres) FindConnector(ctx context.Context, tenant, name string) (*model.ConnectorConfig, error) {
	if name == "" {
		return nil, sql.ErrNoRows
	}
	connectors, err := r.query(ctx, tenant, "", name)
	if err != nil {
		return nil, err
	}
	if len(connectors) == 0 {
		return nil, sql.ErrNoRows
	}
	return &connectors[0], nil
}

// UpdateConfiguration upserts tenant values. Unknown property names fail the
// whole batch with repository.ErrInvalidInput.
func (r *GovernancePostgres) UpdateConfiguration(ctx context.Context, tenant string, values map[string]string) error {
	const q = `
		INSERT INTO governance_property_values (tenant_domain, property_name, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (tenant_domain, property_name) DO UPDATE SET value = EXCLUDED.value
	`
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, name := range names {
			if _, err := tx.ExecContext(ctx, q, tenant, name, values[name]); err != nil {
				return translate(err, "property "+name)
			}
		}
		return nil
	})
}

func (r *GovernancePostgres) query(ctx context.Context, tenant, category, name string) ([]model.ConnectorConfig, error) {
	rows, err := r.db.QueryContext(ctx, connectorQuery, tenant, category, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	connectors := make([]model.ConnectorConfig, 0)
	for rows.Next() {
		var (
			c            model.ConnectorConfig
			propName     sql.NullString
			displayName  sql.NullString
			description  sql.NullString
			value        sql.NullString
			confidential sql.NullBool
		)
		if err := rows.Scan(
			&c.Name, &c.FriendlyName, &c.Category, &c.SubCategory, &c.Order,
			&propName, &displayName, &description, &value, &confidential,
		); err != nil {
			return nil, err
		}

		if n := len(connectors); n == 0 || connectors[n-1].Name != c.Name {
			connectors = append(connectors, c)
		}
		if !propName.Valid {
			continue
		}
		last := &connectors[len(connectors)-1]
		last.Properties = append(last.Properties, model.Property{
			Name:         propName.String,
			DisplayName:  displayName.String,
			Description:  description.String,
			Value:        value.String,
			Confidential: confidential.Bool,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return connectors, nil
}
