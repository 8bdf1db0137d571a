package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"identityapi/internal/model"
	"identityapi/internal/repository"
)

// ApplicationPostgres is a PostgreSQL implementation of repository.ApplicationRepository.
type ApplicationPostgres struct {
	db *sql.DB
}

// NewApplicationPostgres creates a new ApplicationPostgres repository.
func NewApplicationPostgres(db *sql.DB) *ApplicationPostgres {
	return &ApplicationPostgres{db: db}
}

var _ repository.ApplicationRepository = (*ApplicationPostgres)(nil)

const spColumns = `sp.id, sp.resource_id, sp.tenant_domain, sp.name, sp.description`

// Create inserts the service provider and its inbound configs in one transaction.
func (r *ApplicationPostgres) Create(ctx context.Context, sp *model.ServiceProvider) (*model.ServiceProvider, error) {
	const q = `
		INSERT INTO service_providers (tenant_domain, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, resource_id
	`
	out := *sp
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, q, sp.TenantDomain, sp.Name, sp.Description).
			Scan(&out.ID, &out.ResourceID); err != nil {
			return translate(err, fmt.Sprintf("application %q", sp.Name))
		}
		return insertInbound(ctx, tx, out.ID, sp.InboundConfigs)
	})
	if err != nil {
		return nil, err
	}
	out.InboundConfigs = append([]model.InboundAuthConfig(nil), sp.InboundConfigs...)
	return &out, nil
}

// FindByResourceID fetches a service provider with its inbound configs.
func (r *ApplicationPostgres) FindByResourceID(ctx context.Context, tenant, resourceID string) (*model.ServiceProvider, error) {
	q := `SELECT ` + spColumns + `
		FROM service_providers sp
		WHERE sp.tenant_domain = $1 AND sp.resource_id = $2
	`
	sp, err := scanServiceProvider(r.db.QueryRowContext(ctx, q, tenant, resourceID))
	if err != nil {
		return nil, translate(err, "resource id")
	}
	if sp.InboundConfigs, err = r.loadInbound(ctx, sp.ID); err != nil {
		return nil, err
	}
	return sp, nil
}

// FindByClientID resolves the service provider that owns an inbound key.
func (r *ApplicationPostgres) FindByClientID(ctx context.Context, tenant, clientID, inboundType string) (*model.ServiceProvider, error) {
	q := `SELECT ` + spColumns + `
		FROM service_providers sp
		JOIN sp_inbound_auth ia ON ia.sp_id = sp.id
		WHERE sp.tenant_domain = $1 AND ia.inbound_type = $2 AND ia.inbound_key = $3
	`
	sp, err := scanServiceProvider(r.db.QueryRowContext(ctx, q, tenant, inboundType, clientID))
	if err != nil {
		return nil, err
	}
	if sp.InboundConfigs, err = r.loadInbound(ctx, sp.ID); err != nil {
		return nil, err
	}
	return sp, nil
}

// List returns a page of service providers without their inbound configs.
func (r *ApplicationPostgres) List(ctx context.Context, tenant string, pq repository.PageQuery) (*repository.PageResult[model.ServiceProvider], error) {
	const qCount = `SELECT COUNT(*) FROM service_providers WHERE tenant_domain = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, tenant).Scan(&total); err != nil {
		return nil, err
	}

	qList := `SELECT ` + spColumns + `
		FROM service_providers sp
		WHERE sp.tenant_domain = $1
		ORDER BY sp.name ASC, sp.id ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, tenant, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ServiceProvider, 0)
	for rows.Next() {
		sp, err := scanServiceProvider(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *sp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.ServiceProvider]{Items: items, Total: total}, nil
}

// UpdateInbound replaces the stored inbound configs of sp.
func (r *ApplicationPostgres) UpdateInbound(ctx context.Context, sp *model.ServiceProvider) error {
	const qDelete = `DELETE FROM sp_inbound_auth WHERE sp_id = $1`
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, qDelete, sp.ID); err != nil {
			return err
		}
		return insertInbound(ctx, tx, sp.ID, sp.InboundConfigs)
	})
}

// Delete removes a service provider; inbound rows cascade.
func (r *ApplicationPostgres) Delete(ctx context.Context, tenant, resourceID string) error {
	const q = `DELETE FROM service_providers WHERE tenant_domain = $1 AND resource_id = $2`
	_, err := r.db.ExecContext(ctx, q, tenant, resourceID)
	return translate(err, "resource id")
}

func (r *ApplicationPostgres) loadInbound(ctx context.Context, spID int64) ([]model.InboundAuthConfig, error) {
	const q = `
		SELECT inbound_type, inbound_key
		FROM sp_inbound_auth
		WHERE sp_id = $1
		ORDER BY inbound_type
	`
	rows, err := r.db.QueryContext(ctx, q, spID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.InboundAuthConfig
	for rows.Next() {
		var ic model.InboundAuthConfig
		if err := rows.Scan(&ic.Type, &ic.Key); err != nil {
			return nil, err
		}
		out = append(out, ic)
	}
	return out, rows.Err()
}

func insertInbound(ctx context.Context, tx *sql.Tx, spID int64, configs []model.InboundAuthConfig) error {
	const q = `INSERT INTO sp_inbound_auth (sp_id, inbound_type, inbound_key) VALUES ($1, $2, $3)`
	for _, ic := range configs {
		if _, err := tx.ExecContext(ctx, q, spID, ic.Type, ic.Key); err != nil {
			return translate(err, fmt.Sprintf("inbound %s", ic.Type))
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanServiceProvider(row rowScanner) (*model.ServiceProvider, error) {
	var sp model.ServiceProvider
	if err := row.Scan(&sp.ID, &sp.ResourceID, &sp.TenantDomain, &sp.Name, &sp.Description); err != nil {
		return nil, err
	}
	return &sp, nil
}
