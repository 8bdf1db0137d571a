package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"identityapi/internal/model"
	"identityapi/internal/repository"
)

// CORSPostgres is a PostgreSQL implementation of repository.CORSRepository.
type CORSPostgres struct {
	db *sql.DB
}

// NewCORSPostgres creates a new CORSPostgres repository.
func NewCORSPostgres(db *sql.DB) *CORSPostgres {
	return &CORSPostgres{db: db}
}

var _ repository.CORSRepository = (*CORSPostgres)(nil)

// ListByApplication returns the origins registered for an application, sorted.
func (r *CORSPostgres) ListByApplication(ctx context.Context, tenant, appID string) ([]model.CORSOrigin, error) {
	const q = `
		SELECT id, origin
		FROM cors_origins
		WHERE tenant_domain = $1 AND app_resource_id = $2
		ORDER BY origin
	`
	rows, err := r.db.QueryContext(ctx, q, tenant, appID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	origins := make([]model.CORSOrigin, 0)
	for rows.Next() {
		var o model.CORSOrigin
		if err := rows.Scan(&o.ID, &o.Origin); err != nil {
			return nil, err
		}
		origins = append(origins, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return origins, nil
}

// Replace validates the origins, then swaps the stored set in one transaction.
// Duplicates collapse to one entry; a nil or empty list clears the set.
func (r *CORSPostgres) Replace(ctx context.Context, tenant, appID string, origins []string) error {
	normalized := make([]string, 0, len(origins))
	seen := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		n, err := normalizeOrigin(o)
		if err != nil {
			return err
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		normalized = append(normalized, n)
	}

	const (
		qDelete = `DELETE FROM cors_origins WHERE tenant_domain = $1 AND app_resource_id = $2`
		qInsert = `INSERT INTO cors_origins (tenant_domain, app_resource_id, origin) VALUES ($1, $2, $3)`
	)
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, qDelete, tenant, appID); err != nil {
			return err
		}
		for _, o := range normalized {
			if _, err := tx.ExecContext(ctx, qInsert, tenant, appID, o); err != nil {
				return translate(err, fmt.Sprintf("origin %q", o))
			}
		}
		return nil
	})
}

// normalizeOrigin accepts scheme://host[:port] with an optional trailing slash.
func normalizeOrigin(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: invalid CORS origin %q", repository.ErrInvalidInput, raw)
	}
	if (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return "", fmt.Errorf("%w: CORS origin %q must not carry a path, query or credentials", repository.ErrInvalidInput, raw)
	}
	return u.Scheme + "://" + u.Host, nil
}
