package postgres

import (
	"context"
	"database/sql"

	"identityapi/internal/model"
	"identityapi/internal/repository"
)

// TrustedServicePostgres stores WS-Trust relying parties.
type TrustedServicePostgres struct {
	db *sql.DB
}

// NewTrustedServicePostgres creates a new TrustedServicePostgres repository.
func NewTrustedServicePostgres(db *sql.DB) *TrustedServicePostgres {
	return &TrustedServicePostgres{db: db}
}

var _ repository.TrustedServiceRepository = (*TrustedServicePostgres)(nil)

// Add registers the audience, replacing the certificate alias if it exists.
func (r *TrustedServicePostgres) Add(ctx context.Context, ts *model.TrustedService) error {
	const q = `
		INSERT INTO sts_trusted_services (tenant_domain, audience, certificate_alias)
		VALUES ($1, $2, $3)
		ON CONFLICT (tenant_domain, audience) DO UPDATE SET certificate_alias = EXCLUDED.certificate_alias
	`
	_, err := r.db.ExecContext(ctx, q, ts.TenantDomain, ts.Audience, ts.CertificateAlias)
	return err
}

func (r *TrustedServicePostgres) Find(ctx context.Context, tenant, audience string) (*model.TrustedService, error) {
	const q = `
		SELECT tenant_domain, audience, certificate_alias
		FROM sts_trusted_services
		WHERE tenant_domain = $1 AND audience = $2
	`
	var ts model.TrustedService
	if err := r.db.QueryRowContext(ctx, q, tenant, audience).
		Scan(&ts.TenantDomain, &ts.Audience, &ts.CertificateAlias); err != nil {
		return nil, err
	}
	return &ts, nil
}

// Delete removes the audience. It returns nil if the row did not exist.
func (r *TrustedServicePostgres) Delete(ctx context.Context, tenant, audience string) error {
	const q = `DELETE FROM sts_trusted_services WHERE tenant_domain = $1 AND audience = $2`
	_, err := r.db.ExecContext(ctx, q, tenant, audience)
	return err
}
