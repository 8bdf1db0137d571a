package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identityapi/internal/model"
)

func TestTrustedServicePostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTrustedServicePostgres(db)
	ctx := context.Background()
	ts := &model.TrustedService{TenantDomain: "carbon.super", Audience: "urn:rp", CertificateAlias: "wso2carbon"}

	mock.ExpectExec("INSERT INTO sts_trusted_services").
		WithArgs("carbon.super", "urn:rp", "wso2carbon").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Add(ctx, ts))

	mock.ExpectQuery("SELECT tenant_domain, audience, certificate_alias FROM sts_trusted_services").
		WithArgs("carbon.super", "urn:rp").
		WillReturnRows(sqlmock.NewRows([]string{"tenant_domain", "audience", "certificate_alias"}).
			AddRow("carbon.super", "urn:rp", "wso2carbon"))
	got, err := repo.Find(ctx, "carbon.super", "urn:rp")
	require.NoError(t, err)
	assert.Equal(t, *ts, *got)

	mock.ExpectQuery("SELECT tenant_domain, audience, certificate_alias FROM sts_trusted_services").
		WithArgs("carbon.super", "urn:missing").
		WillReturnError(sql.ErrNoRows)
	_, err = repo.Find(ctx, "carbon.super", "urn:missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	mock.ExpectExec("DELETE FROM sts_trusted_services").
		WithArgs("carbon.super", "urn:rp").
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(ctx, "carbon.super", "urn:rp"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
