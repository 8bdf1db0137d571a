package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identityapi/internal/model"
	"identityapi/internal/repository"
)

var spRowColumns = []string{"id", "resource_id", "tenant_domain", "name", "description"}

func TestApplicationPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewApplicationPostgres(db)
	ctx := context.Background()

	t.Run("success with inbound", func(t *testing.T) {
		sp := &model.ServiceProvider{
			Name:         "pickup",
			Description:  "pickup app",
			TenantDomain: "carbon.super",
			InboundConfigs: []model.InboundAuthConfig{
				{Type: model.InboundTypeOAuth2, Key: "client-1"},
			},
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO service_providers").
			WithArgs("carbon.super", "pickup", "pickup app").
			WillReturnRows(sqlmock.NewRows([]string{"id", "resource_id"}).AddRow(7, "res-7"))
		mock.ExpectExec("INSERT INTO sp_inbound_auth").
			WithArgs(int64(7), model.InboundTypeOAuth2, "client-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		out, err := repo.Create(ctx, sp)

		require.NoError(t, err)
		assert.Equal(t, int64(7), out.ID)
		assert.Equal(t, "res-7", out.ResourceID)
		assert.Len(t, out.InboundConfigs, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate name", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO service_providers").
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, Message: "duplicate key"})
		mock.ExpectRollback()

		out, err := repo.Create(ctx, &model.ServiceProvider{Name: "pickup", TenantDomain: "carbon.super"})

		assert.ErrorIs(t, err, repository.ErrConflict)
		assert.Nil(t, out)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestApplicationPostgres_FindByResourceID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewApplicationPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM service_providers sp WHERE sp.tenant_domain = \\$1 AND sp.resource_id = \\$2").
			WithArgs("carbon.super", "res-1").
			WillReturnRows(sqlmock.NewRows(spRowColumns).AddRow(1, "res-1", "carbon.super", "app", ""))
		mock.ExpectQuery("SELECT inbound_type, inbound_key FROM sp_inbound_auth").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"inbound_type", "inbound_key"}).
				AddRow(model.InboundTypeOAuth2, "client-1"))

		sp, err := repo.FindByResourceID(ctx, "carbon.super", "res-1")

		require.NoError(t, err)
		key, ok := sp.InboundKey(model.InboundTypeOAuth2)
		assert.True(t, ok)
		assert.Equal(t, "client-1", key)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM service_providers sp").
			WithArgs("carbon.super", "missing").
			WillReturnError(sql.ErrNoRows)

		sp, err := repo.FindByResourceID(ctx, "carbon.super", "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, sp)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationPostgres_FindByClientID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewApplicationPostgres(db)

	mock.ExpectQuery("SELECT (.+) JOIN sp_inbound_auth ia").
		WithArgs("carbon.super", model.InboundTypeOAuth2, "client-1").
		WillReturnRows(sqlmock.NewRows(spRowColumns).AddRow(3, "res-3", "carbon.super", "app", ""))
	mock.ExpectQuery("SELECT inbound_type, inbound_key FROM sp_inbound_auth").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"inbound_type", "inbound_key"}))

	sp, err := repo.FindByClientID(context.Background(), "carbon.super", "client-1", model.InboundTypeOAuth2)

	require.NoError(t, err)
	assert.Equal(t, "res-3", sp.ResourceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewApplicationPostgres(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM service_providers").
		WithArgs("carbon.super").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT (.+) FROM service_providers sp WHERE sp.tenant_domain = \\$1 ORDER BY").
		WithArgs("carbon.super", 10, 0).
		WillReturnRows(sqlmock.NewRows(spRowColumns).
			AddRow(1, "res-1", "carbon.super", "a", "").
			AddRow(2, "res-2", "carbon.super", "b", ""))

	res, err := repo.List(context.Background(), "carbon.super", repository.PageQuery{Limit: 10, Offset: 0})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Len(t, res.Items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationPostgres_UpdateInbound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewApplicationPostgres(db)
	sp := &model.ServiceProvider{
		ID: 4,
		InboundConfigs: []model.InboundAuthConfig{
			{Type: model.InboundTypeOAuth2, Key: "c"},
			{Type: model.InboundTypeWSTrust, Key: "urn:audience"},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM sp_inbound_auth WHERE sp_id = \\$1").
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO sp_inbound_auth").
		WithArgs(int64(4), model.InboundTypeOAuth2, "c").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO sp_inbound_auth").
		WithArgs(int64(4), model.InboundTypeWSTrust, "urn:audience").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.UpdateInbound(context.Background(), sp))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewApplicationPostgres(db)

	mock.ExpectExec("DELETE FROM service_providers WHERE tenant_domain = \\$1 AND resource_id = \\$2").
		WithArgs("carbon.super", "res-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), "carbon.super", "res-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
