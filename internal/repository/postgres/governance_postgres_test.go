package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identityapi/internal/repository"
)

var connectorRowColumns = []string{
	"name", "friendly_name", "category", "sub_category", "ord",
	"p_name", "display_name", "description", "value", "confidential",
}

func TestGovernancePostgres_ListCategorized(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewGovernancePostgres(db)

	mock.ExpectQuery("SELECT (.+) FROM governance_connectors c").
		WithArgs("carbon.super", "", "").
		WillReturnRows(sqlmock.NewRows(connectorRowColumns).
			AddRow("account.lock.handler", "Account Lock", "Login Attempts Security", "DEFAULT", 0,
				"lock.enable", "Lock", "Lock accounts", "true", false).
			AddRow("account.lock.handler", "Account Lock", "Login Attempts Security", "DEFAULT", 0,
				"lock.max", "Max attempts", nil, "5", false).
			AddRow("self-sign-up", "Self Registration", "Account Management", "DEFAULT", 1,
				"signup.enable", "Enable", nil, "false", false).
			AddRow("sso.login.recaptcha", "reCaptcha", "Login Attempts Security", "DEFAULT", 2,
				nil, nil, nil, nil, nil))

	categories, err := repo.ListCategorized(context.Background(), "carbon.super")

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Login Attempts Security", categories[0].Name)
	require.Len(t, categories[0].Connectors, 2)
	assert.Len(t, categories[0].Connectors[0].Properties, 2)
	assert.Equal(t, "", categories[0].Connectors[0].Properties[1].Description)
	assert.Empty(t, categories[0].Connectors[1].Properties)
	assert.Equal(t, "Account Management", categories[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGovernancePostgres_FindConnector(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewGovernancePostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM governance_connectors c").
			WithArgs("carbon.super", "", "passwordHistory").
			WillReturnRows(sqlmock.NewRows(connectorRowColumns).
				AddRow("passwordHistory", "Password History", "Password Policies", "DEFAULT", 4,
					"passwordHistory.count", "Count", "desc", "5", false))

		c, err := repo.FindConnector(ctx, "carbon.super", "passwordHistory")

		require.NoError(t, err)
		assert.Equal(t, "Password Policies", c.Category)
		assert.Equal(t, "5", c.Properties[0].Value)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM governance_connectors c").
			WithArgs("carbon.super", "", "nope").
			WillReturnRows(sqlmock.NewRows(connectorRowColumns))

		c, err := repo.FindConnector(ctx, "carbon.super", "nope")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, c)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGovernancePostgres_ListByCategoryEmptyName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	out, err := NewGovernancePostgres(db).ListByCategory(context.Background(), "carbon.super", "")

	assert.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGovernancePostgres_UpdateConfiguration(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewGovernancePostgres(db)
	ctx := context.Background()

	t.Run("upserts in name order", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO governance_property_values").
			WithArgs("carbon.super", "a.prop", "1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO governance_property_values").
			WithArgs("carbon.super", "b.prop", "2").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.UpdateConfiguration(ctx, "carbon.super", map[string]string{"b.prop": "2", "a.prop": "1"})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown property", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO governance_property_values").
			WithArgs("carbon.super", "ghost", "1").
			WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation, Message: "violates foreign key"})
		mock.ExpectRollback()

		err := repo.UpdateConfiguration(ctx, "carbon.super", map[string]string{"ghost": "1"})

		assert.ErrorIs(t, err, repository.ErrInvalidInput)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
