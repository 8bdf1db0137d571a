package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identityapi/internal/repository"
)

func TestCORSPostgres_ListByApplication(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCORSPostgres(db)

	mock.ExpectQuery("SELECT id, origin FROM cors_origins").
		WithArgs("carbon.super", "app-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "origin"}).
			AddRow("o1", "https://a.example").
			AddRow("o2", "https://b.example"))

	origins, err := repo.ListByApplication(context.Background(), "carbon.super", "app-1")

	require.NoError(t, err)
	require.Len(t, origins, 2)
	assert.Equal(t, "https://a.example", origins[0].Origin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCORSPostgres_Replace(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCORSPostgres(db)
	ctx := context.Background()

	t.Run("normalizes and dedupes", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM cors_origins").
			WithArgs("carbon.super", "app-1").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec("INSERT INTO cors_origins").
			WithArgs("carbon.super", "app-1", "https://a.example").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO cors_origins").
			WithArgs("carbon.super", "app-1", "http://localhost:3000").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Replace(ctx, "carbon.super", "app-1",
			[]string{"https://a.example/", "https://a.example", "http://localhost:3000"})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil clears", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM cors_origins").
			WithArgs("carbon.super", "app-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Replace(ctx, "carbon.super", "app-1", nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid origin never touches the db", func(t *testing.T) {
		err := repo.Replace(ctx, "carbon.super", "app-1", []string{"ftp://files.example"})
		assert.ErrorIs(t, err, repository.ErrInvalidInput)

		err = repo.Replace(ctx, "carbon.super", "app-1", []string{"https://a.example/path"})
		assert.ErrorIs(t, err, repository.ErrInvalidInput)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
