package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identityapi/internal/config"
)

func TestBuildPostgresDSN(t *testing.T) {
	tests := []struct {
		name    string
		config  config.DatabaseConfig
		want    string
		wantErr bool
	}{
		{
			name: "password, timeout and sslmode",
			config: config.DatabaseConfig{
				Host:              "db",
				Port:              "5432",
				User:              "identity",
				Password:          "p@ss",
				Name:              "identity",
				SSLMode:           "disable",
				ConnectTimeoutSec: 5,
			},
			want: "postgres://identity:p%40ss@db:5432/identity?application_name=identityapi&connect_timeout=5&sslmode=disable",
		},
		{
			name: "no password and no optional params",
			config: config.DatabaseConfig{
				Host: "localhost",
				Port: "5432",
				User: "identity",
				Name: "identity",
			},
			want: "postgres://identity@localhost:5432/identity?application_name=identityapi",
		},
		{name: "missing host", config: config.DatabaseConfig{Port: "5432", User: "u", Name: "n"}, wantErr: true},
		{name: "missing port", config: config.DatabaseConfig{Host: "h", User: "u", Name: "n"}, wantErr: true},
		{name: "missing user", config: config.DatabaseConfig{Host: "h", Port: "5432", Name: "n"}, wantErr: true},
		{name: "missing name", config: config.DatabaseConfig{Host: "h", Port: "5432", User: "u"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildPostgresDSN(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// stubOpen makes sqlOpen return db for the duration of the test.
func stubOpen(t *testing.T, db *sql.DB, err error) {
	t.Helper()
	orig := sqlOpen
	sqlOpen = func(driverName, dataSourceName string) (*sql.DB, error) {
		return db, err
	}
	t.Cleanup(func() { sqlOpen = orig })
}

func TestNewPostgres(t *testing.T) {
	origDelay := pingRetryDelay
	pingRetryDelay = time.Millisecond
	t.Cleanup(func() { pingRetryDelay = origDelay })

	conf := config.DatabaseConfig{
		Host:               "localhost",
		Port:               "5432",
		User:               "identity",
		Password:           "pass",
		Name:               "identity",
		MaxOpenConns:       10,
		MaxIdleConns:       5,
		ConnMaxLifetimeSec: 300,
		PingAttempts:       3,
	}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		stubOpen(t, db, nil)

		mock.ExpectPing()

		gotDB, err := NewPostgres(context.Background(), conf)
		assert.NoError(t, err)
		assert.NotNil(t, gotDB)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ping succeeds after retry", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		stubOpen(t, db, nil)

		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		mock.ExpectPing()

		gotDB, err := NewPostgres(context.Background(), conf)
		assert.NoError(t, err)
		assert.NotNil(t, gotDB)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sqlOpen error", func(t *testing.T) {
		stubOpen(t, nil, errors.New("open error"))

		gotDB, err := NewPostgres(context.Background(), conf)
		assert.ErrorContains(t, err, "sql open: open error")
		assert.Nil(t, gotDB)
	})

	t.Run("ping exhausts attempts", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		stubOpen(t, db, nil)

		for i := 0; i < conf.PingAttempts; i++ {
			mock.ExpectPing().WillReturnError(errors.New("ping failed"))
		}

		gotDB, err := NewPostgres(context.Background(), conf)
		assert.ErrorContains(t, err, "db ping after 3 attempt(s): ping failed")
		assert.Nil(t, gotDB)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		stubOpen(t, db, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		mock.ExpectPing().WillReturnError(errors.New("ping failed"))

		gotDB, err := NewPostgres(ctx, conf)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, gotDB)
	})

	t.Run("invalid DSN", func(t *testing.T) {
		gotDB, err := NewPostgres(context.Background(), config.DatabaseConfig{})
		assert.Error(t, err)
		assert.Nil(t, gotDB)
	})
}
