package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_service_providers",
		SQL: `CREATE TABLE IF NOT EXISTS service_providers (
  id            BIGSERIAL   PRIMARY KEY,
  resource_id   UUID        NOT NULL UNIQUE DEFAULT uuid_generate_v4(),
  tenant_domain TEXT        NOT NULL,
  name          TEXT        NOT NULL,
  description   TEXT        NOT NULL DEFAULT '',
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (tenant_domain, name)
);`,
	},
	{
		Name: "create_table_sp_inbound_auth",
		SQL: `CREATE TABLE IF NOT EXISTS sp_inbound_auth (
  sp_id        BIGINT NOT NULL REFERENCES service_providers (id) ON DELETE CASCADE,
  inbound_type TEXT   NOT NULL,
  inbound_key  TEXT   NOT NULL,
  PRIMARY KEY (sp_id, inbound_type)
);`,
	},
	{
		Name: "create_index_sp_inbound_auth_key",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_sp_inbound_auth_key ON sp_inbound_auth (inbound_type, inbound_key);`,
	},
	{
		Name: "create_table_oauth_consumer_apps",
		SQL: `CREATE TABLE IF NOT EXISTS oauth_consumer_apps (
  consumer_key    TEXT        PRIMARY KEY,
  consumer_secret TEXT        NOT NULL,
  app_name        TEXT        NOT NULL,
  callback_url    TEXT        NOT NULL DEFAULT '',
  grant_types     TEXT        NOT NULL DEFAULT '',
  pkce_mandatory  BOOLEAN     NOT NULL DEFAULT false,
  public_client   BOOLEAN     NOT NULL DEFAULT false,
  app_state       TEXT        NOT NULL DEFAULT 'ACTIVE',
  tenant_domain   TEXT        NOT NULL,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_cors_origins",
		SQL: `CREATE TABLE IF NOT EXISTS cors_origins (
  id              UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
  tenant_domain   TEXT NOT NULL,
  app_resource_id TEXT NOT NULL,
  origin          TEXT NOT NULL,
  UNIQUE (tenant_domain, app_resource_id, origin)
);`,
	},
	{
		Name: "create_table_sts_trusted_services",
		SQL: `CREATE TABLE IF NOT EXISTS sts_trusted_services (
  tenant_domain     TEXT NOT NULL,
  audience          TEXT NOT NULL,
  certificate_alias TEXT NOT NULL,
  PRIMARY KEY (tenant_domain, audience)
);`,
	},
	{
		Name: "create_table_governance_connectors",
		SQL: `CREATE TABLE IF NOT EXISTS governance_connectors (
  name          TEXT    PRIMARY KEY,
  friendly_name TEXT    NOT NULL,
  category      TEXT    NOT NULL,
  sub_category  TEXT    NOT NULL DEFAULT 'DEFAULT',
  ord           INTEGER NOT NULL DEFAULT 0
);`,
	},
	{
		Name: "create_table_governance_properties",
		SQL: `CREATE TABLE IF NOT EXISTS governance_properties (
  name           TEXT    PRIMARY KEY,
  connector_name TEXT    NOT NULL REFERENCES governance_connectors (name) ON DELETE CASCADE,
  display_name   TEXT    NOT NULL,
  description    TEXT,
  default_value  TEXT    NOT NULL DEFAULT '',
  confidential   BOOLEAN NOT NULL DEFAULT false,
  ord            INTEGER NOT NULL DEFAULT 0
);`,
	},
	{
		Name: "create_table_governance_property_values",
		SQL: `CREATE TABLE IF NOT EXISTS governance_property_values (
  tenant_domain TEXT NOT NULL,
  property_name TEXT NOT NULL REFERENCES governance_properties (name) ON DELETE CASCADE,
  value         TEXT NOT NULL,
  PRIMARY KEY (tenant_domain, property_name)
);`,
	},
	{
		Name: "seed_governance_connectors",
		SQL: `INSERT INTO governance_connectors (name, friendly_name, category, sub_category, ord) VALUES
  ('account.lock.handler',   'Account Lock',              'Login Attempts Security',   'DEFAULT', 0),
  ('sso.login.recaptcha',    'reCaptcha for SSO Login',   'Login Attempts Security',   'DEFAULT', 1),
  ('self-sign-up',           'Self Registration',         'Account Management',        'DEFAULT', 2),
  ('account-recovery',       'Account Recovery',          'Account Management',        'DEFAULT', 3),
  ('passwordHistory',        'Password History',          'Password Policies',         'DEFAULT', 4)
ON CONFLICT (name) DO NOTHING;`,
	},
	{
		Name: "seed_governance_properties",
		SQL: `INSERT INTO governance_properties (name, connector_name, display_name, description, default_value, confidential, ord) VALUES
  ('account.lock.handler.lock.on.max.failed.attempts.enable', 'account.lock.handler', 'Lock user accounts', 'Lock user accounts on maximum failed attempts', 'false', false, 0),
  ('account.lock.handler.On.Failure.Max.Attempts', 'account.lock.handler', 'Maximum failed login attempts', 'Number of failed login attempts allowed until account lock', '5', false, 1),
  ('account.lock.handler.Time', 'account.lock.handler', 'Initial account lock duration', 'Initial account lock time period in minutes', '5', false, 2),
  ('sso.login.recaptcha.enable', 'sso.login.recaptcha', 'Always prompt reCaptcha', 'Always prompt reCaptcha verification during SSO login flow', 'false', false, 0),
  ('sso.login.recaptcha.on.max.failed.attempts', 'sso.login.recaptcha', 'Max failed attempts for reCaptcha', NULL, '3', false, 1),
  ('SelfRegistration.Enable', 'self-sign-up', 'User self registration', 'Allow user''s to self register to the system', 'false', false, 0),
  ('SelfRegistration.LockOnCreation', 'self-sign-up', 'Lock user account on creation', 'Lock self registered user account until e-mail verification', 'true', false, 1),
  ('SelfRegistration.ReCaptcha.SecretKey', 'self-sign-up', 'reCaptcha secret key', 'Secret used to verify reCaptcha responses', '', true, 2),
  ('Recovery.Notification.Password.Enable', 'account-recovery', 'Notification based password recovery', NULL, 'false', false, 0),
  ('Recovery.Question.Password.Enable', 'account-recovery', 'Security question based password recovery', NULL, 'false', false, 1),
  ('Recovery.ExpiryTime', 'account-recovery', 'Recovery link expiry time in minutes', NULL, '1440', false, 2),
  ('passwordHistory.enable', 'passwordHistory', 'Validate password history', 'Enable to disallow reusing recent passwords', 'false', false, 0),
  ('passwordHistory.count', 'passwordHistory', 'Password history validation count', 'Number of recent passwords that cannot be reused', '5', false, 1)
ON CONFLICT (name) DO NOTHING;`,
	},
}

// EnsureMigrated checks if the 'service_providers' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass('public.service_providers') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.String("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("reason", "schema already exists, skipping migration"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return nil
}
