package postgres

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"identityapi/internal/model"
	"identityapi/internal/repository"
)

// Grant types accepted for consumer apps.
var supportedGrantTypes = []string{
	"authorization_code",
	"implicit",
	"password",
	"client_credentials",
	"refresh_token",
	"urn:ietf:params:oauth:grant-type:saml2-bearer",
	"urn:ietf:params:oauth:grant-type:jwt-bearer",
	"urn:ietf:params:oauth:grant-type:device_code",
	"urn:ietf:params:oauth:grant-type:token-exchange",
	"iwa:ntlm",
}

// OAuthAppPostgres is a PostgreSQL implementation of repository.OAuthAppRepository.
type OAuthAppPostgres struct {
	db *sql.DB
}

// NewOAuthAppPostgres creates a new OAuthAppPostgres repository.
func NewOAuthAppPostgres(db *sql.DB) *OAuthAppPostgres {
	return &OAuthAppPostgres{db: db}
}

var _ repository.OAuthAppRepository = (*OAuthAppPostgres)(nil)

const oauthColumns = `consumer_key, consumer_secret, app_name, callback_url, grant_types,
		pkce_mandatory, public_client, app_state, tenant_domain`

// Register stores a new consumer app. Missing credentials are generated.
func (r *OAuthAppPostgres) Register(ctx context.Context, app *model.OAuthConsumerApp) (*model.OAuthConsumerApp, error) {
	if err := validateConsumerApp(app); err != nil {
		return nil, err
	}
	out := *app
	if out.ConsumerKey == "" {
		out.ConsumerKey = strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	if out.ConsumerSecret == "" {
		secret, err := newSecret()
		if err != nil {
			return nil, err
		}
		out.ConsumerSecret = secret
	}
	out.State = model.OAuthAppStateActive

	q := `INSERT INTO oauth_consumer_apps (` + oauthColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + oauthColumns
	row := r.db.QueryRowContext(ctx, q,
		out.ConsumerKey,
		out.ConsumerSecret,
		out.ApplicationName,
		out.CallbackURL,
		strings.Join(out.GrantTypes, " "),
		out.PKCEMandatory,
		out.PublicClient,
		out.State,
		out.TenantDomain,
	)
	stored, err := scanConsumerApp(row)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("client id %q", out.ConsumerKey))
	}
	return stored, nil
}

// FindByConsumerKey fetches a consumer app by client id.
func (r *OAuthAppPostgres) FindByConsumerKey(ctx context.Context, consumerKey string) (*model.OAuthConsumerApp, error) {
	q := `SELECT ` + oauthColumns + ` FROM oauth_consumer_apps WHERE consumer_key = $1`
	return scanConsumerApp(r.db.QueryRowContext(ctx, q, consumerKey))
}

// Update rewrites the mutable attributes of an existing consumer app.
// Credentials and state are not touched.
func (r *OAuthAppPostgres) Update(ctx context.Context, app *model.OAuthConsumerApp) error {
	if err := validateConsumerApp(app); err != nil {
		return err
	}
	const q = `
		UPDATE oauth_consumer_apps
		SET app_name = $2, callback_url = $3, grant_types = $4, pkce_mandatory = $5, public_client = $6
		WHERE consumer_key = $1
	`
	res, err := r.db.ExecContext(ctx, q,
		app.ConsumerKey,
		app.ApplicationName,
		app.CallbackURL,
		strings.Join(app.GrantTypes, " "),
		app.PKCEMandatory,
		app.PublicClient,
	)
	if err != nil {
		return err
	}
	return affectedOrNoRows(res)
}

// Delete removes a consumer app. It returns nil if the row did not exist.
func (r *OAuthAppPostgres) Delete(ctx context.Context, consumerKey string) error {
	const q = `DELETE FROM oauth_consumer_apps WHERE consumer_key = $1`
	_, err := r.db.ExecContext(ctx, q, consumerKey)
	return err
}

// RegenerateSecret rotates the secret and reactivates a revoked app.
func (r *OAuthAppPostgres) RegenerateSecret(ctx context.Context, consumerKey string) (*model.OAuthConsumerApp, error) {
	secret, err := newSecret()
	if err != nil {
		return nil, err
	}
	q := `UPDATE oauth_consumer_apps
		SET consumer_secret = $2, app_state = $3
		WHERE consumer_key = $1
		RETURNING ` + oauthColumns
	return scanConsumerApp(r.db.QueryRowContext(ctx, q, consumerKey, secret, model.OAuthAppStateActive))
}

// UpdateState moves a consumer app to ACTIVE or REVOKED.
func (r *OAuthAppPostgres) UpdateState(ctx context.Context, consumerKey, state string) error {
	if state != model.OAuthAppStateActive && state != model.OAuthAppStateRevoked {
		return fmt.Errorf("%w: unknown application state %q", repository.ErrInvalidInput, state)
	}
	const q = `UPDATE oauth_consumer_apps SET app_state = $2 WHERE consumer_key = $1`
	res, err := r.db.ExecContext(ctx, q, consumerKey, state)
	if err != nil {
		return err
	}
	return affectedOrNoRows(res)
}

func validateConsumerApp(app *model.OAuthConsumerApp) error {
	if strings.TrimSpace(app.ApplicationName) == "" {
		return fmt.Errorf("%w: application name is required", repository.ErrInvalidInput)
	}
	needsCallback := false
	for _, gt := range app.GrantTypes {
		if !slices.Contains(supportedGrantTypes, gt) {
			return fmt.Errorf("%w: unsupported grant type %q", repository.ErrInvalidInput, gt)
		}
		if gt == "authorization_code" || gt == "implicit" {
			needsCallback = true
		}
	}
	if needsCallback && app.CallbackURL == "" {
		return fmt.Errorf("%w: callback URL is required for authorization_code and implicit grants", repository.ErrInvalidInput)
	}
	if app.PublicClient && slices.Contains(app.GrantTypes, "client_credentials") {
		return fmt.Errorf("%w: public clients cannot use the client_credentials grant", repository.ErrInvalidInput)
	}
	return nil
}

func scanConsumerApp(row rowScanner) (*model.OAuthConsumerApp, error) {
	var (
		app    model.OAuthConsumerApp
		grants string
	)
	if err := row.Scan(
		&app.ConsumerKey,
		&app.ConsumerSecret,
		&app.ApplicationName,
		&app.CallbackURL,
		&grants,
		&app.PKCEMandatory,
		&app.PublicClient,
		&app.State,
		&app.TenantDomain,
	); err != nil {
		return nil, err
	}
	app.GrantTypes = strings.Fields(grants)
	return &app, nil
}

// newSecret returns 32 random bytes, base64url encoded without padding.
func newSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate client secret: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
