package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"identityapi/internal/apierror"
	"identityapi/internal/dto"
	"identityapi/internal/model"
	"identityapi/internal/repository"
	"identityapi/internal/tenant"
)

const (
	oauthErrPrefix    = "Error while Creating/Updating OAuth2/OpenIDConnect configuration."
	callbackURLRegexp = "regexp="
)

// OAuthInbound provisions the OAuth2/OIDC inbound protocol of applications.
type OAuthInbound interface {
	// PutOAuthInbound creates or updates the consumer app of the application and
	// replaces its CORS origins. When the OAuth step fails the previous origins
	// are restored.
	PutOAuthInbound(ctx context.Context, app *model.ServiceProvider, oidc *dto.OpenIDConnectConfiguration) (*model.InboundAuthConfig, error)

	// CreateOAuthInbound registers a consumer app named appName, or a random
	// name when appName is empty.
	CreateOAuthInbound(ctx context.Context, appName string, oidc *dto.OpenIDConnectConfiguration) (*model.InboundAuthConfig, error)

	GetOAuthConfiguration(ctx context.Context, inbound model.InboundAuthConfig) (*dto.OpenIDConnectConfiguration, error)
	DeleteOAuthInbound(ctx context.Context, inbound model.InboundAuthConfig) error
	RegenerateClientSecret(ctx context.Context, clientID string) (*dto.OpenIDConnectConfiguration, error)
	RevokeOAuthClient(ctx context.Context, clientID string) error

	// UpdateCORSOrigins sets the application's origins when oidc.AllowedOrigins is non-nil.
	UpdateCORSOrigins(ctx context.Context, appID string, oidc *dto.OpenIDConnectConfiguration) error
}

type oauthInbound struct {
	oauth repository.OAuthAppRepository
	cors  repository.CORSRepository
	apps  repository.ApplicationRepository
}

// NewOAuthInbound constructs a new OAuthInbound.
func NewOAuthInbound(oauth repository.OAuthAppRepository, cors repository.CORSRepository, apps repository.ApplicationRepository) OAuthInbound {
	return &oauthInbound{oauth: oauth, cors: cors, apps: apps}
}

func (s *oauthInbound) PutOAuthInbound(ctx context.Context, app *model.ServiceProvider, oidc *dto.OpenIDConnectConfiguration) (*model.InboundAuthConfig, error) {
	if app == nil || oidc == nil {
		return nil, appBadRequest(oauthErrPrefix + " Application and OIDC configuration are required.")
	}
	td := tenant.FromContext(ctx)
	currentClientID, hasClient := app.InboundKey(model.InboundTypeOAuth2)

	existing, err := s.cors.ListByApplication(ctx, td, app.ResourceID)
	if err != nil {
		return nil, oauthFailure(err, nil)
	}
	previous := make([]string, 0, len(existing))
	for _, o := range existing {
		previous = append(previous, o.Origin)
	}

	if err := s.cors.Replace(ctx, td, app.ResourceID, oidc.AllowedOrigins); err != nil {
		return nil, oauthFailure(err, nil)
	}

	var inbound *model.InboundAuthConfig
	if hasClient {
		inbound, err = s.updateConsumerApp(ctx, app, currentClientID, oidc)
	} else {
		inbound, err = s.CreateOAuthInbound(ctx, app.Name, oidc)
	}
	if err != nil {
		// Restore against the resource id, the same key the origins were read with.
		rbErr := s.cors.Replace(ctx, td, app.ResourceID, previous)
		return nil, oauthFailure(err, rbErr)
	}
	return inbound, nil
}

func (s *oauthInbound) updateConsumerApp(ctx context.Context, app *model.ServiceProvider, currentClientID string, oidc *dto.OpenIDConnectConfiguration) (*model.InboundAuthConfig, error) {
	stored, err := s.oauth.FindByConsumerKey(ctx, currentClientID)
	if err != nil {
		return nil, fmt.Errorf("load oauth application %s: %w", currentClientID, err)
	}
	if stored.ConsumerKey != oidc.ClientID {
		return nil, appBadRequest("Invalid ClientID provided for update.")
	}
	if stored.ConsumerSecret != oidc.ClientSecret {
		return nil, appBadRequest("Invalid ClientSecret provided for update.")
	}

	toUpdate := toConsumerApp(app.Name, oidc)
	toUpdate.TenantDomain = stored.TenantDomain
	if err := s.oauth.Update(ctx, toUpdate); err != nil {
		return nil, fmt.Errorf("update oauth application %s: %w", toUpdate.ConsumerKey, err)
	}
	return &model.InboundAuthConfig{Type: model.InboundTypeOAuth2, Key: toUpdate.ConsumerKey}, nil
}

func (s *oauthInbound) CreateOAuthInbound(ctx context.Context, appName string, oidc *dto.OpenIDConnectConfiguration) (*model.InboundAuthConfig, error) {
	if oidc == nil {
		return nil, appBadRequest(oauthErrPrefix + " OIDC configuration is required.")
	}
	if appName == "" {
		appName = uuid.NewString()
	}
	consumerApp := toConsumerApp(appName, oidc)
	consumerApp.TenantDomain = tenant.FromContext(ctx)

	created, err := s.oauth.Register(ctx, consumerApp)
	if err != nil {
		return nil, oauthFailure(err, nil)
	}
	return &model.InboundAuthConfig{Type: model.InboundTypeOAuth2, Key: created.ConsumerKey}, nil
}

func (s *oauthInbound) GetOAuthConfiguration(ctx context.Context, inbound model.InboundAuthConfig) (*dto.OpenIDConnectConfiguration, error) {
	clientID := inbound.Key
	td := tenant.FromContext(ctx)
	fail := func(err error) error {
		return appServerError(err, "Error while retrieving oauth application for clientId: "+clientID)
	}

	app, err := s.oauth.FindByConsumerKey(ctx, clientID)
	if err != nil {
		return nil, fail(err)
	}
	oidc := toOIDCConfiguration(app)

	sp, err := s.apps.FindByClientID(ctx, td, clientID, model.InboundTypeOAuth2)
	if err != nil {
		return nil, fail(err)
	}
	origins, err := s.cors.ListByApplication(ctx, td, sp.ResourceID)
	if err != nil {
		return nil, fail(err)
	}
	oidc.AllowedOrigins = make([]string, 0, len(origins))
	for _, o := range origins {
		oidc.AllowedOrigins = append(oidc.AllowedOrigins, o.Origin)
	}
	return oidc, nil
}

func (s *oauthInbound) DeleteOAuthInbound(ctx context.Context, inbound model.InboundAuthConfig) error {
	if err := s.oauth.Delete(ctx, inbound.Key); err != nil {
		return appServerError(err, "Error while trying to rollback OAuth2/OpenIDConnect configuration.")
	}
	return nil
}

func (s *oauthInbound) RegenerateClientSecret(ctx context.Context, clientID string) (*dto.OpenIDConnectConfiguration, error) {
	app, err := s.oauth.RegenerateSecret(ctx, clientID)
	if err != nil {
		return nil, appServerError(err, "Error while regenerating client secret of oauth application.")
	}
	return toOIDCConfiguration(app), nil
}

func (s *oauthInbound) RevokeOAuthClient(ctx context.Context, clientID string) error {
	if err := s.oauth.UpdateState(ctx, clientID, model.OAuthAppStateRevoked); err != nil {
		return appServerError(err, "Error while revoking oauth application.")
	}
	return nil
}

func (s *oauthInbound) UpdateCORSOrigins(ctx context.Context, appID string, oidc *dto.OpenIDConnectConfiguration) error {
	if oidc == nil || oidc.AllowedOrigins == nil {
		return nil
	}
	if err := s.cors.Replace(ctx, tenant.FromContext(ctx), appID, oidc.AllowedOrigins); err != nil {
		return oauthFailure(err, nil)
	}
	return nil
}

// oauthFailure classifies err into a 400 or 500 API error. A non-nil
// rollbackErr is joined into the cause so neither failure is lost.
func oauthFailure(err, rollbackErr error) error {
	cause := err
	if rollbackErr != nil {
		cause = errors.Join(err, fmt.Errorf("rollback CORS origins: %w", rollbackErr))
	}
	if apiErr, ok := apierror.From(err); ok {
		if rollbackErr == nil {
			return apiErr
		}
		return apierror.Wrap(cause, apiErr.Status, apiErr.Code, apiErr.Message, apiErr.Description)
	}
	if isClientError(err) {
		return apierror.Wrap(cause, http.StatusBadRequest, codeAppBadRequest, msgInvalidRequest, describe(oauthErrPrefix, err))
	}
	return apierror.Wrap(cause, http.StatusInternalServerError, codeAppServer, msgServerError, oauthErrPrefix)
}

func toConsumerApp(appName string, oidc *dto.OpenIDConnectConfiguration) *model.OAuthConsumerApp {
	app := &model.OAuthConsumerApp{
		ConsumerKey:     oidc.ClientID,
		ConsumerSecret:  oidc.ClientSecret,
		ApplicationName: appName,
		CallbackURL:     joinCallbackURLs(oidc.CallbackURLs),
		GrantTypes:      append([]string(nil), oidc.GrantTypes...),
		PublicClient:    oidc.PublicClient,
	}
	if oidc.PKCE != nil {
		app.PKCEMandatory = oidc.PKCE.Mandatory
	}
	return app
}

func toOIDCConfiguration(app *model.OAuthConsumerApp) *dto.OpenIDConnectConfiguration {
	return &dto.OpenIDConnectConfiguration{
		ClientID:     app.ConsumerKey,
		ClientSecret: app.ConsumerSecret,
		GrantTypes:   append([]string{}, app.GrantTypes...),
		CallbackURLs: splitCallbackURLs(app.CallbackURL),
		PublicClient: app.PublicClient,
		PKCE:         &dto.OAuth2PKCEConfiguration{Mandatory: app.PKCEMandatory},
		State:        app.State,
	}
}

// joinCallbackURLs stores several callback URLs as one regexp=(a|b) value.
func joinCallbackURLs(urls []string) string {
	switch len(urls) {
	case 0:
		return ""
	case 1:
		return urls[0]
	}
	return callbackURLRegexp + "(" + strings.Join(urls, "|") + ")"
}

func splitCallbackURLs(stored string) []string {
	if stored == "" {
		return nil
	}
	if !strings.HasPrefix(stored, callbackURLRegexp) {
		return []string{stored}
	}
	expr := strings.TrimPrefix(stored, callbackURLRegexp)
	expr = strings.TrimSuffix(strings.TrimPrefix(expr, "("), ")")
	return strings.Split(expr, "|")
}
