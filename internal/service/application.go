package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"identityapi/internal/apierror"
	"identityapi/internal/dto"
	"identityapi/internal/model"
	"identityapi/internal/repository"
	"identityapi/internal/tenant"
)

const (
	inboundPathOIDC    = "oidc"
	inboundPathWSTrust = "ws-trust"
)

// Applications manages service providers and their inbound protocols.
type Applications interface {
	// Create persists a new application. An OAuth app registered for it is
	// removed again when the application itself cannot be stored.
	Create(ctx context.Context, req *dto.ApplicationModel) (*dto.ApplicationResponseModel, error)
	Get(ctx context.Context, id string) (*dto.ApplicationResponseModel, error)
	List(ctx context.Context, limit, offset int) (*dto.ApplicationListResponse, error)
	// Delete removes the application and every inbound registration it owns.
	Delete(ctx context.Context, id string) error

	PutOIDC(ctx context.Context, id string, oidc *dto.OpenIDConnectConfiguration) (*dto.OpenIDConnectConfiguration, error)
	GetOIDC(ctx context.Context, id string) (*dto.OpenIDConnectConfiguration, error)
	DeleteOIDC(ctx context.Context, id string) error
	RegenerateSecret(ctx context.Context, id string) (*dto.OpenIDConnectConfiguration, error)
	Revoke(ctx context.Context, id string) error

	PutWSTrust(ctx context.Context, id string, cfg *dto.WSTrustConfiguration) error
	GetWSTrust(ctx context.Context, id string) (*dto.WSTrustConfiguration, error)
}

type applications struct {
	apps  repository.ApplicationRepository
	cors  repository.CORSRepository
	sts   repository.TrustedServiceRepository
	oauth OAuthInbound
	log   *zap.Logger
}

// NewApplications constructs the application service. sts may be nil, in which
// case WS-Trust requests are rejected.
func NewApplications(apps repository.ApplicationRepository, cors repository.CORSRepository, sts repository.TrustedServiceRepository, oauth OAuthInbound, log *zap.Logger) Applications {
	if log == nil {
		log = zap.NewNop()
	}
	return &applications{apps: apps, cors: cors, sts: sts, oauth: oauth, log: log}
}

func (s *applications) Create(ctx context.Context, req *dto.ApplicationModel) (*dto.ApplicationResponseModel, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return nil, appBadRequest("Application name is required.")
	}
	td := tenant.FromContext(ctx)
	sp := &model.ServiceProvider{Name: req.Name, Description: req.Description, TenantDomain: td}

	var protocols dto.InboundProtocols
	if req.InboundProtocolConfiguration != nil {
		protocols = *req.InboundProtocolConfiguration
	}
	if protocols.WSTrust != nil {
		if s.sts == nil {
			return nil, appBadRequest(msgWSTrustUnsupported)
		}
		if strings.TrimSpace(protocols.WSTrust.Audience) == "" {
			return nil, appBadRequest("WS-Trust audience is required.")
		}
	}

	var oidcInbound *model.InboundAuthConfig
	if protocols.OIDC != nil {
		inbound, err := s.oauth.CreateOAuthInbound(ctx, req.Name, protocols.OIDC)
		if err != nil {
			return nil, err
		}
		oidcInbound = inbound
		sp.SetInbound(*inbound)
	}
	if protocols.WSTrust != nil {
		if err := s.addTrustedService(ctx, td, protocols.WSTrust); err != nil {
			s.compensate(ctx, td, oidcInbound, nil)
			return nil, err
		}
		sp.SetInbound(model.InboundAuthConfig{Type: model.InboundTypeWSTrust, Key: protocols.WSTrust.Audience})
	}

	created, err := s.apps.Create(ctx, sp)
	if err != nil {
		s.compensate(ctx, td, oidcInbound, protocols.WSTrust)
		if errors.Is(err, repository.ErrConflict) {
			return nil, apierror.Wrap(err, http.StatusConflict, codeAppConflict, "Application already exists.",
				fmt.Sprintf("Application with name %s already exists.", req.Name))
		}
		return nil, appServerError(err, "Error while creating application.")
	}

	if protocols.OIDC != nil {
		if err := s.oauth.UpdateCORSOrigins(ctx, created.ResourceID, protocols.OIDC); err != nil {
			if delErr := s.apps.Delete(ctx, td, created.ResourceID); delErr != nil {
				s.log.Error("application_rollback_failed", zap.String("resource_id", created.ResourceID), zap.Error(delErr))
			}
			s.compensate(ctx, td, oidcInbound, protocols.WSTrust)
			return nil, err
		}
	}
	return toApplicationResponse(td, created), nil
}

// compensate undoes inbound registrations made for an application that could
// not be stored. Failures are logged; the caller reports the original error.
func (s *applications) compensate(ctx context.Context, td string, oidcInbound *model.InboundAuthConfig, wsTrust *dto.WSTrustConfiguration) {
	if oidcInbound != nil {
		if err := s.oauth.DeleteOAuthInbound(ctx, *oidcInbound); err != nil {
			s.log.Error("oauth_inbound_rollback_failed", zap.String("client_id", oidcInbound.Key), zap.Error(err))
		}
	}
	if wsTrust != nil && s.sts != nil {
		if err := s.sts.Delete(ctx, td, wsTrust.Audience); err != nil {
			s.log.Error("ws_trust_rollback_failed", zap.String("audience", wsTrust.Audience), zap.Error(err))
		}
	}
}

func (s *applications) Get(ctx context.Context, id string) (*dto.ApplicationResponseModel, error) {
	td := tenant.FromContext(ctx)
	sp, err := s.find(ctx, td, id)
	if err != nil {
		return nil, err
	}
	return toApplicationResponse(td, sp), nil
}

func (s *applications) List(ctx context.Context, limit, offset int) (*dto.ApplicationListResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	td := tenant.FromContext(ctx)
	res, err := s.apps.List(ctx, td, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, appServerError(err, "Error while listing applications.")
	}

	out := &dto.ApplicationListResponse{
		TotalResults: res.Total,
		StartIndex:   offset + 1,
		Count:        len(res.Items),
		Applications: make([]dto.ApplicationListItem, 0, len(res.Items)),
	}
	for _, sp := range res.Items {
		out.Applications = append(out.Applications, dto.ApplicationListItem{
			ID:          sp.ResourceID,
			Name:        sp.Name,
			Description: sp.Description,
			Self:        apiPath(td, "applications", sp.ResourceID),
		})
	}
	return out, nil
}

func (s *applications) Delete(ctx context.Context, id string) error {
	td := tenant.FromContext(ctx)
	sp, err := s.apps.FindByResourceID(ctx, td, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return appServerError(err, "Error while deleting application: "+id)
	}

	if clientID, ok := sp.InboundKey(model.InboundTypeOAuth2); ok {
		if err := s.oauth.DeleteOAuthInbound(ctx, model.InboundAuthConfig{Type: model.InboundTypeOAuth2, Key: clientID}); err != nil {
			return err
		}
	}
	if audience, ok := sp.InboundKey(model.InboundTypeWSTrust); ok && s.sts != nil {
		if err := s.sts.Delete(ctx, td, audience); err != nil {
			return appServerError(err, "Error while deleting application: "+id)
		}
	}
	if err := s.cors.Replace(ctx, td, sp.ResourceID, nil); err != nil {
		return appServerError(err, "Error while deleting application: "+id)
	}
	if err := s.apps.Delete(ctx, td, sp.ResourceID); err != nil {
		return appServerError(err, "Error while deleting application: "+id)
	}
	return nil
}

func (s *applications) PutOIDC(ctx context.Context, id string, oidc *dto.OpenIDConnectConfiguration) (*dto.OpenIDConnectConfiguration, error) {
	if oidc == nil {
		return nil, appBadRequest("OIDC configuration is required.")
	}
	td := tenant.FromContext(ctx)
	sp, err := s.find(ctx, td, id)
	if err != nil {
		return nil, err
	}
	_, existed := sp.InboundKey(model.InboundTypeOAuth2)

	// A new client is unlinked again on failure, so its origins must go back too.
	var previous []string
	if !existed {
		if previous, err = s.originsOf(ctx, td, sp.ResourceID); err != nil {
			return nil, appServerError(err, "Error while reading CORS origins of application: "+id)
		}
	}

	inbound, err := s.oauth.PutOAuthInbound(ctx, sp, oidc)
	if err != nil {
		return nil, err
	}
	sp.SetInbound(*inbound)
	if err := s.apps.UpdateInbound(ctx, sp); err != nil {
		if !existed {
			s.compensate(ctx, td, inbound, nil)
			if rbErr := s.cors.Replace(ctx, td, sp.ResourceID, previous); rbErr != nil {
				s.log.Error("cors_rollback_failed", zap.String("resource_id", sp.ResourceID), zap.Error(rbErr))
			}
		}
		return nil, appServerError(err, "Error while updating inbound configuration of application: "+id)
	}
	return s.oauth.GetOAuthConfiguration(ctx, *inbound)
}

func (s *applications) originsOf(ctx context.Context, td, resourceID string) ([]string, error) {
	origins, err := s.cors.ListByApplication(ctx, td, resourceID)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		out = append(out, o.Origin)
	}
	return out, nil
}

func (s *applications) GetOIDC(ctx context.Context, id string) (*dto.OpenIDConnectConfiguration, error) {
	inbound, err := s.oidcInbound(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.oauth.GetOAuthConfiguration(ctx, inbound)
}

func (s *applications) DeleteOIDC(ctx context.Context, id string) error {
	td := tenant.FromContext(ctx)
	sp, err := s.find(ctx, td, id)
	if err != nil {
		return err
	}
	clientID, ok := sp.InboundKey(model.InboundTypeOAuth2)
	if !ok {
		return nil
	}
	if err := s.oauth.DeleteOAuthInbound(ctx, model.InboundAuthConfig{Type: model.InboundTypeOAuth2, Key: clientID}); err != nil {
		return err
	}
	sp.RemoveInbound(model.InboundTypeOAuth2)
	if err := s.apps.UpdateInbound(ctx, sp); err != nil {
		return appServerError(err, "Error while updating inbound configuration of application: "+id)
	}
	if err := s.cors.Replace(ctx, td, sp.ResourceID, nil); err != nil {
		return appServerError(err, "Error while clearing CORS origins of application: "+id)
	}
	return nil
}

func (s *applications) RegenerateSecret(ctx context.Context, id string) (*dto.OpenIDConnectConfiguration, error) {
	inbound, err := s.oidcInbound(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.oauth.RegenerateClientSecret(ctx, inbound.Key)
}

func (s *applications) Revoke(ctx context.Context, id string) error {
	inbound, err := s.oidcInbound(ctx, id)
	if err != nil {
		return err
	}
	return s.oauth.RevokeOAuthClient(ctx, inbound.Key)
}

func (s *applications) PutWSTrust(ctx context.Context, id string, cfg *dto.WSTrustConfiguration) error {
	if s.sts == nil {
		return appBadRequest(msgWSTrustUnsupported)
	}
	if cfg == nil || strings.TrimSpace(cfg.Audience) == "" {
		return appBadRequest("WS-Trust audience is required.")
	}
	td := tenant.FromContext(ctx)
	sp, err := s.find(ctx, td, id)
	if err != nil {
		return err
	}

	previous, hadPrevious := sp.InboundKey(model.InboundTypeWSTrust)
	if err := s.addTrustedService(ctx, td, cfg); err != nil {
		return err
	}
	sp.SetInbound(model.InboundAuthConfig{Type: model.InboundTypeWSTrust, Key: cfg.Audience})
	if err := s.apps.UpdateInbound(ctx, sp); err != nil {
		return appServerError(err, "Error while updating inbound configuration of application: "+id)
	}
	if hadPrevious && previous != cfg.Audience {
		if err := s.sts.Delete(ctx, td, previous); err != nil {
			s.log.Warn("ws_trust_stale_audience", zap.String("audience", previous), zap.Error(err))
		}
	}
	return nil
}

func (s *applications) GetWSTrust(ctx context.Context, id string) (*dto.WSTrustConfiguration, error) {
	if s.sts == nil {
		return nil, appBadRequest(msgWSTrustUnsupported)
	}
	td := tenant.FromContext(ctx)
	sp, err := s.find(ctx, td, id)
	if err != nil {
		return nil, err
	}
	audience, ok := sp.InboundKey(model.InboundTypeWSTrust)
	if !ok {
		return nil, appNotFound("WS-Trust inbound protocol is not configured for application: " + id)
	}
	ts, err := s.sts.Find(ctx, td, audience)
	if err != nil {
		return nil, appServerError(err, "Error while retrieving WS-Trust configuration of application: "+id)
	}
	return &dto.WSTrustConfiguration{Audience: ts.Audience, CertificateAlias: ts.CertificateAlias}, nil
}

func (s *applications) addTrustedService(ctx context.Context, td string, cfg *dto.WSTrustConfiguration) error {
	err := s.sts.Add(ctx, &model.TrustedService{
		Audience:         cfg.Audience,
		CertificateAlias: cfg.CertificateAlias,
		TenantDomain:     td,
	})
	if err == nil {
		return nil
	}
	if isClientError(err) {
		return apierror.Wrap(err, http.StatusBadRequest, codeAppBadRequest, msgInvalidRequest, describe("Error while adding WS-Trust trusted service.", err))
	}
	return appServerError(err, "Error while adding WS-Trust trusted service.")
}

func (s *applications) find(ctx context.Context, td, id string) (*model.ServiceProvider, error) {
	sp, err := s.apps.FindByResourceID(ctx, td, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, repository.ErrInvalidInput) {
			return nil, appNotFound("Unable to find an application with the id: " + id)
		}
		return nil, appServerError(err, "Error while retrieving application: "+id)
	}
	return sp, nil
}

func (s *applications) oidcInbound(ctx context.Context, id string) (model.InboundAuthConfig, error) {
	sp, err := s.find(ctx, tenant.FromContext(ctx), id)
	if err != nil {
		return model.InboundAuthConfig{}, err
	}
	clientID, ok := sp.InboundKey(model.InboundTypeOAuth2)
	if !ok {
		return model.InboundAuthConfig{}, appNotFound("OIDC inbound protocol is not configured for application: " + id)
	}
	return model.InboundAuthConfig{Type: model.InboundTypeOAuth2, Key: clientID}, nil
}

func toApplicationResponse(td string, sp *model.ServiceProvider) *dto.ApplicationResponseModel {
	res := &dto.ApplicationResponseModel{
		ID:               sp.ResourceID,
		Name:             sp.Name,
		Description:      sp.Description,
		InboundProtocols: make([]dto.InboundProtocolListItem, 0, len(sp.InboundConfigs)),
	}
	for _, ic := range sp.InboundConfigs {
		var path string
		switch ic.Type {
		case model.InboundTypeOAuth2:
			path = inboundPathOIDC
		case model.InboundTypeWSTrust:
			path = inboundPathWSTrust
		default:
			continue
		}
		res.InboundProtocols = append(res.InboundProtocols, dto.InboundProtocolListItem{
			Type: path,
			Self: apiPath(td, "applications", sp.ResourceID, "inbound-protocols", path),
		})
	}
	return res
}
