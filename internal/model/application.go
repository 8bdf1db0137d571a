package model

// Standard inbound protocol types.
const (
	InboundTypeOAuth2  = "oauth2"
	InboundTypeWSTrust = "wstrust"
)

// OAuth consumer application states.
const (
	OAuthAppStateActive  = "ACTIVE"
	OAuthAppStateRevoked = "REVOKED"
)

// ServiceProvider is an application registered with the identity server.
// ID is the internal numeric key; ResourceID is the UUID exposed over the API.
type ServiceProvider struct {
	ID             int64
	ResourceID     string
	Name           string
	Description    string
	TenantDomain   string
	InboundConfigs []InboundAuthConfig
}

// InboundKey returns the key of the first inbound config of the given type.
func (sp *ServiceProvider) InboundKey(inboundType string) (string, bool) {
	if sp == nil {
		return "", false
	}
	for _, ic := range sp.InboundConfigs {
		if ic.Type == inboundType && ic.Key != "" {
			return ic.Key, true
		}
	}
	return "", false
}

// SetInbound replaces the inbound config of cfg.Type, appending it when absent.
func (sp *ServiceProvider) SetInbound(cfg InboundAuthConfig) {
	for i, ic := range sp.InboundConfigs {
		if ic.Type == cfg.Type {
			sp.InboundConfigs[i] = cfg
			return
		}
	}
	sp.InboundConfigs = append(sp.InboundConfigs, cfg)
}

// RemoveInbound drops every inbound config of the given type.
func (sp *ServiceProvider) RemoveInbound(inboundType string) {
	kept := sp.InboundConfigs[:0]
	for _, ic := range sp.InboundConfigs {
		if ic.Type != inboundType {
			kept = append(kept, ic)
		}
	}
	sp.InboundConfigs = kept
}

// InboundAuthConfig associates a service provider with a protocol specific key
// (OAuth2 client id, WS-Trust audience).
type InboundAuthConfig struct {
	Type string
	Key  string
}

// OAuthConsumerApp is an OAuth2/OIDC client registration.
type OAuthConsumerApp struct {
	ConsumerKey     string
	ConsumerSecret  string
	ApplicationName string
	CallbackURL     string
	GrantTypes      []string
	PKCEMandatory   bool
	PublicClient    bool
	State           string
	TenantDomain    string
}

// CORSOrigin is an origin allowed to call an application's endpoints cross-origin.
type CORSOrigin struct {
	ID     string
	Origin string
}

// TrustedService is a WS-Trust relying party registered with the STS.
type TrustedService struct {
	Audience         string
	CertificateAlias string
	TenantDomain     string
}
