// Package dto holds the JSON request and response bodies of the REST API.
package dto

// OpenIDConnectConfiguration is the OIDC inbound protocol of an application.
// A nil AllowedOrigins leaves the stored CORS origins untouched.
type OpenIDConnectConfiguration struct {
	ClientID       string                   `json:"clientId,omitempty"`
	ClientSecret   string                   `json:"clientSecret,omitempty"`
	GrantTypes     []string                 `json:"grantTypes"`
	CallbackURLs   []string                 `json:"callbackURLs,omitempty"`
	AllowedOrigins []string                 `json:"allowedOrigins,omitempty"`
	PublicClient   bool                     `json:"publicClient"`
	PKCE           *OAuth2PKCEConfiguration `json:"pkce,omitempty"`
	State          string                   `json:"state,omitempty"`
}

type OAuth2PKCEConfiguration struct {
	Mandatory bool `json:"mandatory"`
}

// WSTrustConfiguration is the WS-Trust inbound protocol of an application.
type WSTrustConfiguration struct {
	Audience         string `json:"audience"`
	CertificateAlias string `json:"certificateAlias"`
}

type InboundProtocols struct {
	OIDC    *OpenIDConnectConfiguration `json:"oidc,omitempty"`
	WSTrust *WSTrustConfiguration       `json:"wsTrust,omitempty"`
}

// ApplicationModel is the body of POST /applications.
type ApplicationModel struct {
	Name                         string            `json:"name"`
	Description                  string            `json:"description,omitempty"`
	InboundProtocolConfiguration *InboundProtocols `json:"inboundProtocolConfiguration,omitempty"`
}

type InboundProtocolListItem struct {
	Type string `json:"type"`
	Self string `json:"self"`
}

type ApplicationResponseModel struct {
	ID               string                    `json:"id"`
	Name             string                    `json:"name"`
	Description      string                    `json:"description,omitempty"`
	InboundProtocols []InboundProtocolListItem `json:"inboundProtocols"`
}

type ApplicationListItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Self        string `json:"self"`
}

type ApplicationListResponse struct {
	TotalResults int                   `json:"totalResults"`
	StartIndex   int                   `json:"startIndex"`
	Count        int                   `json:"count"`
	Applications []ApplicationListItem `json:"applications"`
}

