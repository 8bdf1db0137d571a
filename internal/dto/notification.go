package dto

import (
	"fmt"
	"slices"
	"strings"
)

const masked = "****"

// Properties is a free-form sender property.
type Properties struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SMSSenderAdd is the body of POST /notification-senders/sms.
type SMSSenderAdd struct {
	Name        string       `json:"name,omitempty"`
	Provider    string       `json:"provider"`
	ProviderURL string       `json:"providerURL"`
	Key         string       `json:"key,omitempty"`
	Secret      string       `json:"secret,omitempty"`
	Sender      string       `json:"sender,omitempty"`
	Properties  []Properties `json:"properties,omitempty"`
}

// Equal compares every field, properties in order.
func (s *SMSSenderAdd) Equal(o *SMSSenderAdd) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.Name == o.Name &&
		s.Provider == o.Provider &&
		s.ProviderURL == o.ProviderURL &&
		s.Key == o.Key &&
		s.Secret == o.Secret &&
		s.Sender == o.Sender &&
		slices.Equal(s.Properties, o.Properties)
}

func (s *SMSSenderAdd) String() string {
	if s == nil {
		return "SMSSenderAdd<nil>"
	}
	return fmt.Sprintf("SMSSenderAdd{name: %s, provider: %s, providerURL: %s, key: %s, secret: %s, sender: %s, properties: %s}",
		s.Name, s.Provider, s.ProviderURL, mask(s.Key), mask(s.Secret), s.Sender, propertiesString(s.Properties))
}

// SMSSender is the response body for an SMS sender.
type SMSSender struct {
	Name        string       `json:"name"`
	Provider    string       `json:"provider"`
	ProviderURL string       `json:"providerURL"`
	Key         string       `json:"key,omitempty"`
	Secret      string       `json:"secret,omitempty"`
	Sender      string       `json:"sender,omitempty"`
	Properties  []Properties `json:"properties,omitempty"`
}

// SMSSenderUpdateRequest is the body of PUT /notification-senders/sms/{name}.
type SMSSenderUpdateRequest struct {
	Provider    string       `json:"provider"`
	ProviderURL string       `json:"providerURL"`
	Key         string       `json:"key,omitempty"`
	Secret      string       `json:"secret,omitempty"`
	Sender      string       `json:"sender,omitempty"`
	Properties  []Properties `json:"properties,omitempty"`
}

// EmailSenderAdd is the body of POST /notification-senders/email.
type EmailSenderAdd struct {
	Name           string       `json:"name,omitempty"`
	SMTPServerHost string       `json:"smtpServerHost"`
	SMTPPort       int          `json:"smtpPort"`
	FromAddress    string       `json:"fromAddress"`
	UserName       string       `json:"userName,omitempty"`
	Password       string       `json:"password,omitempty"`
	Properties     []Properties `json:"properties,omitempty"`
}

func (e *EmailSenderAdd) Equal(o *EmailSenderAdd) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.Name == o.Name &&
		e.SMTPServerHost == o.SMTPServerHost &&
		e.SMTPPort == o.SMTPPort &&
		e.FromAddress == o.FromAddress &&
		e.UserName == o.UserName &&
		e.Password == o.Password &&
		slices.Equal(e.Properties, o.Properties)
}

func (e *EmailSenderAdd) String() string {
	if e == nil {
		return "EmailSenderAdd<nil>"
	}
	return fmt.Sprintf("EmailSenderAdd{name: %s, smtpServerHost: %s, smtpPort: %d, fromAddress: %s, userName: %s, password: %s, properties: %s}",
		e.Name, e.SMTPServerHost, e.SMTPPort, e.FromAddress, e.UserName, mask(e.Password), propertiesString(e.Properties))
}

type EmailSender struct {
	Name           string       `json:"name"`
	SMTPServerHost string       `json:"smtpServerHost"`
	SMTPPort       int          `json:"smtpPort"`
	FromAddress    string       `json:"fromAddress"`
	UserName       string       `json:"userName,omitempty"`
	Password       string       `json:"password,omitempty"`
	Properties     []Properties `json:"properties,omitempty"`
}

type EmailSenderUpdateRequest struct {
	SMTPServerHost string       `json:"smtpServerHost"`
	SMTPPort       int          `json:"smtpPort"`
	FromAddress    string       `json:"fromAddress"`
	UserName       string       `json:"userName,omitempty"`
	Password       string       `json:"password,omitempty"`
	Properties     []Properties `json:"properties,omitempty"`
}

func mask(v string) string {
	if v == "" {
		return ""
	}
	return masked
}

func propertiesString(props []Properties) string {
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = p.Key + "=" + p.Value
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
