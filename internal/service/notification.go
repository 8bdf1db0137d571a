package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strconv"
	"strings"

	"identityapi/internal/apierror"
	"identityapi/internal/dto"
	"identityapi/internal/model"
	"identityapi/internal/storage"
	"identityapi/internal/tenant"
)

const (
	defaultSMSPublisher   = "SMSPublisher"
	defaultEmailPublisher = "EmailPublisher"
	publisherPrefix       = "publishers"
)

// Attribute keys of stored publisher documents.
const (
	attrProvider    = "provider"
	attrProviderURL = "providerURL"
	attrKey         = "key"
	attrSecret      = "secret"
	attrSender      = "sender"
	attrSMTPHost    = "smtpServerHost"
	attrSMTPPort    = "smtpPort"
	attrFromAddress = "fromAddress"
	attrUserName    = "userName"
	attrPassword    = "password"
)

// NotificationSenders manages the SMS and email publishers used to deliver
// notifications. Each sender is one JSON document in object storage.
type NotificationSenders interface {
	AddSMSSender(ctx context.Context, req *dto.SMSSenderAdd) (*dto.SMSSender, error)
	GetSMSSender(ctx context.Context, name string) (*dto.SMSSender, error)
	ListSMSSenders(ctx context.Context) ([]dto.SMSSender, error)
	UpdateSMSSender(ctx context.Context, name string, req *dto.SMSSenderUpdateRequest) (*dto.SMSSender, error)
	DeleteSMSSender(ctx context.Context, name string) error

	AddEmailSender(ctx context.Context, req *dto.EmailSenderAdd) (*dto.EmailSender, error)
	GetEmailSender(ctx context.Context, name string) (*dto.EmailSender, error)
	ListEmailSenders(ctx context.Context) ([]dto.EmailSender, error)
	UpdateEmailSender(ctx context.Context, name string, req *dto.EmailSenderUpdateRequest) (*dto.EmailSender, error)
	DeleteEmailSender(ctx context.Context, name string) error
}

type notificationSenders struct {
	store storage.Storage
}

// NewNotificationSenders constructs a new NotificationSenders service.
func NewNotificationSenders(store storage.Storage) NotificationSenders {
	return &notificationSenders{store: store}
}

func (s *notificationSenders) AddSMSSender(ctx context.Context, req *dto.SMSSenderAdd) (*dto.SMSSender, error) {
	if req == nil {
		return nil, senderBadRequest("SMS sender is required.")
	}
	if req.Provider == "" || req.ProviderURL == "" {
		return nil, senderBadRequest("Properties provider and providerURL cannot be null.")
	}
	name := req.Name
	if name == "" {
		name = defaultSMSPublisher
	}
	doc := smsDocument(name, req.Provider, req.ProviderURL, req.Key, req.Secret, req.Sender, req.Properties)
	if err := s.create(ctx, doc); err != nil {
		return nil, err
	}
	return toSMSSender(doc), nil
}

func (s *notificationSenders) GetSMSSender(ctx context.Context, name string) (*dto.SMSSender, error) {
	doc, err := s.load(ctx, model.SenderTypeSMS, name)
	if err != nil {
		return nil, err
	}
	return toSMSSender(doc), nil
}

func (s *notificationSenders) ListSMSSenders(ctx context.Context) ([]dto.SMSSender, error) {
	docs, err := s.list(ctx, model.SenderTypeSMS)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SMSSender, 0, len(docs))
	for _, doc := range docs {
		out = append(out, *toSMSSender(doc))
	}
	return out, nil
}

func (s *notificationSenders) UpdateSMSSender(ctx context.Context, name string, req *dto.SMSSenderUpdateRequest) (*dto.SMSSender, error) {
	if req == nil || req.Provider == "" || req.ProviderURL == "" {
		return nil, senderBadRequest("Properties provider and providerURL cannot be null.")
	}
	if _, err := s.load(ctx, model.SenderTypeSMS, name); err != nil {
		return nil, err
	}
	doc := smsDocument(name, req.Provider, req.ProviderURL, req.Key, req.Secret, req.Sender, req.Properties)
	if err := s.save(ctx, doc); err != nil {
		return nil, err
	}
	return toSMSSender(doc), nil
}

func (s *notificationSenders) DeleteSMSSender(ctx context.Context, name string) error {
	return s.remove(ctx, model.SenderTypeSMS, name)
}

func (s *notificationSenders) AddEmailSender(ctx context.Context, req *dto.EmailSenderAdd) (*dto.EmailSender, error) {
	if req == nil {
		return nil, senderBadRequest("Email sender is required.")
	}
	if err := validateEmail(req.SMTPServerHost, req.SMTPPort, req.FromAddress); err != nil {
		return nil, err
	}
	name := req.Name
	if name == "" {
		name = defaultEmailPublisher
	}
	doc := emailDocument(name, req.SMTPServerHost, req.SMTPPort, req.FromAddress, req.UserName, req.Password, req.Properties)
	if err := s.create(ctx, doc); err != nil {
		return nil, err
	}
	return toEmailSender(doc), nil
}

func (s *notificationSenders) GetEmailSender(ctx context.Context, name string) (*dto.EmailSender, error) {
	doc, err := s.load(ctx, model.SenderTypeEmail, name)
	if err != nil {
		return nil, err
	}
	return toEmailSender(doc), nil
}

func (s *notificationSenders) ListEmailSenders(ctx context.Context) ([]dto.EmailSender, error) {
	docs, err := s.list(ctx, model.SenderTypeEmail)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmailSender, 0, len(docs))
	for _, doc := range docs {
		out = append(out, *toEmailSender(doc))
	}
	return out, nil
}

func (s *notificationSenders) UpdateEmailSender(ctx context.Context, name string, req *dto.EmailSenderUpdateRequest) (*dto.EmailSender, error) {
	if req == nil {
		return nil, senderBadRequest("Email sender is required.")
	}
	if err := validateEmail(req.SMTPServerHost, req.SMTPPort, req.FromAddress); err != nil {
		return nil, err
	}
	if _, err := s.load(ctx, model.SenderTypeEmail, name); err != nil {
		return nil, err
	}
	doc := emailDocument(name, req.SMTPServerHost, req.SMTPPort, req.FromAddress, req.UserName, req.Password, req.Properties)
	if err := s.save(ctx, doc); err != nil {
		return nil, err
	}
	return toEmailSender(doc), nil
}

func (s *notificationSenders) DeleteEmailSender(ctx context.Context, name string) error {
	return s.remove(ctx, model.SenderTypeEmail, name)
}

func (s *notificationSenders) create(ctx context.Context, doc *model.NotificationSender) error {
	_, err := s.load(ctx, doc.Type, doc.Name)
	if err == nil {
		return apierror.New(http.StatusConflict, codeSenderConflict, "Sender already exists.",
			fmt.Sprintf("An %s sender with name %s already exists.", doc.Type, doc.Name))
	}
	if apiErr, ok := apierror.From(err); !ok || apiErr.Status != http.StatusNotFound {
		return err
	}
	return s.save(ctx, doc)
}

func (s *notificationSenders) save(ctx context.Context, doc *model.NotificationSender) error {
	key, err := publisherKey(tenant.FromContext(ctx), doc.Type, doc.Name)
	if err != nil {
		return err
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return senderServerError(err, "Error while encoding the notification sender.")
	}
	_, err = s.store.Put(ctx, key, bytes.NewReader(b), storage.PutObjectOptions{
		Size:        int64(len(b)),
		ContentType: "application/json",
	})
	if err != nil {
		return senderServerError(fmt.Errorf("put %s: %w", key, err), "Error while persisting the notification sender.")
	}
	return nil
}

func (s *notificationSenders) load(ctx context.Context, senderType, name string) (*model.NotificationSender, error) {
	key, err := publisherKey(tenant.FromContext(ctx), senderType, name)
	if err != nil {
		return nil, err
	}
	return s.read(ctx, key, name)
}

func (s *notificationSenders) read(ctx context.Context, key, name string) (*model.NotificationSender, error) {
	rc, _, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apierror.Wrap(err, http.StatusNotFound, codeSenderNotFound, "Sender not found.",
				"No notification sender found with the name: "+name)
		}
		return nil, senderServerError(fmt.Errorf("get %s: %w", key, err), "Error while retrieving the notification sender.")
	}
	defer rc.Close()

	var doc model.NotificationSender
	if err := json.NewDecoder(rc).Decode(&doc); err != nil {
		return nil, senderServerError(fmt.Errorf("decode %s: %w", key, err), "Error while retrieving the notification sender.")
	}
	return &doc, nil
}

func (s *notificationSenders) list(ctx context.Context, senderType string) ([]*model.NotificationSender, error) {
	prefix := path.Join(publisherPrefix, tenant.FromContext(ctx), senderType) + "/"
	objects, err := s.store.List(ctx, prefix)
	if err != nil {
		return nil, senderServerError(fmt.Errorf("list %s: %w", prefix, err), "Error while listing notification senders.")
	}
	out := make([]*model.NotificationSender, 0, len(objects))
	for _, obj := range objects {
		name := strings.TrimSuffix(strings.TrimPrefix(obj.Key, prefix), ".json")
		doc, err := s.read(ctx, obj.Key, name)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (s *notificationSenders) remove(ctx context.Context, senderType, name string) error {
	if _, err := s.load(ctx, senderType, name); err != nil {
		return err
	}
	key, _ := publisherKey(tenant.FromContext(ctx), senderType, name)
	if err := s.store.Delete(ctx, key); err != nil {
		return senderServerError(fmt.Errorf("delete %s: %w", key, err), "Error while deleting the notification sender.")
	}
	return nil
}

// publisherKey is publishers/{tenant}/{type}/{name}.json.
func publisherKey(td, senderType, name string) (string, error) {
	if name == "" || strings.ContainsAny(name, "/\\") || name == "." || name == ".." {
		return "", senderBadRequest("Invalid notification sender name: " + name)
	}
	return path.Join(publisherPrefix, td, senderType, name+".json"), nil
}

func validateEmail(host string, port int, from string) error {
	if host == "" || from == "" || port == 0 {
		return senderBadRequest("Properties smtpServerHost, smtpPort and fromAddress cannot be null.")
	}
	if port < 0 || port > 65535 {
		return senderBadRequest(fmt.Sprintf("Invalid SMTP port: %d", port))
	}
	return nil
}

func smsDocument(name, provider, providerURL, key, secret, sender string, props []dto.Properties) *model.NotificationSender {
	return &model.NotificationSender{
		Name: name,
		Type: model.SenderTypeSMS,
		Attributes: map[string]string{
			attrProvider:    provider,
			attrProviderURL: providerURL,
			attrKey:         key,
			attrSecret:      secret,
			attrSender:      sender,
		},
		Properties: toSenderProperties(props),
	}
}

func emailDocument(name, host string, port int, from, user, password string, props []dto.Properties) *model.NotificationSender {
	return &model.NotificationSender{
		Name: name,
		Type: model.SenderTypeEmail,
		Attributes: map[string]string{
			attrSMTPHost:    host,
			attrSMTPPort:    strconv.Itoa(port),
			attrFromAddress: from,
			attrUserName:    user,
			attrPassword:    password,
		},
		Properties: toSenderProperties(props),
	}
}

func toSMSSender(doc *model.NotificationSender) *dto.SMSSender {
	return &dto.SMSSender{
		Name:        doc.Name,
		Provider:    doc.Attributes[attrProvider],
		ProviderURL: doc.Attributes[attrProviderURL],
		Key:         doc.Attributes[attrKey],
		Secret:      doc.Attributes[attrSecret],
		Sender:      doc.Attributes[attrSender],
		Properties:  toDTOProperties(doc.Properties),
	}
}

func toEmailSender(doc *model.NotificationSender) *dto.EmailSender {
	port, _ := strconv.Atoi(doc.Attributes[attrSMTPPort])
	return &dto.EmailSender{
		Name:           doc.Name,
		SMTPServerHost: doc.Attributes[attrSMTPHost],
		SMTPPort:       port,
		FromAddress:    doc.Attributes[attrFromAddress],
		UserName:       doc.Attributes[attrUserName],
		Password:       doc.Attributes[attrPassword],
		Properties:     toDTOProperties(doc.Properties),
	}
}

func toSenderProperties(props []dto.Properties) []model.SenderProperty {
	if len(props) == 0 {
		return nil
	}
	out := make([]model.SenderProperty, len(props))
	for i, p := range props {
		out[i] = model.SenderProperty{Key: p.Key, Value: p.Value}
	}
	return out
}

func toDTOProperties(props []model.SenderProperty) []dto.Properties {
	if len(props) == 0 {
		return nil
	}
	out := make([]dto.Properties, len(props))
	for i, p := range props {
		out[i] = dto.Properties{Key: p.Key, Value: p.Value}
	}
	return out
}

func senderBadRequest(description string) *apierror.Error {
	return apierror.New(http.StatusBadRequest, codeSenderBadRequest, msgInvalidRequest, description)
}

func senderServerError(cause error, description string) *apierror.Error {
	return apierror.Wrap(cause, http.StatusInternalServerError, codeSenderServer, msgServerError, description)
}
