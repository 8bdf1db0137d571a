package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"identityapi/internal/dto"
	"identityapi/internal/model"
	"identityapi/internal/storage"
	storeMocks "identityapi/internal/storage/mocks"
	"identityapi/internal/tenant"
)

func senderBody(t *testing.T, doc *model.NotificationSender) io.ReadCloser {
	t.Helper()
	b, err := json.Marshal(doc)
	require.NoError(t, err)
	return io.NopCloser(strings.NewReader(string(b)))
}

func storedSMS() *model.NotificationSender {
	return smsDocument("SMSPublisher", "NEXMO", "https://rest.nexmo.com/sms/json", "k", "s", "+94 775563324", nil)
}

func TestNotificationSenders_AddSMSSender(t *testing.T) {
	ctx := context.Background()
	key := "publishers/carbon.super/sms/SMSPublisher.json"

	tests := []struct {
		name       string
		req        *dto.SMSSenderAdd
		setupMocks func(t *testing.T, m *storeMocks.MockStorage)
		wantStatus int
	}{
		{
			name: "defaults the name",
			req: &dto.SMSSenderAdd{
				Provider:    "NEXMO",
				ProviderURL: "https://rest.nexmo.com/sms/json",
				Properties:  []dto.Properties{{Key: "body.scope", Value: "false"}},
			},
			setupMocks: func(t *testing.T, m *storeMocks.MockStorage) {
				m.On("Get", ctx, key).Return(nil, storage.ObjectInfo{}, storage.ErrNotFound).Once()
				m.On("Put", ctx, key, mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
					return opt.ContentType == "application/json" && opt.Size > 0
				})).Return(storage.ObjectInfo{Key: key}, nil).Once()
			},
		},
		{
			name:       "provider is required",
			req:        &dto.SMSSenderAdd{ProviderURL: "https://rest.nexmo.com/sms/json"},
			setupMocks: func(t *testing.T, m *storeMocks.MockStorage) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "existing sender conflicts",
			req:  &dto.SMSSenderAdd{Provider: "NEXMO", ProviderURL: "https://rest.nexmo.com/sms/json"},
			setupMocks: func(t *testing.T, m *storeMocks.MockStorage) {
				m.On("Get", ctx, key).Return(senderBody(t, storedSMS()), storage.ObjectInfo{Key: key}, nil).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "storage failure",
			req:  &dto.SMSSenderAdd{Provider: "NEXMO", ProviderURL: "https://rest.nexmo.com/sms/json"},
			setupMocks: func(t *testing.T, m *storeMocks.MockStorage) {
				m.On("Get", ctx, key).Return(nil, storage.ObjectInfo{}, storage.ErrNotFound).Once()
				m.On("Put", ctx, key, mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, errors.New("minio down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "name with a path separator",
			req:        &dto.SMSSenderAdd{Name: "../x", Provider: "NEXMO", ProviderURL: "https://rest.nexmo.com/sms/json"},
			setupMocks: func(t *testing.T, m *storeMocks.MockStorage) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(storeMocks.MockStorage)
			tt.setupMocks(t, m)

			got, err := NewNotificationSenders(m).AddSMSSender(ctx, tt.req)
			if tt.wantStatus != 0 {
				requireStatus(t, err, tt.wantStatus)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "SMSPublisher", got.Name)
				assert.Equal(t, []dto.Properties{{Key: "body.scope", Value: "false"}}, got.Properties)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestNotificationSenders_GetAndList(t *testing.T) {
	ctx := tenant.WithTenant(context.Background(), "wso2.com")
	key := "publishers/wso2.com/sms/SMSPublisher.json"

	t.Run("get", func(t *testing.T) {
		m := new(storeMocks.MockStorage)
		m.On("Get", ctx, key).Return(senderBody(t, storedSMS()), storage.ObjectInfo{Key: key}, nil).Once()

		got, err := NewNotificationSenders(m).GetSMSSender(ctx, "SMSPublisher")
		require.NoError(t, err)
		assert.Equal(t, "NEXMO", got.Provider)
		assert.Equal(t, "+94 775563324", got.Sender)
	})

	t.Run("get missing", func(t *testing.T) {
		m := new(storeMocks.MockStorage)
		m.On("Get", ctx, key).Return(nil, storage.ObjectInfo{}, storage.ErrNotFound).Once()

		_, err := NewNotificationSenders(m).GetSMSSender(ctx, "SMSPublisher")
		apiErr := requireStatus(t, err, http.StatusNotFound)
		assert.Equal(t, "NSM-60002", apiErr.Code)
	})

	t.Run("list", func(t *testing.T) {
		m := new(storeMocks.MockStorage)
		m.On("List", ctx, "publishers/wso2.com/sms/").Return([]storage.ObjectInfo{{Key: key}}, nil).Once()
		m.On("Get", ctx, key).Return(senderBody(t, storedSMS()), storage.ObjectInfo{Key: key}, nil).Once()

		got, err := NewNotificationSenders(m).ListSMSSenders(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "SMSPublisher", got[0].Name)
	})
}

func TestNotificationSenders_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	key := "publishers/carbon.super/sms/SMSPublisher.json"

	t.Run("update rewrites the document", func(t *testing.T) {
		m := new(storeMocks.MockStorage)
		m.On("Get", ctx, key).Return(senderBody(t, storedSMS()), storage.ObjectInfo{Key: key}, nil).Once()
		m.On("Put", ctx, key, mock.Anything, mock.Anything).Return(storage.ObjectInfo{Key: key}, nil).Once()

		got, err := NewNotificationSenders(m).UpdateSMSSender(ctx, "SMSPublisher", &dto.SMSSenderUpdateRequest{
			Provider:    "TWILIO",
			ProviderURL: "https://api.twilio.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "TWILIO", got.Provider)
		m.AssertExpectations(t)
	})

	t.Run("update missing", func(t *testing.T) {
		m := new(storeMocks.MockStorage)
		m.On("Get", ctx, key).Return(nil, storage.ObjectInfo{}, storage.ErrNotFound).Once()

		_, err := NewNotificationSenders(m).UpdateSMSSender(ctx, "SMSPublisher", &dto.SMSSenderUpdateRequest{
			Provider:    "TWILIO",
			ProviderURL: "https://api.twilio.com",
		})
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		m := new(storeMocks.MockStorage)
		m.On("Get", ctx, key).Return(senderBody(t, storedSMS()), storage.ObjectInfo{Key: key}, nil).Once()
		m.On("Delete", ctx, key).Return(nil).Once()

		require.NoError(t, NewNotificationSenders(m).DeleteSMSSender(ctx, "SMSPublisher"))
		m.AssertExpectations(t)
	})

	t.Run("delete missing", func(t *testing.T) {
		m := new(storeMocks.MockStorage)
		m.On("Get", ctx, key).Return(nil, storage.ObjectInfo{}, storage.ErrNotFound).Once()

		requireStatus(t, NewNotificationSenders(m).DeleteSMSSender(ctx, "SMSPublisher"), http.StatusNotFound)
		m.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestNotificationSenders_Email(t *testing.T) {
	ctx := context.Background()
	key := "publishers/carbon.super/email/EmailPublisher.json"

	t.Run("required fields", func(t *testing.T) {
		m := new(storeMocks.MockStorage)
		_, err := NewNotificationSenders(m).AddEmailSender(ctx, &dto.EmailSenderAdd{SMTPServerHost: "smtp.gmail.com", SMTPPort: 587})
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("add then read back the port", func(t *testing.T) {
		m := new(storeMocks.MockStorage)
		var stored []byte
		m.On("Get", ctx, key).Return(nil, storage.ObjectInfo{}, storage.ErrNotFound).Once()
		m.On("Put", ctx, key, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			stored, _ = io.ReadAll(args.Get(2).(io.Reader))
		}).Return(storage.ObjectInfo{Key: key}, nil).Once()

		svc := NewNotificationSenders(m)
		_, err := svc.AddEmailSender(ctx, &dto.EmailSenderAdd{
			SMTPServerHost: "smtp.gmail.com",
			SMTPPort:       587,
			FromAddress:    "iam@gmail.com",
			UserName:       "iam",
			Password:       "hunter2",
		})
		require.NoError(t, err)

		m.On("Get", ctx, key).Return(io.NopCloser(strings.NewReader(string(stored))), storage.ObjectInfo{Key: key}, nil).Once()
		got, err := svc.GetEmailSender(ctx, "EmailPublisher")
		require.NoError(t, err)
		assert.Equal(t, 587, got.SMTPPort)
		assert.Equal(t, "iam@gmail.com", got.FromAddress)
		m.AssertExpectations(t)
	})
}
