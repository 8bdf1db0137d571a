package mocks

import (
	"context"

	"identityapi/internal/dto"

	"github.com/stretchr/testify/mock"
)

type MockNotificationSenders struct {
	mock.Mock
}

func (m *MockNotificationSenders) AddSMSSender(ctx context.Context, req *dto.SMSSenderAdd) (*dto.SMSSender, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SMSSender), args.Error(1)
}

func (m *MockNotificationSenders) GetSMSSender(ctx context.Context, name string) (*dto.SMSSender, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SMSSender), args.Error(1)
}

func (m *MockNotificationSenders) ListSMSSenders(ctx context.Context) ([]dto.SMSSender, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.SMSSender), args.Error(1)
}

func (m *MockNotificationSenders) UpdateSMSSender(ctx context.Context, name string, req *dto.SMSSenderUpdateRequest) (*dto.SMSSender, error) {
	args := m.Called(ctx, name, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SMSSender), args.Error(1)
}

func (m *MockNotificationSenders) DeleteSMSSender(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockNotificationSenders) AddEmailSender(ctx context.Context, req *dto.EmailSenderAdd) (*dto.EmailSender, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EmailSender), args.Error(1)
}

func (m *MockNotificationSenders) GetEmailSender(ctx context.Context, name string) (*dto.EmailSender, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EmailSender), args.Error(1)
}

func (m *MockNotificationSenders) ListEmailSenders(ctx context.Context) ([]dto.EmailSender, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.EmailSender), args.Error(1)
}

func (m *MockNotificationSenders) UpdateEmailSender(ctx context.Context, name string, req *dto.EmailSenderUpdateRequest) (*dto.EmailSender, error) {
	args := m.Called(ctx, name, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EmailSender), args.Error(1)
}

func (m *MockNotificationSenders) DeleteEmailSender(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
