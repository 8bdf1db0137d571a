package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMSSenderAdd_Equal(t *testing.T) {
	base := func() *SMSSenderAdd {
		return &SMSSenderAdd{
			Name:        "SMSPublisher",
			Provider:    "NEXMO",
			ProviderURL: "https://rest.nexmo.com/sms/json",
			Key:         "123**45",
			Secret:      "5tg**ssd",
			Sender:      "+94 775563324",
			Properties:  []Properties{{Key: "body.scope", Value: "false"}},
		}
	}

	tests := []struct {
		name   string
		mutate func(s *SMSSenderAdd)
		want   bool
	}{
		{name: "identical", mutate: func(*SMSSenderAdd) {}, want: true},
		{name: "different secret", mutate: func(s *SMSSenderAdd) { s.Secret = "other" }, want: false},
		{name: "different property value", mutate: func(s *SMSSenderAdd) { s.Properties[0].Value = "true" }, want: false},
		{name: "missing properties", mutate: func(s *SMSSenderAdd) { s.Properties = nil }, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base()
			tt.mutate(other)
			assert.Equal(t, tt.want, base().Equal(other))
		})
	}

	var nilSender *SMSSenderAdd
	assert.True(t, nilSender.Equal(nil))
	assert.False(t, base().Equal(nil))
}

func TestSMSSenderAdd_StringMasksSecrets(t *testing.T) {
	s := &SMSSenderAdd{Name: "SMSPublisher", Provider: "NEXMO", Key: "api-key", Secret: "api-secret"}
	out := s.String()

	assert.Contains(t, out, "name: SMSPublisher")
	assert.Contains(t, out, "provider: NEXMO")
	assert.NotContains(t, out, "api-key")
	assert.NotContains(t, out, "api-secret")
	assert.Contains(t, out, "secret: ****")
}

func TestEmailSenderAdd_EqualAndString(t *testing.T) {
	a := &EmailSenderAdd{Name: "EmailPublisher", SMTPServerHost: "smtp.gmail.com", SMTPPort: 587, FromAddress: "iam@gmail.com", Password: "hunter2"}
	b := *a
	assert.True(t, a.Equal(&b))

	b.SMTPPort = 465
	assert.False(t, a.Equal(&b))

	assert.NotContains(t, a.String(), "hunter2")
	assert.Contains(t, a.String(), "smtpPort: 587")
}
