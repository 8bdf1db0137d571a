package model

// Notification sender channels.
const (
	SenderTypeSMS   = "sms"
	SenderTypeEmail = "email"
)

// NotificationSender is the stored form of an event publisher used to deliver
// notifications. Channel specific values live in Attributes so both SMS and
// email publishers share one document layout.
type NotificationSender struct {
	Name       string            `json:"name"`
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
	Properties []SenderProperty  `json:"properties,omitempty"`
}

// SenderProperty is a free-form publisher property.
type SenderProperty struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
