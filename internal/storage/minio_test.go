package storage

import (
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"

	"identityapi/internal/config"
)

func TestNewMinIO_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MinIOConfig
		msg  string
	}{
		{name: "missing endpoint", cfg: config.MinIOConfig{}, msg: "endpoint is required"},
		{name: "missing credentials", cfg: config.MinIOConfig{Endpoint: "localhost:9000"}, msg: "credentials are required"},
		{
			name: "missing bucket",
			cfg:  config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"},
			msg:  "bucket is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIO(tt.cfg)
			assert.Nil(t, s)
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestMapMinioError(t *testing.T) {
	notFound := minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}
	assert.ErrorIs(t, mapMinioError(notFound), ErrNotFound)

	other := errors.New("connection refused")
	assert.Equal(t, other, mapMinioError(other))
}
