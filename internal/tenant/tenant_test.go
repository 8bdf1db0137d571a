package tenant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	assert.Equal(t, Default, FromContext(context.Background()))
	assert.Equal(t, Default, FromContext(WithTenant(context.Background(), "")))
	assert.Equal(t, "wso2.com", FromContext(WithTenant(context.Background(), "wso2.com")))
}
