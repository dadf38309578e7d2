package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	t.Run("adds request id and operator", func(t *testing.T) {
		ctx := ContextWithRequestID(context.Background(), "req-1")
		ctx = ContextWithOperator(ctx, "mario")

		l := WithContext(ctx)

		assert.Equal(t, "req-1", l.Data["request_id"])
		assert.Equal(t, "mario", l.Data["operator"])
	})

	t.Run("empty context has no fields", func(t *testing.T) {
		l := WithContext(context.Background())
		assert.Empty(t, l.Data)
	})
}

func TestWithFieldChaining(t *testing.T) {
	l := New().WithField("component", "scan").WithError(errors.New("boom"))

	assert.Equal(t, "scan", l.Data["component"])
	assert.NotNil(t, l.Data["error"])
	assert.Equal(t, "req-9", RequestIDFromContext(ContextWithRequestID(context.Background(), "req-9")))
}
