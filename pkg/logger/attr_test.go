package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestField(t *testing.T) {
	attr := logger.Field("email")
	require.Equal(t, "field", attr.Key)
	assert.Equal(t, "email", attr.Value.String())
}

func TestAdapter(t *testing.T) {
	attr := logger.Adapter("plain")
	require.Equal(t, "adapter", attr.Key)
	assert.Equal(t, "plain", attr.Value.String())
}

func TestEvent(t *testing.T) {
	attr := logger.Event("blur")
	require.Equal(t, "event", attr.Key)
	assert.Equal(t, "blur", attr.Value.String())
}

func TestFormID(t *testing.T) {
	attr := logger.FormID("f-1")
	require.Equal(t, "form_id", attr.Key)
	assert.Equal(t, "f-1", attr.Value.Any())

	assert.True(t, logger.FormID(nil).Equal(slog.Attr{}))
}

func TestMessages(t *testing.T) {
	attr := logger.Messages([]string{"is required"})
	require.Equal(t, "messages", attr.Key)
	assert.Equal(t, []string{"is required"}, attr.Value.Any())

	assert.True(t, logger.Messages(nil).Equal(slog.Attr{}))
}

func TestDuration(t *testing.T) {
	attr := logger.Duration(time.Second)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, time.Second, attr.Value.Duration())
}
