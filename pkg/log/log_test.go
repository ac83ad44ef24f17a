package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	t.Cleanup(func() {
		environment.Store("")
		logrus.SetFormatter(&logrus.TextFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
	})
	return &buf
}

func TestConfigure(t *testing.T) {
	require.Error(t, Configure("barulhento", "development"))

	require.NoError(t, Configure("warn", "production"))
	buf := captureOutput(t)

	assert.False(t, IsDevelopment())
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	L.Info("não aparece")
	L.WithField("dashboard_source", "arquivo.yaml").Warn("aparece")

	assert.NotContains(t, buf.String(), "não aparece")
	assert.Contains(t, buf.String(), `"msg":"aparece"`)
	assert.Contains(t, buf.String(), `"dashboard_source":"arquivo.yaml"`)
}

func TestDevelopmentFiltersFields(t *testing.T) {
	require.NoError(t, Configure("debug", "dev"))
	buf := captureOutput(t)

	assert.True(t, IsDevelopment())

	L.WithFields(Fields{
		"method":      "GET",
		"remote_addr": "127.0.0.1",
	}).WithField("user_agent", "curl").Info("requisição")

	assert.Contains(t, buf.String(), "method=GET")
	assert.NotContains(t, buf.String(), "remote_addr")
	assert.NotContains(t, buf.String(), "user_agent")
}

func TestWithCorrelationID(t *testing.T) {
	incoming := uuid.New().String()

	ctx, id := WithCorrelationID(context.Background(), incoming)
	assert.Equal(t, incoming, id)
	assert.Equal(t, incoming, GetCorrelationID(ctx))

	ctx, id = WithCorrelationID(context.Background(), "não-é-uuid")
	assert.NotEqual(t, "não-é-uuid", id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, GetCorrelationID(ctx))

	assert.Empty(t, GetCorrelationID(context.Background()))
}
