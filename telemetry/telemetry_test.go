package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"pronunciation_score/settings"
)

func Test_SetupDisabled(t *testing.T) {
	prev := otel.GetTracerProvider()

	shutdown, err := Setup(context.Background(), &settings.Settings{}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.Equal(t, prev, otel.GetTracerProvider())
}

func Test_SetupWriter(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	buf := &bytes.Buffer{}
	shutdown, err := Setup(context.Background(), &settings.Settings{Spans: true, Mode: settings.ModeRaw}, buf)
	require.NoError(t, err)

	_, span := otel.GetTracerProvider().Tracer("test").Start(context.Background(), "audio_model")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"Name":"audio_model"`)
	assert.Contains(t, buf.String(), serviceName)
}
