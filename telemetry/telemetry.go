package telemetry

import (
	"context"
	"io"
	"log"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"

	"pronunciation_score/settings"
)

const serviceName = "pronunciation_score"

type ShutdownFunc func(ctx context.Context) error

// Setup installs a global tracer provider when spans are enabled. Spans go to
// the OTLP endpoint if one is configured, otherwise they are written to w.
// w must not be stdout, which carries the result line.
func Setup(ctx context.Context, cfg *settings.Settings, w io.Writer) (ShutdownFunc, error) {
	endpoint := strings.TrimSpace(cfg.OTLPEndpoint)
	if !cfg.Spans && endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			attribute.String("scorer.mode", string(cfg.Mode)),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "telemetry resource error")
	}

	var exporter sdktrace.SpanExporter
	if endpoint != "" {
		opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(endpoint)}
		if cfg.OTLPInsecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		}
		if exporter, err = otlptracegrpc.New(ctx, opts...); err != nil {
			return nil, errors.Wrap(err, "otlp exporter error")
		}
		log.Println("telemetry initialized, exporter otlp", endpoint)
	} else {
		if exporter, err = stdouttrace.New(stdouttrace.WithWriter(w)); err != nil {
			return nil, errors.Wrap(err, "stdout exporter error")
		}
		log.Println("telemetry initialized, exporter stderr")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
