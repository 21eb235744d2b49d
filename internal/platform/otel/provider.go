// Package otel bootstraps OpenTelemetry tracing for InvMgmt commands.
package otel

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/invmgmt/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Settings controls whether and where spans are exported.
type Settings struct {
	Endpoint string `env:"OTEL_ENDPOINT"`
	Enabled  string `env:"OTEL_ENABLED"`
}

// Active reports whether tracing should be configured.
func (s Settings) Active() bool {
	if strings.EqualFold(strings.TrimSpace(s.Enabled), "false") {
		return false
	}
	return strings.TrimSpace(s.Endpoint) != ""
}

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in: when INVMGMT_OTEL_ENDPOINT is empty or
// INVMGMT_OTEL_ENABLED is "false", Setup returns a no-op shutdown function
// and no global provider is registered.
//
// The returned shutdown function flushes pending spans and should be
// deferred by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	var settings Settings
	if err := config.ParseEnvWithPrefix(&settings); err != nil {
		return noop, fmt.Errorf("otel settings: %w", err)
	}
	return SetupWithSettings(ctx, serviceName, settings)
}

// SetupWithSettings is Setup with explicit settings.
func SetupWithSettings(ctx context.Context, serviceName string, settings Settings) (func(context.Context) error, error) {
	if !settings.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(strings.TrimSpace(settings.Endpoint)),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

func noop(context.Context) error { return nil }
