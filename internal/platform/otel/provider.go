// Package otel wires OpenTelemetry tracing for chapter commands.
package otel

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	// EnvEndpoint names the OTLP/HTTP collector URL.
	EnvEndpoint = "CHAPTER_OTEL_ENDPOINT"
	// EnvEnabled turns tracing off when set to "false".
	EnvEnabled = "CHAPTER_OTEL_ENABLED"
)

// Enabled reports whether Setup would install a tracer provider.
func Enabled() bool {
	if strings.EqualFold(os.Getenv(EnvEnabled), "false") {
		return false
	}
	return strings.TrimSpace(os.Getenv(EnvEndpoint)) != ""
}

// Setup initialises tracing for serviceName.
//
// Tracing is opt-in: without CHAPTER_OTEL_ENDPOINT, or with
// CHAPTER_OTEL_ENABLED=false, Setup returns a no-op shutdown and registers no
// global provider. The returned shutdown flushes pending spans.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }
	if !Enabled() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(strings.TrimSpace(os.Getenv(EnvEndpoint))),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceNamespace("chapterweb"),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
