// Package cmd holds startup helpers shared by the chapter site commands.
package cmd

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/aichenitrkl/chapterweb/internal/platform/config"
	"github.com/aichenitrkl/chapterweb/internal/platform/otel"
)

// Service names reported as the OpenTelemetry service.name.
const (
	ServiceWeb    = "web"
	ServiceExport = "export"
)

const telemetryFlushTimeout = 5 * time.Second

// ParseConfig fills cfg from CHAPTER_* environment variables and envDefault tags.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// Telemetry is a started trace pipeline for one command.
type Telemetry struct {
	service  string
	shutdown func(context.Context) error
}

// StartTelemetry starts tracing for service. Tracing is a no-op unless an
// OTLP endpoint is configured.
func StartTelemetry(ctx context.Context, service string) (*Telemetry, error) {
	service = strings.TrimSpace(service)
	if service == "" {
		return nil, errors.New("service name is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return nil, err
	}
	return &Telemetry{service: service, shutdown: shutdown}, nil
}

// Stop flushes pending spans, waiting at most timeout (5s when timeout <= 0).
func (t *Telemetry) Stop(timeout time.Duration) {
	if t == nil || t.shutdown == nil {
		return
	}
	if timeout <= 0 {
		timeout = telemetryFlushTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := t.shutdown(ctx); err != nil {
		log.Printf("%s: flush telemetry: %v", t.service, err)
	}
}

// RunWithTelemetry runs fn with tracing started for service and flushed on return.
func RunWithTelemetry(ctx context.Context, service string, fn func(context.Context) error) error {
	if fn == nil {
		return errors.New("run function is required")
	}
	telemetry, err := StartTelemetry(ctx, service)
	if err != nil {
		return err
	}
	defer telemetry.Stop(0)
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx)
}
