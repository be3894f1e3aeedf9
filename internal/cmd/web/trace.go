package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/aichenitrkl/chapterweb/internal/services/web"
	"github.com/aichenitrkl/chapterweb/internal/transition"
)

// TraceOptions drives a transition trace.
type TraceOptions struct {
	// Paths are requested in order, Interval apart.
	Paths    []string
	Interval time.Duration
}

// RouteSwap is one navigation the sequencer released, with the status the
// swapped-in route rendered with.
type RouteSwap struct {
	transition.NavigationRequest
	Status int
}

// TraceResult records what a trace observed.
type TraceResult struct {
	Changes    []transition.Change
	Navigated  []RouteSwap
	FinalPhase transition.Phase
}

// Trace builds the web server with the configured content and durations,
// requests opts.Paths on its root transition sequencer, and renders each
// released route swap through the server's handler. It returns once the
// overlay is idle again.
func Trace(ctx context.Context, cfg Config, opts TraceOptions, logger *log.Logger) (TraceResult, error) {
	if logger == nil {
		logger = log.Default()
	}
	if len(opts.Paths) == 0 {
		return TraceResult{}, errors.New("at least one path is required")
	}
	if opts.Interval < 0 {
		return TraceResult{}, errors.New("interval must not be negative")
	}
	if err := cfg.Validate(); err != nil {
		return TraceResult{}, err
	}
	store, err := NewStore(cfg)
	if err != nil {
		return TraceResult{}, err
	}

	// Each request yields at most three phase changes and one navigation.
	events := make(chan any, 4*len(opts.Paths)+4)
	serverCfg := ServerConfig(cfg, store, logger)
	if strings.TrimSpace(serverCfg.HTTPAddr) == "" {
		serverCfg.HTTPAddr = traceAddr
	}
	serverCfg.TransitionObserver = func(change transition.Change) { events <- change }
	serverCfg.Navigate = func(req transition.NavigationRequest) { events <- req }
	server, err := web.NewServer(ctx, serverCfg)
	if err != nil {
		return TraceResult{}, fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()
	tr := tracer{ctx: ctx, handler: server.Handler(), started: time.Now(), logger: logger}
	sequencer := server.Transition()

	for i, path := range opts.Paths {
		if i > 0 && opts.Interval > 0 {
			if err := tr.drainFor(events, opts.Interval); err != nil {
				return tr.result, err
			}
		}
		if err := sequencer.Request(path); err != nil {
			return tr.result, fmt.Errorf("request %s: %w", path, err)
		}
	}

	deadline := max(cfg.TransitionConfig().Total(), cfg.NavigateDelay) + time.Second
	timeout := time.NewTimer(deadline)
	defer timeout.Stop()
	for {
		select {
		case <-ctx.Done():
			return tr.result, ctx.Err()
		case <-timeout.C:
			return tr.result, fmt.Errorf("transition did not settle within %s", deadline)
		case event := <-events:
			tr.record(event)
			if tr.result.FinalPhase == transition.Idle && len(tr.result.Changes) > 0 && sequencerSettled(sequencer) {
				return tr.result, nil
			}
		}
	}
}

// traceAddr fills the unused listen address when none is configured.
const traceAddr = "localhost:0"

type tracer struct {
	ctx     context.Context
	handler http.Handler
	started time.Time
	logger  *log.Logger
	result  TraceResult
}

func (t *tracer) drainFor(events <-chan any, d time.Duration) error {
	wait := time.NewTimer(d)
	defer wait.Stop()
	for {
		select {
		case <-t.ctx.Done():
			return t.ctx.Err()
		case <-wait.C:
			return nil
		case event := <-events:
			t.record(event)
		}
	}
}

// record stores an event. Phase changes are logged by the server; swaps are
// rendered and logged here with their offset from the first request.
func (t *tracer) record(event any) {
	switch e := event.(type) {
	case transition.Change:
		t.result.Changes = append(t.result.Changes, e)
		t.result.FinalPhase = e.To
	case transition.NavigationRequest:
		status := t.render(e.TargetPath)
		t.result.Navigated = append(t.result.Navigated, RouteSwap{NavigationRequest: e, Status: status})
		t.logger.Printf("trace swap t=%s path=%s status=%d", time.Since(t.started).Round(time.Millisecond), e.TargetPath, status)
	}
}

func (t *tracer) render(route string) int {
	req, err := http.NewRequestWithContext(t.ctx, http.MethodGet, route, nil)
	if err != nil {
		return http.StatusBadRequest
	}
	rec := newResponseBuffer()
	t.handler.ServeHTTP(rec, req)
	return rec.status
}

func sequencerSettled(s *transition.Sequencer) bool {
	_, pending := s.Pending()
	return !pending && s.Phase() == transition.Idle
}
