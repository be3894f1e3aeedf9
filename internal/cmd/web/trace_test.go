package web

import (
	"context"
	"io"
	"log"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/aichenitrkl/chapterweb/internal/transition"
)

func traceConfig() Config {
	return Config{
		TransitionIn:  30 * time.Millisecond,
		TransitionOut: 30 * time.Millisecond,
		NavigateDelay: 50 * time.Millisecond,
	}
}

type phaseStep struct {
	From, To transition.Phase
	Restart  bool
}

func steps(changes []transition.Change) []phaseStep {
	out := make([]phaseStep, 0, len(changes))
	for _, c := range changes {
		out = append(out, phaseStep{From: c.From, To: c.To, Restart: c.Restart})
	}
	return out
}

func TestTraceRunsFullPhaseClock(t *testing.T) {
	t.Parallel()

	result, err := Trace(context.Background(), traceConfig(), TraceOptions{Paths: []string{"/about"}}, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("Trace() error = %v", err)
	}
	want := []phaseStep{
		{From: transition.Idle, To: transition.Entering},
		{From: transition.Entering, To: transition.Exiting},
		{From: transition.Exiting, To: transition.Idle},
	}
	if diff := cmp.Diff(want, steps(result.Changes)); diff != "" {
		t.Fatalf("phase steps mismatch (-want +got):\n%s", diff)
	}
	if len(result.Navigated) != 1 || result.Navigated[0].TargetPath != "/about" {
		t.Fatalf("Navigated = %+v, want one swap to /about", result.Navigated)
	}
	if result.Navigated[0].Status != http.StatusOK {
		t.Fatalf("swap status = %d, want %d", result.Navigated[0].Status, http.StatusOK)
	}
	if result.FinalPhase != transition.Idle {
		t.Fatalf("FinalPhase = %s, want %s", result.FinalPhase, transition.Idle)
	}
}

func TestTraceBackToBackRequestsNavigateOnce(t *testing.T) {
	t.Parallel()

	result, err := Trace(context.Background(), traceConfig(), TraceOptions{Paths: []string{"/about", "/team"}}, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("Trace() error = %v", err)
	}
	if len(result.Navigated) != 1 || result.Navigated[0].TargetPath != "/team" {
		t.Fatalf("Navigated = %+v, want only the latest request", result.Navigated)
	}
	got := steps(result.Changes)
	if len(got) < 2 || got[1] != (phaseStep{From: transition.Entering, To: transition.Entering, Restart: true}) {
		t.Fatalf("phase steps = %+v, want a restart after the first request", got)
	}
}

func TestTraceRejectsBadInput(t *testing.T) {
	t.Parallel()

	logger := log.New(io.Discard, "", 0)
	if _, err := Trace(context.Background(), traceConfig(), TraceOptions{}, logger); err == nil {
		t.Fatal("expected missing paths error")
	}
	bad := traceConfig()
	bad.TransitionOut = 0
	if _, err := Trace(context.Background(), bad, TraceOptions{Paths: []string{"/"}}, logger); err == nil {
		t.Fatal("expected invalid config error")
	}
}

func TestTraceRendersUnknownRouteAsNotFound(t *testing.T) {
	t.Parallel()

	result, err := Trace(context.Background(), traceConfig(), TraceOptions{Paths: []string{"/no-such-page"}}, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("Trace() error = %v", err)
	}
	if len(result.Navigated) != 1 || result.Navigated[0].Status != http.StatusNotFound {
		t.Fatalf("Navigated = %+v, want one 404 swap", result.Navigated)
	}
}
