package transition

import (
	"errors"
	"math/rand"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &fakeTimer{clock: c, at: c.now.Add(d), seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance fires due timers in deadline order without holding the clock lock,
// so callbacks may schedule further timers.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()
	for {
		c.mu.Lock()
		var due []*fakeTimer
		for _, t := range c.timers {
			if !t.stopped && !t.fired && !t.at.After(target) {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			c.now = target
			c.mu.Unlock()
			return
		}
		sort.Slice(due, func(i, j int) bool {
			if due[i].at.Equal(due[j].at) {
				return due[i].seq < due[j].seq
			}
			return due[i].at.Before(due[j].at)
		})
		next := due[0]
		next.fired = true
		c.now = next.at
		c.mu.Unlock()
		next.f()
	}
}

type recorder struct {
	mu       sync.Mutex
	start    time.Time
	changes  []string
	navigate []string
	raw      []Change
}

func (r *recorder) observe(change Change) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.raw = append(r.raw, change)
	tag := change.From.String() + "->" + change.To.String()
	if change.Restart {
		tag += " restart"
	}
	r.changes = append(r.changes, change.At.Sub(r.start).String()+" "+tag+" "+change.Path)
}

func (r *recorder) navigated(req NavigationRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.navigate = append(r.navigate, req.TargetPath)
}

func newTestSequencer(t *testing.T) (*Sequencer, *fakeClock, *recorder) {
	t.Helper()
	clock := newFakeClock()
	rec := &recorder{start: clock.Now()}
	seq, err := New(DefaultConfig(), WithClock(clock), WithObserver(rec.observe), WithNavigator(rec.navigated))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(seq.Close)
	return seq, clock, rec
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "zero in", cfg: Config{InDuration: 0, OutDuration: time.Second}},
		{name: "zero out", cfg: Config{InDuration: time.Second, OutDuration: 0}},
		{name: "negative delay", cfg: Config{InDuration: time.Second, OutDuration: time.Second, NavigateDelay: -time.Millisecond}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := New(tc.cfg); err == nil {
				t.Fatalf("New(%+v) error = nil, want error", tc.cfg)
			}
		})
	}
}

func TestRequestRunsFullPhaseClock(t *testing.T) {
	t.Parallel()

	seq, clock, rec := newTestSequencer(t)
	if got := seq.Phase(); got != Idle {
		t.Fatalf("initial phase = %v, want %v", got, Idle)
	}
	if err := seq.Request("/events"); err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if got := seq.Phase(); got != Entering {
		t.Fatalf("phase after request = %v, want %v", got, Entering)
	}
	pending, ok := seq.Pending()
	if !ok || pending.TargetPath != "/events" {
		t.Fatalf("Pending() = %+v, %v, want /events", pending, ok)
	}

	clock.Advance(499 * time.Millisecond)
	if len(rec.navigate) != 0 {
		t.Fatalf("navigated before delay: %v", rec.navigate)
	}
	clock.Advance(time.Millisecond)
	if diff := cmp.Diff([]string{"/events"}, rec.navigate); diff != "" {
		t.Fatalf("navigations mismatch (-want +got):\n%s", diff)
	}
	if _, ok := seq.Pending(); ok {
		t.Fatal("Pending() still set after navigation")
	}

	clock.Advance(200 * time.Millisecond)
	if got := seq.Phase(); got != Exiting {
		t.Fatalf("phase at 700ms = %v, want %v", got, Exiting)
	}
	clock.Advance(700 * time.Millisecond)
	if got := seq.Phase(); got != Idle {
		t.Fatalf("phase at 1400ms = %v, want %v", got, Idle)
	}

	want := []string{
		"0s idle->entering /events",
		"700ms entering->exiting /events",
		"1.4s exiting->idle /events",
	}
	if diff := cmp.Diff(want, rec.changes); diff != "" {
		t.Fatalf("phase changes mismatch (-want +got):\n%s", diff)
	}
}

func TestRequestWhileEnteringSupersedesPendingNavigation(t *testing.T) {
	t.Parallel()

	seq, clock, rec := newTestSequencer(t)
	if err := seq.Request("/about"); err != nil {
		t.Fatalf("Request(/about) error = %v", err)
	}
	clock.Advance(300 * time.Millisecond)
	if err := seq.Request("/team"); err != nil {
		t.Fatalf("Request(/team) error = %v", err)
	}
	clock.Advance(3 * time.Second)

	if diff := cmp.Diff([]string{"/team"}, rec.navigate); diff != "" {
		t.Fatalf("navigations mismatch (-want +got):\n%s", diff)
	}
	want := []string{
		"0s idle->entering /about",
		"300ms entering->entering restart /team",
		"1s entering->exiting /team",
		"1.7s exiting->idle /team",
	}
	if diff := cmp.Diff(want, rec.changes); diff != "" {
		t.Fatalf("phase changes mismatch (-want +got):\n%s", diff)
	}
}

func TestRequestWhileExitingRestartsFromEntering(t *testing.T) {
	t.Parallel()

	seq, clock, rec := newTestSequencer(t)
	if err := seq.Request("/blogs"); err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	clock.Advance(800 * time.Millisecond)
	if got := seq.Phase(); got != Exiting {
		t.Fatalf("phase = %v, want %v", got, Exiting)
	}
	if err := seq.Request("/contact"); err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	clock.Advance(3 * time.Second)

	if diff := cmp.Diff([]string{"/blogs", "/contact"}, rec.navigate); diff != "" {
		t.Fatalf("navigations mismatch (-want +got):\n%s", diff)
	}
	want := []string{
		"0s idle->entering /blogs",
		"700ms entering->exiting /blogs",
		"800ms exiting->entering restart /contact",
		"1.5s entering->exiting /contact",
		"2.2s exiting->idle /contact",
	}
	if diff := cmp.Diff(want, rec.changes); diff != "" {
		t.Fatalf("phase changes mismatch (-want +got):\n%s", diff)
	}
}

func TestZeroNavigateDelayNavigatesImmediately(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	rec := &recorder{start: clock.Now()}
	cfg := DefaultConfig()
	cfg.NavigateDelay = 0
	seq, err := New(cfg, WithClock(clock), WithNavigator(rec.navigated))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer seq.Close()

	if err := seq.Request("/"); err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	clock.Advance(0)
	if diff := cmp.Diff([]string{"/"}, rec.navigate); diff != "" {
		t.Fatalf("navigations mismatch (-want +got):\n%s", diff)
	}
}

func TestCloseCancelsTimersAndRejectsRequests(t *testing.T) {
	t.Parallel()

	seq, clock, rec := newTestSequencer(t)
	if err := seq.Request("/events"); err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	seq.Close()
	clock.Advance(5 * time.Second)

	if len(rec.navigate) != 0 {
		t.Fatalf("navigations after close = %v, want none", rec.navigate)
	}
	if got := len(rec.changes); got != 1 {
		t.Fatalf("phase changes after close = %d, want 1", got)
	}
	if err := seq.Request("/about"); !errors.Is(err, ErrClosed) {
		t.Fatalf("Request() after close error = %v, want %v", err, ErrClosed)
	}
	seq.Close()
}

func TestRequestRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	seq, _, rec := newTestSequencer(t)
	if err := seq.Request("   "); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("Request() error = %v, want %v", err, ErrEmptyPath)
	}
	if got := seq.Phase(); got != Idle {
		t.Fatalf("phase = %v, want %v", got, Idle)
	}
	if len(rec.changes) != 0 {
		t.Fatalf("changes = %v, want none", rec.changes)
	}
}

func TestPhaseChangesFollowStateMachineUnderRandomRequests(t *testing.T) {
	t.Parallel()

	seq, clock, rec := newTestSequencer(t)
	rng := rand.New(rand.NewSource(7))
	paths := []string{"/", "/about", "/events", "/blogs", "/team", "/contact"}
	for range 200 {
		if rng.Intn(3) == 0 {
			if err := seq.Request(paths[rng.Intn(len(paths))]); err != nil {
				t.Fatalf("Request() error = %v", err)
			}
		}
		clock.Advance(time.Duration(rng.Intn(900)) * time.Millisecond)
	}
	clock.Advance(5 * time.Second)

	if got := seq.Phase(); got != Idle {
		t.Fatalf("final phase = %v, want %v", got, Idle)
	}
	sawExiting := false
	for i, change := range rec.raw {
		switch {
		case change.Restart:
			if !CanRestart(change.From) || change.To != Entering {
				t.Fatalf("change %d: invalid restart %v -> %v", i, change.From, change.To)
			}
		case !CanAdvance(change.From, change.To):
			t.Fatalf("change %d: invalid edge %v -> %v", i, change.From, change.To)
		}
		if change.To == Exiting {
			sawExiting = true
			if change.From != Entering {
				t.Fatalf("change %d: entered exiting from %v", i, change.From)
			}
		}
	}
	if !sawExiting {
		t.Fatal("expected at least one exiting phase")
	}
}

func TestSystemClockCompletesWithoutLeaks(t *testing.T) {
	cfg := Config{InDuration: 10 * time.Millisecond, OutDuration: 10 * time.Millisecond, NavigateDelay: 5 * time.Millisecond}
	idle := make(chan struct{})
	navigated := make(chan string, 1)
	seq, err := New(cfg,
		WithObserver(func(change Change) {
			if change.To == Idle {
				close(idle)
			}
		}),
		WithNavigator(func(req NavigationRequest) { navigated <- req.TargetPath }),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer seq.Close()

	if err := seq.Request("/team"); err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	select {
	case <-idle:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for idle phase")
	}
	if got := <-navigated; got != "/team" {
		t.Fatalf("navigated = %q, want %q", got, "/team")
	}
}

func TestPhaseString(t *testing.T) {
	t.Parallel()

	tests := map[Phase]string{Idle: "idle", Entering: "entering", Exiting: "exiting", Phase(9): "phase(9)"}
	for phase, want := range tests {
		if got := phase.String(); got != want {
			t.Fatalf("Phase(%d).String() = %q, want %q", int(phase), got, want)
		}
	}
	if Idle.Active() || !Entering.Active() || !Exiting.Active() {
		t.Fatal("Active() mismatch")
	}
}
