package transition

import (
	"errors"
	"strings"
	"sync"
	"time"
)

var (
	// ErrClosed is returned by Request after Close.
	ErrClosed = errors.New("transition sequencer is closed")
	// ErrEmptyPath is returned by Request when no target path is given.
	ErrEmptyPath = errors.New("transition target path is required")
)

// NavigationRequest is a pending route swap.
type NavigationRequest struct {
	TargetPath  string
	RequestedAt time.Time
}

// Change describes one phase change.
type Change struct {
	From Phase
	To   Phase
	Path string
	At   time.Time
	// Restart is set when a request re-entered Entering mid-transition.
	Restart bool
}

// Observer receives phase changes. Observers run synchronously while the
// sequencer is locked and must not call back into it.
type Observer func(Change)

// Navigator performs the route swap once the navigate delay has elapsed.
type Navigator func(NavigationRequest)

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithClock replaces the system clock.
func WithClock(clock Clock) Option {
	return func(s *Sequencer) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithNavigator sets the route swap callback.
func WithNavigator(navigate Navigator) Option {
	return func(s *Sequencer) { s.navigate = navigate }
}

// WithObserver registers a phase change observer.
func WithObserver(observer Observer) Option {
	return func(s *Sequencer) {
		if observer != nil {
			s.observers = append(s.observers, observer)
		}
	}
}

// Sequencer owns the single overlay phase and the pending navigation.
//
// Each phase timer and navigation timer captures a generation number when it
// is scheduled; a callback whose generation is stale does nothing, so a timer
// that fired while being superseded cannot move the phase backwards.
type Sequencer struct {
	cfg       Config
	clock     Clock
	navigate  Navigator
	observers []Observer

	mu         sync.Mutex
	phase      Phase
	path       string
	pending    *NavigationRequest
	phaseGen   uint64
	navGen     uint64
	phaseTimer Timer
	navTimer   Timer
	closed     bool
}

// New builds a Sequencer in the Idle phase.
func New(cfg Config, opts ...Option) (*Sequencer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Sequencer{
		cfg:   cfg,
		clock: SystemClock(),
		phase: Idle,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Config returns the durations the sequencer runs with.
func (s *Sequencer) Config() Config {
	return s.cfg
}

// Phase returns the current phase.
func (s *Sequencer) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Pending returns the navigation waiting for its delay, if any.
func (s *Sequencer) Pending() (NavigationRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return NavigationRequest{}, false
	}
	return *s.pending, true
}

// Request starts a transition toward path.
//
// The phase becomes Entering immediately and the route swap is scheduled after
// the navigate delay. A request made while a transition is running restarts
// the phase clock and replaces the earlier pending navigation.
func (s *Sequencer) Request(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return ErrEmptyPath
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	now := s.clock.Now()
	if s.navTimer != nil {
		s.navTimer.Stop()
	}
	s.navGen++
	s.pending = &NavigationRequest{TargetPath: path, RequestedAt: now}
	navGen := s.navGen
	s.navTimer = s.clock.AfterFunc(s.cfg.NavigateDelay, func() { s.fireNavigation(navGen) })

	restart := CanRestart(s.phase)
	s.path = path
	s.setPhaseLocked(Entering, now, restart)
	s.schedulePhaseLocked(s.cfg.InDuration, Exiting)
	return nil
}

// Close stops all timers. A navigation that already fired is not undone.
func (s *Sequencer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.pending = nil
	s.phaseGen++
	s.navGen++
	if s.phaseTimer != nil {
		s.phaseTimer.Stop()
		s.phaseTimer = nil
	}
	if s.navTimer != nil {
		s.navTimer.Stop()
		s.navTimer = nil
	}
}

func (s *Sequencer) schedulePhaseLocked(d time.Duration, next Phase) {
	if s.phaseTimer != nil {
		s.phaseTimer.Stop()
	}
	s.phaseGen++
	gen := s.phaseGen
	s.phaseTimer = s.clock.AfterFunc(d, func() { s.advance(gen, next) })
}

func (s *Sequencer) advance(gen uint64, next Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.phaseGen {
		return
	}
	if !CanAdvance(s.phase, next) {
		return
	}
	s.setPhaseLocked(next, s.clock.Now(), false)
	switch next {
	case Exiting:
		s.schedulePhaseLocked(s.cfg.OutDuration, Idle)
	case Idle:
		s.phaseTimer = nil
	}
}

func (s *Sequencer) fireNavigation(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.navGen || s.pending == nil {
		s.mu.Unlock()
		return
	}
	req := *s.pending
	s.pending = nil
	s.navTimer = nil
	navigate := s.navigate
	s.mu.Unlock()

	if navigate != nil {
		navigate(req)
	}
}

func (s *Sequencer) setPhaseLocked(to Phase, at time.Time, restart bool) {
	change := Change{From: s.phase, To: to, Path: s.path, At: at, Restart: restart}
	s.phase = to
	for _, observer := range s.observers {
		observer(change)
	}
}
