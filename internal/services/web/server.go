package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/aichenitrkl/chapterweb/internal/contactform"
	"github.com/aichenitrkl/chapterweb/internal/platform/imagehost"
	"github.com/aichenitrkl/chapterweb/internal/platform/timeouts"
	"github.com/aichenitrkl/chapterweb/internal/services/web/app"
	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
	"github.com/aichenitrkl/chapterweb/internal/services/web/modules"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/httpx"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/observability"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/requestmeta"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/weberror"
	"github.com/aichenitrkl/chapterweb/internal/transition"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// Content supplies the current content snapshot.
	Content module.ContentSource
	// AssetBase is the URL prefix for stylesheets and scripts.
	AssetBase  string
	Transition transition.Config
	Images     imagehost.Policy
	// Submitter receives validated contact forms; nil logs them.
	Submitter           contactform.Submitter
	TrustForwardedProto bool
	// Logger receives request and lifecycle logs; nil uses the standard logger.
	Logger *log.Logger
	// Now overrides the clock used for upcoming/past decisions.
	Now func() time.Time
	// TransitionObserver also receives the root sequencer's phase changes.
	TransitionObserver transition.Observer
	// Navigate receives the route swaps the root sequencer releases.
	Navigate transition.Navigator
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	sequencer  *transition.Sequencer
}

// Dependencies builds the module dependencies for cfg. Invalid transition
// durations fall back to the defaults.
func Dependencies(cfg Config) module.Dependencies {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	transitionCfg := cfg.Transition
	if err := transitionCfg.Validate(); err != nil {
		logger.Printf("web: %v; using default transition durations", err)
		transitionCfg = transition.DefaultConfig()
	}
	submitter := cfg.Submitter
	if submitter == nil {
		submitter = contactform.NewLogSubmitter(logger)
	}
	assetBase := strings.TrimSpace(cfg.AssetBase)
	if assetBase == "" {
		assetBase = "/static"
	}
	return module.Dependencies{
		Content:    cfg.Content,
		Transition: transitionCfg,
		Images:     cfg.Images,
		Submitter:  submitter,
		AssetBase:  assetBase,
		Now:        cfg.Now,
		Logger:     logger,
		NewRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Content == nil {
		return nil, errors.New("content source is required")
	}
	deps := Dependencies(cfg)
	return newHandler(cfg, deps)
}

func newHandler(cfg Config, deps module.Dependencies) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	root, err := app.Compose(app.ComposeInput{
		Modules: modules.Default(deps, modules.Options{SchemePolicy: policy}),
		NotFound: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			weberror.WriteAppError(w, r, http.StatusNotFound, deps)
		}),
	})
	if err != nil {
		return nil, err
	}
	internalError := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		weberror.WriteAppError(w, r, http.StatusInternalServerError, deps)
	})
	return httpx.Chain(root,
		httpx.RecoverPanicWith(internalError),
		httpx.RequestID(),
		httpx.SecureHeaders(),
		observability.Tracing(),
		observability.RequestLogger(logger),
		httpx.CanonicalPath(),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if cfg.Content == nil {
		return nil, errors.New("content source is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	deps := Dependencies(cfg)
	sequencer, err := transition.New(deps.Transition,
		transition.WithObserver(func(change transition.Change) {
			logger.Printf("transition phase from=%s to=%s path=%s restart=%t", change.From, change.To, change.Path, change.Restart)
		}),
		transition.WithObserver(cfg.TransitionObserver),
		transition.WithNavigator(func(req transition.NavigationRequest) {
			logger.Printf("transition navigate path=%s", req.TargetPath)
			if cfg.Navigate != nil {
				cfg.Navigate(req)
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create transition sequencer: %w", err)
	}
	handler, err := newHandler(cfg, deps)
	if err != nil {
		sequencer.Close()
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr:  httpAddr,
		sequencer: sequencer,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			ErrorLog:          logger,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// Handler returns the composed root handler.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return nil
	}
	return s.httpServer.Handler
}

// Transition returns the root transition sequencer. Its durations drive the
// rendered overlay, and its observers and navigator are the ones set in
// Config.
func (s *Server) Transition() *transition.Sequencer {
	if s == nil {
		return nil
	}
	return s.sequencer
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.sequencer != nil {
		s.sequencer.Close()
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
}
