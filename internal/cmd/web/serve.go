package web

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/aichenitrkl/chapterweb/internal/content"
	"github.com/aichenitrkl/chapterweb/internal/services/web"
)

// NewStore loads the configured content.
func NewStore(cfg Config) (*content.Store, error) {
	fsys, err := cfg.ContentFS()
	if err != nil {
		return nil, err
	}
	store, err := content.NewStore(fsys)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return store, nil
}

// ServerConfig maps command configuration onto the web service.
func ServerConfig(cfg Config, store *content.Store, logger *log.Logger) web.Config {
	return web.Config{
		HTTPAddr:            cfg.HTTPAddr,
		Content:             store,
		AssetBase:           cfg.AssetBase,
		Transition:          cfg.TransitionConfig(),
		Images:              cfg.ImagePolicy(),
		TrustForwardedProto: cfg.TrustForwardedProto,
		Logger:              logger,
	}
}

// Serve runs the web server, and the content watcher when enabled, until
// ctx ends or either fails.
func Serve(ctx context.Context, cfg Config, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	store, err := NewStore(cfg)
	if err != nil {
		return err
	}
	server, err := web.NewServer(ctx, ServerConfig(cfg, store, logger))
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Printf("web listening addr=%s", server.Addr())
		if err := server.ListenAndServe(groupCtx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
	if cfg.Watch {
		group.Go(func() error {
			return content.Watch(groupCtx, cfg.ContentDir, store, content.WatchOptions{Logger: logger})
		})
	}
	return group.Wait()
}
