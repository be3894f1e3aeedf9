// Package home serves the landing page.
package home

import (
	"net/http"

	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
	"github.com/aichenitrkl/chapterweb/internal/services/web/routepath"
)

// Module serves the landing page.
type Module struct {
	deps module.Dependencies
}

// New returns the home module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return "home" }

// Mount wires the landing route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.deps)
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleHome)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
