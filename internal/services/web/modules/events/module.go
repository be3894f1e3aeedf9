// Package events serves the filterable events listing.
package events

import (
	"net/http"

	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
	"github.com/aichenitrkl/chapterweb/internal/services/web/routepath"
)

// Module serves the events listing.
type Module struct {
	deps module.Dependencies
}

// New returns the events module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return "events" }

// Mount wires the events route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.deps)
	mux.HandleFunc(http.MethodGet+" "+routepath.Events, h.handleEvents)
	return module.Mount{Prefix: routepath.Events, Handler: mux}, nil
}
