// Package team serves the mentor and executive roster.
package team

import (
	"net/http"

	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
	"github.com/aichenitrkl/chapterweb/internal/services/web/routepath"
)

// Module serves the team page.
type Module struct {
	deps module.Dependencies
}

// New returns the team module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return "team" }

// Mount wires the team route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.deps)
	mux.HandleFunc(http.MethodGet+" "+routepath.Team, h.handleTeam)
	return module.Mount{Prefix: routepath.Team, Handler: mux}, nil
}
