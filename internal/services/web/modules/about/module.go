// Package about serves the chapter's about page.
package about

import (
	"net/http"

	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
	"github.com/aichenitrkl/chapterweb/internal/services/web/routepath"
)

// Module serves the about page.
type Module struct {
	deps module.Dependencies
}

// New returns the about module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return "about" }

// Mount wires the about route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.deps)
	mux.HandleFunc(http.MethodGet+" "+routepath.About, h.handleAbout)
	return module.Mount{Prefix: routepath.About, Handler: mux}, nil
}
