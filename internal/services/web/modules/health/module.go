// Package health serves the liveness endpoint.
package health

import (
	"net/http"

	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/httpx"
	"github.com/aichenitrkl/chapterweb/internal/services/web/routepath"
)

// Module serves the health check.
type Module struct {
	deps module.Dependencies
}

// New returns the health module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return "health" }

// Mount wires the health route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, m.handleHealth)
	return module.Mount{Prefix: routepath.Health, Handler: mux}, nil
}

type status struct {
	Status string `json:"status"`
	Events int    `json:"events"`
	Posts  int    `json:"posts"`
	Team   int    `json:"team"`
}

func (m Module) handleHealth(w http.ResponseWriter, _ *http.Request) {
	catalog := m.deps.Catalog()
	w.Header().Set("Cache-Control", "no-store")
	_ = httpx.WriteJSON(w, http.StatusOK, status{
		Status: "ok",
		Events: len(catalog.Events),
		Posts:  len(catalog.Posts),
		Team:   len(catalog.Team),
	})
}
