// Package contact serves the contact form and its submission flow.
package contact

import (
	"net/http"

	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/requestmeta"
	"github.com/aichenitrkl/chapterweb/internal/services/web/routepath"
)

// Module serves the contact page.
type Module struct {
	deps   module.Dependencies
	policy requestmeta.SchemePolicy
}

// New returns the contact module.
func New(deps module.Dependencies) Module {
	return NewWithPolicy(deps, requestmeta.SchemePolicy{})
}

// NewWithPolicy returns the contact module with an explicit scheme policy for
// origin checks and notice cookies.
func NewWithPolicy(deps module.Dependencies, policy requestmeta.SchemePolicy) Module {
	return Module{deps: deps, policy: policy}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return "contact" }

// Mount wires the form page and its submission.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.deps, m.policy)
	mux.HandleFunc(http.MethodGet+" "+routepath.Contact, h.handleContact)
	mux.HandleFunc(http.MethodPost+" "+routepath.Contact, h.handleSubmit)
	return module.Mount{Prefix: routepath.Contact, Handler: mux}, nil
}
