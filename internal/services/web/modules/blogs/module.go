// Package blogs serves the blog listing and article pages.
package blogs

import (
	"net/http"

	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
	"github.com/aichenitrkl/chapterweb/internal/services/web/routepath"
)

// Module serves the blog routes.
type Module struct {
	deps module.Dependencies
}

// New returns the blogs module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return "blogs" }

// Mount wires the listing, the article route, and a not-found fallback for
// deeper paths.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.deps)
	mux.HandleFunc(http.MethodGet+" "+routepath.Blogs, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.BlogPattern, h.handleArticle)
	mux.HandleFunc(routepath.BlogsPrefix, h.WriteNotFound)
	return module.Mount{Prefix: routepath.BlogsPrefix, Handler: mux}, nil
}
