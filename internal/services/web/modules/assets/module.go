// Package assets serves the embedded stylesheets, scripts, and images.
package assets

import (
	"io/fs"
	"net/http"
	"strings"

	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
	"github.com/aichenitrkl/chapterweb/internal/services/web/routepath"
	"github.com/aichenitrkl/chapterweb/internal/services/web/static"
)

const cacheControl = "public, max-age=3600"

// Module serves static assets under /static/.
type Module struct {
	files fs.FS
}

// New returns the assets module backed by the embedded static tree.
func New() Module {
	return Module{files: static.FS}
}

// NewWithFS returns the assets module backed by files.
func NewWithFS(files fs.FS) Module {
	return Module{files: files}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return "assets" }

// Mount wires the static file server.
func (m Module) Mount() (module.Mount, error) {
	files := m.files
	if files == nil {
		files = static.FS
	}
	server := http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(files))
	mux := http.NewServeMux()
	mux.Handle(http.MethodGet+" "+routepath.StaticPrefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheControl)
		w.Header().Set("X-Content-Type-Options", "nosniff")
		server.ServeHTTP(w, r)
	}))
	// The bare prefix must not redirect to "/static/"; CanonicalPath would
	// send it straight back.
	mux.Handle(strings.TrimSuffix(routepath.StaticPrefix, "/"), http.NotFoundHandler())
	return module.Mount{Prefix: routepath.StaticPrefix, Handler: mux}, nil
}
