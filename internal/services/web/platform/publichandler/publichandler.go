// Package publichandler provides a shared base for public web module handlers.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across modules.
package publichandler

import (
	"net/http"

	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
	webi18n "github.com/aichenitrkl/chapterweb/internal/services/web/platform/i18n"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/pagerender"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/weberror"
)

// Base provides shared error handling and page rendering. Embed it in handler
// structs to get WritePage, WriteNotFound, and WriteError.
type Base struct {
	Deps module.Dependencies
}

// NewBase builds a handler base over deps.
func NewBase(deps module.Dependencies) Base {
	return Base{Deps: deps}
}

// Localizer resolves the request localizer and language.
func (Base) Localizer(w http.ResponseWriter, r *http.Request) (webi18n.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r)
}

// WritePage renders a page, falling back to the error page when rendering
// fails before anything was written.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.WritePage(w, r, b.Deps, page); err != nil {
		b.Deps.Log().Printf("web: render %s: %v", page.Title, err)
		weberror.WriteAppError(w, r, http.StatusInternalServerError, b.Deps)
	}
}

// WriteNotFound renders the localized 404 page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.Deps)
}

// WriteError renders a user-safe error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.Deps)
}
