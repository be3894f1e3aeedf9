// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
	apperrors "github.com/aichenitrkl/chapterweb/internal/services/web/platform/errors"
	webi18n "github.com/aichenitrkl/chapterweb/internal/services/web/platform/i18n"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/pagerender"
	webtemplates "github.com/aichenitrkl/chapterweb/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes the localized error page for full-page and HTMX
// requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, lang := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, deps, pagerender.Page{
		Loc:         loc,
		Lang:        lang,
		Title:       webtemplates.ErrorPageTitle(statusCode, loc),
		Description: webtemplates.T(loc, "layout.meta_description"),
		StatusCode:  statusCode,
		Body:        webtemplates.ErrorState(statusCode, loc),
	})
	if err != nil {
		deps.Log().Printf("web: render error page status=%d: %v", statusCode, err)
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response: the error
// page for not-found and server errors, plain text for everything else.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		deps.Log().Printf("web: %s %s: %v", requestMethod(r), requestPath(r), err)
	}
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, deps)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

func requestMethod(r *http.Request) string {
	if r == nil {
		return ""
	}
	return r.Method
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
