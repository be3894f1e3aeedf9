package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
)

// ErrorView is the not-found and server-error page.
type ErrorView struct {
	Copy
	Status  int
	Heading string
	Message string
}

// ErrorPageTitle returns the browser title for an error page.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, "error.page_title_not_found")
	}
	return T(loc, "error.page_title_server_error")
}

// ErrorState renders the error page body for statusCode. Anything other than
// 404 is shown as a server error.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	statusCode = normalizeErrorStatus(statusCode)
	v := ErrorView{Copy: Copy{Loc: loc}, Status: statusCode}
	if statusCode == http.StatusNotFound {
		v.Heading = T(loc, "error.title_not_found")
		v.Message = T(loc, "error.message_not_found")
	} else {
		v.Heading = T(loc, "error.title_server_error")
		v.Message = T(loc, "error.message_server_error")
	}
	return errorState(v)
}

func errorState(v ErrorView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section id="app-error-state" class="error-state">`+"\n"+
			`<p class="error-state__code">`+strconv.Itoa(v.Status)+"</p>\n"+
			"<h1>"+templ.EscapeString(v.Heading)+"</h1>\n"+
			"<p>"+templ.EscapeString(v.Message)+"</p>\n"+
			`<a class="button" href="/" data-transition>`+templ.EscapeString(v.T("error.action_home"))+"</a>\n"+
			"</section>")
		return err
	})
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
