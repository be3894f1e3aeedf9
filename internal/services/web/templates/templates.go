// Package templates renders chapter pages.
//
// Page bodies are html/template files embedded from views/ and exposed as
// templ components so handlers compose them with templ.WithChildren the same
// way for full pages and HTMX fragments.
package templates

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

//go:embed views/*.html
var viewFS embed.FS

var views = template.Must(template.New("views").ParseFS(viewFS, "views/*.html"))

// view renders one named template from the embedded set.
func view(name string, data any) templ.Component {
	t := views.Lookup(name)
	if t == nil {
		return templ.ComponentFunc(func(context.Context, io.Writer) error {
			return fmt.Errorf("template %q is not defined", name)
		})
	}
	return templ.FromGoHTML(t, data)
}

// Names lists the page templates a handler may render.
func Names() []string {
	return []string{"home", "about", "events", "blogs", "article", "team", "contact"}
}
