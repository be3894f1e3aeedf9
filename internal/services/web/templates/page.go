package templates

import (
	"context"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/aichenitrkl/chapterweb/internal/content"
)

// NavItem is one navbar link.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// Overlay is the transition overlay state rendered on page load.
type Overlay struct {
	Phase      string
	Lines      []string
	InMS       int64
	OutMS      int64
	NavigateMS int64
}

// PageContext provides shared layout context for pages.
type PageContext struct {
	Copy
	Lang        string
	Title       string
	Description string
	Image       string
	OGType      string
	AssetBase   string
	SiteName    string
	ShortName   string
	Tagline     string
	Logo        string
	Email       string
	// Year is preformatted so the printer does not group its digits.
	Year        string
	Nav         []NavItem
	Socials     []content.Link
	Overlay     Overlay
}

type layoutView struct {
	PageContext
	OverlayHTML template.HTML
	Body        template.HTML
}

// Layout wraps its children in the full document shell.
func Layout(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body, err := renderChildren(ctx)
		if err != nil {
			return err
		}
		if strings.TrimSpace(page.OGType) == "" {
			page.OGType = "website"
		}
		overlay, err := templ.ToGoHTML(ctx, TransitionOverlay(page.Overlay))
		if err != nil {
			return err
		}
		return views.ExecuteTemplate(w, "layout", layoutView{PageContext: page, OverlayHTML: overlay, Body: body})
	})
}

// Main renders only the title and children, for HTMX swaps into
// #main-content.
func Main(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body, err := renderChildren(ctx)
		if err != nil {
			return err
		}
		if title = strings.TrimSpace(title); title != "" {
			if _, err := io.WriteString(w, "<title>"+template.HTMLEscapeString(title)+"</title>\n"); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, string(body))
		return err
	})
}

func renderChildren(ctx context.Context) (template.HTML, error) {
	children := templ.GetChildren(ctx)
	ctx = templ.ClearChildren(ctx)
	return templ.ToGoHTML(ctx, children)
}

// TransitionOverlay renders the overlay in its initial phase. transition.js
// reads the data-* durations to run the same phase clock in the browser.
func TransitionOverlay(o Overlay) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		phase := templ.EscapeString(o.Phase)
		var b strings.Builder
		b.WriteString(`<div id="transition-overlay" class="transition-overlay is-` + phase + `" aria-hidden="true" data-phase="` + phase + `"`)
		b.WriteString(` data-in-ms="` + strconv.FormatInt(o.InMS, 10) + `" data-out-ms="` + strconv.FormatInt(o.OutMS, 10) + `" data-navigate-ms="` + strconv.FormatInt(o.NavigateMS, 10) + `">` + "\n")
		b.WriteString(`<div class="transition-overlay__lines">`)
		for i, line := range o.Lines {
			b.WriteString("\n" + `<span class="transition-overlay__line transition-overlay__line--` + strconv.Itoa(i) + `">` + templ.EscapeString(line) + "</span>")
		}
		b.WriteString("\n</div>\n</div>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
