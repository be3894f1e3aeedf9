// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/aichenitrkl/chapterweb/internal/platform/branding"
	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/httpx"
	webi18n "github.com/aichenitrkl/chapterweb/internal/services/web/platform/i18n"
	"github.com/aichenitrkl/chapterweb/internal/services/web/routepath"
	webtemplates "github.com/aichenitrkl/chapterweb/internal/services/web/templates"
	"github.com/aichenitrkl/chapterweb/internal/transition"
)

// Page describes a page response for both full-page and HTMX flows.
type Page struct {
	Loc         webi18n.Localizer
	Lang        string
	Title       string
	Description string
	Image       string
	OGType      string
	StatusCode  int
	Body        templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders page into a buffer and writes it with its status. HTMX
// requests receive only the main content; full loads get the site layout.
func WritePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}
	title := branding.PageTitle(page.Title)
	ctx := templ.WithChildren(httpx.RequestContext(r), body)

	var buf bytes.Buffer
	var shell templ.Component
	if httpx.IsHTMXRequest(r) {
		shell = webtemplates.Main(title)
	} else {
		shell = webtemplates.Layout(PageContext(r, deps, page, title))
	}
	if err := shell.Render(ctx, &buf); err != nil {
		return err
	}
	return httpx.WriteHTML(w, statusCode, buf.Bytes())
}

// PageContext builds the layout context shared by every full page.
func PageContext(r *http.Request, deps module.Dependencies, page Page, title string) webtemplates.PageContext {
	catalog := deps.Catalog()
	site := catalog.Site
	current := ""
	if r != nil && r.URL != nil {
		current = r.URL.Path
	}
	nav := make([]webtemplates.NavItem, 0, len(site.Navigation))
	for _, link := range site.Navigation {
		nav = append(nav, webtemplates.NavItem{
			Label:  link.Label,
			Href:   link.Href,
			Active: routepath.IsActive(current, link.Href),
		})
	}
	description := strings.TrimSpace(page.Description)
	if description == "" {
		description = site.Tagline
	}
	siteName := strings.TrimSpace(site.Name)
	if siteName == "" {
		siteName = branding.AppName
	}
	shortName := strings.TrimSpace(site.ShortName)
	if shortName == "" {
		shortName = branding.ShortName
	}
	image := page.Image
	if image == "" {
		image = site.Logo
	}
	return webtemplates.PageContext{
		Copy:        webtemplates.Copy{Loc: page.Loc},
		Lang:        page.Lang,
		Title:       title,
		Description: description,
		Image:       image,
		OGType:      page.OGType,
		AssetBase:   strings.TrimSuffix(deps.AssetBase, "/"),
		SiteName:    siteName,
		ShortName:   shortName,
		Tagline:     site.Tagline,
		Logo:        site.Logo,
		Email:       site.Contact.Email,
		Year:        strconv.Itoa(deps.Clock().Year()),
		Nav:         nav,
		Socials:     site.Contact.Socials,
		Overlay:     overlay(deps.Transition, site.Overlay.Lines),
	}
}

// overlay starts full page loads in the entering phase so the overlay plays
// once on arrival.
func overlay(cfg transition.Config, lines []string) webtemplates.Overlay {
	if cfg.Validate() != nil {
		cfg = transition.DefaultConfig()
	}
	return webtemplates.Overlay{
		Phase:      transition.Entering.String(),
		Lines:      lines,
		InMS:       cfg.InDuration.Milliseconds(),
		OutMS:      cfg.OutDuration.Milliseconds(),
		NavigateMS: cfg.NavigateDelay.Milliseconds(),
	}
}
