package home

import (
	"net/http"
	"time"

	"github.com/aichenitrkl/chapterweb/internal/content"
	"github.com/aichenitrkl/chapterweb/internal/hero"
	"github.com/aichenitrkl/chapterweb/internal/listing"
	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/pagerender"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/publichandler"
	webtemplates "github.com/aichenitrkl/chapterweb/internal/services/web/templates"
)

const (
	featuredEvents = 3
	featuredPosts  = 3
)

type handlers struct {
	publichandler.Base
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{Base: publichandler.NewBase(deps)}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.Localizer(w, r)
	catalog := h.Deps.Catalog()
	now := h.Deps.Clock()
	images := webtemplates.ImageResolver(h.Deps.Image)
	spec := catalog.Site.Hero

	field := hero.LandingField(h.Deps.Rand(), spec.SpriteSources, spec.SpriteCount, spec.EmojiPool, spec.EmojiCount)
	view := webtemplates.HomeView{
		Copy:    webtemplates.Copy{Loc: loc},
		Hero:    spec,
		Sprites: webtemplates.NewSpriteField(field, images),
	}
	for _, event := range upcoming(catalog.Events, now) {
		view.Events = append(view.Events, webtemplates.NewEventCard(loc, catalog, event, now, images))
	}
	for _, post := range catalog.Posts[:min(featuredPosts, len(catalog.Posts))] {
		view.Posts = append(view.Posts, webtemplates.NewPostCard(loc, post, images))
	}

	h.WritePage(w, r, pagerender.Page{
		Loc:         loc,
		Lang:        lang,
		Description: webtemplates.T(loc, "layout.meta_description"),
		Body:        webtemplates.Home(view),
	})
}

// upcoming returns the next few events on or after now, soonest first.
func upcoming(events []content.Event, now time.Time) []content.Event {
	var out []content.Event
	for _, event := range listing.FilterEvents(events, listing.DefaultEventFilter(), now) {
		if !event.IsUpcoming(now) || len(out) == featuredEvents {
			break
		}
		out = append(out, event)
	}
	return out
}
