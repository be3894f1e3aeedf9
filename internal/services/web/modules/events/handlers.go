package events

import (
	"net/http"

	"github.com/aichenitrkl/chapterweb/internal/listing"
	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/pagerender"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/publichandler"
	webtemplates "github.com/aichenitrkl/chapterweb/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{Base: publichandler.NewBase(deps)}
}

func (h handlers) handleEvents(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.Localizer(w, r)
	catalog := h.Deps.Catalog()
	now := h.Deps.Clock()
	images := webtemplates.ImageResolver(h.Deps.Image)
	filter := listing.EventFilterFromQuery(r.URL.Query())

	view := webtemplates.EventsView{
		Copy:     webtemplates.Copy{Loc: loc},
		Query:    filter.Query,
		Filtered: !filter.IsDefault(),
		Stats:    listing.StatsForEvents(catalog.Events, filter, now),
	}
	view.YearSelect, view.CategorySelect, view.SortSelect = webtemplates.EventFilterSelects(loc, catalog.AcademicYears, catalog.CategoryNames(), filter)
	view.YearStatLabel, view.CategoryStatLabel = webtemplates.EventStatLabels(loc, filter)
	for _, event := range listing.FilterEvents(catalog.Events, filter, now) {
		view.Events = append(view.Events, webtemplates.NewEventCard(loc, catalog, event, now, images))
	}

	h.WritePage(w, r, pagerender.Page{
		Loc:         loc,
		Lang:        lang,
		Title:       webtemplates.T(loc, "events.page_title"),
		Description: webtemplates.T(loc, "events.meta_description"),
		Body:        webtemplates.Events(view),
	})
}
