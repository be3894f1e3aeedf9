package team

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/aichenitrkl/chapterweb/internal/content"
	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/pagerender"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/publichandler"
	"github.com/aichenitrkl/chapterweb/internal/services/web/routepath"
	webtemplates "github.com/aichenitrkl/chapterweb/internal/services/web/templates"
)

// memberParam selects the expanded member. An empty value collapses all.
const memberParam = "member"

type handlers struct {
	publichandler.Base
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{Base: publichandler.NewBase(deps)}
}

func (h handlers) handleTeam(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.Localizer(w, r)
	catalog := h.Deps.Catalog()
	images := webtemplates.ImageResolver(h.Deps.Image)
	expanded := expandedMember(r.URL.Query(), catalog.Site.PresidentID)

	cards := func(members []content.TeamMember) []webtemplates.MemberCard {
		out := make([]webtemplates.MemberCard, 0, len(members))
		for _, member := range members {
			open := member.ID == expanded
			out = append(out, webtemplates.NewMemberCard(loc, member, toggleHref(member.ID, open), open, images))
		}
		return out
	}

	h.WritePage(w, r, pagerender.Page{
		Loc:         loc,
		Lang:        lang,
		Title:       webtemplates.T(loc, "team.page_title"),
		Description: webtemplates.T(loc, "team.meta_description"),
		Body: webtemplates.Team(webtemplates.TeamView{
			Copy:       webtemplates.Copy{Loc: loc},
			Mentors:    cards(catalog.Mentors()),
			Executives: cards(catalog.Executives()),
		}),
	})
}

// expandedMember returns the member id to show expanded. Without a member
// parameter the president is expanded.
func expandedMember(query url.Values, presidentID string) string {
	values, ok := query[memberParam]
	if !ok || len(values) == 0 {
		return presidentID
	}
	return strings.TrimSpace(values[0])
}

// toggleHref links an open card to the collapsed state and a closed card to
// itself.
func toggleHref(id string, open bool) string {
	if open {
		return routepath.Team + "?" + memberParam + "="
	}
	return routepath.Team + "?" + url.Values{memberParam: {id}}.Encode()
}
