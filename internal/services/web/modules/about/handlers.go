package about

import (
	"net/http"

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

func (h handlers) handleAbout(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.Localizer(w, r)
	h.WritePage(w, r, pagerender.Page{
		Loc:         loc,
		Lang:        lang,
		Title:       webtemplates.T(loc, "about.page_title"),
		Description: webtemplates.T(loc, "about.meta_description"),
		Body: webtemplates.About(webtemplates.AboutView{
			Copy:  webtemplates.Copy{Loc: loc},
			About: h.Deps.Catalog().Site.About,
		}),
	})
}
