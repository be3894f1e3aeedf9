package blogs

import (
	"net/http"
	"strings"

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

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.Localizer(w, r)
	catalog := h.Deps.Catalog()
	images := webtemplates.ImageResolver(h.Deps.Image)
	filter := listing.BlogFilterFromQuery(r.URL.Query())

	view := webtemplates.BlogsView{
		Copy:     webtemplates.Copy{Loc: loc},
		Query:    filter.Query,
		Filtered: !filter.IsDefault(),
	}
	view.AuthorSelect, view.SortSelect = webtemplates.BlogFilterSelects(loc, catalog.Authors(), filter)
	for _, post := range listing.FilterPosts(catalog.Posts, filter) {
		view.Posts = append(view.Posts, webtemplates.NewPostCard(loc, post, images))
	}

	h.WritePage(w, r, pagerender.Page{
		Loc:         loc,
		Lang:        lang,
		Title:       webtemplates.T(loc, "blogs.page_title"),
		Description: webtemplates.T(loc, "blogs.meta_description"),
		Body:        webtemplates.Blogs(view),
	})
}

func (h handlers) handleArticle(w http.ResponseWriter, r *http.Request) {
	catalog := h.Deps.Catalog()
	post, ok := catalog.ResolvePost(r.PathValue("slug"))
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	loc, lang := h.Localizer(w, r)
	images := webtemplates.ImageResolver(h.Deps.Image)
	view := webtemplates.NewArticleView(loc, post, catalog.Site.Logo, images)

	description := strings.TrimSpace(post.Excerpt)
	if description == "" {
		description = webtemplates.T(loc, "blogs.article_description", post.Title, post.Author.DisplayName())
	}
	h.WritePage(w, r, pagerender.Page{
		Loc:         loc,
		Lang:        lang,
		Title:       post.Title,
		Description: description,
		Image:       view.Image,
		OGType:      "article",
		Body:        webtemplates.Article(view),
	})
}
