// Package modules lists the feature modules mounted by the web service.
package modules

import (
	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
	"github.com/aichenitrkl/chapterweb/internal/services/web/modules/about"
	"github.com/aichenitrkl/chapterweb/internal/services/web/modules/assets"
	"github.com/aichenitrkl/chapterweb/internal/services/web/modules/blogs"
	"github.com/aichenitrkl/chapterweb/internal/services/web/modules/contact"
	"github.com/aichenitrkl/chapterweb/internal/services/web/modules/events"
	"github.com/aichenitrkl/chapterweb/internal/services/web/modules/health"
	"github.com/aichenitrkl/chapterweb/internal/services/web/modules/home"
	"github.com/aichenitrkl/chapterweb/internal/services/web/modules/team"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/requestmeta"
)

// Options tunes module construction.
type Options struct {
	SchemePolicy requestmeta.SchemePolicy
}

// Default returns every module of the public site in navigation order,
// followed by infrastructure routes.
func Default(deps module.Dependencies, opts Options) []module.Module {
	return []module.Module{
		home.New(deps),
		about.New(deps),
		blogs.New(deps),
		team.New(deps),
		events.New(deps),
		contact.NewWithPolicy(deps, opts.SchemePolicy),
		health.New(deps),
		assets.New(),
	}
}

// PagePaths returns the fixed page routes a static export must render.
// Article routes are derived from content.
func PagePaths() []string {
	return []string{"/", "/about", "/blogs", "/team", "/events", "/contact"}
}
