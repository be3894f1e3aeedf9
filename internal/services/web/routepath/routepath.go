// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root         = "/"
	About        = "/about"
	Contact      = "/contact"
	Blogs        = "/blogs"
	BlogsPrefix  = "/blogs/"
	BlogPattern  = BlogsPrefix + "{slug}"
	Team         = "/team"
	Events       = "/events"
	Health       = "/up"
	StaticPrefix = "/static/"
)

// Pages lists the fixed page routes in navigation order.
func Pages() []string {
	return []string{Root, About, Events, Blogs, Team, Contact}
}

// BlogPost returns the article route for a slug.
func BlogPost(slug string) string {
	return BlogsPrefix + url.PathEscape(strings.TrimSpace(slug))
}

// IsActive reports whether a nav link to href is active on current. The root
// link is active only on an exact match; other links also match sub-paths.
func IsActive(current, href string) bool {
	current = strings.TrimSpace(current)
	href = strings.TrimSpace(href)
	if href == "" {
		return false
	}
	if href == Root {
		return current == Root
	}
	return current == href || strings.HasPrefix(current, strings.TrimSuffix(href, "/")+"/")
}
