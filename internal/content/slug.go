package content

import (
	"regexp"
	"strings"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases s and collapses every run of characters outside
// [a-z0-9] into a single dash, trimming dashes at either end.
func Slugify(s string) string {
	slug := nonSlugRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
	return strings.Trim(slug, "-")
}

// LastSegment returns the final path segment of p, ignoring trailing slashes.
func LastSegment(p string) string {
	p = strings.TrimRight(p, "/")
	if idx := strings.LastIndex(p, "/"); idx >= 0 {
		return p[idx+1:]
	}
	return p
}

// ResolvePost finds the post a route segment refers to.
//
// segment must already be URL-decoded, as http.Request.PathValue returns
// it. It is matched against, in order, the exact post title, the slugified
// title, and the last segment of the post link. The first rule with any
// match wins.
func (c *Catalog) ResolvePost(segment string) (BlogPost, bool) {
	if segment == "" {
		return BlogPost{}, false
	}
	rules := []func(BlogPost) string{
		func(p BlogPost) string { return p.Title },
		func(p BlogPost) string { return Slugify(p.Title) },
		func(p BlogPost) string { return LastSegment(p.Link) },
	}
	for _, key := range rules {
		for _, post := range c.Posts {
			if key(post) == segment {
				return post, true
			}
		}
	}
	return BlogPost{}, false
}

// PostSegments lists every route segment that resolves to a post: titles,
// slugified titles, and link segments, without duplicates.
func (c *Catalog) PostSegments() []string {
	seen := make(map[string]bool, len(c.Posts)*3)
	var out []string
	for _, post := range c.Posts {
		for _, segment := range []string{post.Title, Slugify(post.Title), LastSegment(post.Link)} {
			if segment == "" || seen[segment] {
				continue
			}
			seen[segment] = true
			out = append(out, segment)
		}
	}
	return out
}
