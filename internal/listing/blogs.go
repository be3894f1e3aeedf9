package listing

import (
	"net/url"
	"slices"
	"strings"

	"github.com/aichenitrkl/chapterweb/internal/content"
)

// AllAuthors is the author wildcard.
const AllAuthors = ""

// BlogSort names a blog ordering.
type BlogSort string

const (
	SortFeatured BlogSort = "Featured"
	SortTitle    BlogSort = "Title"
	SortQuickest BlogSort = "Quickest Read"
	SortLongest  BlogSort = "Longest Read"
)

// BlogSorts lists the orderings offered in the page, default first.
func BlogSorts() []BlogSort {
	return []BlogSort{SortFeatured, SortTitle, SortQuickest, SortLongest}
}

// BlogFilter is the blog listing state carried in the query string.
type BlogFilter struct {
	Query  string
	Author string
	Sort   BlogSort
}

// DefaultBlogFilter shows every post in content order.
func DefaultBlogFilter() BlogFilter {
	return BlogFilter{Sort: SortFeatured}
}

// BlogFilterFromQuery reads q, author, and sort.
func BlogFilterFromQuery(values url.Values) BlogFilter {
	return BlogFilter{
		Query:  values.Get("q"),
		Author: values.Get("author"),
		Sort:   BlogSort(values.Get("sort")),
	}.Normalize()
}

// Normalize trims fields and replaces an unknown sort with SortFeatured.
func (f BlogFilter) Normalize() BlogFilter {
	f.Query = strings.TrimSpace(f.Query)
	f.Author = strings.TrimSpace(f.Author)
	if !slices.Contains(BlogSorts(), f.Sort) {
		f.Sort = SortFeatured
	}
	return f
}

// IsDefault reports whether the filter shows the unfiltered listing.
func (f BlogFilter) IsDefault() bool {
	return f.Normalize() == DefaultBlogFilter()
}

// Matches reports whether a post satisfies the author and query predicates.
func (f BlogFilter) Matches(post content.BlogPost) bool {
	f = f.Normalize()
	author := post.Author.DisplayName()
	if f.Author != AllAuthors && author != f.Author {
		return false
	}
	query := strings.ToLower(f.Query)
	if query == "" {
		return true
	}
	for _, field := range []string{post.Title, post.Excerpt, author} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// FilterPosts returns the matching posts in the filter's order. Ties keep
// content order.
func FilterPosts(posts []content.BlogPost, filter BlogFilter) []content.BlogPost {
	filter = filter.Normalize()
	out := make([]content.BlogPost, 0, len(posts))
	for _, post := range posts {
		if filter.Matches(post) {
			out = append(out, post)
		}
	}
	switch filter.Sort {
	case SortTitle:
		slices.SortStableFunc(out, func(a, b content.BlogPost) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		})
	case SortQuickest:
		slices.SortStableFunc(out, func(a, b content.BlogPost) int { return a.ReadMinutes - b.ReadMinutes })
	case SortLongest:
		slices.SortStableFunc(out, func(a, b content.BlogPost) int { return b.ReadMinutes - a.ReadMinutes })
	}
	return out
}
