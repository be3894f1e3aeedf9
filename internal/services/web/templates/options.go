package templates

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aichenitrkl/chapterweb/internal/listing"
)

var lower = cases.Lower(language.Und)

// SortKey returns the message key for a sort label, such as
// "events.sort.most-attended" for "Most Attended".
func SortKey(namespace, label string) string {
	return namespace + ".sort." + strings.Join(strings.Fields(lower.String(label)), "-")
}

// EventFilterSelects builds the year, category, and sort selects for filter.
func EventFilterSelects(loc Localizer, years, categories []string, filter listing.EventFilter) (year, category, sort Select) {
	filter = filter.Normalize()

	year = Select{Name: "year", Label: T(loc, "events.filter_year")}
	year.Options = append(year.Options, Option{Value: listing.AllYears, Label: T(loc, "events.filter_all_years"), Selected: filter.Year == listing.AllYears})
	for _, y := range years {
		if y == listing.AllYears {
			continue
		}
		year.Options = append(year.Options, Option{Value: y, Label: y, Selected: filter.Year == y})
	}

	category = Select{Name: "category", Label: T(loc, "events.filter_category")}
	category.Options = append(category.Options, Option{Value: listing.AllCategories, Label: T(loc, "events.filter_all_categories"), Selected: filter.Category == listing.AllCategories})
	for _, c := range categories {
		if c == listing.AllCategories {
			continue
		}
		category.Options = append(category.Options, Option{Value: c, Label: c, Selected: filter.Category == c})
	}

	sort = Select{Name: "sort", Label: T(loc, "events.filter_sort")}
	for _, s := range listing.EventSorts() {
		sort.Options = append(sort.Options, Option{Value: string(s), Label: T(loc, SortKey("events", string(s))), Selected: filter.Sort == s})
	}
	return year, category, sort
}

// BlogFilterSelects builds the author and sort selects for filter.
func BlogFilterSelects(loc Localizer, authors []string, filter listing.BlogFilter) (author, sort Select) {
	filter = filter.Normalize()

	author = Select{Name: "author", Label: T(loc, "blogs.filter_author")}
	author.Options = append(author.Options, Option{Value: listing.AllAuthors, Label: T(loc, "blogs.filter_all_authors"), Selected: filter.Author == listing.AllAuthors})
	for _, a := range authors {
		author.Options = append(author.Options, Option{Value: a, Label: a, Selected: filter.Author == a})
	}

	sort = Select{Name: "sort", Label: T(loc, "blogs.filter_sort")}
	for _, s := range listing.BlogSorts() {
		sort.Options = append(sort.Options, Option{Value: string(s), Label: T(loc, SortKey("blogs", string(s))), Selected: filter.Sort == s})
	}
	return author, sort
}

// EventStatLabels returns the stats bar labels for the selected year and
// category.
func EventStatLabels(loc Localizer, filter listing.EventFilter) (year, category string) {
	filter = filter.Normalize()
	if filter.Year == listing.AllYears {
		year = T(loc, "events.stats_year_all")
	} else {
		year = T(loc, "events.stats_year", filter.Year)
	}
	if filter.Category == listing.AllCategories {
		category = T(loc, "events.stats_category_all")
	} else {
		category = T(loc, "events.stats_category", filter.Category)
	}
	return year, category
}
