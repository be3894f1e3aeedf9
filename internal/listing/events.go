// Package listing filters and orders the event and blog listings.
//
// Every function here is pure: the visible list depends only on the filter,
// the content records, and the reference time passed in.
package listing

import (
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/aichenitrkl/chapterweb/internal/content"
)

const (
	// AllYears is the academic year wildcard.
	AllYears = "All Years"
	// AllCategories is the category wildcard.
	AllCategories = "All"
)

// EventSort names an event ordering.
type EventSort string

const (
	SortNewest        EventSort = "Newest"
	SortOldest        EventSort = "Oldest"
	SortMostAttended  EventSort = "Most Attended"
	SortUpcomingFirst EventSort = "Upcoming First"
)

// EventSorts lists the orderings offered in the page, default first.
func EventSorts() []EventSort {
	return []EventSort{SortUpcomingFirst, SortNewest, SortOldest, SortMostAttended}
}

func (s EventSort) known() bool {
	return slices.Contains(EventSorts(), s)
}

// EventFilter is the event listing state carried in the query string.
type EventFilter struct {
	Year     string
	Category string
	Query    string
	Sort     EventSort
}

// DefaultEventFilter matches everything, upcoming events first.
func DefaultEventFilter() EventFilter {
	return EventFilter{Year: AllYears, Category: AllCategories, Sort: SortUpcomingFirst}
}

// EventFilterFromQuery reads year, category, q, and sort.
func EventFilterFromQuery(values url.Values) EventFilter {
	return EventFilter{
		Year:     values.Get("year"),
		Category: values.Get("category"),
		Query:    values.Get("q"),
		Sort:     EventSort(values.Get("sort")),
	}.Normalize()
}

// Normalize fills wildcards for empty fields and replaces an unknown sort
// with SortUpcomingFirst.
func (f EventFilter) Normalize() EventFilter {
	f.Year = strings.TrimSpace(f.Year)
	if f.Year == "" {
		f.Year = AllYears
	}
	f.Category = strings.TrimSpace(f.Category)
	if f.Category == "" {
		f.Category = AllCategories
	}
	f.Query = strings.TrimSpace(f.Query)
	if !f.Sort.known() {
		f.Sort = SortUpcomingFirst
	}
	return f
}

// IsDefault reports whether the filter shows the unfiltered listing.
func (f EventFilter) IsDefault() bool {
	return f.Normalize() == DefaultEventFilter()
}

// Values encodes the non-default fields as query parameters.
func (f EventFilter) Values() url.Values {
	f = f.Normalize()
	values := url.Values{}
	if f.Year != AllYears {
		values.Set("year", f.Year)
	}
	if f.Category != AllCategories {
		values.Set("category", f.Category)
	}
	if f.Query != "" {
		values.Set("q", f.Query)
	}
	if f.Sort != SortUpcomingFirst {
		values.Set("sort", string(f.Sort))
	}
	return values
}

// Matches reports whether an event satisfies the year, category, and query
// predicates.
func (f EventFilter) Matches(event content.Event) bool {
	f = f.Normalize()
	if f.Year != AllYears && event.AcademicYear != f.Year {
		return false
	}
	if f.Category != AllCategories && event.Category != f.Category {
		return false
	}
	query := strings.ToLower(f.Query)
	if query == "" {
		return true
	}
	fields := append([]string{event.Title, event.Description, event.Location, event.Story, event.Impact}, event.Highlights...)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// FilterEvents returns the matching events in the filter's order. The input
// slice is not modified; ties keep content order.
func FilterEvents(events []content.Event, filter EventFilter, now time.Time) []content.Event {
	filter = filter.Normalize()
	out := make([]content.Event, 0, len(events))
	for _, event := range events {
		if filter.Matches(event) {
			out = append(out, event)
		}
	}
	slices.SortStableFunc(out, eventOrder(filter.Sort, now))
	return out
}

func eventOrder(sort EventSort, now time.Time) func(a, b content.Event) int {
	switch sort {
	case SortNewest:
		return func(a, b content.Event) int { return b.Date.Compare(a.Date) }
	case SortOldest:
		return func(a, b content.Event) int { return a.Date.Compare(b.Date) }
	case SortMostAttended:
		return func(a, b content.Event) int { return b.Attendees - a.Attendees }
	default:
		return func(a, b content.Event) int {
			aUpcoming, bUpcoming := a.IsUpcoming(now), b.IsUpcoming(now)
			switch {
			case aUpcoming && !bUpcoming:
				return -1
			case !aUpcoming && bUpcoming:
				return 1
			case aUpcoming:
				return a.Date.Compare(b.Date)
			default:
				return b.Date.Compare(a.Date)
			}
		}
	}
}

// EventStats summarises the listing for the stats bar.
type EventStats struct {
	Total         int
	Upcoming      int
	YearCount     int
	CategoryCount int
}

// StatsForEvents counts all events, upcoming events, and events in the
// selected year and category. A wildcard selection counts everything.
func StatsForEvents(events []content.Event, filter EventFilter, now time.Time) EventStats {
	filter = filter.Normalize()
	stats := EventStats{Total: len(events)}
	for _, event := range events {
		if event.IsUpcoming(now) {
			stats.Upcoming++
		}
		if filter.Year == AllYears || event.AcademicYear == filter.Year {
			stats.YearCount++
		}
		if filter.Category == AllCategories || event.Category == filter.Category {
			stats.CategoryCount++
		}
	}
	return stats
}
