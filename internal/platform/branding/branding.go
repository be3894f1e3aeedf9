// Package branding holds the chapter's display names.
package branding

import "strings"

// AppName is the full chapter name used in titles.
const AppName = "AIChE NIT Rourkela"

// ShortName is used where space is tight, such as the overlay and navbar.
const ShortName = "AIChE"

// PageTitle returns "{title} — AIChE NIT Rourkela", or just the app name for
// an empty title.
func PageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" || title == AppName {
		return AppName
	}
	return title + " — " + AppName
}
