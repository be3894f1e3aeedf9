package templates

import (
	"fmt"

	"golang.org/x/text/message"
)

// Localizer provides translated strings for templates.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns a translated string or a key-derived fallback.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		if len(args) > 0 {
			return fmt.Sprintf(keyString, args...)
		}
		return keyString
	}
	return ""
}

// Copy gives view models a T method usable from templates as {{.T "key"}}.
type Copy struct {
	Loc Localizer
}

// T translates key with the view's localizer.
func (c Copy) T(key string, args ...any) string {
	return T(c.Loc, key, args...)
}
