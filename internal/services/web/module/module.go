// Package module defines the feature contract used by web composition.
package module

import (
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/aichenitrkl/chapterweb/internal/contactform"
	"github.com/aichenitrkl/chapterweb/internal/content"
	"github.com/aichenitrkl/chapterweb/internal/platform/imagehost"
	"github.com/aichenitrkl/chapterweb/internal/transition"
)

// ContentSource returns the current content snapshot.
type ContentSource interface {
	Catalog() *content.Catalog
}

// Dependencies carries what modules need to render pages.
type Dependencies struct {
	Content    ContentSource
	Transition transition.Config
	Images     imagehost.Policy
	Submitter  contactform.Submitter
	AssetBase  string
	// Now is the reference time for upcoming/past decisions.
	Now func() time.Time
	// NewRand seeds hero sprite placement.
	NewRand func() *rand.Rand
	// Logger receives handler failures; nil uses the standard logger.
	Logger *log.Logger
}

// Log returns the handler logger.
func (d Dependencies) Log() *log.Logger {
	if d.Logger == nil {
		return log.Default()
	}
	return d.Logger
}

// Catalog returns the current snapshot.
func (d Dependencies) Catalog() *content.Catalog {
	if d.Content == nil {
		return &content.Catalog{}
	}
	if c := d.Content.Catalog(); c != nil {
		return c
	}
	return &content.Catalog{}
}

// Clock returns the current reference time.
func (d Dependencies) Clock() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// Rand returns a sprite placement source.
func (d Dependencies) Rand() *rand.Rand {
	if d.NewRand == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return d.NewRand()
}

// Image resolves an image source against the allow-list and sizes it.
func (d Dependencies) Image(src string, widthPX int) string {
	return d.Images.Sized(src, widthPX)
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
