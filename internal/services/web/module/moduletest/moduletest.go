// Package moduletest builds module dependencies over the embedded content for
// handler tests.
package moduletest

import (
	"io"
	"log"
	"math/rand"
	"testing"
	"time"

	"github.com/aichenitrkl/chapterweb/internal/contactform"
	"github.com/aichenitrkl/chapterweb/internal/content"
	"github.com/aichenitrkl/chapterweb/internal/platform/imagehost"
	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
	"github.com/aichenitrkl/chapterweb/internal/transition"
)

// Now is the reference time used by Dependencies. Three embedded events are
// upcoming at this time.
var Now = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

// Dependencies returns deps serving the embedded content at Now with a fixed
// sprite seed and a submitter that logs nowhere.
func Dependencies(t testing.TB) module.Dependencies {
	t.Helper()

	store, err := content.NewStore(content.Embedded())
	if err != nil {
		t.Fatalf("content.NewStore() error = %v", err)
	}
	return module.Dependencies{
		Content:    store,
		Transition: transition.DefaultConfig(),
		Images:     imagehost.Policy{},
		Submitter:  contactform.NewLogSubmitter(log.New(io.Discard, "", 0)),
		AssetBase:  "/static",
		Now:        func() time.Time { return Now },
		NewRand:    func() *rand.Rand { return rand.New(rand.NewSource(7)) },
		Logger:     log.New(io.Discard, "", 0),
	}
}
