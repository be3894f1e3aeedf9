package catalog

import (
	"strings"
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasBaseLocale(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	for _, namespace := range []string{"layout", "nav", "home", "about", "events", "blogs", "team", "contact", "error"} {
		if got := len(bundle.Keys(BaseLocale, namespace)); got == 0 {
			t.Fatalf("namespace %q has no messages", namespace)
		}
	}
}

func TestDefaultRegistersMessages(t *testing.T) {
	t.Parallel()

	_ = Default()
	p := message.NewPrinter(language.MustParse("en-US"))
	if got := p.Sprintf("blogs.read_minutes", 4); got != "4 min read" {
		t.Fatalf("Sprintf(blogs.read_minutes) = %q, want %q", got, "4 min read")
	}
	if got := p.Sprintf("layout.copyright", "2024", "AIChE NIT Rourkela"); got != "© 2024 AIChE NIT Rourkela. All rights reserved." {
		t.Fatalf("Sprintf(layout.copyright) = %q", got)
	}
	p = message.NewPrinter(language.English)
	if got := p.Sprintf("contact.error.spam"); got != "Spam detected." {
		t.Fatalf("Sprintf(contact.error.spam) = %q, want %q", got, "Spam detected.")
	}
}

func TestLoadFromFSValidation(t *testing.T) {
	t.Parallel()

	tests := map[string]fstest.MapFS{
		"key outside namespace": {
			"locales/en-US/home.yaml": {Data: []byte("locale: \"en-US\"\nnamespace: \"home\"\nmessages:\n  \"team.title\": \"x\"\n")},
		},
		"locale mismatch": {
			"locales/en-US/home.yaml": {Data: []byte("locale: \"hi-IN\"\nnamespace: \"home\"\nmessages:\n  \"home.title\": \"x\"\n")},
		},
		"namespace mismatch": {
			"locales/en-US/home.yaml": {Data: []byte("locale: \"en-US\"\nnamespace: \"team\"\nmessages:\n  \"team.title\": \"x\"\n")},
		},
		"unknown field": {
			"locales/en-US/home.yaml": {Data: []byte("locale: \"en-US\"\nnamespace: \"home\"\nmsgs:\n  \"home.title\": \"x\"\n")},
		},
		"empty messages": {
			"locales/en-US/home.yaml": {Data: []byte("locale: \"en-US\"\nnamespace: \"home\"\nmessages: {}\n")},
		},
		"missing base locale": {
			"locales/hi-IN/home.yaml": {Data: []byte("locale: \"hi-IN\"\nnamespace: \"home\"\nmessages:\n  \"home.title\": \"x\"\n")},
		},
		"no files": {},
	}
	for name, fsys := range tests {
		if _, err := LoadFromFS(fsys); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	t.Parallel()

	bundle, err := LoadFromFS(fstest.MapFS{
		"locales/en-US/home.yaml": {Data: []byte("locale: \"en-US\"\nnamespace: \"home\"\nmessages:\n  \"home.title\": \"Home\"\n  \"home.cta\": \"Go\"\n")},
		"locales/hi-IN/home.yaml": {Data: []byte("locale: \"hi-IN\"\nnamespace: \"home\"\nmessages:\n  \"home.title\": \"मुखपृष्ठ\"\n")},
	})
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	if got, _ := bundle.Message("hi-IN", "home.title"); got != "मुखपृष्ठ" {
		t.Fatalf("Message(hi-IN, home.title) = %q", got)
	}
	if got, ok := bundle.Message("hi-IN", "home.cta"); !ok || got != "Go" {
		t.Fatalf("Message(hi-IN, home.cta) = %q, %v, want base fallback", got, ok)
	}
	if _, ok := bundle.Message("hi-IN", "home.missing"); ok {
		t.Fatal("Message(missing) ok = true")
	}
	tags := bundle.Tags()
	if len(tags) != 2 || tags[0] != language.MustParse(BaseLocale) {
		t.Fatalf("Tags() = %v", tags)
	}
	if strings.Join(bundle.Locales(), ",") != "en-US,hi-IN" {
		t.Fatalf("Locales() = %v", bundle.Locales())
	}
}
