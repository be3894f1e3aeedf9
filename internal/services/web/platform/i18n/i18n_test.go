package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveTagPrefersQueryThenCookieThenHeader(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/events?lang=en-US", nil)
	tag, persist := ResolveTag(req)
	if tag.String() != "en-US" || !persist {
		t.Fatalf("ResolveTag(query) = %v, %v", tag, persist)
	}

	req = httptest.NewRequest(http.MethodGet, "/events", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en-US"})
	tag, persist = ResolveTag(req)
	if tag.String() != "en-US" || persist {
		t.Fatalf("ResolveTag(cookie) = %v, %v", tag, persist)
	}

	req = httptest.NewRequest(http.MethodGet, "/events", nil)
	req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")
	if tag, _ := ResolveTag(req); tag != Default() {
		t.Fatalf("ResolveTag(unsupported header) = %v, want %v", tag, Default())
	}
	if tag, _ := ResolveTag(nil); tag != Default() {
		t.Fatalf("ResolveTag(nil) = %v, want %v", tag, Default())
	}
}

func TestResolveLocalizerPersistsQueryLanguage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	loc, lang := ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/?lang=en", nil))
	if lang != "en-US" {
		t.Fatalf("lang = %q, want %q", lang, "en-US")
	}
	if got := loc.Sprintf("blogs.read_minutes", 3); got != "3 min read" {
		t.Fatalf("Sprintf() = %q, want %q", got, "3 min read")
	}
	if cookies := rr.Result().Cookies(); len(cookies) != 1 || cookies[0].Name != LangCookieName {
		t.Fatalf("cookies = %v, want %s", cookies, LangCookieName)
	}

	rr = httptest.NewRecorder()
	ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if cookies := rr.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("cookies = %v, want none", cookies)
	}
}
