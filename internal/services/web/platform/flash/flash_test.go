package flash

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/requestmeta"
)

func TestWriteAndReadAndClearRoundTrip(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	writeRR := httptest.NewRecorder()

	Write(writeRR, req, Success("contact.success_body", "AICHE-1A2B"), requestmeta.SchemePolicy{})
	setCookie := writeRR.Header().Get("Set-Cookie")
	if setCookie == "" {
		t.Fatalf("expected Set-Cookie header")
	}
	cookie, err := http.ParseSetCookie(setCookie)
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}

	next := httptest.NewRequest(http.MethodGet, "/contact", nil)
	next.AddCookie(cookie)
	readRR := httptest.NewRecorder()
	notice, ok := ReadAndClear(readRR, next, requestmeta.SchemePolicy{})
	if !ok {
		t.Fatalf("ReadAndClear() ok = false, want true")
	}
	want := Notice{Kind: KindSuccess, Key: "contact.success_body", Ref: "AICHE-1A2B"}
	if diff := cmp.Diff(want, notice); diff != "" {
		t.Fatalf("notice mismatch (-want +got):\n%s", diff)
	}
	if cleared := readRR.Header().Get("Set-Cookie"); !strings.Contains(cleared, "Max-Age=0") {
		t.Fatalf("clear cookie = %q, want expired cookie", cleared)
	}
}

func TestReadAndClearInvalidCookieValueStillClears(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-base64!"})
	rr := httptest.NewRecorder()
	if _, ok := ReadAndClear(rr, req, requestmeta.SchemePolicy{}); ok {
		t.Fatalf("ReadAndClear() ok = true, want false")
	}
	if rr.Header().Get("Set-Cookie") == "" {
		t.Fatalf("expected clear Set-Cookie header")
	}
}

func TestReadAndClearWithoutCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if _, ok := ReadAndClear(rr, httptest.NewRequest(http.MethodGet, "/contact", nil), requestmeta.SchemePolicy{}); ok {
		t.Fatalf("ReadAndClear() ok = true, want false")
	}
	if rr.Header().Get("Set-Cookie") != "" {
		t.Fatalf("unexpected Set-Cookie without a pending notice")
	}
}

func TestWriteIgnoresInvalidNotice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	Write(rr, req, Notice{Kind: "loud", Key: "contact.success_body"}, requestmeta.SchemePolicy{})
	Write(rr, req, Notice{Kind: KindSuccess}, requestmeta.SchemePolicy{})
	if rr.Header().Get("Set-Cookie") != "" {
		t.Fatalf("expected invalid notices to be dropped")
	}
}
