package contact

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/aichenitrkl/chapterweb/internal/contactform"
	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
	"github.com/aichenitrkl/chapterweb/internal/services/web/module/moduletest"
	"github.com/aichenitrkl/chapterweb/internal/services/web/platform/flash"
)

type fakeSubmitter struct {
	receipt contactform.Receipt
	err     error
	calls   int
}

func (s *fakeSubmitter) Submit(context.Context, contactform.Form) (contactform.Receipt, error) {
	s.calls++
	return s.receipt, s.err
}

func mountWith(t *testing.T, submitter contactform.Submitter) http.Handler {
	t.Helper()

	deps := moduletest.Dependencies(t)
	if submitter != nil {
		deps.Submitter = submitter
	}
	return mount(t, deps)
}

func mount(t *testing.T, deps module.Dependencies) http.Handler {
	t.Helper()

	m, err := New(deps).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return m.Handler
}

func validForm() url.Values {
	return url.Values{
		"name":    {"Asha Rao"},
		"email":   {"asha@example.com"},
		"subject": {"Plant visit"},
		"message": {"When is the next plant visit?"},
	}
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", "http://example.com")
	return req
}

func TestContactPageRendersForm(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountWith(t, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/contact", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		`name="name"`,
		`type="email" name="email"`,
		`<textarea id="contact-message" name="message"`,
		`class="honeypot"`,
		`<span data-remaining>1000</span> characters remaining`,
		"mailto:",
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
}

func TestSubmitValidFormRedirectsWithNotice(t *testing.T) {
	t.Parallel()

	submitter := &fakeSubmitter{receipt: contactform.Receipt{Reference: "ref-42"}}
	handler := mountWith(t, submitter)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, postForm(validForm()))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != "/contact" {
		t.Fatalf("Location = %q, want %q", got, "/contact")
	}
	if submitter.calls != 1 {
		t.Fatalf("submitter calls = %d, want 1", submitter.calls)
	}

	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.Name != flash.CookieName {
		t.Fatalf("cookie = %q, want %q", cookie.Name, flash.CookieName)
	}
	next := httptest.NewRequest(http.MethodGet, "/contact", nil)
	next.AddCookie(cookie)
	page := httptest.NewRecorder()
	handler.ServeHTTP(page, next)
	if !strings.Contains(page.Body.String(), "Your reference is ref-42.") {
		t.Fatalf("follow-up page missing receipt: %q", page.Body.String())
	}
}

func TestSubmitHTMXUsesRedirectHeader(t *testing.T) {
	t.Parallel()

	req := postForm(validForm())
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	mountWith(t, &fakeSubmitter{receipt: contactform.Receipt{Reference: "ref"}}).ServeHTTP(rr, req)
	if got := rr.Header().Get("HX-Redirect"); got != "/contact" {
		t.Fatalf("HX-Redirect = %q, want %q", got, "/contact")
	}
}

func TestSubmitInvalidFormRendersFieldErrors(t *testing.T) {
	t.Parallel()

	submitter := &fakeSubmitter{}
	values := validForm()
	values.Set("email", "not-an-email")
	values.Set("message", "too short")

	rr := httptest.NewRecorder()
	mountWith(t, submitter).ServeHTTP(rr, postForm(values))
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusUnprocessableEntity)
	}
	if submitter.calls != 0 {
		t.Fatalf("submitter reached with an invalid form")
	}
	body := rr.Body.String()
	for _, marker := range []string{
		"Please fix the highlighted fields.",
		"Enter a valid email address.",
		"Message must be at least 10 characters.",
		`value="Asha Rao"`,
		`<span data-remaining>991</span> characters remaining`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
}

func TestSubmitHoneypotRejectsAsSpam(t *testing.T) {
	t.Parallel()

	submitter := &fakeSubmitter{}
	values := validForm()
	values.Set("website", "http://spam.example")

	rr := httptest.NewRecorder()
	mountWith(t, submitter).ServeHTTP(rr, postForm(values))
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusUnprocessableEntity)
	}
	if submitter.calls != 0 {
		t.Fatalf("submitter reached with a spam form")
	}
	if !strings.Contains(rr.Body.String(), "Spam detected.") {
		t.Fatalf("body missing spam banner")
	}
}

func TestSubmitFailureRendersUnavailable(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	deps := moduletest.Dependencies(t)
	deps.Submitter = &fakeSubmitter{err: errors.New("smtp down")}
	deps.Logger = log.New(&logs, "", 0)
	rr := httptest.NewRecorder()
	mount(t, deps).ServeHTTP(rr, postForm(validForm()))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "We could not send your message.") {
		t.Fatalf("body missing failure banner")
	}
	if strings.Contains(body, "smtp down") {
		t.Fatalf("body leaked submitter error")
	}
	if !strings.Contains(logs.String(), "web: contact submit") || !strings.Contains(logs.String(), "smtp down") {
		t.Fatalf("handler logger missing submit failure: %q", logs.String())
	}
}

func TestSubmitRejectsCrossOrigin(t *testing.T) {
	t.Parallel()

	submitter := &fakeSubmitter{}
	req := postForm(validForm())
	req.Header.Set("Origin", "https://evil.example")
	rr := httptest.NewRecorder()
	mountWith(t, submitter).ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}
	if submitter.calls != 0 {
		t.Fatalf("submitter reached from a foreign origin")
	}
}

func TestSubmitRejectsOversizedBody(t *testing.T) {
	t.Parallel()

	submitter := &fakeSubmitter{}
	values := validForm()
	values.Set("message", strings.Repeat("a", maxFormLen))
	rr := httptest.NewRecorder()
	mountWith(t, submitter).ServeHTTP(rr, postForm(values))
	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusRequestEntityTooLarge)
	}
	if submitter.calls != 0 {
		t.Fatalf("submitter reached with an oversized form")
	}
}
