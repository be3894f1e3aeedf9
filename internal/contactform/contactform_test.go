package contactform

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func validForm() Form {
	return Form{
		Name:    "Asha",
		Email:   "asha@example.org",
		Subject: "Workshop",
		Message: "Hello there",
	}
}

func TestValidateAcceptsValidForm(t *testing.T) {
	t.Parallel()

	if errs := validForm().Validate(); !errs.Valid() {
		t.Fatalf("Validate() = %v, want no errors", errs)
	}
}

func TestValidateMessageLengthBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		message string
		want    string
	}{
		{message: "123456789", want: KeyMessageShort},
		{message: "1234567890", want: ""},
		{message: "abécdefghï", want: ""},
		{message: strings.Repeat("a", MaxMessageLength), want: ""},
		{message: strings.Repeat("a", MaxMessageLength+1), want: KeyMessageLong},
		{message: "     ", want: KeyMessageRequired},
		{message: "", want: KeyMessageRequired},
	}
	for _, tc := range tests {
		form := validForm()
		form.Message = tc.message
		got := form.Validate()[FieldMessage]
		if got != tc.want {
			t.Fatalf("message of %d runes: error = %q, want %q", form.MessageLength(), got, tc.want)
		}
	}
}

func TestValidateReportsEveryFailingField(t *testing.T) {
	t.Parallel()

	form := Form{Name: " ", Email: "not-an-email", Subject: "", Message: "short", Website: "http://spam.example"}
	want := FieldErrors{
		FieldName:    KeyNameRequired,
		FieldEmail:   KeyEmailInvalid,
		FieldSubject: KeySubjectRequired,
		FieldMessage: KeyMessageShort,
		FieldWebsite: KeySpam,
	}
	if diff := cmp.Diff(want, form.Validate()); diff != "" {
		t.Fatalf("Validate() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                  KeyEmailRequired,
		"   ":               KeyEmailRequired,
		"a@b.c":             "",
		"a@b":               KeyEmailInvalid,
		"a b@c.d":           KeyEmailInvalid,
		"a@@b.c":            KeyEmailInvalid,
		"first.last@nit.in": "",
	}
	for email, want := range tests {
		form := validForm()
		form.Email = email
		if got := form.Validate()[FieldEmail]; got != want {
			t.Fatalf("email %q: error = %q, want %q", email, got, want)
		}
	}
}

func TestFromValuesAndRemaining(t *testing.T) {
	t.Parallel()

	form := FromValues(url.Values{"name": {"A"}, "email": {"a@b.co"}, "subject": {"S"}, "message": {"0123456789"}, "website": {""}})
	if form.Value(FieldMessage) != "0123456789" || form.Value(FieldName) != "A" {
		t.Fatalf("FromValues() = %+v", form)
	}
	if got := form.Remaining(); got != 990 {
		t.Fatalf("Remaining() = %d, want %d", got, 990)
	}
}

func TestMailtoURL(t *testing.T) {
	t.Parallel()

	form := Form{Name: "Asha", Email: "asha@example.org", Message: "Hi & bye"}
	got := form.MailtoURL("aiche@nitrkl.ac.in")
	want := "mailto:aiche@nitrkl.ac.in?subject=Hello%20from%20AIChE%20site&body=From%3A%20Asha%20%3Casha%40example.org%3E%0A%0AHi%20%26%20bye"
	if got != want {
		t.Fatalf("MailtoURL() = %q, want %q", got, want)
	}
}

type recordingSubmitter struct {
	calls int
	err   error
}

func (s *recordingSubmitter) Submit(context.Context, Form) (Receipt, error) {
	s.calls++
	return Receipt{Reference: "ref"}, s.err
}

func TestSubmitSkipsSubmitterForInvalidForm(t *testing.T) {
	t.Parallel()

	submitter := &recordingSubmitter{}
	form := validForm()
	form.Message = "too short"
	_, errs, err := Submit(context.Background(), submitter, form)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Submit() error = %v, want %v", err, ErrInvalid)
	}
	if errs[FieldMessage] != KeyMessageShort {
		t.Fatalf("field errors = %v", errs)
	}
	if submitter.calls != 0 {
		t.Fatalf("submitter calls = %d, want 0", submitter.calls)
	}
}

func TestSubmitPropagatesSubmitterError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, _, err := Submit(context.Background(), &recordingSubmitter{err: boom}, validForm())
	if !errors.Is(err, boom) {
		t.Fatalf("Submit() error = %v, want %v", err, boom)
	}
	if _, _, err := Submit(context.Background(), nil, validForm()); err == nil {
		t.Fatal("Submit(nil submitter) error = nil, want error")
	}
}

func TestLogSubmitterLogsReference(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	submitter := NewLogSubmitter(log.New(&buf, "", 0))
	submitter.newID = func() string { return "3f1c8a9e-0000-4000-8000-000000000001" }
	submitter.now = func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) }

	receipt, errs, err := Submit(context.Background(), submitter, validForm())
	if err != nil || !errs.Valid() {
		t.Fatalf("Submit() = %v, %v", errs, err)
	}
	if receipt.Reference != "3f1c8a9e-0000-4000-8000-000000000001" {
		t.Fatalf("reference = %q", receipt.Reference)
	}
	line := buf.String()
	for _, want := range []string{"reference=3f1c8a9e-0000-4000-8000-000000000001", `email="asha@example.org"`, "message_chars=11"} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line %q missing %q", line, want)
		}
	}
}

func TestLogSubmitterHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewLogSubmitter(log.New(&bytes.Buffer{}, "", 0)).Submit(ctx, validForm()); !errors.Is(err, context.Canceled) {
		t.Fatalf("Submit() error = %v, want %v", err, context.Canceled)
	}
}
