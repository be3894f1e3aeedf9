// Package contactform validates and hands off contact page submissions.
package contactform

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MinMessageLength is the shortest accepted message, in characters.
	MinMessageLength = 10
	// MaxMessageLength is the longest accepted message, in characters.
	MaxMessageLength = 1000
)

// Field names a form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
	// FieldWebsite is a honeypot hidden from people; bots fill it in.
	FieldWebsite Field = "website"
)

// Fields lists the inputs in display order.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldSubject, FieldMessage, FieldWebsite}
}

// Localization keys for field errors.
const (
	KeyNameRequired    = "contact.error.name_required"
	KeyEmailRequired   = "contact.error.email_required"
	KeyEmailInvalid    = "contact.error.email_invalid"
	KeySubjectRequired = "contact.error.subject_required"
	KeyMessageRequired = "contact.error.message_required"
	KeyMessageShort    = "contact.error.message_short"
	KeyMessageLong     = "contact.error.message_long"
	KeySpam            = "contact.error.spam"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form is a contact submission as posted.
type Form struct {
	Name    string
	Email   string
	Subject string
	Message string
	Website string
}

// FromValues reads a Form from posted form values.
func FromValues(values url.Values) Form {
	return Form{
		Name:    values.Get(string(FieldName)),
		Email:   values.Get(string(FieldEmail)),
		Subject: values.Get(string(FieldSubject)),
		Message: values.Get(string(FieldMessage)),
		Website: values.Get(string(FieldWebsite)),
	}
}

// Value returns the raw value of a field.
func (f Form) Value(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldSubject:
		return f.Subject
	case FieldMessage:
		return f.Message
	case FieldWebsite:
		return f.Website
	default:
		return ""
	}
}

// MessageLength counts message characters as runes.
func (f Form) MessageLength() int {
	return utf8.RuneCountInString(f.Message)
}

// Remaining is how many characters the message may still grow by.
func (f Form) Remaining() int {
	return MaxMessageLength - f.MessageLength()
}

// FieldErrors maps a field to the localization key of its first failure.
type FieldErrors map[Field]string

// Valid reports whether there are no field errors.
func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// Validate checks every rule and returns one error key per failing field.
func (f Form) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs[FieldName] = KeyNameRequired
	}
	switch {
	case strings.TrimSpace(f.Email) == "":
		errs[FieldEmail] = KeyEmailRequired
	case !emailPattern.MatchString(f.Email):
		errs[FieldEmail] = KeyEmailInvalid
	}
	if strings.TrimSpace(f.Subject) == "" {
		errs[FieldSubject] = KeySubjectRequired
	}
	switch length := f.MessageLength(); {
	case strings.TrimSpace(f.Message) == "":
		errs[FieldMessage] = KeyMessageRequired
	case length < MinMessageLength:
		errs[FieldMessage] = KeyMessageShort
	case length > MaxMessageLength:
		errs[FieldMessage] = KeyMessageLong
	}
	if strings.TrimSpace(f.Website) != "" {
		errs[FieldWebsite] = KeySpam
	}
	return errs
}

// MailtoURL builds the "use your email client" fallback link for the form.
func (f Form) MailtoURL(to string) string {
	subject := strings.TrimSpace(f.Subject)
	if subject == "" {
		subject = "Hello from AIChE site"
	}
	body := "From: " + f.Name + " <" + f.Email + ">\n\n" + f.Message
	query := "subject=" + componentEscape(subject) + "&body=" + componentEscape(body)
	return "mailto:" + to + "?" + query
}

// componentEscape escapes spaces as %20; mail clients show a literal "+".
func componentEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
