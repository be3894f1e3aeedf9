package contactform

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
)

// ErrInvalid is returned by Submit when the form fails validation.
var ErrInvalid = errors.New("contact form is invalid")

// Receipt acknowledges an accepted submission.
type Receipt struct {
	Reference  string
	ReceivedAt time.Time
}

// Submitter delivers a validated form.
type Submitter interface {
	Submit(ctx context.Context, form Form) (Receipt, error)
}

// Submit validates form and hands it to s. Invalid forms return their field
// errors and ErrInvalid without reaching s.
func Submit(ctx context.Context, s Submitter, form Form) (Receipt, FieldErrors, error) {
	if errs := form.Validate(); !errs.Valid() {
		return Receipt{}, errs, ErrInvalid
	}
	if s == nil {
		return Receipt{}, nil, errors.New("contact submitter is not configured")
	}
	receipt, err := s.Submit(ctx, form)
	if err != nil {
		return Receipt{}, nil, err
	}
	return receipt, nil, nil
}

// LogSubmitter accepts every submission and only writes it to the log. There
// is no delivery backend.
type LogSubmitter struct {
	logger *log.Logger
	now    func() time.Time
	newID  func() string
}

// NewLogSubmitter builds a LogSubmitter writing to logger, or the standard
// logger when nil.
func NewLogSubmitter(logger *log.Logger) *LogSubmitter {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSubmitter{
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Submit logs the submission with a fresh reference id.
func (s *LogSubmitter) Submit(ctx context.Context, form Form) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	receipt := Receipt{Reference: s.newID(), ReceivedAt: s.now().UTC()}
	s.logger.Printf(
		"contact submission reference=%s name=%q email=%q subject=%q message_chars=%d",
		receipt.Reference,
		form.Name,
		form.Email,
		form.Subject,
		form.MessageLength(),
	)
	return receipt, nil
}
