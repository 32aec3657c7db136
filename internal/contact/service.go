package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/evermore-weddings/evermore/internal/logger"
	"github.com/evermore-weddings/evermore/internal/mail"
	"github.com/evermore-weddings/evermore/internal/models"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalid marks a submission missing required fields. Reported
	// as a client error; no emails are sent.
	ErrInvalid = errors.New("contact: invalid submission")

	// ErrNotConfigured means no mail provider key is set.
	ErrNotConfigured = errors.New("contact: mail provider is not configured")
)

// Service handles a contact submission: validate, format, send the
// confirmation to the submitter, then a best-effort notification to
// the business. The request succeeds once the confirmation is sent;
// a failed notification is recorded on the outcome, never surfaced.
type Service struct {
	sender     mail.Sender
	archive    *Archive
	from       string
	businessTo string
	validate   *validator.Validate
	now        func() time.Time
}

// NewService builds the intake handler. sender may be nil when the
// provider is unconfigured; archive may be nil when disabled.
func NewService(sender mail.Sender, archive *Archive, from, businessTo string) *Service {
	return &Service{
		sender:     sender,
		archive:    archive,
		from:       from,
		businessTo: businessTo,
		validate:   validator.New(),
		now:        time.Now,
	}
}

// Handle runs the intake flow for one submission.
func (s *Service) Handle(ctx context.Context, sub models.ContactSubmission) (*models.InquiryOutcome, error) {
	log := logger.Get()

	if err := s.validate.Struct(sub); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, describeFields(err))
	}
	if s.sender == nil {
		return nil, ErrNotConfigured
	}

	formattedDate := FormatWeddingDate(sub.Date)
	outcome := &models.InquiryOutcome{
		Submission: sub,
		ReceivedAt: s.now().UTC(),
	}

	// Confirmation first: the submitter must know we received them
	// before anything else happens. Its failure fails the request.
	err := s.sender.Send(ctx, mail.Message{
		From:    s.from,
		To:      []string{sub.Email},
		Subject: "We received your inquiry — Evermore Weddings",
		HTML:    mail.ConfirmationBody(sub, formattedDate),
	})
	if err != nil {
		return nil, fmt.Errorf("confirmation email: %w", err)
	}
	outcome.ConfirmationSent = true

	// Business notification is best effort. The submitter has already
	// been told of success, so this failure is only logged.
	err = s.sender.Send(ctx, mail.Message{
		From:    s.from,
		To:      []string{s.businessTo},
		ReplyTo: sub.Email,
		Subject: "New inquiry: " + sub.Name,
		HTML:    mail.NotificationBody(sub, formattedDate),
	})
	if err != nil {
		outcome.NotificationErr = err.Error()
		log.Error().Err(err).Str("email", sub.Email).
			Msg("business notification failed, submission already confirmed")
	} else {
		outcome.NotificationSent = true
	}

	if s.archive != nil {
		if err := s.archive.Store(ctx, *outcome); err != nil {
			log.Error().Err(err).Msg("inquiry archive write failed")
		}
	}

	return outcome, nil
}

// FormatWeddingDate renders an ISO date as its long human-readable
// form, e.g. "Sunday, June 14, 2026". Input that does not parse is
// passed through untouched.
func FormatWeddingDate(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("Monday, January 2, 2006")
}

func describeFields(err error) string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return err.Error()
	}
	fields := make([]string, 0, len(verr))
	for _, fe := range verr {
		fields = append(fields, strings.ToLower(fe.Field())+" ("+fe.Tag()+")")
	}
	return strings.Join(fields, ", ")
}
