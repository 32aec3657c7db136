package contact

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/evermore-weddings/evermore/internal/mail"
	"github.com/evermore-weddings/evermore/internal/models"
)

// fakeSender records sends and can fail selectively by recipient.
type fakeSender struct {
	sent   []mail.Message
	failTo map[string]error
}

func (f *fakeSender) Send(ctx context.Context, msg mail.Message) error {
	if len(msg.To) == 1 {
		if err, ok := f.failTo[msg.To[0]]; ok {
			return err
		}
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newTestService(sender mail.Sender) *Service {
	return NewService(sender, nil,
		"Evermore Weddings <hello@evermoreweddings.com>", "hello@evermoreweddings.com")
}

func validSubmission() models.ContactSubmission {
	return models.ContactSubmission{
		Name:  "Sam Lee",
		Email: "sam@example.com",
		Date:  "2026-06-14",
		Venue: "Hotel del Coronado",
	}
}

func TestHandleSuccess(t *testing.T) {
	sender := &fakeSender{}
	s := newTestService(sender)

	outcome, err := s.Handle(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if !outcome.ConfirmationSent || !outcome.NotificationSent {
		t.Errorf("outcome = %+v, want both sends recorded", outcome)
	}
	if len(sender.sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(sender.sent))
	}
	// confirmation before notification, sequentially
	if sender.sent[0].To[0] != "sam@example.com" {
		t.Errorf("first send went to %v, want submitter", sender.sent[0].To)
	}
	if sender.sent[1].To[0] != "hello@evermoreweddings.com" {
		t.Errorf("second send went to %v, want business", sender.sent[1].To)
	}
	if sender.sent[1].ReplyTo != "sam@example.com" {
		t.Errorf("notification reply-to = %q", sender.sent[1].ReplyTo)
	}
	// formatted date and venue land in the confirmation body
	for _, want := range []string{"Sunday, June 14, 2026", "Hotel del Coronado"} {
		if !strings.Contains(sender.sent[0].HTML, want) {
			t.Errorf("confirmation body missing %q", want)
		}
	}
}

func TestHandleNotificationFailureStillSucceeds(t *testing.T) {
	sender := &fakeSender{failTo: map[string]error{
		"hello@evermoreweddings.com": errors.New("provider rejected recipient"),
	}}
	s := newTestService(sender)

	outcome, err := s.Handle(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("notification failure must not fail the request, got %v", err)
	}
	if !outcome.ConfirmationSent {
		t.Error("confirmation not recorded")
	}
	if outcome.NotificationSent || outcome.NotificationErr == "" {
		t.Errorf("notification outcome not recorded: %+v", outcome)
	}
}

func TestHandleConfirmationFailureFails(t *testing.T) {
	sender := &fakeSender{failTo: map[string]error{
		"sam@example.com": errors.New("mailbox unavailable"),
	}}
	s := newTestService(sender)

	_, err := s.Handle(context.Background(), validSubmission())
	if err == nil {
		t.Fatal("confirmation failure must fail the request")
	}
	if !strings.Contains(err.Error(), "mailbox unavailable") {
		t.Errorf("provider message not surfaced: %v", err)
	}
	// the notification must not have been attempted successfully after
	// a failed confirmation
	if len(sender.sent) != 0 {
		t.Errorf("sent %d emails after failed confirmation, want 0", len(sender.sent))
	}
}

func TestHandleMissingRequiredFields(t *testing.T) {
	for name, sub := range map[string]models.ContactSubmission{
		"missing name":  {Email: "sam@example.com"},
		"missing email": {Name: "Sam Lee"},
		"bad email":     {Name: "Sam Lee", Email: "not-an-address"},
	} {
		t.Run(name, func(t *testing.T) {
			sender := &fakeSender{}
			s := newTestService(sender)

			_, err := s.Handle(context.Background(), sub)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error = %v, want ErrInvalid", err)
			}
			if len(sender.sent) != 0 {
				t.Errorf("invalid submission sent %d emails", len(sender.sent))
			}
		})
	}
}

func TestHandleUnconfiguredProvider(t *testing.T) {
	s := newTestService(nil)

	_, err := s.Handle(context.Background(), validSubmission())
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("error = %v, want ErrNotConfigured", err)
	}
}

func TestFormatWeddingDate(t *testing.T) {
	cases := map[string]string{
		"2026-06-14": "Sunday, June 14, 2026",
		"2025-12-31": "Wednesday, December 31, 2025",
		"":           "",
		"next june":  "next june", // unparseable input passes through
	}
	for in, want := range cases {
		if got := FormatWeddingDate(in); got != want {
			t.Errorf("FormatWeddingDate(%q) = %q, want %q", in, got, want)
		}
	}
}
