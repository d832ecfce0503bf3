package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vado.sa/internal/interaction"
	"vado.sa/internal/models"
)

// Contact form field names, shared by the markup and the JSON API
const (
	FieldFullName = "fullName"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldMessage  = "message"
)

var (
	// ErrMissingField is returned when a required field is blank
	ErrMissingField = errors.New("missing required field")
	// ErrAlreadySubmitted is returned while the confirmation is still showing
	ErrAlreadySubmitted = errors.New("form already submitted")
)

// RequiredFields returns the fields marked required on the form
func RequiredFields() []string {
	return []string{FieldFullName, FieldEmail, FieldMessage}
}

// Sink delivers contact messages to whoever answers them
type Sink interface {
	Deliver(ctx context.Context, msg models.ContactMessage) error
}

// ContactService runs contact form submissions
type ContactService struct {
	sink       Sink
	logger     *zap.Logger
	clock      interaction.Clock
	resetAfter time.Duration
	now        func() time.Time
	newID      func() string
}

// NewContactService creates a ContactService.
// A zero resetAfter uses interaction.ResetDelay.
func NewContactService(sink Sink, logger *zap.Logger, clock interaction.Clock, resetAfter time.Duration) *ContactService {
	if resetAfter <= 0 {
		resetAfter = interaction.ResetDelay
	}
	return &ContactService{
		sink:       sink,
		logger:     logger,
		clock:      clock,
		resetAfter: resetAfter,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// NewForm creates an empty contact form bound to the service's reset delay
func (s *ContactService) NewForm() *interaction.Form {
	return interaction.NewForm(s.clock, s.resetAfter, FieldFullName, FieldEmail, FieldPhone, FieldMessage)
}

// ResetAfter is how long the confirmation stays visible
func (s *ContactService) ResetAfter() time.Duration { return s.resetAfter }

// Submit validates the form, moves it to the submitted state and delivers
// the message. Missing fields are reported all at once.
func (s *ContactService) Submit(ctx context.Context, form *interaction.Form) (models.ContactMessage, error) {
	snap := form.Snapshot()
	if snap.Submitted {
		return models.ContactMessage{}, ErrAlreadySubmitted
	}

	var missing []string
	for _, name := range RequiredFields() {
		if strings.TrimSpace(snap.Fields[name]) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return models.ContactMessage{}, &MissingFieldsError{Fields: missing}
	}

	if !form.Submit() {
		return models.ContactMessage{}, ErrAlreadySubmitted
	}

	msg := models.ContactMessage{
		ID:         s.newID(),
		FullName:   strings.TrimSpace(snap.Fields[FieldFullName]),
		Email:      strings.TrimSpace(snap.Fields[FieldEmail]),
		Phone:      strings.TrimSpace(snap.Fields[FieldPhone]),
		Message:    strings.TrimSpace(snap.Fields[FieldMessage]),
		ReceivedAt: s.now().UTC(),
	}

	if err := s.sink.Deliver(ctx, msg); err != nil {
		s.logger.Error("contact delivery failed", zap.String("id", msg.ID), zap.Error(err))
		return msg, fmt.Errorf("deliver contact message: %w", err)
	}

	s.logger.Info("contact message received", zap.String("id", msg.ID))
	return msg, nil
}

// MissingFieldsError lists the required fields left blank
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, strings.Join(e.Fields, ", "))
}

// Unwrap lets errors.Is match ErrMissingField
func (e *MissingFieldsError) Unwrap() error { return ErrMissingField }
