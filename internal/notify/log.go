// Package notify delivers contact messages out of the web process.
package notify

import (
	"context"

	"go.uber.org/zap"

	"vado.sa/internal/models"
)

// LogSink writes contact messages to the structured log.
// It is the default when no broker is configured.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a LogSink
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Deliver logs the message
func (s *LogSink) Deliver(_ context.Context, msg models.ContactMessage) error {
	s.logger.Info("contact message",
		zap.String("id", msg.ID),
		zap.String("full_name", msg.FullName),
		zap.String("email", msg.Email),
		zap.String("phone", msg.Phone),
		zap.Int("message_len", len(msg.Message)),
		zap.Time("received_at", msg.ReceivedAt),
	)
	return nil
}
