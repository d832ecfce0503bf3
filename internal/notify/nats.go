package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"vado.sa/internal/models"
)

// DefaultSubject is where contact messages are published
const DefaultSubject = "vado.contact.received"

// Publisher is the part of *nats.Conn the sink needs
type Publisher interface {
	PublishMsg(m *nats.Msg) error
	FlushWithContext(ctx context.Context) error
}

// NATSSink publishes contact messages as JSON on a NATS subject
type NATSSink struct {
	conn    Publisher
	subject string
}

// NewNATSSink wraps an existing connection
func NewNATSSink(conn Publisher, subject string) *NATSSink {
	if subject == "" {
		subject = DefaultSubject
	}
	return &NATSSink{conn: conn, subject: subject}
}

// ConnectNATS dials the broker and returns a sink plus a close function
func ConnectNATS(url, subject string, logger *zap.Logger) (*NATSSink, func(), error) {
	nc, err := nats.Connect(url,
		nats.Name("vado-site"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", zap.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connect nats %s: %w", url, err)
	}
	return NewNATSSink(nc, subject), nc.Close, nil
}

// Deliver publishes msg and waits for the server to acknowledge the flush.
// The message id doubles as the de-duplication id for JetStream streams.
func (s *NATSSink) Deliver(ctx context.Context, msg models.ContactMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode contact message: %w", err)
	}

	m := nats.NewMsg(s.subject)
	m.Data = data
	m.Header.Set(nats.MsgIdHdr, msg.ID)
	m.Header.Set("Content-Type", "application/json")

	if err := s.conn.PublishMsg(m); err != nil {
		return fmt.Errorf("publish %s: %w", s.subject, err)
	}
	if err := s.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("flush %s: %w", s.subject, err)
	}
	return nil
}
