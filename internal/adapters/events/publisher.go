package events

import (
	"context"
	"encoding/json"
	"fleet-cargo-service/internal/domain"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Publisher is the interface used to ship encoded events to a broker.
type Publisher interface {
	Publish(ctx context.Context, key string, body []byte) error
	Close() error
}

// Envelope is the JSON message body for a published event.
type Envelope struct {
	Type       string         `json:"type"`
	Message    string         `json:"message"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data"`
}

func NewEnvelope(e domain.Event, at time.Time) Envelope {
	return Envelope{
		Type:       e.Type(),
		Message:    e.String(),
		OccurredAt: at.UTC(),
		Data:       Fields(e),
	}
}

// PublishingSink publishes each event synchronously. Domain sinks cannot
// return errors, so publish failures are logged and the event is dropped.
type PublishingSink struct {
	publisher Publisher
	timeout   time.Duration
	logger    logrus.FieldLogger
	now       func() time.Time
}

func NewPublishingSink(p Publisher, timeout time.Duration, logger logrus.FieldLogger) *PublishingSink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &PublishingSink{publisher: p, timeout: timeout, logger: logger, now: time.Now}
}

func (s *PublishingSink) Emit(e domain.Event) {
	if err := s.publish(e); err != nil {
		s.logger.WithError(err).WithField("event", e.Type()).Error("publish event failed")
	}
}

func (s *PublishingSink) publish(e domain.Event) error {
	body, err := json.Marshal(NewEnvelope(e, s.now()))
	if err != nil {
		return fmt.Errorf("publish event: marshal: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, e.Type(), body); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

func (s *PublishingSink) Close() error {
	return s.publisher.Close()
}
