package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"

	"ms-booking-client/internal/logger"
)

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// ActivityConsumer tails the activity topic, e.g. for audit tooling.
type ActivityConsumer struct {
	Reader MessageReader
	logger *logger.Logger
}

func NewReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6, // 10MB
	})
}

func NewActivityConsumer(reader MessageReader, log *logger.Logger) *ActivityConsumer {
	if log == nil {
		log = logger.Discard()
	}
	return &ActivityConsumer{Reader: reader, logger: log}
}

// Run delivers decoded activity to handler until ctx is cancelled. Messages
// that fail to decode are logged and skipped.
func (c *ActivityConsumer) Run(ctx context.Context, handler func(Activity)) error {
	for {
		msg, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("failed to read activity: %w", err)
		}

		var activity Activity
		if err := json.Unmarshal(msg.Value, &activity); err != nil {
			c.logger.Warn("KAFKA", fmt.Sprintf("Skipping undecodable activity at offset %d: %v", msg.Offset, err))
			continue
		}
		handler(activity)
	}
}

func (c *ActivityConsumer) Close() error {
	return c.Reader.Close()
}
