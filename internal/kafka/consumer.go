package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/traveldesk/internal/logger"
	"github.com/segmentio/kafka-go"
)

// messageReader is the part of *kafka.Reader the consumer needs.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Consumer struct {
	reader messageReader
	log    *logger.Logger
}

func NewConsumer(brokers []string, groupID, topic string, log *logger.Logger) *Consumer {
	if log == nil {
		log = logger.Nop()
	}
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		log: log,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume hands each message to handler and commits its offset only after handler
// succeeds. A handler error stops the loop with the message uncommitted, so the
// group reads it again after a restart.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, kafka.Message) error) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return err
		}

		if err := handler(ctx, msg); err != nil {
			return fmt.Errorf("handle offset %d of partition %d: %w", msg.Offset, msg.Partition, err)
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			return fmt.Errorf("commit offset %d: %w", msg.Offset, err)
		}
	}
}

// ConsumeTravelerEvents decodes each message as a TravelerEvent before handing it on.
// Messages that cannot be decoded are logged and skipped.
func (c *Consumer) ConsumeTravelerEvents(ctx context.Context, handler func(context.Context, TravelerEvent) error) error {
	return c.Consume(ctx, func(ctx context.Context, msg kafka.Message) error {
		event, err := DecodeTravelerEvent(msg)
		if err != nil {
			c.log.WithFields(logger.Fields{
				"topic":     msg.Topic,
				"partition": msg.Partition,
				"offset":    msg.Offset,
			}).WithError(err).Warn("skipping malformed traveler event")
			return nil
		}
		return handler(ctx, event)
	})
}

var ErrEmptyEvent = errors.New("empty event payload")

func DecodeTravelerEvent(msg kafka.Message) (TravelerEvent, error) {
	var event TravelerEvent
	if len(msg.Value) == 0 {
		return event, ErrEmptyEvent
	}
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return event, fmt.Errorf("decode traveler event: %w", err)
	}
	if event.TravelerID == "" {
		return event, fmt.Errorf("decode traveler event: missing travelerID")
	}
	return event, nil
}
