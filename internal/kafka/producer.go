package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/Domenick1991/traveldesk/internal/logger"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const EventTravelerRegistered = "traveler_registered"

// TravelerEvent is the payload published on the traveler topic, keyed by traveler id.
type TravelerEvent struct {
	Type       string    `json:"type"`
	EventID    string    `json:"eventID"`
	TravelerID string    `json:"travelerID"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewTravelerEvent(eventType string, t *domain.Traveler) TravelerEvent {
	return TravelerEvent{
		Type:       eventType,
		EventID:    uuid.NewString(),
		TravelerID: t.ID,
		Email:      t.Email,
		FirstName:  t.FirstName,
		LastName:   t.LastName,
		OccurredAt: time.Now().UTC(),
	}
}

type Producer struct {
	brokers []string
	writer  *kafka.Writer
	log     *logger.Logger
}

func NewProducer(brokers []string, log *logger.Logger) *Producer {
	if log == nil {
		log = logger.Nop()
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           50 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		brokers: brokers,
		writer:  writer,
		log:     log,
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	p.log.WithFields(logger.Fields{"topic": topic, "key": key}).Debug("published event")
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// CheckConnection dials the first broker and reads its partition list.
func (p *Producer) CheckConnection(ctx context.Context) error {
	if len(p.brokers) == 0 {
		return fmt.Errorf("no Kafka brokers configured")
	}
	conn, err := kafka.DialContext(ctx, "tcp", p.brokers[0])
	if err != nil {
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions()
	if err != nil {
		return fmt.Errorf("failed to read partitions: %w", err)
	}
	p.log.WithFields(logger.Fields{"partitions": len(partitions)}).Info("connected to Kafka")
	return nil
}
