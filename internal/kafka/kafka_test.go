package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/Domenick1991/traveldesk/internal/logger"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTravelerEvent(t *testing.T) {
	traveler := &domain.Traveler{ID: "T100", FirstName: "Maya", LastName: "Rivera", Email: "maya@example.com"}

	event := NewTravelerEvent(EventTravelerRegistered, traveler)

	assert.Equal(t, EventTravelerRegistered, event.Type)
	assert.Equal(t, "T100", event.TravelerID)
	assert.Equal(t, "maya@example.com", event.Email)
	_, err := uuid.Parse(event.EventID)
	assert.NoError(t, err)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestDecodeTravelerEvent(t *testing.T) {
	event := NewTravelerEvent(EventTravelerRegistered, &domain.Traveler{ID: "T101", Email: "jon@example.com"})
	data, err := json.Marshal(event)
	require.NoError(t, err)

	decoded, err := DecodeTravelerEvent(kafka.Message{Key: []byte("T101"), Value: data})
	require.NoError(t, err)
	assert.Equal(t, event.EventID, decoded.EventID)
	assert.True(t, event.OccurredAt.Equal(decoded.OccurredAt))
}

func TestDecodeTravelerEvent_Invalid(t *testing.T) {
	_, err := DecodeTravelerEvent(kafka.Message{})
	assert.ErrorIs(t, err, ErrEmptyEvent)

	_, err = DecodeTravelerEvent(kafka.Message{Value: []byte("{not json")})
	assert.Error(t, err)

	_, err = DecodeTravelerEvent(kafka.Message{Value: []byte(`{"type":"traveler_registered"}`)})
	assert.Error(t, err)
}

func TestConsumerCloseNil(t *testing.T) {
	var c *Consumer
	assert.NoError(t, c.Close())
}

func TestProducerCheckConnectionWithoutBrokers(t *testing.T) {
	p := NewProducer(nil, nil)
	defer p.Close()

	assert.Error(t, p.CheckConnection(context.Background()))
}

type fakeReader struct {
	messages  []kafka.Message
	committed []int64
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

func travelerMessage(t *testing.T, offset int64, travelerID string) kafka.Message {
	t.Helper()
	data, err := json.Marshal(NewTravelerEvent(EventTravelerRegistered, &domain.Traveler{ID: travelerID}))
	require.NoError(t, err)
	return kafka.Message{Offset: offset, Key: []byte(travelerID), Value: data}
}

func TestConsume_CommitsAfterHandlerSucceeds(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{
		travelerMessage(t, 1, "T100"),
		{Offset: 2, Value: []byte("{not json")},
		travelerMessage(t, 3, "T101"),
	}}
	c := &Consumer{reader: reader, log: logger.Nop()}

	var handled []string
	err := c.ConsumeTravelerEvents(context.Background(), func(ctx context.Context, e TravelerEvent) error {
		handled = append(handled, e.TravelerID)
		return nil
	})

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []string{"T100", "T101"}, handled)
	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
}

func TestConsume_HandlerErrorLeavesMessageUncommitted(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{
		travelerMessage(t, 1, "T100"),
		travelerMessage(t, 2, "T101"),
		travelerMessage(t, 3, "T102"),
	}}
	c := &Consumer{reader: reader, log: logger.Nop()}
	storeErr := errors.New("connection refused")

	err := c.ConsumeTravelerEvents(context.Background(), func(ctx context.Context, e TravelerEvent) error {
		if e.TravelerID == "T101" {
			return storeErr
		}
		return nil
	})

	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, []int64{1}, reader.committed)
	assert.Len(t, reader.messages, 1)
}
