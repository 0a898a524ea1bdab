package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// DefaultPublishTimeout bounds one publish, retries included.
const DefaultPublishTimeout = 2 * time.Second

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events as JSON to a single topic, keyed by username
// so one user's workouts stay ordered within a partition.
type KafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration
}

// NewKafkaPublisher creates a KafkaPublisher for topic on brokers.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			RequiredAcks:           kafka.RequireAll,
			Compression:            kafka.Snappy,
			AllowAutoTopicCreation: true,
			MaxAttempts:            3,
			WriteTimeout:           DefaultPublishTimeout,
		},
		timeout: DefaultPublishTimeout,
	}
}

// PublishWorkoutSynced encodes and writes evt, giving up after the
// publisher's timeout.
func (p *KafkaPublisher) PublishWorkoutSynced(ctx context.Context, evt WorkoutSynced) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(evt.Username),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("workout.synced")},
		},
	}
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
