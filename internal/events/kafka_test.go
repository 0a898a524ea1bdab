package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	stall  bool
	closed bool
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.stall {
		<-ctx.Done()
		return ctx.Err()
	}
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaPublisher_PublishWorkoutSynced(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w}
	evt := WorkoutSynced{
		EventID:      "e-1",
		Username:     "u1",
		ExerciseName: "Squats",
		Reps:         5,
		Accuracy:     0.8,
		Timestamp:    "t1",
		PointsEarned: 65,
		Created:      true,
		OccurredAt:   time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC),
	}

	require.NoError(t, p.PublishWorkoutSynced(context.Background(), evt))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, []byte("u1"), w.msgs[0].Key)
	assert.Equal(t, "workout.synced", string(w.msgs[0].Headers[0].Value))

	var got WorkoutSynced
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, evt, got)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := &KafkaPublisher{writer: &fakeWriter{err: errors.New("broker down")}}
	err := p.PublishWorkoutSynced(context.Background(), WorkoutSynced{Username: "u1"})
	assert.ErrorContains(t, err, "write event: broker down")
}

func TestNewKafkaPublisher(t *testing.T) {
	p := NewKafkaPublisher([]string{"localhost:9092"}, "workouts.synced")
	kw, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, "workouts.synced", kw.Topic)
	assert.Equal(t, 3, kw.MaxAttempts)
	assert.Equal(t, DefaultPublishTimeout, kw.WriteTimeout)
	assert.Equal(t, DefaultPublishTimeout, p.timeout)
}

func TestKafkaPublisher_StalledBrokerTimesOut(t *testing.T) {
	p := &KafkaPublisher{writer: &fakeWriter{stall: true}, timeout: 20 * time.Millisecond}

	start := time.Now()
	err := p.PublishWorkoutSynced(context.Background(), WorkoutSynced{Username: "u1"})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.PublishWorkoutSynced(context.Background(), WorkoutSynced{}))
	assert.NoError(t, Nop{}.Close())
}
