package leave

import (
	"context"
	"encoding/json"

	"go-leave/internal/events"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=leave_event_publisher.go -destination=mock/leave_event_publisher_mock.go -package=mock
type EventPublisher interface {
	PublishLeaveSubmitted(ctx context.Context, event events.LeaveSubmittedEvent) error
	PublishLeaveReviewed(ctx context.Context, event events.LeaveReviewedEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishLeaveSubmitted(context.Context, events.LeaveSubmittedEvent) error {
	return nil
}

func (noopEventPublisher) PublishLeaveReviewed(context.Context, events.LeaveReviewedEvent) error {
	return nil
}

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaEventPublisher struct {
	writer MessageWriter
	topic  string
}

func NewKafkaEventPublisher(writer MessageWriter, topic string) EventPublisher {
	if topic == "" {
		topic = events.LeaveLifecycleTopic
	}
	return &kafkaEventPublisher{writer: writer, topic: topic}
}

func (p *kafkaEventPublisher) PublishLeaveSubmitted(ctx context.Context, event events.LeaveSubmittedEvent) error {
	return p.publish(ctx, event.EmployeeID, event.EventType, event)
}

func (p *kafkaEventPublisher) PublishLeaveReviewed(ctx context.Context, event events.LeaveReviewedEvent) error {
	return p.publish(ctx, event.EmployeeID, event.EventType, event)
}

// Events are keyed by employee so one employee's history stays ordered
// within a partition.
func (p *kafkaEventPublisher) publish(ctx context.Context, key, eventType string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
			{Key: "aggregate_type", Value: []byte("leave")},
		},
	})
}
