package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"conectapro/config"
	"conectapro/infras/kafka"
	"conectapro/infras/otel"
	"conectapro/shared/constant"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	TopicServiceRequestLifecycle = "service-request.lifecycle"
	TopicReviewCreated           = "review.created"

	headerEventType = "event_type"
)

// Event is the envelope published for every state change. AggregateID is also the partition key.
type Event struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	AggregateID string    `json:"aggregate_id"`
	Actor       string    `json:"actor"`
	OccurredAt  time.Time `json:"occurred_at"`
	Payload     any       `json:"payload,omitempty"`
}

func New(eventType, aggregateID, actor string, occurredAt time.Time, payload any) Event {
	return Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		AggregateID: aggregateID,
		Actor:       actor,
		OccurredAt:  occurredAt,
		Payload:     payload,
	}
}

type Publisher interface {
	Publish(ctx context.Context, topic string, events ...Event) (err error)
}

type kafkaPublisher struct {
	client kafka.Client
	prefix string
	otel   otel.Otel
}

// NewPublisher returns a Kafka backed publisher, or one that only logs when no broker is configured.
func NewPublisher(cfg *config.Config, client kafka.Client, ot otel.Otel) Publisher {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Warn().Msg("No Kafka brokers configured, lifecycle events are only logged")

		return logPublisher{}
	}

	return &kafkaPublisher{
		client: client,
		prefix: cfg.Kafka.TopicPrefix,
		otel:   ot,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, topic string, events ...Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	fullTopic := Topic(p.prefix, topic)
	scope.SetAttribute("topic", fullTopic)

	messages := make([]kafka.Message, 0, len(events))
	for _, evt := range events {
		messages = append(messages, kafka.Message{
			Key:     evt.AggregateID,
			Value:   evt,
			Headers: map[string]string{headerEventType: evt.Type},
		})
	}

	if err = p.client.SendMessages(ctx, fullTopic, messages...); err != nil {
		return fmt.Errorf("failed to publish %d events to %s: %w", len(events), fullTopic, err)
	}

	return nil
}

type logPublisher struct{}

func (logPublisher) Publish(_ context.Context, topic string, events ...Event) error {
	for _, evt := range events {
		log.Debug().
			Str("topic", topic).
			Str("type", evt.Type).
			Str("aggregate_id", evt.AggregateID).
			Msg("event published")
	}

	return nil
}

func Topic(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}
