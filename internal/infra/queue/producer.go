package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// PipelineEvent records one stage/status change of a CRM resource.
type PipelineEvent struct {
	ID         string    `json:"id"`
	Resource   string    `json:"resource"` // "lead" or "order"
	ResourceID int64     `json:"resource_id"`
	Field      string    `json:"field"` // "stage" or "status"
	Value      string    `json:"value"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewPipelineEvent(resource string, resourceID int64, field, value string) PipelineEvent {
	return PipelineEvent{
		ID:         uuid.NewString(),
		Resource:   resource,
		ResourceID: resourceID,
		Field:      field,
		Value:      value,
		OccurredAt: time.Now().UTC(),
	}
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishPipelineEvent(ctx context.Context, event PipelineEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding pipeline event: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publishing pipeline event: %w", err)
	}

	return nil
}
