package queue

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/brunovtr/pipecrm/internal/entity"
)

// Notifier is the outbound side effect of a pipeline milestone.
type Notifier interface {
	NotifyLeadWon(leadID int64) error
	NotifyOrderDispatched(orderID int64) error
}

// Worker consumes pipeline events and fires notifications for the two
// terminal transitions anyone cares about: a lead closing as Won and an
// order going out the door.
type Worker struct {
	Channel  *amqp.Channel
	Notifier Notifier
	Log      *zap.SugaredLogger
}

func NewWorker(ch *amqp.Channel, notifier Notifier, log *zap.SugaredLogger) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
		Log:      log,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		w.Log.Fatalw("registering RabbitMQ consumer", "error", err)
	}

	for d := range msgs {
		var event PipelineEvent
		if err := json.Unmarshal(d.Body, &event); err != nil {
			w.Log.Errorw("invalid pipeline event", "error", err)
			// Malformed message. Reject without requeue so it dead-letters
			// instead of blocking the queue.
			d.Nack(false, false)
			continue
		}

		if err := w.process(event); err != nil {
			w.Log.Errorw("processing pipeline event",
				"event_id", event.ID, "resource", event.Resource, "error", err)
			d.Nack(false, false)
			continue
		}

		d.Ack(false)
	}
}

func (w *Worker) process(event PipelineEvent) error {
	switch {
	case event.Resource == "lead" && event.Field == "stage" && event.Value == entity.StageWon:
		return w.Notifier.NotifyLeadWon(event.ResourceID)

	case event.Resource == "order" && event.Field == "status" && event.Value == entity.StatusDispatched:
		return w.Notifier.NotifyOrderDispatched(event.ResourceID)

	default:
		// Every other transition is recorded on the bus but needs no
		// side effect; ack and move on.
		return nil
	}
}
