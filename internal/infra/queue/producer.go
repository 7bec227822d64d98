package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadEventPayload is what downstream consumers (CRM sync, reporting) see for
// both captured-lead and generated-follow-up events. RowIndex is positional
// identity in the backing file at publish time.
type LeadEventPayload struct {
	EventID    string `json:"event_id"`
	RowIndex   int    `json:"row_index"`
	Customer   string `json:"customer"`
	Company    string `json:"company"`
	Status     string `json:"status"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Message    string `json:"message,omitempty"`
	OccurredAt string `json:"occurred_at"`
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

func (p *RabbitMQProducer) PublishLeadCaptured(ctx context.Context, payload LeadEventPayload) error {
	return p.publish(ctx, RoutingKeyLeadCaptured, payload)
}

func (p *RabbitMQProducer) PublishFollowUpGenerated(ctx context.Context, payload LeadEventPayload) error {
	return p.publish(ctx, RoutingKeyFollowUpGenerated, payload)
}

func (p *RabbitMQProducer) publish(ctx context.Context, routingKey string, payload LeadEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		routingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	return nil
}
