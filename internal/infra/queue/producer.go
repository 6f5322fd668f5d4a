package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Email templates handled by the notification worker.
const (
	TemplateWelcome          = "welcome"
	TemplateTrialActivation  = "trial_activation"
	TemplateTrialReminder    = "trial_reminder"
	TemplateFollowUp         = "follow_up"
	TemplateConversionThanks = "conversion"
)

// NotificationPayload is the email job published after a funnel state
// transition commits. Delivery happens out of band; failed deliveries end up
// in the DLQ for retry.
type NotificationPayload struct {
	Template string `json:"template"`
	To       string `json:"to"`
	Name     string `json:"name"`
	LeadID   string `json:"lead_id,omitempty"`
	PlanName string `json:"plan_name,omitempty"`
	EndDate  string `json:"end_date,omitempty"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishNotification(ctx context.Context, payload NotificationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // survives broker restart
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}
