package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/flyfox-ai/funnel/internal/infra/http/middleware"
)

// EmailDeliverer renders and sends one notification email.
type EmailDeliverer interface {
	Deliver(payload NotificationPayload) error
}

type Worker struct {
	Channel *amqp.Channel
	Mailer  EmailDeliverer
}

func NewWorker(ch *amqp.Channel, mailer EmailDeliverer) *Worker {
	return &Worker{Channel: ch, Mailer: mailer}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload NotificationPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[WORKER] malformed notification, dropping: %s", err)
				// Malformed message. Reject without requeue so it cannot jam
				// the queue; it lands in the DLQ.
				d.Nack(false, false)
				continue
			}

			log.Printf("[WORKER] delivering %q email to %s", payload.Template, payload.To)

			if err := w.Mailer.Deliver(payload); err != nil {
				log.Printf("[WORKER] delivery failed for %s: %s", payload.To, err)
				middleware.RecordIntegrationError("smtp")
				// To the DLQ; redelivery is handled out of band.
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] notification worker waiting on queue %q", queueName)
	<-forever
}
