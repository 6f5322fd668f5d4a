package mail

import (
	"context"
	"log"

	"github.com/flyfox-ai/funnel/internal/infra/http/middleware"
	"github.com/flyfox-ai/funnel/internal/infra/queue"
)

// DirectNotifier sends email in a fire-and-forget goroutine instead of going
// through the broker. Used when no RabbitMQ URL is configured; deliveries
// that fail are only logged, there is no retry path.
type DirectNotifier struct {
	Sender *EmailSender
}

func NewDirectNotifier(sender *EmailSender) *DirectNotifier {
	return &DirectNotifier{Sender: sender}
}

func (n *DirectNotifier) PublishNotification(ctx context.Context, payload queue.NotificationPayload) error {
	go func() {
		if err := n.Sender.Deliver(payload); err != nil {
			log.Printf("direct email delivery failed for %s: %v", payload.To, err)
			middleware.RecordIntegrationError("smtp")
		}
	}()
	return nil
}
