package queue

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "ex.funnel"
	QueueName    = "q.notifications"
	DLQName      = "q.notifications.dlq"
	DLXName      = "ex.dlx" // Dead Letter Exchange
	RoutingKey   = "k.notification"
)

type RabbitMQ struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := setupTopology(ch); err != nil {
		return nil, err
	}

	return &RabbitMQ{Conn: conn, Ch: ch}, nil
}

// setupTopology declares the DLX first so rejected notifications always have
// somewhere to land, then binds the main queue to it.
func setupTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(DLXName, "direct", true, false, false, false, nil); err != nil {
		return err
	}

	if _, err := ch.QueueDeclare(DLQName, true, false, false, false, nil); err != nil {
		return err
	}

	if err := ch.QueueBind(DLQName, RoutingKey, DLXName, false, nil); err != nil {
		return err
	}

	args := amqp.Table{
		"x-dead-letter-exchange":    DLXName,
		"x-dead-letter-routing-key": RoutingKey,
	}

	if err := ch.ExchangeDeclare(ExchangeName, "direct", true, false, false, false, nil); err != nil {
		return err
	}

	if _, err := ch.QueueDeclare(QueueName, true, false, false, false, args); err != nil {
		return err
	}

	return ch.QueueBind(QueueName, RoutingKey, ExchangeName, false, nil)
}

func (r *RabbitMQ) Close() {
	if r.Ch != nil {
		r.Ch.Close()
	}
	if r.Conn != nil {
		r.Conn.Close()
	}
}
