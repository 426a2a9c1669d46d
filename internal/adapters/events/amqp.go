package events

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher sends event bodies to a durable RabbitMQ queue.
type AMQPPublisher struct {
	conn  *amqp.Connection
	chn   *amqp.Channel
	queue string
}

func NewAMQPPublisher(url, queue string) (*AMQPPublisher, error) {
	if queue == "" {
		return nil, errors.New("amqp publisher: queue must not be empty")
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp publisher: dial: %w", err)
	}

	chn, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp publisher: open channel: %w", err)
	}

	if _, err := chn.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		_ = chn.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("amqp publisher: declare queue %q: %w", queue, err)
	}

	return &AMQPPublisher{conn: conn, chn: chn, queue: queue}, nil
}

// Publish uses the default exchange, routing by queue name. The event type goes in the message Type.
func (p *AMQPPublisher) Publish(ctx context.Context, key string, body []byte) error {
	return p.chn.PublishWithContext(
		ctx,
		"",
		p.queue,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         key,
			Body:         body,
		},
	)
}

func (p *AMQPPublisher) Close() error {
	if err := p.chn.Close(); err != nil {
		return fmt.Errorf("amqp publisher: close channel: %w", err)
	}
	if err := p.conn.Close(); err != nil {
		return fmt.Errorf("amqp publisher: close connection: %w", err)
	}
	return nil
}
