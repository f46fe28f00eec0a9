package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RoutingKeyTransactionsIngested is used for TransactionsIngested events
const RoutingKeyTransactionsIngested = "transactions.ingested"

// TransactionsIngested is published after a transaction batch is committed
type TransactionsIngested struct {
	MerchantID  uint       `json:"merchantId"`
	Count       int        `json:"count"`
	ExternalIDs []string   `json:"externalIds"`
	FileDate    *time.Time `json:"fileDate,omitempty"`
	OccurredAt  time.Time  `json:"occurredAt"`
}

// Publisher delivers domain events to downstream consumers
type Publisher interface {
	PublishTransactionsIngested(ctx context.Context, evt TransactionsIngested) error
}

// NopPublisher drops every event; used when no broker is configured
type NopPublisher struct{}

func (NopPublisher) PublishTransactionsIngested(context.Context, TransactionsIngested) error {
	return nil
}

// AMQPPublisher publishes JSON events to a RabbitMQ topic exchange
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	mu       sync.Mutex // amqp channels are not safe for concurrent publishing
}

// NewAMQPPublisher connects to url and declares exchange
func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}
	return &AMQPPublisher{conn: conn, channel: channel, exchange: exchange}, nil
}

func (p *AMQPPublisher) PublishTransactionsIngested(ctx context.Context, evt TransactionsIngested) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.PublishWithContext(ctx,
		p.exchange,                     // exchange
		RoutingKeyTransactionsIngested, // routing key
		false,                          // mandatory
		false,                          // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    evt.OccurredAt,
			Body:         body,
		},
	)
}

// Close releases the channel and connection
func (p *AMQPPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}
