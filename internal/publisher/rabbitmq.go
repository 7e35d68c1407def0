package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"promisync/internal/domain"
)

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// ProductMessage is the event emitted after a product reaches the
// system of record. "delete" messages carry only the key fields.
type ProductMessage struct {
	Action       string          `json:"action"` // "create", "update" or "delete"
	SupplierCode string          `json:"supplier_code"`
	ExternalKey  string          `json:"external_key"`
	Product      *domain.Product `json:"product,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}

func (r *RabbitMQ) PublishProduct(ctx context.Context, product *domain.Product, action string) error {
	msg := ProductMessage{
		Action:       action,
		SupplierCode: product.SupplierCode,
		ExternalKey:  product.ANumber,
		Product:      product,
		Timestamp:    time.Now().UTC(),
	}
	if err := r.publish(ctx, msg); err != nil {
		return err
	}

	r.logger.Debug("published product event",
		"external_key", product.ANumber,
		"action", action,
	)
	return nil
}

func (r *RabbitMQ) PublishRemoval(ctx context.Context, supplierCode, externalKey string) error {
	msg := ProductMessage{
		Action:       "delete",
		SupplierCode: supplierCode,
		ExternalKey:  externalKey,
		Timestamp:    time.Now().UTC(),
	}
	if err := r.publish(ctx, msg); err != nil {
		return err
	}

	r.logger.Debug("published product event",
		"external_key", externalKey,
		"action", "delete",
	)
	return nil
}

func (r *RabbitMQ) publish(ctx context.Context, msg ProductMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
