// Package events publishes booking lifecycle events to Kafka so downstream
// consumers (notifications, analytics) can react without coupling to the API.
package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"airport-booking-api/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	EventOrderCreated     = "order.created"
	EventPaymentPaid      = "payment.paid"
	EventPaymentCancelled = "payment.cancelled"
)

type Event struct {
	Type       string    `json:"type"`
	OrderID    int       `json:"order_id"`
	UserID     int       `json:"user_id,omitempty"`
	PaymentID  int       `json:"payment_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Producer interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type KafkaProducer struct {
	writer *kafka.Writer
	log    *zap.Logger
}

func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return &KafkaProducer{
		writer: writer,
		log:    logger.WithComponent("events"),
	}
}

// Publish sends the event keyed by order id so all events of one order land
// in the same partition and keep their relative order.
func (p *KafkaProducer) Publish(ctx context.Context, event Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(strconv.Itoa(event.OrderID)),
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("failed to publish event",
			zap.String("type", event.Type),
			zap.Int("order_id", event.OrderID),
			zap.Error(err))
		return err
	}

	p.log.Debug("event published",
		zap.String("type", event.Type),
		zap.Int("order_id", event.OrderID))
	return nil
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

var _ Producer = (*KafkaProducer)(nil)
