package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"storefront-service/models"
)

// Producer publishes order events to Kafka. It satisfies
// services.EventPublisher.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer creates a producer for the given brokers and topic.
func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Producer{
		writer: writer,
		topic:  topic,
	}
}

// PublishOrderConfirmed sends an order.confirmed event keyed by order id.
func (p *Producer) PublishOrderConfirmed(ctx context.Context, event models.OrderConfirmedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
	}

	return p.writer.WriteMessages(ctx, msg)
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() {
	_ = p.writer.Close()
}
