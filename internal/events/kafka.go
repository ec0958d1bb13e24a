package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shenikar/telecom_outage_system/internal/models"
	kafkago "github.com/segmentio/kafka-go"
)

// KafkaPublisher пишет события смены статуса в топик Kafka
type KafkaPublisher struct {
	writer *kafkago.Writer
}

// NewKafkaPublisher создает продюсер для топика событий
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event models.StatusTransition) error {
	msg, err := serializeToMessage(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish status event to Kafka: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage: ключ - оператор и ключ инцидента, чтобы события одного сбоя шли в одну партицию
func serializeToMessage(event models.StatusTransition) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize status event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.Operator + ":" + event.IncidentKey),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte("outage.status_changed")},
			{Key: "occurred_at", Value: []byte(event.At.Format(time.RFC3339))},
		},
	}, nil
}
