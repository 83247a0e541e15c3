package repository

import (
	"context"
	"fmt"

	"CryptoProphet/internal/domain/models"
	"CryptoProphet/internal/domain/repository"
	pkgkafka "CryptoProphet/pkg/kafka"
)

// KafkaEventPublisher publishes forecast events to a Kafka topic.
type KafkaEventPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaEventPublisher creates a Kafka-backed event publisher.
func NewKafkaEventPublisher(producer *pkgkafka.Producer, topic string) repository.EventPublisher {
	return &KafkaEventPublisher{producer: producer, topic: topic}
}

// Publish writes one forecast event keyed by symbol.
func (p *KafkaEventPublisher) Publish(ctx context.Context, ev *models.ForecastEvent) error {
	if err := p.producer.Publish(ctx, p.topic, []byte(ev.Symbol), ev); err != nil {
		return fmt.Errorf("publish forecast event: %w", err)
	}
	return nil
}

// Close closes the underlying producer.
func (p *KafkaEventPublisher) Close() error {
	return p.producer.Close()
}
