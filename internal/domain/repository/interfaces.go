package repository

import (
	"context"

	"CryptoProphet/internal/domain/models"
)

// EventPublisher publishes forecast events to a message backend.
type EventPublisher interface {
	Publish(ctx context.Context, ev *models.ForecastEvent) error
	Close() error
}

// Metrics records operational metrics.
type Metrics interface {
	RecordForecast(symbol string)
	RecordError(kind string)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
