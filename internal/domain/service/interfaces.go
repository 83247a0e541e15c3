package service

import (
	"context"

	"CryptoProphet/internal/domain/models"
)

// PriceSource supplies recent hourly price-change values for a symbol,
// newest first.
type PriceSource interface {
	HourlyChanges(ctx context.Context, symbol string) ([]string, error)
}

// Forecaster fits a model to the training series and returns the in-sample
// fit plus a fixed future horizon, one predicted value per hourly step.
type Forecaster interface {
	Fit(ctx context.Context, series models.TrainingSeries) (models.ForecastSeries, error)
}

// Notifier delivers a narrative to a chat destination.
type Notifier interface {
	Send(ctx context.Context, text string) error
}
