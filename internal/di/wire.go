//go:build wireinject
// +build wireinject

package di

import (
	"CryptoProphet/pkg/config"
	"CryptoProphet/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,

		// External collaborators
		ProvidePriceSource,
		ProvideForecaster,
		ProvideNotifier,
		ProvideEventPublisher,

		// Core pipeline
		ProvidePipeline,

		// Delivery
		ProvideHTTPHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
