package di

import (
	"fmt"

	domrepo "CryptoProphet/internal/domain/repository"
	domsvc "CryptoProphet/internal/domain/service"
	"CryptoProphet/internal/handler/api"
	internalrepo "CryptoProphet/internal/repository"
	"CryptoProphet/internal/service/discord"
	"CryptoProphet/internal/service/gemini"
	"CryptoProphet/internal/services/forecast"
	"CryptoProphet/internal/usecase"
	"CryptoProphet/pkg/cache"
	"CryptoProphet/pkg/config"
	xhttp "CryptoProphet/pkg/http"
	pkgkafka "CryptoProphet/pkg/kafka"
	xlogger "CryptoProphet/pkg/logger"
	"CryptoProphet/pkg/metrics"
	"CryptoProphet/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*xlogger.Logger, error) {
	l, err := xlogger.New(&xlogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideCache creates the upstream-payload cache, or nil when disabled.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	switch cfg.Cache.Backend {
	case "memory":
		return cache.NewMemoryCache(), nil
	case "redis":
		c, err := cache.NewRedisCache(
			cache.WithRedisHost(cfg.Cache.Redis.Host),
			cache.WithRedisPort(cfg.Cache.Redis.Port),
			cache.WithRedisPassword(cfg.Cache.Redis.Password),
			cache.WithRedisDB(cfg.Cache.Redis.DB),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return c, nil
	default:
		return nil, nil
	}
}

// ProvidePriceSource creates the Gemini ticker client.
func ProvidePriceSource(cfg *config.Config, c cache.Service, l *xlogger.Logger) domsvc.PriceSource {
	opts := []gemini.Option{}
	if c != nil && cfg.Gemini.CacheTTL > 0 {
		opts = append(opts, gemini.WithCache(c, cfg.Gemini.CacheTTL))
	}
	return gemini.New(cfg.Gemini.BaseURL, cfg.Gemini.Timeout, l, opts...)
}

// ProvideForecaster creates the external model client.
func ProvideForecaster(cfg *config.Config) domsvc.Forecaster {
	return forecast.NewHTTPForecaster(cfg.Forecast.ServiceURL, cfg.Forecast.Timeout)
}

// ProvideNotifier creates the Discord webhook notifier.
func ProvideNotifier(cfg *config.Config) domsvc.Notifier {
	return discord.New(cfg.Push.WebhookURL, cfg.Push.Username, cfg.Push.Timeout)
}

// ProvideEventPublisher creates the Kafka forecast-event publisher, or nil
// when no brokers are configured.
func ProvideEventPublisher(cfg *config.Config) (domrepo.EventPublisher, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaEventPublisher(producer, cfg.Kafka.Topic), nil
}

// ProvidePipeline creates the forecast pipeline.
func ProvidePipeline(src domsvc.PriceSource, fc domsvc.Forecaster, pub domrepo.EventPublisher, m domrepo.Metrics, l *xlogger.Logger) *usecase.Pipeline {
	return usecase.NewPipeline(src, fc, pub, m, l)
}

// ProvideHTTPHandler creates the query-API handler.
func ProvideHTTPHandler(l *xlogger.Logger, p *usecase.Pipeline) xhttp.Handler {
	return api.NewForecastEchoHandler(l, p)
}

// ProvideApp assembles the application.
func ProvideApp(
	cfg *config.Config,
	pipeline *usecase.Pipeline,
	notifier domsvc.Notifier,
	handler xhttp.Handler,
	publisher domrepo.EventPublisher,
	logger *xlogger.Logger,
) *server.App {
	return server.New(cfg, pipeline, notifier, handler, publisher, logger)
}
