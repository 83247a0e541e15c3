package usecase

import (
	"context"
	"time"

	"CryptoProphet/internal/domain/models"
	"CryptoProphet/internal/domain/repository"
	"CryptoProphet/internal/domain/service"
	xlogger "CryptoProphet/pkg/logger"
)

// Pipeline runs one synchronous forecast per call: price source ->
// series builder -> forecaster -> statistics -> narrative. Each stage's
// failure short-circuits the run; nothing is retried or cached.
type Pipeline struct {
	source     service.PriceSource
	forecaster service.Forecaster
	publisher  repository.EventPublisher
	metrics    repository.Metrics
	logger     *xlogger.Logger
	now        func() time.Time
}

// NewPipeline creates a forecast pipeline. publisher and metrics may be nil.
func NewPipeline(source service.PriceSource, forecaster service.Forecaster, publisher repository.EventPublisher, metrics repository.Metrics, logger *xlogger.Logger) *Pipeline {
	return &Pipeline{
		source:     source,
		forecaster: forecaster,
		publisher:  publisher,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// ForecastForSymbol produces the narrative and statistics for one symbol.
// Domain errors are returned as-is; anything unexpected is wrapped behind a
// generic message.
func (p *Pipeline) ForecastForSymbol(ctx context.Context, symbol string) (*models.ForecastResult, error) {
	start := p.now()

	result, err := p.run(ctx, symbol)
	if err != nil {
		err = classify(err)
		if p.metrics != nil {
			p.metrics.RecordError(models.KindOf(err).String())
		}
		return nil, err
	}

	if p.metrics != nil {
		p.metrics.RecordForecast(symbol)
		p.metrics.RecordLatency("pipeline", p.now().Sub(start).Seconds())
	}

	if p.publisher != nil {
		ev := &models.ForecastEvent{
			Symbol:      result.Symbol,
			GeneratedAt: result.GeneratedAt,
			Stats:       result.Stats,
		}
		if perr := p.publisher.Publish(ctx, ev); perr != nil {
			p.logger.Warn("forecast event publish failed", xlogger.String("symbol", symbol), xlogger.Error(perr))
		}
	}

	return result, nil
}

func (p *Pipeline) run(ctx context.Context, symbol string) (*models.ForecastResult, error) {
	raw, err := p.source.HourlyChanges(ctx, symbol)
	if err != nil {
		return nil, err
	}

	series, err := BuildTrainingSeries(raw, p.now())
	if err != nil {
		return nil, err
	}
	if p.metrics != nil && len(series) > 0 {
		p.metrics.RecordLastPrice(symbol, series.Last().Value)
	}

	forecast, err := p.forecaster.Fit(ctx, series)
	if err != nil {
		if _, ok := models.AsDomain(err); !ok {
			err = models.NewForecastUnavailableError("the forecasting model could not produce a forecast", err)
		}
		return nil, err
	}

	stats, err := ComputeStatistics(series, forecast)
	if err != nil {
		return nil, err
	}

	return &models.ForecastResult{
		Symbol:      symbol,
		GeneratedAt: p.now(),
		Description: RenderNarrative(symbol, stats),
		Stats:       stats,
	}, nil
}

// classify passes domain errors through and hides everything else behind a
// generic unclassified error.
func classify(err error) error {
	if _, ok := models.AsDomain(err); ok {
		return err
	}
	return models.NewUnclassifiedError(err)
}
