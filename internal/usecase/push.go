package usecase

import (
	"context"
	"fmt"

	"CryptoProphet/internal/domain/models"
	"CryptoProphet/internal/domain/service"
	xlogger "CryptoProphet/pkg/logger"
)

// PushRun is the explicit one-shot state for push-mode delivery. The zero
// value is ready to run once; a second Execute fails instead of re-posting.
type PushRun struct {
	completed bool
}

// Completed reports whether this run already happened.
func (r *PushRun) Completed() bool {
	return r.completed
}

// Execute runs the pipeline once for symbol and posts the narrative through
// the notifier. Delivery failures are logged, not retried, and still mark
// the run as completed.
func (r *PushRun) Execute(ctx context.Context, p *Pipeline, notifier service.Notifier, symbol string, logger *xlogger.Logger) (*models.ForecastResult, error) {
	if r.completed {
		return nil, fmt.Errorf("push run already completed")
	}
	r.completed = true

	result, err := p.ForecastForSymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if err := notifier.Send(ctx, result.Description); err != nil {
		logger.Error("webhook delivery failed", xlogger.String("symbol", symbol), xlogger.Error(err))
	}
	return result, nil
}
