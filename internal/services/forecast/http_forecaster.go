package forecast

import (
	"context"
	"fmt"
	"time"

	"CryptoProphet/internal/domain/models"
	"CryptoProphet/internal/domain/service"
	xhttp "CryptoProphet/pkg/http"
)

// HTTPForecaster delegates model fitting to an external forecasting service
// over HTTP. The wire format mirrors the Prophet dataframe naming (ds/y for
// observations, ds/yhat for predictions).
type HTTPForecaster struct {
	baseURL string
	client  *xhttp.Client
}

// NewHTTPForecaster creates a client for the forecasting service.
func NewHTTPForecaster(serviceURL string, timeout time.Duration) *HTTPForecaster {
	return &HTTPForecaster{
		baseURL: serviceURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

type observation struct {
	DS string  `json:"ds"`
	Y  float64 `json:"y"`
}

type fitRequest struct {
	Series  []observation `json:"series"`
	Periods int           `json:"periods"`
}

type prediction struct {
	DS   string  `json:"ds"`
	Yhat float64 `json:"yhat"`
}

type fitResponse struct {
	Forecast []prediction `json:"forecast"`
}

// Fit posts the training series and returns the combined in-sample fit plus
// the 24-step future horizon. Model fitting requires at least two distinct
// observations.
func (f *HTTPForecaster) Fit(ctx context.Context, series models.TrainingSeries) (models.ForecastSeries, error) {
	if len(series) < 2 {
		return nil, models.NewForecastUnavailableError(
			fmt.Sprintf("model fitting requires at least 2 observations, got %d", len(series)), nil)
	}

	req := fitRequest{
		Series:  make([]observation, len(series)),
		Periods: models.ForecastHorizon,
	}
	for i, p := range series {
		req.Series[i] = observation{DS: p.Timestamp.UTC().Format(time.RFC3339), Y: p.Value}
	}

	var resp fitResponse
	err := f.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    f.baseURL + "/forecast",
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: req,
	}, &resp)
	if err != nil {
		return nil, models.NewForecastUnavailableError("forecasting service request failed", err)
	}

	if len(resp.Forecast) == 0 {
		return nil, models.NewForecastUnavailableError("forecasting service returned no predictions", nil)
	}

	out := make(models.ForecastSeries, len(resp.Forecast))
	for i, p := range resp.Forecast {
		ts, err := time.Parse(time.RFC3339, p.DS)
		if err != nil {
			return nil, models.NewForecastUnavailableError(
				fmt.Sprintf("forecasting service returned malformed timestamp %q", p.DS), err)
		}
		out[i] = models.PricePoint{Timestamp: ts, Value: p.Yhat}
	}
	return out, nil
}

var _ service.Forecaster = (*HTTPForecaster)(nil)
