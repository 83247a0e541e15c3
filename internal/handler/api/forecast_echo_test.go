package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"CryptoProphet/internal/domain/models"
	"CryptoProphet/internal/usecase"
	xlogger "CryptoProphet/pkg/logger"
)

type fakeSource struct {
	changes []string
	err     error
}

func (s *fakeSource) HourlyChanges(ctx context.Context, symbol string) ([]string, error) {
	return s.changes, s.err
}

type fakeForecaster struct {
	series models.ForecastSeries
	err    error
}

func (f *fakeForecaster) Fit(ctx context.Context, series models.TrainingSeries) (models.ForecastSeries, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.series, nil
}

func flatForecast(value float64, total int) models.ForecastSeries {
	reference := time.Date(2024, 10, 10, 10, 0, 0, 0, time.UTC)
	series := make(models.ForecastSeries, total)
	for i := range series {
		series[i] = models.PricePoint{Timestamp: reference.Add(time.Duration(i) * time.Hour), Value: value}
	}
	return series
}

func newTestHandler(t *testing.T, src *fakeSource, fc *fakeForecaster) *ForecastEchoHandler {
	t.Helper()
	logger, err := xlogger.New(&xlogger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	pipeline := usecase.NewPipeline(src, fc, nil, nil, logger)
	return NewForecastEchoHandler(logger, pipeline)
}

func doRequest(t *testing.T, h *ForecastEchoHandler, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	e := echo.New()
	h.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response %q: %v", rec.Body.String(), err)
	}
	return rec, body
}

func bodyStatus(t *testing.T, body map[string]json.RawMessage) int {
	t.Helper()
	var status int
	if err := json.Unmarshal(body["status"], &status); err != nil {
		t.Fatalf("status field: %v", err)
	}
	return status
}

func TestForecastEndpoint(t *testing.T) {
	src := &fakeSource{changes: []string{"100", "110", "90"}}
	fc := &fakeForecaster{series: flatForecast(100, 48)}
	h := newTestHandler(t, src, fc)

	rec, body := doRequest(t, h, "/btcusd")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := bodyStatus(t, body); got != http.StatusOK {
		t.Fatalf("expected body status 200, got %d", got)
	}

	var data models.ForecastResult
	if err := json.Unmarshal(body["data"], &data); err != nil {
		t.Fatalf("data field: %v", err)
	}
	if data.Symbol != "btcusd" {
		t.Errorf("expected symbol btcusd, got %s", data.Symbol)
	}
	if !strings.HasPrefix(data.Description, "Over the next 24 hours, btcusd") {
		t.Errorf("unexpected narrative: %q", data.Description)
	}
	if data.Stats.MinPriceLastDay != 90 || data.Stats.MaxPriceLastDay != 110 {
		t.Errorf("unexpected history aggregates: %+v", data.Stats)
	}
}

func TestForecastEndpointUpstreamError(t *testing.T) {
	src := &fakeSource{err: models.NewDataFormatError("Error fetching cryptocurrency price data from Gemini: bad symbol")}
	h := newTestHandler(t, src, &fakeForecaster{})

	_, body := doRequest(t, h, "/nope")
	if got := bodyStatus(t, body); got != http.StatusBadGateway {
		t.Fatalf("expected body status 502, got %d", got)
	}
	if !strings.Contains(string(body["data"]), "bad symbol") {
		t.Errorf("expected upstream message in response, got %s", body["data"])
	}
}

func TestForecastEndpointForecasterDown(t *testing.T) {
	src := &fakeSource{changes: []string{"100", "110"}}
	fc := &fakeForecaster{err: models.NewForecastUnavailableError("the forecasting model could not produce a forecast", nil)}
	h := newTestHandler(t, src, fc)

	_, body := doRequest(t, h, "/btcusd")
	if got := bodyStatus(t, body); got != http.StatusBadGateway {
		t.Fatalf("expected body status 502, got %d", got)
	}
}

func TestForecastEndpointStatisticsError(t *testing.T) {
	src := &fakeSource{changes: []string{"0", "110", "90"}}
	fc := &fakeForecaster{series: flatForecast(100, 48)}
	h := newTestHandler(t, src, fc)

	_, body := doRequest(t, h, "/btcusd")
	if got := bodyStatus(t, body); got != http.StatusUnprocessableEntity {
		t.Fatalf("expected body status 422, got %d", got)
	}
}

func TestForecastEndpointUnclassifiedHidesDetail(t *testing.T) {
	src := &fakeSource{err: context.DeadlineExceeded}
	h := newTestHandler(t, src, &fakeForecaster{})

	_, body := doRequest(t, h, "/btcusd")
	if got := bodyStatus(t, body); got != http.StatusInternalServerError {
		t.Fatalf("expected body status 500, got %d", got)
	}
	if !strings.Contains(string(body["data"]), "failed to run your request") {
		t.Errorf("expected generic message, got %s", body["data"])
	}
	if strings.Contains(string(body["data"]), "deadline") {
		t.Errorf("internal detail leaked: %s", body["data"])
	}
}

func TestRootHelp(t *testing.T) {
	h := newTestHandler(t, &fakeSource{}, &fakeForecaster{})

	_, body := doRequest(t, h, "/")
	if got := bodyStatus(t, body); got != http.StatusBadRequest {
		t.Fatalf("expected body status 400, got %d", got)
	}
	if !strings.Contains(string(body["data"]), "Please specify the ticker symbol") {
		t.Errorf("expected usage hint, got %s", body["data"])
	}
}
