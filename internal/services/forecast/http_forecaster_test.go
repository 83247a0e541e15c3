package forecast

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"CryptoProphet/internal/domain/models"
)

func trainingSeries(values ...float64) models.TrainingSeries {
	reference := time.Date(2024, 10, 10, 10, 0, 0, 0, time.UTC)
	series := make(models.TrainingSeries, len(values))
	for i, v := range values {
		series[i] = models.PricePoint{Timestamp: reference.Add(-time.Duration(i) * time.Hour), Value: v}
	}
	return series
}

func TestFit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/forecast" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req fitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Periods != models.ForecastHorizon {
			t.Errorf("expected %d periods, got %d", models.ForecastHorizon, req.Periods)
		}
		if len(req.Series) != 3 {
			t.Errorf("expected 3 observations, got %d", len(req.Series))
		}

		resp := fitResponse{Forecast: []prediction{
			{DS: "2024-10-10T08:00:00Z", Yhat: 99.5},
			{DS: "2024-10-10T09:00:00Z", Yhat: 101.2},
		}}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	f := NewHTTPForecaster(srv.URL, 5*time.Second)
	out, err := f.Fit(context.Background(), trainingSeries(100, 110, 90))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 points, got %d", len(out))
	}
	if out[0].Value != 99.5 || out[1].Value != 101.2 {
		t.Fatalf("unexpected values %v", out)
	}
	if !out[1].Timestamp.After(out[0].Timestamp) {
		t.Fatal("expected increasing timestamps")
	}
}

func TestFitTooFewObservations(t *testing.T) {
	f := NewHTTPForecaster("http://unused", 5*time.Second)
	_, err := f.Fit(context.Background(), trainingSeries(100))
	if err == nil {
		t.Fatal("expected error for single observation")
	}
	if models.KindOf(err) != models.ErrForecastUnavailable {
		t.Fatalf("expected forecast unavailable error, got %v", models.KindOf(err))
	}
}

func TestFitServiceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewHTTPForecaster(srv.URL, 5*time.Second)
	_, err := f.Fit(context.Background(), trainingSeries(100, 110))
	if err == nil {
		t.Fatal("expected error for upstream failure")
	}
	if models.KindOf(err) != models.ErrForecastUnavailable {
		t.Fatalf("expected forecast unavailable error, got %v", models.KindOf(err))
	}
}

func TestFitEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"forecast":[]}`))
	}))
	defer srv.Close()

	f := NewHTTPForecaster(srv.URL, 5*time.Second)
	_, err := f.Fit(context.Background(), trainingSeries(100, 110))
	if err == nil {
		t.Fatal("expected error for empty forecast")
	}
	if models.KindOf(err) != models.ErrForecastUnavailable {
		t.Fatalf("expected forecast unavailable error, got %v", models.KindOf(err))
	}
}
