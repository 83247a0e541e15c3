package usecase

import (
	"fmt"
	"testing"
	"time"

	"CryptoProphet/internal/domain/models"
)

func TestBuildTrainingSeries(t *testing.T) {
	now := time.Date(2024, 10, 10, 10, 30, 45, 0, time.UTC)

	series, err := BuildTrainingSeries([]string{"100", "110", "90"}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 3 {
		t.Fatalf("expected 3 points, got %d", len(series))
	}

	reference := time.Date(2024, 10, 10, 10, 0, 0, 0, time.UTC)
	wantValues := []float64{100, 110, 90}
	for i, p := range series {
		wantTS := reference.Add(-time.Duration(i) * time.Hour)
		if !p.Timestamp.Equal(wantTS) {
			t.Errorf("point %d: expected timestamp %v, got %v", i, wantTS, p.Timestamp)
		}
		if p.Value != wantValues[i] {
			t.Errorf("point %d: expected value %v, got %v", i, wantValues[i], p.Value)
		}
	}
}

func TestBuildTrainingSeriesStrictlyDecreasing(t *testing.T) {
	raw := make([]string, 48)
	for i := range raw {
		raw[i] = fmt.Sprintf("%d.5", i)
	}

	series, err := BuildTrainingSeries(raw, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != len(raw) {
		t.Fatalf("expected %d points, got %d", len(raw), len(series))
	}
	for i := 1; i < len(series); i++ {
		if !series[i].Timestamp.Before(series[i-1].Timestamp) {
			t.Fatalf("timestamps not strictly decreasing at %d", i)
		}
		if series[i-1].Timestamp.Sub(series[i].Timestamp) != time.Hour {
			t.Fatalf("expected one hour spacing at %d", i)
		}
	}
}

func TestBuildTrainingSeriesParseError(t *testing.T) {
	_, err := BuildTrainingSeries([]string{"100", "not-a-number"}, time.Now())
	if err == nil {
		t.Fatal("expected error for non-numeric value")
	}
	if models.KindOf(err) != models.ErrDataFormat {
		t.Fatalf("expected data format error, got %v", models.KindOf(err))
	}
}

func TestBuildTrainingSeriesMissingField(t *testing.T) {
	_, err := BuildTrainingSeries(nil, time.Now())
	if err == nil {
		t.Fatal("expected error for missing changes field")
	}
	de, ok := models.AsDomain(err)
	if !ok || de.Kind != models.ErrDataFormat {
		t.Fatalf("expected data format domain error, got %v", err)
	}
	if de.Message != "Invalid response from Gemini" {
		t.Fatalf("unexpected message %q", de.Message)
	}
}
