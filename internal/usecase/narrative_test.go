package usecase

import (
	"strings"
	"testing"

	"CryptoProphet/internal/domain/models"
)

func sampleStats() models.PriceStatistics {
	return models.PriceStatistics{
		MinPriceLastDay:       90,
		MinPriceNextDay:       95.5,
		MinPercentChange:      6.11,
		MaxPriceLastDay:       124,
		MaxPriceNextDay:       120,
		MaxPercentChange:      -3.25,
		AveragePriceLastDay:   100,
		AveragePriceNextDay:   100,
		AveragePercentChange:  0,
		PriceTwoWeeks:         150.25,
		TwoWeeksPercentChange: 50.25,
	}
}

func TestRenderNarrativeGolden(t *testing.T) {
	got := RenderNarrative("btcusd", sampleStats())

	want := "Over the next 24 hours, btcusd is expected to reach a low price of $95.50 (+6.11%), " +
		"a high price of $120.00 (-3.25%), and an average price of $100.00 (0.00%). " +
		"\n\n" +
		"In two weeks, btcusd is expected to reach $150.25 (+50.25%). " +
		"\n\n" +
		"These predictions were made using the price history of btcusd over the past day, as provided by Gemini, " +
		"and by using Prophet, a forecasting algorithm developed by Facebook. This is not financial advice. "

	if got != want {
		t.Fatalf("narrative mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderNarrativeDeterministic(t *testing.T) {
	stats := sampleStats()
	first := RenderNarrative("ethusd", stats)
	second := RenderNarrative("ethusd", stats)
	if first != second {
		t.Fatal("expected byte-identical output for identical inputs")
	}
}

func TestRenderNarrativeParagraphs(t *testing.T) {
	got := RenderNarrative("btcusd", sampleStats())

	paragraphs := strings.Split(got, "\n\n")
	if len(paragraphs) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(paragraphs))
	}
	for i, p := range paragraphs {
		if strings.Contains(p, "\n") {
			t.Errorf("paragraph %d contains a newline", i)
		}
		if p == "" {
			t.Errorf("paragraph %d is empty", i)
		}
	}
}

func TestRenderNarrativeSign(t *testing.T) {
	cases := []struct {
		value    float64
		wantPlus bool
	}{
		{12.34, true},
		{0.01, true},
		{0, false},
		{-0.01, false},
		{-12.34, false},
	}
	for _, tc := range cases {
		stats := sampleStats()
		stats.TwoWeeksPercentChange = tc.value
		got := RenderNarrative("btcusd", stats)
		hasPlus := strings.Contains(got, "In two weeks, btcusd is expected to reach $150.25 (+")
		if hasPlus != tc.wantPlus {
			t.Errorf("value %v: leading plus = %v, expected %v", tc.value, hasPlus, tc.wantPlus)
		}
	}
}
