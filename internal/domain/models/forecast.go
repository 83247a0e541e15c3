package models

import "time"

// ForecastResult is the full outcome of one pipeline run.
type ForecastResult struct {
	Symbol      string          `json:"symbol"`
	GeneratedAt time.Time       `json:"generated_at"`
	Description string          `json:"Forecast Description"`
	Stats       PriceStatistics `json:"stats"`
}

// ForecastEvent is the compact record published to the event stream after
// a successful forecast.
type ForecastEvent struct {
	Symbol      string          `json:"symbol"`
	GeneratedAt time.Time       `json:"generated_at"`
	Stats       PriceStatistics `json:"stats"`
}
