package models

// PriceStatistics aggregates the last day of history against the first day
// of forecast, plus a single two-week point projection. Field names follow
// the wire format of the public API.
type PriceStatistics struct {
	MinPriceLastDay       float64 `json:"min_price_last_day"`
	MinPriceNextDay       float64 `json:"min_price_next_day"`
	MinPercentChange      float64 `json:"min_percent_change"`
	MaxPriceLastDay       float64 `json:"max_price_last_day"`
	MaxPriceNextDay       float64 `json:"max_price_next_day"`
	MaxPercentChange      float64 `json:"max_percent_change"`
	AveragePriceLastDay   float64 `json:"average_price_last_day"`
	AveragePriceNextDay   float64 `json:"average_price_next_day"`
	AveragePercentChange  float64 `json:"average_percent_change"`
	PriceTwoWeeks         float64 `json:"price_two_weeks"`
	TwoWeeksPercentChange float64 `json:"two_weeks_percent_change"`
}
