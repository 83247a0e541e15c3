package usecase

import (
	"fmt"

	"CryptoProphet/internal/domain/models"
)

// forecastWindowSize is the number of leading forecast entries aggregated as
// the "next day" window. The slice is positional: when the training series is
// shorter than a day the window includes genuinely future points, otherwise it
// covers in-sample fit points only, matching the shipped behavior.
const forecastWindowSize = 24

// twoWeekIndex is the positional forecast index reported as the two-week
// projection. The position is part of the public output contract and is kept
// as-is even though 38 hourly steps fall well short of fourteen days.
const twoWeekIndex = 38

// ComputeStatistics derives the summary aggregates for one forecast run:
// min/max/mean over the history window and the first-day forecast window,
// the two-week point projection, and the percent change for each pair.
func ComputeStatistics(history models.TrainingSeries, forecast models.ForecastSeries) (models.PriceStatistics, error) {
	var stats models.PriceStatistics

	if len(history) == 0 {
		return stats, models.NewStatisticsError("price history is empty")
	}
	if len(forecast) <= twoWeekIndex {
		return stats, models.NewStatisticsError(fmt.Sprintf("forecast too short for two-week projection: %d entries", len(forecast)))
	}

	minLast, maxLast, avgLast := aggregate(history.Values())
	lastPrice := history.Last().Value

	window := forecast
	if len(window) > forecastWindowSize {
		window = window[:forecastWindowSize]
	}
	nextValues := make([]float64, len(window))
	for i, p := range window {
		nextValues[i] = p.Value
	}
	minNext, maxNext, avgNext := aggregate(nextValues)

	twoWeeks := forecast[twoWeekIndex].Value

	minChange, err := percentChange(minNext, minLast)
	if err != nil {
		return stats, err
	}
	maxChange, err := percentChange(maxNext, maxLast)
	if err != nil {
		return stats, err
	}
	avgChange, err := percentChange(avgNext, avgLast)
	if err != nil {
		return stats, err
	}
	twoWeeksChange, err := percentChange(twoWeeks, lastPrice)
	if err != nil {
		return stats, err
	}

	stats = models.PriceStatistics{
		MinPriceLastDay:       minLast,
		MinPriceNextDay:       minNext,
		MinPercentChange:      minChange,
		MaxPriceLastDay:       maxLast,
		MaxPriceNextDay:       maxNext,
		MaxPercentChange:      maxChange,
		AveragePriceLastDay:   avgLast,
		AveragePriceNextDay:   avgNext,
		AveragePercentChange:  avgChange,
		PriceTwoWeeks:         twoWeeks,
		TwoWeeksPercentChange: twoWeeksChange,
	}
	return stats, nil
}

// aggregate computes min, max and mean over a non-empty value slice.
func aggregate(values []float64) (min, max, mean float64) {
	min = values[0]
	max = values[0]
	sum := 0.0
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	return min, max, sum / float64(len(values))
}

// percentChange returns (new-old)/old*100. A zero baseline is a defined
// failure rather than a non-finite number.
func percentChange(newValue, oldValue float64) (float64, error) {
	if oldValue == 0 {
		return 0, models.NewStatisticsError("percent change undefined: baseline price is zero")
	}
	return (newValue - oldValue) / oldValue * 100, nil
}
