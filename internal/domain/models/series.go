package models

import "time"

// PricePoint is a single (timestamp, price) observation or prediction.
type PricePoint struct {
	Timestamp time.Time `json:"ts"`
	Value     float64   `json:"value"`
}

// TrainingSeries holds historical hourly price changes, newest first.
// Timestamps strictly decrease with increasing index, one hour apart.
type TrainingSeries []PricePoint

// ForecastSeries holds the model output in timestamp order: the in-sample
// fit for every training point followed by the future horizon at one-hour
// spacing.
type ForecastSeries []PricePoint

// ForecastHorizon is the number of hourly steps predicted past the last
// training timestamp.
const ForecastHorizon = 24

// Last returns the most recent training point (index 0 by construction).
func (s TrainingSeries) Last() PricePoint {
	return s[0]
}

// Values extracts the raw values in series order.
func (s TrainingSeries) Values() []float64 {
	vs := make([]float64, len(s))
	for i, p := range s {
		vs[i] = p.Value
	}
	return vs
}
