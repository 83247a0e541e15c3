package usecase

import (
	"fmt"
	"strconv"
	"time"

	"CryptoProphet/internal/domain/models"
)

// BuildTrainingSeries converts the raw hourly change values (newest first)
// into a timestamped training series. The reference instant is now truncated
// to the top of the hour; element i is stamped reference minus i hours.
func BuildTrainingSeries(rawValues []string, now time.Time) (models.TrainingSeries, error) {
	if rawValues == nil {
		return nil, models.NewDataFormatError("Invalid response from Gemini")
	}

	reference := now.Truncate(time.Hour)

	series := make(models.TrainingSeries, 0, len(rawValues))
	for i, raw := range rawValues {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, models.NewDataFormatError(fmt.Sprintf("invalid price value %q at hour offset %d", raw, i))
		}
		series = append(series, models.PricePoint{
			Timestamp: reference.Add(-time.Duration(i) * time.Hour),
			Value:     v,
		})
	}
	return series, nil
}
