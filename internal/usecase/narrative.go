package usecase

import (
	"fmt"

	"CryptoProphet/internal/domain/models"
)

// RenderNarrative renders the statistics into the fixed three-paragraph
// forecast description. Each paragraph is a single line (a trailing space
// included), paragraphs are separated by one blank line, and identical
// inputs always produce byte-identical output.
func RenderNarrative(symbol string, stats models.PriceStatistics) string {
	nextDay := fmt.Sprintf(
		"Over the next 24 hours, %s is expected to reach a low price of $%.2f (%s%.2f%%), a high price of $%.2f (%s%.2f%%), and an average price of $%.2f (%s%.2f%%). ",
		symbol,
		stats.MinPriceNextDay, plusSign(stats.MinPercentChange), stats.MinPercentChange,
		stats.MaxPriceNextDay, plusSign(stats.MaxPercentChange), stats.MaxPercentChange,
		stats.AveragePriceNextDay, plusSign(stats.AveragePercentChange), stats.AveragePercentChange,
	)

	twoWeeks := fmt.Sprintf(
		"In two weeks, %s is expected to reach $%.2f (%s%.2f%%). ",
		symbol,
		stats.PriceTwoWeeks, plusSign(stats.TwoWeeksPercentChange), stats.TwoWeeksPercentChange,
	)

	attribution := fmt.Sprintf(
		"These predictions were made using the price history of %s over the past day, as provided by Gemini, and by using Prophet, a forecasting algorithm developed by Facebook. This is not financial advice. ",
		symbol,
	)

	return nextDay + "\n\n" + twoWeeks + "\n\n" + attribution
}

// plusSign returns "+" for strictly positive values; negative values carry
// their own sign from %.2f and zero gets no sign.
func plusSign(v float64) string {
	if v > 0 {
		return "+"
	}
	return ""
}
