package indicator

import "time"

// dailyChanges returns the day-over-day percent change series.
// Undefined at the first row.
func dailyChanges(prices []float64) []float64 {
	out := nanSlice(len(prices))
	for i := 1; i < len(prices); i++ {
		out[i] = (prices[i]/prices[i-1] - 1) * 100
	}
	return out
}

// periodChanges returns the percent change over a trailing period.
// Undefined until `period` prior rows exist.
func periodChanges(prices []float64, period int) []float64 {
	out := nanSlice(len(prices))
	for i := period; i < len(prices); i++ {
		out[i] = (prices[i]/prices[i-period] - 1) * 100
	}
	return out
}

// ytdChanges returns the percent change of each row relative to the
// first observation of its calendar year. The anchor carries forward
// within a year, so the first row of every year is exactly 0.
func ytdChanges(dates []time.Time, prices []float64) []float64 {
	out := nanSlice(len(prices))
	year := 0
	var anchor float64
	for i := range prices {
		if y := dates[i].Year(); i == 0 || y != year {
			year = y
			anchor = prices[i]
		}
		out[i] = (prices[i]/anchor - 1) * 100
	}
	return out
}

// anchoredChanges returns the percent change of each row relative to
// the price at the first date on or after the anchor. Rows before that
// index stay undefined; when the series never reaches the anchor date,
// the whole column is undefined.
func anchoredChanges(dates []time.Time, prices []float64, anchor time.Time) []float64 {
	out := nanSlice(len(prices))
	base := -1
	for i, d := range dates {
		if !d.Before(anchor) {
			base = i
			break
		}
	}
	if base < 0 {
		return out
	}
	for i := base; i < len(prices); i++ {
		out[i] = (prices[i]/prices[base] - 1) * 100
	}
	return out
}
