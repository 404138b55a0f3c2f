package indicator

import (
	"math"
	"time"

	"github.com/guregu/null/v6"

	"NavRater/internal/model"
)

// Fixed indicator parameters. These are deliberately not configurable.
const (
	shortPeriod = 20
	longPeriod  = 60
	volWindow   = 20
	rsiPeriod   = 14
)

// anchorDate is the fixed baseline for the anchored return column.
var anchorDate = time.Date(2024, time.September, 30, 0, 0, 0, 0, time.UTC)

// Compute derives the full indicator table from a NAV series. The input
// must be sorted ascending by date with finite positive prices; the
// output has the same length and order. Indicators that cannot be
// computed at a row are carried as invalid null.Float values.
//
// All intermediate math runs on float64 with NaN as the undefined
// marker, so zero-denominator cases keep their IEEE semantics (an RSI
// with no losses saturates at 100 instead of being special-cased).
func Compute(obs []model.Observation) []model.IndicatorRow {
	n := len(obs)
	prices := make([]float64, n)
	dates := make([]time.Time, n)
	for i, o := range obs {
		prices[i] = o.Price
		dates[i] = o.Date
	}

	daily := dailyChanges(prices)
	chg20 := periodChanges(prices, shortPeriod)
	chg60 := periodChanges(prices, longPeriod)
	vol20 := rollingVolatility(prices, volWindow)
	ratio := momentumRatios(chg20, vol20)
	rsi := rsiSeries(prices, rsiPeriod)
	pct := percentileRanks(prices)
	ytd := ytdChanges(dates, prices)
	anchored := anchoredChanges(dates, prices, anchorDate)

	rows := make([]model.IndicatorRow, n)
	for i := 0; i < n; i++ {
		rows[i] = model.IndicatorRow{
			Date:           dates[i],
			Price:          prices[i],
			DailyChange:    fromFloat(daily[i]),
			Change20:       fromFloat(chg20[i]),
			Change60:       fromFloat(chg60[i]),
			Volatility20:   fromFloat(vol20[i]),
			MomentumRatio:  fromFloat(ratio[i]),
			RSI14:          fromFloat(rsi[i]),
			Percentile:     fromFloat(pct[i]),
			YTDChange:      fromFloat(ytd[i]),
			AnchoredChange: fromFloat(anchored[i]),
		}
	}
	return rows
}

// fromFloat converts an internal NaN-marked value into a nullable one.
func fromFloat(v float64) null.Float {
	if math.IsNaN(v) {
		return null.Float{}
	}
	return null.FloatFrom(v)
}

// nanSlice returns a slice of n undefined values.
func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
