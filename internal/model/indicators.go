package model

import (
	"time"

	"github.com/guregu/null/v6"
)

// IndicatorRow holds all derived indicators for one observation.
// An invalid null.Float marks an indicator that is undefined at that
// row: not enough trailing history, no anchor date yet, or a zero
// denominator upstream.
type IndicatorRow struct {
	Date           time.Time
	Price          float64
	DailyChange    null.Float // day-over-day % change
	Change20       null.Float // 20-period % change
	Change60       null.Float // 60-period % change
	Volatility20   null.Float // rolling stddev of daily returns, in %
	MomentumRatio  null.Float // 20d momentum / 20d volatility, both as fractions
	RSI14          null.Float
	Percentile     null.Float // progressive price percentile rank, in %
	YTDChange      null.Float // % change vs first observation of the calendar year
	AnchoredChange null.Float // % change vs price at the fixed anchor date
}
