package recorder

import (
	"time"

	"github.com/guregu/null/v6"

	"NavRater/internal/model"
)

// RunRecord summarizes one completed analysis run.
type RunRecord struct {
	Source     string
	RowCount   int
	FirstDate  time.Time
	LastDate   time.Time
	LastPrice  float64
	LastRSI    null.Float
	LastRatio  null.Float
	Percentile null.Float
	Grade      string
}

// NewRunRecord flattens an analysis into its persisted summary.
func NewRunRecord(source string, a *model.Analysis) *RunRecord {
	row, rating := a.Latest()
	return &RunRecord{
		Source:     source,
		RowCount:   len(a.Rows),
		FirstDate:  a.Rows[0].Date,
		LastDate:   row.Date,
		LastPrice:  row.Price,
		LastRSI:    row.RSI14,
		LastRatio:  row.MomentumRatio,
		Percentile: row.Percentile,
		Grade:      string(rating.Grade),
	}
}

// Recorder persists analysis run summaries for later inspection.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
