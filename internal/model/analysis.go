package model

// Analysis is the full output of one pipeline run: the per-row
// indicator table plus the rating of every row.
type Analysis struct {
	Rows    []IndicatorRow
	Ratings []Rating
}

// Latest returns the most recent row and its rating. The pipeline
// never produces an empty analysis, so Latest assumes at least one row.
func (a *Analysis) Latest() (IndicatorRow, Rating) {
	last := len(a.Rows) - 1
	return a.Rows[last], a.Ratings[last]
}
