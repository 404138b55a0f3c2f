package analysis

import (
	"fmt"

	"NavRater/internal/indicator"
	"NavRater/internal/ingest"
	"NavRater/internal/model"
	"NavRater/internal/rating"
)

// Run executes the indicator pipeline on a clean series and rates
// every row. Pure and idempotent; the caller owns the input.
func Run(obs []model.Observation) *model.Analysis {
	rows := indicator.Compute(obs)
	return &model.Analysis{
		Rows:    rows,
		Ratings: rating.ClassifyAll(rows),
	}
}

// AnalyzeFile loads a NAV export from disk and runs the full pipeline.
func AnalyzeFile(path string) (*model.Analysis, error) {
	table, err := ingest.Load(path)
	if err != nil {
		return nil, err
	}
	obs, err := table.Observations()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Run(obs), nil
}
