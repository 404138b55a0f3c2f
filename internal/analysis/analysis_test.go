package analysis

import (
	"testing"
	"time"

	"NavRater/internal/model"
)

// trendingSeries builds a series with a solid uptrend and real
// volatility: +2% then -1%, repeating. Over any 20-day window the
// momentum/volatility ratio is well above 1 and the RSI stays in the
// normal band.
func trendingSeries(n int) []model.Observation {
	obs := make([]model.Observation, n)
	start := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	price := 1.0
	for i := 0; i < n; i++ {
		obs[i] = model.Observation{Date: start.AddDate(0, 0, i), Price: price}
		if i%2 == 0 {
			price *= 1.02
		} else {
			price *= 0.99
		}
	}
	return obs
}

func TestRun_EndToEnd(t *testing.T) {
	a := Run(trendingSeries(80))

	if len(a.Rows) != 80 || len(a.Ratings) != 80 {
		t.Fatalf("expected 80 rows and ratings, got %d/%d", len(a.Rows), len(a.Ratings))
	}

	// Until both RSI and ratio are defined, every row rates as
	// insufficient data; the ratio needs 20 rows of history.
	for i := 0; i < 20; i++ {
		if a.Ratings[i].Grade != model.GradeNoData {
			t.Errorf("rating[%d] = %s, want %s", i, a.Ratings[i].Grade, model.GradeNoData)
		}
	}
	for i := 20; i < 80; i++ {
		if a.Ratings[i].Grade == model.GradeNoData {
			t.Errorf("rating[%d] still %s with full history", i, model.GradeNoData)
		}
	}

	row, rating := a.Latest()
	if !row.RSI14.Valid || row.RSI14.Float64 < 30 || row.RSI14.Float64 > 70 {
		t.Fatalf("latest RSI = %+v, expected inside the normal band", row.RSI14)
	}
	if !row.MomentumRatio.Valid || row.MomentumRatio.Float64 <= 1.0 {
		t.Fatalf("latest ratio = %+v, expected > 1.0", row.MomentumRatio)
	}
	if rating.Grade != model.GradeS {
		t.Errorf("latest grade = %s, want %s", rating.Grade, model.GradeS)
	}
}

func TestRun_Idempotent(t *testing.T) {
	obs := trendingSeries(40)
	a1 := Run(obs)
	a2 := Run(obs)

	for i := range a1.Rows {
		if a1.Rows[i] != a2.Rows[i] {
			t.Fatalf("row %d differs between runs", i)
		}
		if a1.Ratings[i] != a2.Ratings[i] {
			t.Fatalf("rating %d differs between runs", i)
		}
	}
}
