package rating

import (
	"github.com/guregu/null/v6"

	"NavRater/internal/model"
)

// Classify maps one row's RSI and momentum/volatility ratio to a
// rating. Rules are evaluated top to bottom, first match wins. RSI
// exactly 30 or exactly 70 lands in the normal branch; the oversold
// and overbought branches use strict inequalities.
func Classify(rsi, ratio null.Float) model.Rating {
	if !rsi.Valid || !ratio.Valid {
		return model.Rating{
			Grade:       model.GradeNoData,
			Name:        "insufficient-data",
			Description: "data not yet sufficient",
			Color:       model.ColorGray,
		}
	}
	r := rsi.Float64
	q := ratio.Float64

	// Oversold region, sub-ranked by momentum quality.
	if r < 30 {
		switch {
		case q > 0:
			return model.Rating{Grade: model.GradeEPlus, Name: "golden-pit",
				Description: "oversold and momentum already positive, strong entry point", Color: model.ColorPurple}
		case q > -0.2:
			return model.Rating{Grade: model.GradeE, Name: "stabilizing",
				Description: "oversold with the decline slowing, small cautious entry", Color: model.ColorBlue}
		case q > -0.5:
			return model.Rating{Grade: model.GradeEMinus, Name: "grinding-down",
				Description: "oversold but still grinding down, hold off", Color: model.ColorOrange}
		default:
			return model.Rating{Grade: model.GradeEDouble, Name: "falling-knife",
				Description: "oversold and falling sharply, do not enter", Color: model.ColorDarkRed}
		}
	}

	// Overbought region.
	if r > 70 {
		if q > 1.0 {
			return model.Rating{Grade: model.GradeC, Name: "squeeze",
				Description: "overbought but the trend is very strong, may keep running", Color: model.ColorOrange}
		}
		return model.Rating{Grade: model.GradeB, Name: "high-risk",
			Description: "overbought and volatile, beware of a reversal", Color: model.ColorRed}
	}

	// Normal region, 30 <= RSI <= 70.
	switch {
	case q > 1.0:
		return model.Rating{Grade: model.GradeS, Name: "perfect-uptrend",
			Description: "low volatility with strong steady gains, best holding state", Color: model.ColorGreen}
	case q > 0.5:
		return model.Rating{Grade: model.GradeA, Name: "steady-uptrend",
			Description: "healthy trend, hold", Color: model.ColorLightGreen}
	case q > 0:
		return model.Rating{Grade: model.GradeD, Name: "consolidating",
			Description: "weak or choppy, watch", Color: model.ColorGray}
	default:
		return model.Rating{Grade: model.GradeDMinus, Name: "weak-correction",
			Description: "negative momentum, downtrend", Color: model.ColorLightGray}
	}
}

// ClassifyAll applies the rating rules to every row of an indicator table.
func ClassifyAll(rows []model.IndicatorRow) []model.Rating {
	out := make([]model.Rating, len(rows))
	for i, row := range rows {
		out[i] = Classify(row.RSI14, row.MomentumRatio)
	}
	return out
}
