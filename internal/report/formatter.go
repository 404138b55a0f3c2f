package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guregu/null/v6"

	"NavRater/internal/model"
)

// FormatSummary renders the latest analysis row as a text card.
func FormatSummary(a *model.Analysis) string {
	row, rating := a.Latest()
	var b strings.Builder

	b.WriteString(fmt.Sprintf("NavRater 综合评级 | %s\n\n", row.Date.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("评级: %s (%s)\n", rating.Grade, rating.Name))
	b.WriteString(fmt.Sprintf("说明: %s\n\n", rating.Description))

	b.WriteString(fmt.Sprintf("当前价格: %.4f\n", row.Price))
	b.WriteString(fmt.Sprintf("RSI(14): %s (参考带 30/70)\n", formatValue(row.RSI14, 2)))
	b.WriteString(fmt.Sprintf("动量-波动率比率: %s (参考线 -0.5/0/0.5/1.0)\n", formatValue(row.MomentumRatio, 3)))
	b.WriteString(fmt.Sprintf("20日涨幅: %s%%\n", formatValue(row.Change20, 2)))
	b.WriteString(fmt.Sprintf("价格百分位: %s%%\n", formatValue(row.Percentile, 1)))
	b.WriteString(fmt.Sprintf("YTD涨幅: %s%%\n", formatValue(row.YTDChange, 2)))

	return b.String()
}

// formatValue renders a nullable indicator, "n/a" when undefined.
func formatValue(v null.Float, prec int) string {
	if !v.Valid {
		return "n/a"
	}
	return strconv.FormatFloat(v.Float64, 'f', prec, 64)
}
