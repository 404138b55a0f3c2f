package report

import (
	"fmt"
	"math"

	"github.com/guregu/null/v6"
	"github.com/xuri/excelize/v2"

	"NavRater/internal/model"
)

// Sheet names mirror the original spreadsheet report.
const (
	sheetHistory = "每日完整数据"
	sheetLatest  = "最新摘要"
)

var exportHeader = []string{
	"日期", "当前价格", "当前涨跌幅(%)", "20日涨幅(%)", "60日涨幅(%)",
	"20日波动率(%)", "动量-波动率比率", "RSI(14)", "价格百分位",
	"YTD涨幅(%)", "202409TD涨幅(%)", "综合评级", "评级描述", "评级颜色",
}

// WriteExcel serializes an analysis into a two-sheet workbook: the
// full history and a one-row latest summary. Values are rounded to
// four decimals; undefined indicators stay blank.
func WriteExcel(a *model.Analysis, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetHistory); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeSheet(f, sheetHistory, a, 0, len(a.Rows)); err != nil {
		return err
	}

	if _, err := f.NewSheet(sheetLatest); err != nil {
		return fmt.Errorf("add sheet %q: %w", sheetLatest, err)
	}
	if err := writeSheet(f, sheetLatest, a, len(a.Rows)-1, len(a.Rows)); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, a *model.Analysis, from, to int) error {
	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	line := 2
	for i := from; i < to; i++ {
		row := a.Rows[i]
		rating := a.Ratings[i]
		values := []interface{}{
			row.Date.Format("2006-01-02"),
			round4(row.Price),
			cell(row.DailyChange),
			cell(row.Change20),
			cell(row.Change60),
			cell(row.Volatility20),
			cell(row.MomentumRatio),
			cell(row.RSI14),
			cell(row.Percentile),
			cell(row.YTDChange),
			cell(row.AnchoredChange),
			fmt.Sprintf("%s (%s)", rating.Grade, rating.Name),
			rating.Description,
			string(rating.Color),
		}
		ref, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, ref, &values); err != nil {
			return fmt.Errorf("write row %d: %w", line, err)
		}
		line++
	}
	return nil
}

// cell rounds a nullable value for export; undefined stays blank.
func cell(v null.Float) interface{} {
	if !v.Valid {
		return nil
	}
	return round4(v.Float64)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
