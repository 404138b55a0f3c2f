package report

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/guregu/null/v6"
	"github.com/xuri/excelize/v2"

	"NavRater/internal/model"
)

func sampleAnalysis() *model.Analysis {
	d := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)
	rows := []model.IndicatorRow{
		{Date: d, Price: 1.2345},
		{
			Date:          d.AddDate(0, 0, 1),
			Price:         1.2567,
			DailyChange:   null.FloatFrom(1.7983),
			Change20:      null.FloatFrom(5.12),
			MomentumRatio: null.FloatFrom(1.234),
			RSI14:         null.FloatFrom(55.5),
			Percentile:    null.FloatFrom(100),
		},
	}
	return &model.Analysis{
		Rows: rows,
		Ratings: []model.Rating{
			{Grade: model.GradeNoData, Name: "insufficient-data", Description: "data not yet sufficient", Color: model.ColorGray},
			{Grade: model.GradeS, Name: "perfect-uptrend", Description: "low volatility with strong steady gains, best holding state", Color: model.ColorGreen},
		},
	}
}

func TestFormatSummary(t *testing.T) {
	out := FormatSummary(sampleAnalysis())

	for _, want := range []string{"S (perfect-uptrend)", "2024-10-02", "1.2567", "55.50", "1.234"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	// YTD was never set on the latest row
	if !strings.Contains(out, "n/a") {
		t.Errorf("expected n/a for undefined indicators:\n%s", out)
	}
}

func TestWriteExcel_TwoSheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := WriteExcel(sampleAnalysis(), path); err != nil {
		t.Fatalf("WriteExcel: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != sheetHistory || sheets[1] != sheetLatest {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	history, err := f.GetRows(sheetHistory)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 3 { // header + 2 rows
		t.Fatalf("history sheet has %d rows, want 3", len(history))
	}
	if history[0][0] != "日期" {
		t.Errorf("unexpected header cell: %q", history[0][0])
	}

	latest, err := f.GetRows(sheetLatest)
	if err != nil {
		t.Fatal(err)
	}
	if len(latest) != 2 { // header + latest row only
		t.Fatalf("latest sheet has %d rows, want 2", len(latest))
	}
	if latest[1][0] != "2024-10-02" {
		t.Errorf("latest row date = %q, want 2024-10-02", latest[1][0])
	}
}
