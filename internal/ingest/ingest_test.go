package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDetectColumns(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		dateIdx  int
		priceIdx int
		wantErr  string // missing column, empty means success
	}{
		{"chinese fund export", []string{"日期", "单位净值"}, 0, 1, ""},
		{"english export", []string{"Date", "Close Price"}, 0, 1, ""},
		{"mixed case", []string{"TRADE DATE", "NAV"}, 0, 1, ""},
		{"last match wins", []string{"date", "nav", "累计净值"}, 0, 2, ""},
		{"no date column", []string{"时间", "净值"}, 0, 0, "date"},
		{"no price column", []string{"日期", "备注"}, 0, 0, "price"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dateIdx, priceIdx, err := DetectColumns(tt.header)
			if tt.wantErr != "" {
				var colErr *ColumnError
				if !errors.As(err, &colErr) {
					t.Fatalf("expected ColumnError, got %v", err)
				}
				if colErr.Missing != tt.wantErr {
					t.Errorf("missing = %q, want %q", colErr.Missing, tt.wantErr)
				}
				if len(colErr.Columns) != len(tt.header) {
					t.Errorf("error should carry the detected columns, got %v", colErr.Columns)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if dateIdx != tt.dateIdx || priceIdx != tt.priceIdx {
				t.Errorf("got (%d, %d), want (%d, %d)", dateIdx, priceIdx, tt.dateIdx, tt.priceIdx)
			}
		})
	}
}

func TestObservations_CoercionAndSort(t *testing.T) {
	table := &Table{
		Header: []string{"日期", "单位净值"},
		Rows: [][]string{
			{"2024-03-04", "1.2345"},
			{"2024-03-01", "1.2000"},
			{"2024-03-05", "abc"},  // non-numeric price: dropped
			{"2024-03-06", ""},     // missing price: dropped
			{"not a date", "1.25"}, // unparseable date: dropped
			{"2024/03/07", " 1.3000 "},
			{"2024-03-08"}, // short row: dropped
		},
	}
	obs, err := table.Observations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(obs) != 3 {
		t.Fatalf("expected 3 observations, got %d", len(obs))
	}
	for i := 1; i < len(obs); i++ {
		if !obs[i-1].Date.Before(obs[i].Date) {
			t.Fatalf("observations not sorted ascending at %d", i)
		}
	}
	if obs[0].Price != 1.2 {
		t.Errorf("obs[0].Price = %f, want 1.2", obs[0].Price)
	}
	want := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)
	if !obs[2].Date.Equal(want) {
		t.Errorf("obs[2].Date = %v, want %v", obs[2].Date, want)
	}
}

func TestObservations_NoValidRows(t *testing.T) {
	table := &Table{
		Header: []string{"date", "price"},
		Rows:   [][]string{{"2024-01-01", "n/a"}},
	}
	if _, err := table.Observations(); err == nil {
		t.Fatal("expected error for table with no valid rows")
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nav.csv")
	content := "日期,单位净值\n2024-01-02,1.0000\n2024-01-03,1.0100\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Header) != 2 || table.Header[0] != "日期" {
		t.Errorf("unexpected header: %v", table.Header)
	}
	if len(table.Rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(table.Rows))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for unreadable file")
	}
}
