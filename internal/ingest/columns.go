package ingest

import (
	"fmt"
	"strings"
)

// Keyword lists for fuzzy column detection, matched as substrings of
// the lowercased header names. They cover both the Chinese fund export
// format and generic English price files.
var (
	dateKeywords  = []string{"日期", "date"}
	priceKeywords = []string{"净值", "收盘", "price", "nav", "累计"}
)

// ColumnError reports a column that could not be identified, carrying
// the detected header names for diagnosis.
type ColumnError struct {
	Missing string // "date" or "price"
	Columns []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("could not identify %s column, detected columns: %s",
		e.Missing, strings.Join(e.Columns, ", "))
}

// DetectColumns locates the date and price columns by keyword match.
// When several headers match, the last one wins.
func DetectColumns(header []string) (dateIdx, priceIdx int, err error) {
	dateIdx, priceIdx = -1, -1
	for i, name := range header {
		lower := strings.ToLower(name)
		for _, k := range dateKeywords {
			if strings.Contains(lower, k) {
				dateIdx = i
			}
		}
		for _, k := range priceKeywords {
			if strings.Contains(lower, k) {
				priceIdx = i
			}
		}
	}
	if dateIdx < 0 {
		return 0, 0, &ColumnError{Missing: "date", Columns: header}
	}
	if priceIdx < 0 {
		return 0, 0, &ColumnError{Missing: "price", Columns: header}
	}
	return dateIdx, priceIdx, nil
}
