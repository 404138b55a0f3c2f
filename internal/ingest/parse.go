package ingest

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"NavRater/internal/model"
)

// Date layouts tried in order when coercing the date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"2006年01月02日",
	"01-02-06", // excelize default short date formatting
	"01/02/2006",
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Observations coerces a raw table into a clean series: columns
// identified by keyword, dates and prices parsed, rows with
// unparseable values dropped, result sorted ascending by date.
func (t *Table) Observations() ([]model.Observation, error) {
	dateIdx, priceIdx, err := DetectColumns(t.Header)
	if err != nil {
		return nil, err
	}

	obs := make([]model.Observation, 0, len(t.Rows))
	for _, row := range t.Rows {
		if len(row) <= dateIdx || len(row) <= priceIdx {
			continue
		}
		d, err := parseDate(strings.TrimSpace(row[dateIdx]))
		if err != nil {
			continue
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(row[priceIdx]), 64)
		if err != nil || math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
			continue
		}
		obs = append(obs, model.Observation{Date: d, Price: p})
	}
	if len(obs) == 0 {
		return nil, fmt.Errorf("no valid observations after coercion")
	}

	sort.SliceStable(obs, func(i, j int) bool { return obs[i].Date.Before(obs[j].Date) })
	return obs, nil
}
