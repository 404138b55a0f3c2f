package model

import "time"

// Observation is one row of the raw NAV series: a calendar date and the
// fund's price on that date.
type Observation struct {
	Date  time.Time
	Price float64
}
