package indicator

import "math"

// percentileRanks computes the progressive percentile rank of each
// price: the average-rank position of prices[i] within prices[0..i],
// as a percent rounded to two decimals. Only data up to and including
// the current row is used.
//
// The scan is O(n^2); fine at NAV-history scale. An incrementally
// maintained rank index would bring it down if that ever matters.
func percentileRanks(prices []float64) []float64 {
	out := make([]float64, len(prices))
	for i, p := range prices {
		var less, equal float64
		for j := 0; j <= i; j++ {
			switch {
			case prices[j] < p:
				less++
			case prices[j] == p:
				equal++
			}
		}
		rank := less + (equal+1)/2
		pct := rank / float64(i+1) * 100
		out[i] = math.Round(pct*100) / 100
	}
	return out
}
