package indicator

import "math"

// rollingVolatility returns the sample standard deviation of the daily
// fractional returns over a trailing window, expressed as a percent.
// The return series itself starts at row 1, so the first complete
// window ends at row `window`.
func rollingVolatility(prices []float64, window int) []float64 {
	n := len(prices)
	returns := nanSlice(n)
	for i := 1; i < n; i++ {
		returns[i] = prices[i]/prices[i-1] - 1
	}
	out := nanSlice(n)
	for i := window; i < n; i++ {
		out[i] = stddev(returns[i-window+1:i+1]) * 100
	}
	return out
}

// stddev is the ddof=1 sample standard deviation.
func stddev(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}

// momentumRatios divides the 20-period momentum by the 20-day
// volatility, both as fractions. A volatility comparing equal to zero
// yields exactly 0 regardless of the numerator; an undefined volatility
// propagates undefined through the division. The guard checks only the
// literal zero, nothing else.
func momentumRatios(chg20, vol20 []float64) []float64 {
	out := make([]float64, len(chg20))
	for i := range out {
		vol := vol20[i] / 100
		if vol == 0 {
			out[i] = 0
			continue
		}
		out[i] = (chg20[i] / 100) / vol
	}
	return out
}
