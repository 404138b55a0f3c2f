package indicator

// rsiSeries computes the rolling-mean RSI: simple window means of the
// gain and loss series rather than Wilder smoothing. The undefined
// first delta counts as a zero gain and a zero loss, so the gain/loss
// series have no gaps and the RSI is first defined at row period-1.
//
// RS keeps IEEE division semantics: a window with gains and no losses
// gives +Inf, which saturates the RSI at 100; a window with neither
// gains nor losses gives 0/0, which stays undefined.
func rsiSeries(prices []float64, period int) []float64 {
	n := len(prices)
	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < n; i++ {
		delta := prices[i] - prices[i-1]
		if delta > 0 {
			gains[i] = delta
		} else if delta < 0 {
			losses[i] = -delta
		}
	}

	out := nanSlice(n)
	for i := period - 1; i < n; i++ {
		var gainSum, lossSum float64
		for j := i - period + 1; j <= i; j++ {
			gainSum += gains[j]
			lossSum += losses[j]
		}
		rs := gainSum / lossSum
		out[i] = 100 - 100/(1+rs)
	}
	return out
}
