package joins

// Expected returns the expected join count for trials Bernoulli observations
// with event probability prob, under the binomial alternation model:
//
//	E = 2(N-1)pq
//
// Zero trials or a one-sided probability (0 or 1) collapse it to 0.
func Expected(trials int, prob float64) float64 {
	if trials < 1 {
		return 0
	}
	pq := prob * (1 - prob)
	return 2 * float64(trials-1) * pq
}

// Variance returns the variance of the join count under the same model:
//
//	V = 4Npq(1-3pq) - 2pq(3-10pq)
//
// The closed form is exact for independent trials; it is 0 whenever pq is 0
// or the trial count is too small to alternate.
func Variance(trials int, prob float64) float64 {
	if trials < 1 {
		return 0
	}
	n := float64(trials)
	pq := prob * (1 - prob)
	v := 4*n*pq*(1-3*pq) - 2*pq*(3-10*pq)
	if v < 0 {
		// Small-N artifacts of the closed form; a negative variance is
		// meaningless, treat it as degenerate.
		return 0
	}
	return v
}
