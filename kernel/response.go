package kernel

import "math"

// HillResponse evaluates the Hill equation: Emax * x^n / (EC50^n + x^n).
// Used for dose-response curves and receptor-occupancy calculations. x and
// EC50 are expected non-negative; n is the Hill coefficient (cooperativity).
func HillResponse(x, emax, ec50, n float64) float64 {
	if x <= 0 {
		return 0
	}
	xn := math.Pow(x, n)
	ec50n := math.Pow(ec50, n)
	return emax * xn / (ec50n + xn)
}

// InverseHill evaluates the complementary (inhibitory) Hill curve:
// Imax * (1 - x^n/(IC50^n + x^n)), used where increasing concentration
// suppresses rather than drives a response (e.g. inhibitor occupancy).
func InverseHill(x, imax, ic50, n float64) float64 {
	if x <= 0 {
		return imax
	}
	xn := math.Pow(x, n)
	ic50n := math.Pow(ic50, n)
	return imax * (1 - xn/(ic50n+xn))
}

// LogisticResponse evaluates a standard logistic curve L / (1 + exp(-k*(x-x0))).
func LogisticResponse(x, l, k, x0 float64) float64 {
	return l / (1 + math.Exp(-k*(x-x0)))
}
