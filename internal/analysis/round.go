package analysis

import "math"

// round rounds half away from zero to the given number of decimals and
// folds negative zero into zero.
func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}
	return r
}
