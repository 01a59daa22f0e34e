// Package solver provides a bounded one-dimensional root finder and the two
// model inversions built on it: implied volatility from an observed price,
// and strike from a target delta.
package solver

import (
	"math"

	"options-desk/internal/errors"
)

// MaxIterations bounds the cost of a single solve. Combined with the
// tolerance-based early exit, a pathological bracket terminates predictably
// instead of looping.
const MaxIterations = 100

// Bracket is an interval [Low, High] known to contain the root.
type Bracket struct {
	Low  float64
	High float64
}

// Bisect finds x in [lo, hi] such that f(x) is within tolerance of target,
// halving the bracket on the sign of f(mid)-target. f is assumed monotonic
// within the bracket, so no derivative information is needed. Returns a
// ConvergenceError when the bracket does not straddle the target or the
// iteration budget runs out above tolerance.
func Bisect(f func(float64) float64, target float64, br Bracket, tol float64) (float64, error) {
	lo, hi := br.Low, br.High
	fLo := f(lo) - target
	fHi := f(hi) - target

	if fLo == 0 {
		return lo, nil
	}
	if fHi == 0 {
		return hi, nil
	}
	if (fLo < 0) == (fHi < 0) {
		return 0, errors.NewConvergenceError(lo, hi, target, 0, "bracket does not contain a root")
	}

	var mid float64
	for i := 0; i < MaxIterations; i++ {
		mid = (lo + hi) / 2
		fMid := f(mid) - target
		if fMid == 0 || math.Abs(hi-lo) < tol {
			return mid, nil
		}
		if (fMid < 0) == (fLo < 0) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}

	if math.Abs(hi-lo) < tol {
		return (lo + hi) / 2, nil
	}
	return 0, errors.NewConvergenceError(br.Low, br.High, target, MaxIterations, "did not converge within iteration budget")
}
