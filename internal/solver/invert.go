package solver

import (
	"math"

	"options-desk/internal/errors"
	"options-desk/internal/models"
	"options-desk/internal/pricing"
)

// Default brackets and tolerances for the two inversions. The volatility
// bracket spans up to 500%; the strike bracket spans a multiple of spot on
// each side, wide enough that delta covers nearly its full achievable range.
const (
	IVTolerance      = 1e-6
	StrikeTolerance  = 1e-4
	ivBracketLow     = 1e-6
	ivBracketHigh    = 5.0
	strikeLowFactor  = 0.2
	strikeHighFactor = 3.0
)

// DefaultIVBracket returns the default volatility bracket [1e-6, 5.0].
func DefaultIVBracket() Bracket {
	return Bracket{Low: ivBracketLow, High: ivBracketHigh}
}

// DefaultStrikeBracket returns the default strike bracket around spot.
func DefaultStrikeBracket(spot float64) Bracket {
	return Bracket{Low: spot * strikeLowFactor, High: spot * strikeHighFactor}
}

// ImpliedVolatility recovers the volatility at which the closed-form price
// equals the observed market price. The model price is monotonic increasing
// in volatility for both calls and puts, so bisection is well-posed. A zero
// bracket or non-positive tolerance selects the defaults.
func ImpliedVolatility(observed float64, p models.ContractParams, br Bracket, tol float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if p.TimeToExpiry <= 0 {
		return 0, errors.NewDomainError("time_to_expiry", p.TimeToExpiry, "implied volatility requires positive time to expiry")
	}
	if observed <= 0 {
		return 0, errors.NewDomainError("observed_price", observed, "observed price must be positive")
	}
	if br == (Bracket{}) {
		br = DefaultIVBracket()
	}
	if tol <= 0 {
		tol = IVTolerance
	}

	f := func(sigma float64) float64 {
		v, _ := pricing.Price(p.WithSigma(sigma))
		return v
	}
	return Bisect(f, observed, br, tol)
}

// StrikeForDelta recovers the strike at which the option's delta equals the
// target. Delta is monotonic decreasing in strike for both kinds, so the
// bracket endpoints span the achievable delta range; a target outside that
// range fails with an UnachievableTargetError rather than silently returning
// a boundary strike.
func StrikeForDelta(target float64, kind models.OptionKind, spot, tte, rate, yield, sigma float64, br Bracket, tol float64) (float64, error) {
	if br == (Bracket{}) {
		br = DefaultStrikeBracket(spot)
	}
	if tol <= 0 {
		tol = StrikeTolerance * spot
	}

	base := models.ContractParams{
		Spot:         spot,
		Strike:       spot,
		Rate:         rate,
		Yield:        yield,
		Sigma:        sigma,
		TimeToExpiry: tte,
		Kind:         kind,
	}
	// Surface parameter problems (sigma <= 0, T <= 0, spot <= 0) before
	// touching the bracket.
	if _, err := pricing.Delta(base); err != nil {
		return 0, err
	}

	dLow, err := pricing.Delta(base.WithStrike(br.Low))
	if err != nil {
		return 0, err
	}
	dHigh, err := pricing.Delta(base.WithStrike(br.High))
	if err != nil {
		return 0, err
	}
	min, max := math.Min(dLow, dHigh), math.Max(dLow, dHigh)
	if target < min || target > max {
		return 0, errors.NewUnachievableTargetError(target, min, max)
	}

	f := func(k float64) float64 {
		d, _ := pricing.Delta(base.WithStrike(k))
		return d
	}
	return Bisect(f, target, br, tol)
}
