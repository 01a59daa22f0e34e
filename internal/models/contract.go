package models

import (
	"options-desk/internal/errors"
)

// ContractParams holds the market and contract inputs for pricing a single
// European option. Values are never mutated after construction; deriving new
// parameters (a different strike, a different volatility) copies the struct.
type ContractParams struct {
	Spot         float64    // underlying price S
	Strike       float64    // strike K
	Rate         float64    // risk-free rate r (annual)
	Yield        float64    // dividend/carry yield q (annual, optional)
	Sigma        float64    // volatility (annual, decimal)
	TimeToExpiry float64    // T in years; 0 degenerates to intrinsic value
	Kind         OptionKind // CALL or PUT
}

// Validate checks the parameter invariants S, K > 0 and T >= 0.
// Volatility is only constrained where a formula divides by it, which the
// pricing package enforces separately.
func (p ContractParams) Validate() error {
	if p.Spot <= 0 {
		return errors.NewDomainError("spot", p.Spot, "underlying price must be positive")
	}
	if p.Strike <= 0 {
		return errors.NewDomainError("strike", p.Strike, "strike must be positive")
	}
	if p.TimeToExpiry < 0 {
		return errors.NewDomainError("time_to_expiry", p.TimeToExpiry, "time to expiry must be non-negative")
	}
	if p.Kind != Call && p.Kind != Put {
		return errors.NewDomainError("kind", 0, "option kind must be CALL or PUT")
	}
	return nil
}

// WithStrike returns a copy of the parameters with a different strike.
func (p ContractParams) WithStrike(strike float64) ContractParams {
	p.Strike = strike
	return p
}

// WithSigma returns a copy of the parameters with a different volatility.
func (p ContractParams) WithSigma(sigma float64) ContractParams {
	p.Sigma = sigma
	return p
}

// Intrinsic returns the exercise value of the option at underlying price s.
func (p ContractParams) Intrinsic(s float64) float64 {
	return Intrinsic(p.Kind, p.Strike, s)
}
