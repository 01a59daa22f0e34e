package strategy

import (
	"options-desk/internal/errors"
	"options-desk/internal/models"
	"options-desk/internal/pricing"
	"options-desk/internal/solver"
)

// Policy selects how each leg's strike is chosen. One policy applies
// uniformly to every leg within a build.
type Policy string

const (
	// PolicyFixed places strikes at hard-coded percentage offsets from spot.
	PolicyFixed Policy = "fixed"
	// PolicyIVAdjusted scales the fixed offsets by sigma relative to a
	// reference average volatility: wider strikes in high-vol regimes,
	// narrower in low-vol ones.
	PolicyIVAdjusted Policy = "iv-adjusted"
	// PolicyDelta solves each leg's strike so its delta hits a fraction of
	// the caller-supplied target.
	PolicyDelta Policy = "delta"
)

// BuildInput carries everything one build needs. CallDeltaTarget and
// PutDeltaTarget are only consulted under PolicyDelta; ReferenceAvgVol only
// under PolicyIVAdjusted.
type BuildInput struct {
	Name            models.StrategyName
	Spot            float64
	Sigma           float64
	TimeToExpiry    float64
	Rate            float64
	Yield           float64
	Policy          Policy
	CallDeltaTarget float64
	PutDeltaTarget  float64
	ReferenceAvgVol float64
}

// Build constructs a fully-priced strategy from its catalog template. Each
// leg's strike is selected by the policy and its premium is computed from the
// pricing model at build time and frozen into the leg. Any failed leg aborts
// the whole build; no partial strategies are returned.
func Build(in BuildInput) (*models.Strategy, error) {
	tmpl, ok := catalog[in.Name]
	if !ok {
		return nil, errors.NewUnknownStrategyError(string(in.Name))
	}
	if in.Policy != PolicyFixed && in.Policy != PolicyIVAdjusted && in.Policy != PolicyDelta {
		return nil, errors.Wrapf(errors.ErrUnknownPolicy, "%q", in.Policy)
	}

	legs := make([]models.Leg, 0, len(tmpl))
	for _, lt := range tmpl {
		strike, err := selectStrike(in, lt)
		if err != nil {
			return nil, errors.Wrapf(err, "solving strike for %s leg of %s", lt.role, in.Name)
		}

		premium, err := pricing.Price(models.ContractParams{
			Spot:         in.Spot,
			Strike:       strike,
			Rate:         in.Rate,
			Yield:        in.Yield,
			Sigma:        in.Sigma,
			TimeToExpiry: in.TimeToExpiry,
			Kind:         lt.kind,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "pricing %s leg of %s", lt.role, in.Name)
		}

		legs = append(legs, models.Leg{
			Quantity: lt.quantity,
			Kind:     lt.kind,
			Strike:   strike,
			Premium:  premium,
		})
	}

	return &models.Strategy{Name: in.Name, Legs: legs}, nil
}

func selectStrike(in BuildInput, lt legTemplate) (float64, error) {
	switch in.Policy {
	case PolicyFixed:
		return in.Spot * (1 + lt.offset), nil

	case PolicyIVAdjusted:
		scale := 1.0
		if in.ReferenceAvgVol > 0 {
			scale = in.Sigma / in.ReferenceAvgVol
		}
		return in.Spot * (1 + lt.offset*scale), nil

	case PolicyDelta:
		target := in.CallDeltaTarget
		if lt.kind == models.Put {
			target = in.PutDeltaTarget
		}
		target *= lt.deltaFrac
		return solver.StrikeForDelta(target, lt.kind, in.Spot, in.TimeToExpiry, in.Rate, in.Yield, in.Sigma, solver.Bracket{}, 0)
	}
	return 0, errors.Wrapf(errors.ErrUnknownPolicy, "%q", in.Policy)
}

// Grid returns n evenly spaced prices spanning [lo, hi], inclusive of both
// ends. Payoff callers typically span 0.5x to 1.5x of spot with a few hundred
// points.
func Grid(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}
