package models

import "math"

// Intrinsic returns the exercise value at underlying price s for an option of
// the given kind and strike.
func Intrinsic(kind OptionKind, strike, s float64) float64 {
	if kind == Call {
		return math.Max(0, s-strike)
	}
	return math.Max(0, strike-s)
}

// Leg represents a single option position within a strategy. Quantity is
// signed: positive = long, negative = short. Premium is captured when the leg
// is built and frozen; it does not track later market moves.
type Leg struct {
	Quantity int
	Kind     OptionKind
	Strike   float64
	Premium  float64
}

// Payoff evaluates the leg's profit at expiry over the supplied price grid:
// quantity x (intrinsic - premium) at each grid point.
func (l Leg) Payoff(grid []float64) []float64 {
	out := make([]float64, len(grid))
	qty := float64(l.Quantity)
	for i, s := range grid {
		out[i] = qty * (Intrinsic(l.Kind, l.Strike, s) - l.Premium)
	}
	return out
}

// Strategy is a named, ordered collection of legs. Leg order is
// presentation-only; it carries no payoff semantics. Strategies are value
// objects: rebuilding with a different policy constructs a new instance.
type Strategy struct {
	Name StrategyName
	Legs []Leg
}

// Payoff evaluates the strategy's expiry profit elementwise over the grid,
// summing each leg's payoff.
func (s *Strategy) Payoff(grid []float64) []float64 {
	out := make([]float64, len(grid))
	for _, leg := range s.Legs {
		for i, v := range leg.Payoff(grid) {
			out[i] += v
		}
	}
	return out
}

// NetPremium returns the signed sum of quantity x premium across all legs.
// Positive = net premium paid (debit), negative = net premium received
// (credit).
func (s *Strategy) NetPremium() float64 {
	var total float64
	for _, leg := range s.Legs {
		total += float64(leg.Quantity) * leg.Premium
	}
	return total
}

// MaxProfitLoss returns the maximum and minimum payoff over the supplied
// grid. This is a grid-bounded approximation: strategies with unbounded tails
// (a naked short call, say) saturate at the grid's outer bound rather than
// reporting an infinite extreme. Callers must supply a grid wide enough to
// expose the behavior they care about.
func (s *Strategy) MaxProfitLoss(grid []float64) (maxProfit, maxLoss float64) {
	payoff := s.Payoff(grid)
	if len(payoff) == 0 {
		return 0, 0
	}
	maxProfit, maxLoss = payoff[0], payoff[0]
	for _, v := range payoff[1:] {
		if v > maxProfit {
			maxProfit = v
		}
		if v < maxLoss {
			maxLoss = v
		}
	}
	return maxProfit, maxLoss
}

// Breakevens returns the underlying prices where the payoff crosses zero,
// found by scanning the grid for sign changes and interpolating linearly
// between the bracketing points.
func (s *Strategy) Breakevens(grid []float64) []float64 {
	payoff := s.Payoff(grid)
	var crossings []float64
	for i := 1; i < len(payoff); i++ {
		prev, cur := payoff[i-1], payoff[i]
		if prev == 0 {
			crossings = append(crossings, grid[i-1])
			continue
		}
		if prev*cur < 0 {
			frac := prev / (prev - cur)
			crossings = append(crossings, grid[i-1]+frac*(grid[i]-grid[i-1]))
		}
	}
	if len(payoff) > 0 && payoff[len(payoff)-1] == 0 {
		crossings = append(crossings, grid[len(grid)-1])
	}
	return crossings
}
