package advisor

import (
	"math"

	"options-desk/internal/models"
)

// insightRule pairs a predicate over a GreekSet with a qualitative label.
// Rules are evaluated strictly in declaration order; that order decides which
// labels surface when several predicates match, so it is part of the
// contract and pinned by tests.
type insightRule struct {
	name    string
	match   func(g models.GreekSet) bool
	message string
}

// FallbackInsight is returned alone when no rule matches.
const FallbackInsight = "no standout pattern in the Greeks"

// maxInsights caps how many matching labels are surfaced.
const maxInsights = 2

// Thresholds are on the model's raw annualized Greeks.
var insightRules = []insightRule{
	{
		name:    "deep-itm-call",
		match:   func(g models.GreekSet) bool { return g.Delta >= 0.75 },
		message: "delta near one: the position tracks the underlying almost point for point",
	},
	{
		name:    "deep-itm-put",
		match:   func(g models.GreekSet) bool { return g.Delta <= -0.75 },
		message: "deeply in-the-money put: gains nearly point for point as the underlying falls",
	},
	{
		name:    "far-otm",
		match:   func(g models.GreekSet) bool { return math.Abs(g.Delta) <= 0.15 },
		message: "far out-of-the-money: low odds of expiring with value",
	},
	{
		name:    "high-gamma",
		match:   func(g models.GreekSet) bool { return g.Gamma >= 0.04 },
		message: "high gamma: delta will swing quickly as the underlying crosses the strike",
	},
	{
		name:    "vega-heavy",
		match:   func(g models.GreekSet) bool { return g.Vega >= 25 },
		message: "volatility-sensitive: changes in implied volatility dominate near-term value",
	},
	{
		name:    "fast-decay",
		match:   func(g models.GreekSet) bool { return g.Theta <= -15 },
		message: "heavy time decay: the position bleeds value quickly into expiry",
	},
	{
		name:    "rate-sensitive",
		match:   func(g models.GreekSet) bool { return math.Abs(g.Rho) >= 40 },
		message: "rate-sensitive: long-dated exposure to the discount rate",
	},
}

// Insights evaluates the rule list in order and returns at most the first
// two matching labels. When nothing matches, the single fallback label is
// returned.
func Insights(g models.GreekSet) []string {
	var out []string
	for _, rule := range insightRules {
		if rule.match(g) {
			out = append(out, rule.message)
			if len(out) == maxInsights {
				break
			}
		}
	}
	if len(out) == 0 {
		return []string{FallbackInsight}
	}
	return out
}
