package advisor

import (
	"testing"

	"options-desk/internal/errors"
	"options-desk/internal/models"
	"options-desk/internal/strategy"
)

var (
	allDirections  = []models.Direction{models.DirectionBullish, models.DirectionBearish, models.DirectionNeutral}
	allVolOutlooks = []models.VolOutlook{models.VolHigh, models.VolLow, models.VolSideways}
	allRisks       = []models.RiskPreference{models.RiskDefined, models.RiskUndefined}
)

func TestRecommend_TotalOverDomain(t *testing.T) {
	inCatalog := make(map[models.StrategyName]bool)
	for _, name := range strategy.Catalog() {
		inCatalog[name] = true
	}

	for _, dir := range allDirections {
		for _, vol := range allVolOutlooks {
			for _, risk := range allRisks {
				for _, owns := range []bool{true, false} {
					view := models.MarketView{
						Direction: dir, Volatility: vol,
						Risk: risk, OwnsUnderlying: owns,
					}
					primary, alternative, err := Recommend(view)
					if err != nil {
						t.Errorf("Recommend(%+v) failed: %v", view, err)
						continue
					}
					if !inCatalog[primary] {
						t.Errorf("Recommend(%+v) primary %q not in catalog", view, primary)
					}
					if !inCatalog[alternative] {
						t.Errorf("Recommend(%+v) alternative %q not in catalog", view, alternative)
					}
					// Substitution can land both slots on Bull Put Spread;
					// otherwise the pair must be distinct.
					if primary == alternative && primary != models.BullPutSpread {
						t.Errorf("Recommend(%+v) primary and alternative both %q", view, primary)
					}
				}
			}
		}
	}
}

func TestRecommend_CashSecuredPutRequiresOwnership(t *testing.T) {
	for _, dir := range allDirections {
		for _, vol := range allVolOutlooks {
			for _, risk := range allRisks {
				view := models.MarketView{Direction: dir, Volatility: vol, Risk: risk}
				primary, alternative, err := Recommend(view)
				if err != nil {
					t.Fatalf("Recommend(%+v) failed: %v", view, err)
				}
				if primary == models.CashSecuredPut || alternative == models.CashSecuredPut {
					t.Errorf("Recommend(%+v) suggested Cash-Secured Put without owned underlying", view)
				}
			}
		}
	}
}

func TestRecommend_SubstitutionPreservesDirection(t *testing.T) {
	// Bullish/high/undefined maps to Cash-Secured Put when the underlying is
	// owned; without it the bullish credit substitute steps in.
	owned := models.MarketView{
		Direction: models.DirectionBullish, Volatility: models.VolHigh,
		Risk: models.RiskUndefined, OwnsUnderlying: true,
	}
	primary, _, err := Recommend(owned)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if primary != models.CashSecuredPut {
		t.Errorf("primary = %q, want Cash-Secured Put", primary)
	}

	owned.OwnsUnderlying = false
	primary, _, err = Recommend(owned)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if primary != models.BullPutSpread {
		t.Errorf("primary = %q, want Bull Put Spread substitution", primary)
	}
}

func TestRecommend_InvalidView(t *testing.T) {
	tests := []struct {
		name string
		view models.MarketView
	}{
		{"bad direction", models.MarketView{Direction: "sideways", Volatility: models.VolHigh, Risk: models.RiskDefined}},
		{"bad volatility", models.MarketView{Direction: models.DirectionBullish, Volatility: "spiky", Risk: models.RiskDefined}},
		{"bad risk", models.MarketView{Direction: models.DirectionBullish, Volatility: models.VolHigh, Risk: "yolo"}},
		{"empty", models.MarketView{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Recommend(tt.view)
			if !errors.Is(err, errors.ErrInvalidMarketView) {
				t.Errorf("expected ErrInvalidMarketView, got %v", err)
			}
		})
	}
}

func TestInsights_RuleSelection(t *testing.T) {
	tests := []struct {
		name  string
		g     models.GreekSet
		count int
		first string
	}{
		{
			"deep itm call wins first slot",
			models.GreekSet{Delta: 0.80, Gamma: 0.01, Vega: 10, Theta: -5, Rho: 10},
			1, "delta near one",
		},
		{
			"deep itm put",
			models.GreekSet{Delta: -0.80, Gamma: 0.01, Vega: 10, Theta: -5, Rho: 10},
			1, "deeply in-the-money put",
		},
		{
			"far otm",
			models.GreekSet{Delta: 0.10, Gamma: 0.01, Vega: 10, Theta: -5, Rho: 10},
			1, "far out-of-the-money",
		},
		{
			"gamma before vega",
			models.GreekSet{Delta: 0.50, Gamma: 0.05, Vega: 30, Theta: -5, Rho: 10},
			2, "high gamma",
		},
		{
			"vega then decay",
			models.GreekSet{Delta: 0.50, Gamma: 0.01, Vega: 30, Theta: -20, Rho: 10},
			2, "volatility-sensitive",
		},
		{
			"rate sensitive alone",
			models.GreekSet{Delta: 0.50, Gamma: 0.01, Vega: 10, Theta: -5, Rho: 45},
			1, "rate-sensitive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Insights(tt.g)
			if len(got) != tt.count {
				t.Fatalf("insight count = %d, want %d: %v", len(got), tt.count, got)
			}
			if len(got[0]) < len(tt.first) || got[0][:len(tt.first)] != tt.first {
				t.Errorf("first insight = %q, want prefix %q", got[0], tt.first)
			}
		})
	}
}

func TestInsights_CapsAtTwo(t *testing.T) {
	// Deep ITM, high gamma, vega-heavy, fast decay, and rate-sensitive all at
	// once: only the first two in rule order surface.
	g := models.GreekSet{Delta: 0.80, Gamma: 0.05, Vega: 30, Theta: -20, Rho: 45}
	got := Insights(g)
	if len(got) != 2 {
		t.Fatalf("insight count = %d, want 2: %v", len(got), got)
	}
	if got[0][:len("delta near one")] != "delta near one" {
		t.Errorf("first insight = %q, want deep ITM call message", got[0])
	}
	if got[1][:len("high gamma")] != "high gamma" {
		t.Errorf("second insight = %q, want high gamma message", got[1])
	}
}

func TestInsights_Fallback(t *testing.T) {
	g := models.GreekSet{Delta: 0.50, Gamma: 0.01, Vega: 10, Theta: -5, Rho: 10}
	got := Insights(g)
	if len(got) != 1 || got[0] != FallbackInsight {
		t.Errorf("Insights = %v, want single fallback", got)
	}
}
