// Package models provides domain models for the derivatives analytics core.
package models

// OptionKind represents the kind of a European option.
type OptionKind string

const (
	Call OptionKind = "CALL"
	Put  OptionKind = "PUT"
)

// Direction represents the caller's directional market view.
type Direction string

const (
	DirectionBullish Direction = "bullish"
	DirectionBearish Direction = "bearish"
	DirectionNeutral Direction = "neutral"
)

// VolOutlook represents the caller's volatility outlook.
type VolOutlook string

const (
	VolHigh     VolOutlook = "high"
	VolLow      VolOutlook = "low"
	VolSideways VolOutlook = "sideways"
)

// RiskPreference represents the caller's appetite for undefined risk.
type RiskPreference string

const (
	RiskDefined   RiskPreference = "defined"
	RiskUndefined RiskPreference = "undefined"
)

// MarketView is the input tuple for a strategy recommendation.
type MarketView struct {
	Direction      Direction
	Volatility     VolOutlook
	Risk           RiskPreference
	OwnsUnderlying bool
}

// StrategyName identifies a strategy in the fixed catalog.
type StrategyName string

const (
	LongCall       StrategyName = "Long Call"
	LongPut        StrategyName = "Long Put"
	BullCallSpread StrategyName = "Bull Call Spread"
	BearPutSpread  StrategyName = "Bear Put Spread"
	BullPutSpread  StrategyName = "Bull Put Spread"
	BearCallSpread StrategyName = "Bear Call Spread"
	IronCondor     StrategyName = "Iron Condor"
	LongStraddle   StrategyName = "Long Straddle"
	ShortStrangle  StrategyName = "Short Strangle"
	CashSecuredPut StrategyName = "Cash-Secured Put"
)

// GreekSet is a snapshot of the price and its analytic sensitivities for one
// set of contract parameters. All values are raw annualized derivatives;
// per-percentage-point and per-day rescaling is a presentation concern.
type GreekSet struct {
	Price float64
	Delta float64
	Gamma float64
	Vega  float64
	Theta float64
	Rho   float64
	Vomma float64
	Vanna float64
}
