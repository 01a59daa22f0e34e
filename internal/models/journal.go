package models

import "time"

// StrategyAnalysis is a persisted record of one strategy build: the inputs,
// the resulting legs, and the grid-bounded profit envelope at build time.
type StrategyAnalysis struct {
	ID           int64
	CreatedAt    time.Time
	Name         StrategyName
	Policy       string
	Spot         float64
	Sigma        float64
	TimeToExpiry float64
	Rate         float64
	Legs         []Leg
	NetPremium   float64
	MaxProfit    float64
	MaxLoss      float64
}

// ContractSnapshot is a persisted record of one pricing request and the
// Greeks computed for it.
type ContractSnapshot struct {
	ID        int64
	CreatedAt time.Time
	Params    ContractParams
	Greeks    GreekSet
}
