package pricing

import (
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"options-desk/internal/models"
)

// Property: For any valid contract, call minus put equals the discounted
// forward: C - P = S*e^(-qT) - K*e^(-rT). The closed-form call and put must
// honor parity regardless of moneyness or rates.
func TestProperty_PutCallParity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("put-call parity holds", prop.ForAll(
		func(spot, strike, rate, yield, sigma, tte float64) bool {
			p := models.ContractParams{
				Spot: spot, Strike: strike, Rate: rate, Yield: yield,
				Sigma: sigma, TimeToExpiry: tte, Kind: models.Call,
			}
			call, err := Price(p)
			if err != nil {
				return false
			}
			p.Kind = models.Put
			put, err := Price(p)
			if err != nil {
				return false
			}
			want := spot*math.Exp(-yield*tte) - strike*math.Exp(-rate*tte)
			return math.Abs((call-put)-want) < 1e-8*math.Max(1, spot)
		},
		gen.Float64Range(1, 5000),
		gen.Float64Range(1, 5000),
		gen.Float64Range(0, 0.15),
		gen.Float64Range(0, 0.10),
		gen.Float64Range(0.01, 2.0),
		gen.Float64Range(0.001, 3.0),
	))

	properties.TestingRun(t)
}

// Property: Call delta lies in [0, e^(-qT)] and put delta in [-e^(-qT), 0],
// and their difference is exactly e^(-qT).
func TestProperty_DeltaBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("delta stays within discount bounds", prop.ForAll(
		func(spot, strike, yield, sigma, tte float64) bool {
			p := models.ContractParams{
				Spot: spot, Strike: strike, Rate: 0.02, Yield: yield,
				Sigma: sigma, TimeToExpiry: tte, Kind: models.Call,
			}
			callDelta, err := Delta(p)
			if err != nil {
				return false
			}
			p.Kind = models.Put
			putDelta, err := Delta(p)
			if err != nil {
				return false
			}
			bound := math.Exp(-yield * tte)
			if callDelta < 0 || callDelta > bound {
				return false
			}
			if putDelta < -bound || putDelta > 0 {
				return false
			}
			return math.Abs((callDelta-putDelta)-bound) < 1e-10
		},
		gen.Float64Range(1, 1000),
		gen.Float64Range(1, 1000),
		gen.Float64Range(0, 0.10),
		gen.Float64Range(0.01, 2.0),
		gen.Float64Range(0.001, 3.0),
	))

	properties.TestingRun(t)
}

// Property: A European call is worth at least its discounted intrinsic floor
// max(0, S*e^(-qT) - K*e^(-rT)) and never more than the carry-discounted spot.
func TestProperty_CallPriceBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("call price between arbitrage bounds", prop.ForAll(
		func(spot, strike, rate, sigma, tte float64) bool {
			p := models.ContractParams{
				Spot: spot, Strike: strike, Rate: rate,
				Sigma: sigma, TimeToExpiry: tte, Kind: models.Call,
			}
			price, err := Price(p)
			if err != nil {
				return false
			}
			floor := math.Max(0, spot-strike*math.Exp(-rate*tte))
			return price >= floor-1e-9 && price <= spot+1e-9
		},
		gen.Float64Range(1, 1000),
		gen.Float64Range(1, 1000),
		gen.Float64Range(0, 0.15),
		gen.Float64Range(0.01, 2.0),
		gen.Float64Range(0.001, 3.0),
	))

	properties.TestingRun(t)
}

// Property: Gamma and vega are strictly positive for any live contract, for
// both calls and puts.
func TestProperty_GammaVegaPositive(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	kinds := []models.OptionKind{models.Call, models.Put}

	properties.Property("gamma and vega positive before expiry", prop.ForAll(
		func(spot, strike, sigma, tte float64, kindIdx int) bool {
			p := models.ContractParams{
				Spot: spot, Strike: strike, Rate: 0.02,
				Sigma: sigma, TimeToExpiry: tte, Kind: kinds[kindIdx%2],
			}
			gamma, err := Gamma(p)
			if err != nil {
				return false
			}
			vega, err := Vega(p)
			if err != nil {
				return false
			}
			return gamma > 0 && vega > 0
		},
		gen.Float64Range(10, 500),
		gen.Float64Range(10, 500),
		gen.Float64Range(0.05, 1.0),
		gen.Float64Range(0.01, 2.0),
		gen.IntRange(0, 1),
	))

	properties.TestingRun(t)
}
