// Package pricing implements the closed-form lognormal pricing model and its
// analytic sensitivities for European options.
package pricing

import (
	"math"

	"options-desk/internal/errors"
	"options-desk/internal/models"
)

const sqrt2Pi = 2.5066282746310002

// normPDF is the standard normal probability density at x.
func normPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / sqrt2Pi
}

// normCDF is the standard normal cumulative distribution at x.
func normCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}

// terms holds the shared intermediates of the closed-form model. Every Greek
// is derived from the same d1/d2 so price and sensitivities stay numerically
// consistent.
type terms struct {
	d1    float64
	d2    float64
	sqrtT float64
	discQ float64 // e^(-qT), discounts the spot leg
	discR float64 // e^(-rT), discounts the strike leg
}

// computeTerms validates the parameters for the analytic formulas and
// computes d1/d2. The formulas divide by sigma*sqrt(T), so sigma and T must
// both be strictly positive here.
func computeTerms(p models.ContractParams) (terms, error) {
	if err := p.Validate(); err != nil {
		return terms{}, err
	}
	if p.Sigma <= 0 {
		return terms{}, errors.NewDomainError("sigma", p.Sigma, "volatility must be positive")
	}
	if p.TimeToExpiry <= 0 {
		return terms{}, errors.NewDomainError("time_to_expiry", p.TimeToExpiry, "analytic formulas require positive time to expiry")
	}

	sqrtT := math.Sqrt(p.TimeToExpiry)
	d1 := (math.Log(p.Spot/p.Strike) + (p.Rate-p.Yield+0.5*p.Sigma*p.Sigma)*p.TimeToExpiry) / (p.Sigma * sqrtT)
	d2 := d1 - p.Sigma*sqrtT

	return terms{
		d1:    d1,
		d2:    d2,
		sqrtT: sqrtT,
		discQ: math.Exp(-p.Yield * p.TimeToExpiry),
		discR: math.Exp(-p.Rate * p.TimeToExpiry),
	}, nil
}

// Price returns the closed-form value of the option. At T=0 the
// volatility-dependent formula degenerates, so the exact intrinsic value is
// returned instead, independent of sigma.
func Price(p models.ContractParams) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if p.TimeToExpiry == 0 {
		return p.Intrinsic(p.Spot), nil
	}

	t, err := computeTerms(p)
	if err != nil {
		return 0, err
	}
	if p.Kind == models.Call {
		return p.Spot*t.discQ*normCDF(t.d1) - p.Strike*t.discR*normCDF(t.d2), nil
	}
	return p.Strike*t.discR*normCDF(-t.d2) - p.Spot*t.discQ*normCDF(-t.d1), nil
}

// Delta returns the sensitivity of price to a unit change in spot.
// Bounded in (0, 1) for calls and (-1, 0) for puts (scaled by e^(-qT)).
func Delta(p models.ContractParams) (float64, error) {
	t, err := computeTerms(p)
	if err != nil {
		return 0, err
	}
	if p.Kind == models.Call {
		return t.discQ * normCDF(t.d1), nil
	}
	return t.discQ * (normCDF(t.d1) - 1), nil
}

// Gamma returns the second derivative of price with respect to spot.
// Identical for calls and puts.
func Gamma(p models.ContractParams) (float64, error) {
	t, err := computeTerms(p)
	if err != nil {
		return 0, err
	}
	return t.discQ * normPDF(t.d1) / (p.Spot * p.Sigma * t.sqrtT), nil
}

// Vega returns the raw annualized sensitivity of price to volatility.
// Presentation layers conventionally divide by 100 for per-percentage-point
// reporting; the model does not.
func Vega(p models.ContractParams) (float64, error) {
	t, err := computeTerms(p)
	if err != nil {
		return 0, err
	}
	return p.Spot * t.discQ * normPDF(t.d1) * t.sqrtT, nil
}

// Theta returns the raw annualized time decay. Sign convention: more negative
// = faster decay. Per-day reporting (divide by 365) is a presentation
// concern.
func Theta(p models.ContractParams) (float64, error) {
	t, err := computeTerms(p)
	if err != nil {
		return 0, err
	}
	decay := -p.Spot * p.Sigma * t.discQ * normPDF(t.d1) / (2 * t.sqrtT)
	if p.Kind == models.Call {
		return decay - p.Rate*p.Strike*t.discR*normCDF(t.d2) + p.Yield*p.Spot*t.discQ*normCDF(t.d1), nil
	}
	return decay + p.Rate*p.Strike*t.discR*normCDF(-t.d2) - p.Yield*p.Spot*t.discQ*normCDF(-t.d1), nil
}

// Rho returns the raw annualized sensitivity of price to the risk-free rate.
func Rho(p models.ContractParams) (float64, error) {
	t, err := computeTerms(p)
	if err != nil {
		return 0, err
	}
	if p.Kind == models.Call {
		return p.Strike * p.TimeToExpiry * t.discR * normCDF(t.d2), nil
	}
	return -p.Strike * p.TimeToExpiry * t.discR * normCDF(-t.d2), nil
}

// Vomma returns the second derivative of price with respect to volatility.
func Vomma(p models.ContractParams) (float64, error) {
	t, err := computeTerms(p)
	if err != nil {
		return 0, err
	}
	vega := p.Spot * t.discQ * normPDF(t.d1) * t.sqrtT
	return vega * t.d1 * t.d2 / p.Sigma, nil
}

// Vanna returns the cross derivative of price with respect to spot and
// volatility.
func Vanna(p models.ContractParams) (float64, error) {
	t, err := computeTerms(p)
	if err != nil {
		return 0, err
	}
	return -t.discQ * normPDF(t.d1) * t.d2 / p.Sigma, nil
}

// Snapshot computes the price and the full set of Greeks for one set of
// parameters. Requires sigma > 0 and T > 0, like the individual Greeks.
func Snapshot(p models.ContractParams) (models.GreekSet, error) {
	t, err := computeTerms(p)
	if err != nil {
		return models.GreekSet{}, err
	}

	pdf := normPDF(t.d1)
	vega := p.Spot * t.discQ * pdf * t.sqrtT
	decay := -p.Spot * p.Sigma * t.discQ * pdf / (2 * t.sqrtT)

	g := models.GreekSet{
		Gamma: t.discQ * pdf / (p.Spot * p.Sigma * t.sqrtT),
		Vega:  vega,
		Vomma: vega * t.d1 * t.d2 / p.Sigma,
		Vanna: -t.discQ * pdf * t.d2 / p.Sigma,
	}
	if p.Kind == models.Call {
		g.Price = p.Spot*t.discQ*normCDF(t.d1) - p.Strike*t.discR*normCDF(t.d2)
		g.Delta = t.discQ * normCDF(t.d1)
		g.Theta = decay - p.Rate*p.Strike*t.discR*normCDF(t.d2) + p.Yield*p.Spot*t.discQ*normCDF(t.d1)
		g.Rho = p.Strike * p.TimeToExpiry * t.discR * normCDF(t.d2)
	} else {
		g.Price = p.Strike*t.discR*normCDF(-t.d2) - p.Spot*t.discQ*normCDF(-t.d1)
		g.Delta = t.discQ * (normCDF(t.d1) - 1)
		g.Theta = decay + p.Rate*p.Strike*t.discR*normCDF(-t.d2) - p.Yield*p.Spot*t.discQ*normCDF(-t.d1)
		g.Rho = -p.Strike * p.TimeToExpiry * t.discR * normCDF(-t.d2)
	}
	return g, nil
}
