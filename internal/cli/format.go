package cli

import (
	"fmt"

	"options-desk/internal/models"
)

// Reporting conventions for Greek display. The pricing model returns raw
// annualized derivatives; the CLI rescales vega and rho to
// per-percentage-point units and theta to per-calendar-day.
const (
	percentScale = 100.0
	daysPerYear  = 365.0
)

// FormatMoney formats a monetary amount with two decimals.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatPercent formats a decimal fraction as a signed percentage.
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value*100)
}

// DisplayGreeks is a GreekSet rescaled for reporting: vega and rho per
// 1 percentage point, theta per calendar day.
type DisplayGreeks struct {
	Price float64 `json:"price"`
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Vega  float64 `json:"vega_per_pct"`
	Theta float64 `json:"theta_per_day"`
	Rho   float64 `json:"rho_per_pct"`
	Vomma float64 `json:"vomma"`
	Vanna float64 `json:"vanna"`
}

// NewDisplayGreeks applies the reporting conventions to a raw GreekSet.
func NewDisplayGreeks(g models.GreekSet) DisplayGreeks {
	return DisplayGreeks{
		Price: g.Price,
		Delta: g.Delta,
		Gamma: g.Gamma,
		Vega:  g.Vega / percentScale,
		Theta: g.Theta / daysPerYear,
		Rho:   g.Rho / percentScale,
		Vomma: g.Vomma,
		Vanna: g.Vanna,
	}
}

// printGreeks renders the rescaled Greeks in the fixed display order.
func printGreeks(output *Output, g models.GreekSet) {
	d := NewDisplayGreeks(g)
	output.Printf("  Price:      %s\n", output.BoldText(FormatMoney(d.Price)))
	output.Printf("  Delta (Δ):  %.4f\n", d.Delta)
	output.Printf("  Gamma (Γ):  %.4f\n", d.Gamma)
	output.Printf("  Vega (ν):   %.4f / 1%% vol\n", d.Vega)
	output.Printf("  Theta (Θ):  %s / day\n", output.Red(fmt.Sprintf("%.4f", d.Theta)))
	output.Printf("  Rho (ρ):    %.4f / 1%% rate\n", d.Rho)
	output.Printf("  Vomma:      %.4f\n", d.Vomma)
	output.Printf("  Vanna:      %.4f\n", d.Vanna)
}

// legLine renders one leg the way a trade ticket would read.
func legLine(leg models.Leg) string {
	side := "BUY "
	qty := leg.Quantity
	if qty < 0 {
		side = "SELL"
		qty = -qty
	}
	return fmt.Sprintf("%s %dx %s %s @ %s", side, qty, FormatMoney(leg.Strike), leg.Kind, FormatMoney(leg.Premium))
}
