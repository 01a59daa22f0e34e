package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"options-desk/internal/advisor"
	"options-desk/internal/logging"
	"options-desk/internal/models"
	"options-desk/internal/pricing"
	"options-desk/internal/solver"
)

// addPricingCommands adds single-contract pricing and inversion commands.
func addPricingCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newPriceCmd(app))
	rootCmd.AddCommand(newGreeksCmd(app))
	rootCmd.AddCommand(newIVCmd(app))
	rootCmd.AddCommand(newStrikeCmd(app))
}

// contractFlags registers the shared contract parameter flags.
func contractFlags(cmd *cobra.Command, app *App) {
	cmd.Flags().Float64("spot", 0, "underlying price")
	cmd.Flags().Float64("strike", 0, "strike price")
	cmd.Flags().Float64("rate", app.Config.Market.RiskFreeRate, "annual risk-free rate (decimal)")
	cmd.Flags().Float64("yield", app.Config.Market.DividendYield, "annual dividend/carry yield (decimal)")
	cmd.Flags().Float64("vol", 0, "annual volatility (decimal)")
	cmd.Flags().Float64("expiry", 0, "time to expiry in years")
	cmd.Flags().String("type", "CALL", "option type: CALL or PUT")
	cmd.MarkFlagRequired("spot")
	cmd.MarkFlagRequired("strike")
	cmd.MarkFlagRequired("vol")
	cmd.MarkFlagRequired("expiry")
}

// contractFromFlags reads the shared flags into ContractParams.
func contractFromFlags(cmd *cobra.Command) models.ContractParams {
	spot, _ := cmd.Flags().GetFloat64("spot")
	strike, _ := cmd.Flags().GetFloat64("strike")
	rate, _ := cmd.Flags().GetFloat64("rate")
	yield, _ := cmd.Flags().GetFloat64("yield")
	vol, _ := cmd.Flags().GetFloat64("vol")
	expiry, _ := cmd.Flags().GetFloat64("expiry")
	kind, _ := cmd.Flags().GetString("type")

	return models.ContractParams{
		Spot:         spot,
		Strike:       strike,
		Rate:         rate,
		Yield:        yield,
		Sigma:        vol,
		TimeToExpiry: expiry,
		Kind:         models.OptionKind(strings.ToUpper(kind)),
	}
}

func newPriceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a European option",
		Long:  "Price a European option under the closed-form lognormal model.",
		Example: `  odesk price --spot 100 --strike 100 --vol 0.25 --expiry 0.5
  odesk price --spot 100 --strike 95 --vol 0.25 --expiry 0.5 --type PUT --rate 0.03`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			params := contractFromFlags(cmd)

			price, err := pricing.Price(params)
			if err != nil {
				output.Error("Pricing failed: %v", err)
				return err
			}
			logging.LogPriceRequest(app.Logger, string(params.Kind), params.Spot, params.Strike,
				params.Sigma, params.TimeToExpiry, price)

			if output.IsJSON() {
				return output.JSON(map[string]float64{"price": price})
			}
			output.Bold("%s %s / %s", params.Kind, FormatMoney(params.Strike), FormatMoney(params.Spot))
			output.Printf("  Price: %s\n", output.BoldText(FormatMoney(price)))
			return nil
		},
	}
	contractFlags(cmd, app)
	return cmd
}

func newGreeksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "greeks",
		Short: "Compute option Greeks",
		Long: `Compute price and the full set of Greeks for a European option.

Vega and rho are reported per 1 percentage point, theta per calendar day.
Insights flag standout patterns in the raw Greeks.`,
		Example: `  odesk greeks --spot 100 --strike 100 --vol 0.25 --expiry 0.5
  odesk greeks --spot 100 --strike 110 --vol 0.2 --expiry 0.25 --type PUT`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			params := contractFromFlags(cmd)

			greeks, err := pricing.Snapshot(params)
			if err != nil {
				output.Error("Greeks computation failed: %v", err)
				return err
			}

			if app.Store != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				snap := &models.ContractSnapshot{Params: params, Greeks: greeks}
				if err := app.Store.SaveSnapshot(ctx, snap); err != nil {
					app.Logger.Warn().Err(err).Msg("Failed to journal snapshot")
				}
			}

			insights := advisor.Insights(greeks)

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"greeks":   NewDisplayGreeks(greeks),
					"insights": insights,
				})
			}

			output.Bold("Greeks - %s %s / spot %s", params.Kind, FormatMoney(params.Strike), FormatMoney(params.Spot))
			printGreeks(output, greeks)
			output.Println()
			output.Bold("Insights")
			for _, msg := range insights {
				output.Printf("  • %s\n", msg)
			}
			return nil
		},
	}
	contractFlags(cmd, app)
	return cmd
}

func newIVCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iv",
		Short: "Recover implied volatility from an observed price",
		Long: `Invert the pricing model along the volatility axis: find the volatility at
which the model price matches the observed market price.`,
		Example: `  odesk iv --price 7.52 --spot 100 --strike 100 --expiry 0.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			observed, _ := cmd.Flags().GetFloat64("price")
			spot, _ := cmd.Flags().GetFloat64("spot")
			strike, _ := cmd.Flags().GetFloat64("strike")
			rate, _ := cmd.Flags().GetFloat64("rate")
			yield, _ := cmd.Flags().GetFloat64("yield")
			expiry, _ := cmd.Flags().GetFloat64("expiry")
			kind, _ := cmd.Flags().GetString("type")
			params := models.ContractParams{
				Spot:         spot,
				Strike:       strike,
				Rate:         rate,
				Yield:        yield,
				TimeToExpiry: expiry,
				Kind:         models.OptionKind(strings.ToUpper(kind)),
			}

			iv, err := solver.ImpliedVolatility(observed, params, solver.Bracket{}, app.Config.Solver.IVTolerance)
			logging.LogSolve(app.Logger, "volatility", observed, iv, err)
			if err != nil {
				output.Error("Implied volatility failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]float64{"implied_vol": iv})
			}
			output.Bold("Implied Volatility")
			output.Printf("  Observed price: %s\n", FormatMoney(observed))
			output.Printf("  Implied vol:    %s (%.2f%%)\n", output.BoldText(FormatMoney(iv)), iv*100)
			return nil
		},
	}
	cmd.Flags().Float64("price", 0, "observed market price")
	cmd.MarkFlagRequired("price")
	cmd.Flags().Float64("spot", 0, "underlying price")
	cmd.Flags().Float64("strike", 0, "strike price")
	cmd.Flags().Float64("rate", app.Config.Market.RiskFreeRate, "annual risk-free rate (decimal)")
	cmd.Flags().Float64("yield", app.Config.Market.DividendYield, "annual dividend/carry yield (decimal)")
	cmd.Flags().Float64("expiry", 0, "time to expiry in years")
	cmd.Flags().String("type", "CALL", "option type: CALL or PUT")
	cmd.MarkFlagRequired("spot")
	cmd.MarkFlagRequired("strike")
	cmd.MarkFlagRequired("expiry")
	return cmd
}

func newStrikeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strike",
		Short: "Solve the strike for a target delta",
		Long: `Invert the pricing model along the strike axis: find the strike at which
the option's delta equals the target. Put deltas are negative.`,
		Example: `  odesk strike --delta 0.30 --spot 100 --vol 0.25 --expiry 0.5
  odesk strike --delta -0.30 --spot 100 --vol 0.25 --expiry 0.5 --type PUT`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			target, _ := cmd.Flags().GetFloat64("delta")
			spot, _ := cmd.Flags().GetFloat64("spot")
			rate, _ := cmd.Flags().GetFloat64("rate")
			yield, _ := cmd.Flags().GetFloat64("yield")
			vol, _ := cmd.Flags().GetFloat64("vol")
			expiry, _ := cmd.Flags().GetFloat64("expiry")
			kindStr, _ := cmd.Flags().GetString("type")
			kind := models.OptionKind(strings.ToUpper(kindStr))

			strike, err := solver.StrikeForDelta(target, kind, spot, expiry, rate, yield, vol,
				solver.Bracket{}, app.Config.Solver.StrikeTolerance*spot)
			logging.LogSolve(app.Logger, "strike", target, strike, err)
			if err != nil {
				output.Error("Strike solve failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]float64{"strike": strike})
			}
			output.Bold("Strike for Delta")
			output.Printf("  Target delta: %.4f\n", target)
			output.Printf("  Strike:       %s\n", output.BoldText(FormatMoney(strike)))
			return nil
		},
	}
	cmd.Flags().Float64("delta", 0, "target delta (negative for puts)")
	cmd.MarkFlagRequired("delta")
	cmd.Flags().Float64("spot", 0, "underlying price")
	cmd.MarkFlagRequired("spot")
	cmd.Flags().Float64("rate", app.Config.Market.RiskFreeRate, "annual risk-free rate (decimal)")
	cmd.Flags().Float64("yield", app.Config.Market.DividendYield, "annual dividend/carry yield (decimal)")
	cmd.Flags().Float64("vol", 0, "annual volatility (decimal)")
	cmd.MarkFlagRequired("vol")
	cmd.Flags().Float64("expiry", 0, "time to expiry in years")
	cmd.MarkFlagRequired("expiry")
	cmd.Flags().String("type", "CALL", "option type: CALL or PUT")
	return cmd
}
