package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"options-desk/internal/logging"
	"options-desk/internal/models"
	"options-desk/internal/strategy"
)

// addStrategyCommands adds the strategy builder commands.
func addStrategyCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Option strategy builder",
		Long: `Build and analyze multi-leg option strategies from the fixed catalog.

Strikes are selected by policy (fixed offsets, volatility-adjusted offsets,
or delta targets solved through the root finder); premiums are priced at
build time and frozen into the legs.`,
	}

	cmd.AddCommand(newStrategyListCmd())
	cmd.AddCommand(newStrategyBuildCmd(app))

	rootCmd.AddCommand(cmd)
}

func newStrategyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the strategy catalog",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			names := strategy.Catalog()
			if output.IsJSON() {
				output.JSON(names)
				return
			}
			output.Bold("Strategy Catalog")
			output.Println()
			for _, name := range names {
				output.Printf("  %s\n", name)
			}
		},
	}
}

func newStrategyBuildCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <name>",
		Short: "Build a fully-priced strategy",
		Long: `Build a strategy from the catalog and report its legs, net premium,
grid-bounded max profit/loss, and breakevens.

The max profit/loss figures are evaluated over the payoff grid and saturate
at its outer bound; strategies with unbounded tails show the grid edge, not
infinity.`,
		Example: `  odesk strategy build "Iron Condor" --spot 100 --vol 0.25 --expiry 0.25
  odesk strategy build "Long Straddle" --spot 50 --vol 0.4 --expiry 0.5 --policy iv-adjusted
  odesk strategy build "Bull Call Spread" --spot 100 --vol 0.2 --expiry 0.25 --policy delta --call-delta 0.5 --put-delta -0.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			spot, _ := cmd.Flags().GetFloat64("spot")
			vol, _ := cmd.Flags().GetFloat64("vol")
			expiry, _ := cmd.Flags().GetFloat64("expiry")
			rate, _ := cmd.Flags().GetFloat64("rate")
			yield, _ := cmd.Flags().GetFloat64("yield")
			policy, _ := cmd.Flags().GetString("policy")
			callDelta, _ := cmd.Flags().GetFloat64("call-delta")
			putDelta, _ := cmd.Flags().GetFloat64("put-delta")
			refVol, _ := cmd.Flags().GetFloat64("reference-vol")

			built, err := strategy.Build(strategy.BuildInput{
				Name:            models.StrategyName(args[0]),
				Spot:            spot,
				Sigma:           vol,
				TimeToExpiry:    expiry,
				Rate:            rate,
				Yield:           yield,
				Policy:          strategy.Policy(policy),
				CallDeltaTarget: callDelta,
				PutDeltaTarget:  putDelta,
				ReferenceAvgVol: refVol,
			})
			if err != nil {
				output.Error("Strategy build failed: %v", err)
				return err
			}
			logging.LogStrategyBuild(app.Logger, string(built.Name), policy, len(built.Legs), built.NetPremium())

			grid := strategy.Grid(spot*app.Config.Grid.LowerFactor, spot*app.Config.Grid.UpperFactor, app.Config.Grid.Points)
			maxProfit, maxLoss := built.MaxProfitLoss(grid)
			breakevens := built.Breakevens(grid)
			netPremium := built.NetPremium()

			if app.Store != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				analysis := &models.StrategyAnalysis{
					Name:         built.Name,
					Policy:       policy,
					Spot:         spot,
					Sigma:        vol,
					TimeToExpiry: expiry,
					Rate:         rate,
					Legs:         built.Legs,
					NetPremium:   netPremium,
					MaxProfit:    maxProfit,
					MaxLoss:      maxLoss,
				}
				if err := app.Store.SaveAnalysis(ctx, analysis); err != nil {
					app.Logger.Warn().Err(err).Msg("Failed to journal strategy analysis")
				}
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"name":        built.Name,
					"legs":        built.Legs,
					"net_premium": netPremium,
					"max_profit":  maxProfit,
					"max_loss":    maxLoss,
					"breakevens":  breakevens,
				})
			}

			output.Bold("%s", built.Name)
			output.Println()
			output.Bold("Legs")
			for i, leg := range built.Legs {
				output.Printf("  %d. %s\n", i+1, legLine(leg))
			}
			output.Println()
			output.Bold("Analysis")
			premiumLabel := "debit"
			if netPremium < 0 {
				premiumLabel = "credit"
			}
			output.Printf("  Net Premium: %s (%s)\n", output.FormatPnL(netPremium), premiumLabel)
			output.Printf("  Max Profit:  %s (on grid)\n", output.Green(FormatMoney(maxProfit)))
			output.Printf("  Max Loss:    %s (on grid)\n", output.Red(FormatMoney(maxLoss)))
			for _, be := range breakevens {
				output.Printf("  Breakeven:   %s\n", FormatMoney(be))
			}
			return nil
		},
	}

	cmd.Flags().Float64("spot", 0, "underlying price")
	cmd.MarkFlagRequired("spot")
	cmd.Flags().Float64("vol", 0, "annual volatility (decimal)")
	cmd.MarkFlagRequired("vol")
	cmd.Flags().Float64("expiry", 0, "time to expiry in years")
	cmd.MarkFlagRequired("expiry")
	cmd.Flags().Float64("rate", app.Config.Market.RiskFreeRate, "annual risk-free rate (decimal)")
	cmd.Flags().Float64("yield", app.Config.Market.DividendYield, "annual dividend/carry yield (decimal)")
	cmd.Flags().String("policy", string(strategy.PolicyFixed), "strike policy: fixed, iv-adjusted, delta")
	cmd.Flags().Float64("call-delta", 0.5, "call delta target for the delta policy")
	cmd.Flags().Float64("put-delta", -0.5, "put delta target for the delta policy")
	cmd.Flags().Float64("reference-vol", app.Config.Market.ReferenceAvgVol, "reference average volatility for the iv-adjusted policy")

	return cmd
}
