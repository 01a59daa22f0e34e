package cli

import (
	"github.com/spf13/cobra"

	"options-desk/internal/advisor"
	"options-desk/internal/models"
)

// addAdvisorCommands adds the strategy recommendation command.
func addAdvisorCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend a strategy for a market view",
		Long: `Recommend a primary and alternative strategy from the catalog given a
directional view, a volatility outlook, and a risk preference.

Cash-Secured Put is only recommended when the underlying is owned; pass
--own-stock to allow it.`,
		Example: `  odesk recommend --direction bullish --vol-outlook high --risk defined
  odesk recommend --direction neutral --vol-outlook sideways --risk undefined --own-stock`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			direction, _ := cmd.Flags().GetString("direction")
			volOutlook, _ := cmd.Flags().GetString("vol-outlook")
			risk, _ := cmd.Flags().GetString("risk")
			ownStock, _ := cmd.Flags().GetBool("own-stock")

			view := models.MarketView{
				Direction:      models.Direction(direction),
				Volatility:     models.VolOutlook(volOutlook),
				Risk:           models.RiskPreference(risk),
				OwnsUnderlying: ownStock,
			}
			primary, alternative, err := advisor.Recommend(view)
			if err != nil {
				output.Error("Recommendation failed: %v", err)
				return err
			}
			app.Logger.Info().
				Str("direction", direction).
				Str("vol_outlook", volOutlook).
				Str("risk", risk).
				Bool("owns_underlying", ownStock).
				Str("primary", string(primary)).
				Str("alternative", string(alternative)).
				Msg("Recommendation")

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"primary":     primary,
					"alternative": alternative,
				})
			}

			output.Bold("Recommendation")
			output.Printf("  Primary:     %s\n", output.Green(string(primary)))
			output.Printf("  Alternative: %s\n", alternative)
			return nil
		},
	}

	cmd.Flags().String("direction", "", "market direction: bullish, bearish, neutral")
	cmd.MarkFlagRequired("direction")
	cmd.Flags().String("vol-outlook", "", "volatility outlook: high, low, sideways")
	cmd.MarkFlagRequired("vol-outlook")
	cmd.Flags().String("risk", string(models.RiskDefined), "risk preference: defined, undefined")
	cmd.Flags().Bool("own-stock", false, "underlying shares are owned")

	rootCmd.AddCommand(cmd)
}
