package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"options-desk/internal/errors"
)

const journalQueryTimeout = 5 * time.Second

// addJournalCommands adds the analysis journal commands.
func addJournalCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Browse saved analyses",
		Long:  `List strategy analyses and Greeks snapshots saved by earlier runs.`,
	}

	cmd.AddCommand(newJournalStrategiesCmd(app))
	cmd.AddCommand(newJournalSnapshotsCmd(app))

	rootCmd.AddCommand(cmd)
}

func newJournalStrategiesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strategies",
		Short: "List saved strategy analyses",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				return errors.Wrap(errors.ErrDatabaseError, "journal store unavailable")
			}
			limit, _ := cmd.Flags().GetInt("limit")

			ctx, cancel := context.WithTimeout(context.Background(), journalQueryTimeout)
			defer cancel()
			analyses, err := app.Store.ListAnalyses(ctx, limit)
			if err != nil {
				output.Error("Failed to list analyses: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(analyses)
			}
			if len(analyses) == 0 {
				output.Info("No strategy analyses saved yet")
				return nil
			}

			table := NewTable(output, "DATE", "STRATEGY", "POLICY", "SPOT", "VOL", "PREMIUM", "MAX P", "MAX L")
			for _, a := range analyses {
				table.AddRow(
					a.CreatedAt.Format("2006-01-02 15:04"),
					string(a.Name),
					a.Policy,
					FormatMoney(a.Spot),
					FormatPercent(a.Sigma),
					output.FormatPnL(a.NetPremium),
					FormatMoney(a.MaxProfit),
					FormatMoney(a.MaxLoss),
				)
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "maximum rows to show")
	return cmd
}

func newJournalSnapshotsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "List saved Greeks snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				return errors.Wrap(errors.ErrDatabaseError, "journal store unavailable")
			}
			limit, _ := cmd.Flags().GetInt("limit")

			ctx, cancel := context.WithTimeout(context.Background(), journalQueryTimeout)
			defer cancel()
			snapshots, err := app.Store.ListSnapshots(ctx, limit)
			if err != nil {
				output.Error("Failed to list snapshots: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(snapshots)
			}
			if len(snapshots) == 0 {
				output.Info("No snapshots saved yet")
				return nil
			}

			table := NewTable(output, "DATE", "TYPE", "SPOT", "STRIKE", "VOL", "EXPIRY", "PRICE", "DELTA")
			for _, snap := range snapshots {
				table.AddRow(
					snap.CreatedAt.Format("2006-01-02 15:04"),
					string(snap.Params.Kind),
					FormatMoney(snap.Params.Spot),
					FormatMoney(snap.Params.Strike),
					FormatPercent(snap.Params.Sigma),
					fmt.Sprintf("%.3fy", snap.Params.TimeToExpiry),
					FormatMoney(snap.Greeks.Price),
					fmt.Sprintf("%.4f", snap.Greeks.Delta),
				)
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "maximum rows to show")
	return cmd
}
