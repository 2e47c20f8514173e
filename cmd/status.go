package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// statusCmd prints the sync status.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show stock counts per market and the last sync of each source",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		report, err := a.service.Status(ctx)
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		for _, m := range report.Markets {
			a.logger.Info("Market",
				zap.String("market", string(m.Market)),
				zap.Int64("total", m.Total),
				zap.Timep("last_updated", m.LastUpdated))
		}
		for _, r := range report.LastRuns {
			a.logger.Info("Last sync",
				zap.String("source", r.Source),
				zap.String("run_id", r.RunID),
				zap.Bool("success", r.Success),
				zap.Int("added", r.Added),
				zap.Int("updated", r.Updated),
				zap.Int("skipped", r.Skipped),
				zap.Int("errors", len(r.Errors)),
				zap.Time("finished_at", r.FinishedAt))
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().Bool("json", false, "Output the report as JSON")
	RootCmd.AddCommand(statusCmd)
}
