package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ipo-tracker/feature/ipo"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd runs a one-off sync.
var syncCmd = &cobra.Command{
	Use:   "sync [source...]",
	Short: "Sync IPO data from upstream sources",
	Long: `Fetches the given sources (all enabled sources when none is given) and
reconciles them into the store. Outputs a summary by default or the full result with --json.

Examples:
  # Sync every enabled source
  ipo-tracker sync

  # Sync only Finnhub and print JSON
  ipo-tracker sync finnhub --json`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().Bool("json", false, "Output the full result as JSON")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jsonOutput, _ := cmd.Flags().GetBool("json")

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.store.AutoMigrate(ctx); err != nil {
		return err
	}

	var results []*ipo.SyncResult
	if len(args) == 0 {
		sum, err := a.service.SyncAll(ctx)
		if err != nil {
			return err
		}
		results = sum.Results
	} else {
		for _, name := range args {
			res, err := a.service.SyncSource(ctx, name)
			if err != nil {
				return err
			}
			results = append(results, res)
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	failed := 0
	for _, r := range results {
		fields := []zap.Field{
			zap.String("source", r.Source),
			zap.Bool("success", r.Success),
			zap.Int("processed", r.Processed),
			zap.Int("added", r.Added),
			zap.Int("updated", r.Updated),
			zap.Int("skipped", r.Skipped),
			zap.Int("errors", len(r.Errors)),
		}
		if r.Success {
			a.logger.Info("Sync result", fields...)
		} else {
			failed++
			a.logger.Error("Sync result", fields...)
		}
		for _, e := range r.Errors {
			a.logger.Warn(e, zap.String("source", r.Source))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sources failed", failed, len(results))
	}
	return nil
}
