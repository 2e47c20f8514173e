package cmd

import (
	"ipo-tracker/core/database"
	"ipo-tracker/feature/ipo/models"
	"ipo-tracker/feature/ipo/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.store.AutoMigrate(ctx); err != nil {
			return err
		}

		for _, table := range []string{models.Stock{}.TableName(), store.SyncRun{}.TableName()} {
			cols, err := database.GetTableColumns(a.db, table)
			if err != nil {
				return err
			}
			a.logger.Info("Table ready", zap.String("table", table), zap.Int("columns", len(cols)))
		}

		missing, err := database.MissingColumns(a.db, models.Stock{}.TableName(), models.MutableColumns)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			a.logger.Warn("Stock table is missing sync columns", zap.Strings("columns", missing))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
