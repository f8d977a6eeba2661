package cmd

import (
	"errors"
	"fmt"

	"civic-sync/core/config"
	"civic-sync/core/database"
	"civic-sync/core/logger"
	"civic-sync/feature/civic/models"
	"civic-sync/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkOnly bool

// migrateCmd creates or updates the schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Migrate runs the schema migration for every table sync writes to.
With --check it only reports tables and columns that are missing.`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&checkOnly, "check", false, "Only report missing columns")
	RootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if !checkOnly {
		if err := models.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
		l.Info("Schema migrated", zap.String("driver", cfg.Database.Driver))
	}

	report, err := checks.CheckSchema(db)
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	for table, tbl := range report.Tables {
		if len(tbl.MissingColumns) > 0 {
			l.Warn("Missing columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
		}
	}
	for _, e := range report.Errors {
		l.Error("Schema inspection error", zap.String("error", e))
	}
	if !report.Matched {
		return errors.New("schema does not match the models")
	}
	l.Info("Schema is up to date")
	return nil
}
