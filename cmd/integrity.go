package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"civic-sync/core/config"
	"civic-sync/core/database"
	"civic-sync/core/logger"
	"civic-sync/feature/civic/metadata"
	"civic-sync/feature/integrity"
	"civic-sync/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var jsonOutput bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the database schema and the record files",
	Long: `Checks that every table sync writes to has the columns of its model, and
counts the record files of every jurisdiction in the metadata catalog.
Outputs log lines by default or a JSON report with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}
		catalog, err := metadata.Load(cfg.Sync.MetadataFile)
		if err != nil {
			return err
		}
		store, err := recordStore(cfg)
		if err != nil {
			return err
		}

		svc := integrity.NewService(db, store, catalog, logg)
		return runIntegrityChecks(cmd.Context(), svc, logg, os.Stdout)
	},
}

func init() {
	integrityCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the report as JSON")
	RootCmd.AddCommand(integrityCmd)
}

// runIntegrityChecks runs every check and fails when one of them finds a problem.
func runIntegrityChecks(ctx context.Context, svc *integrity.Service, logg *zap.Logger, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	schema, err := svc.CheckSchema()
	if err != nil {
		return fmt.Errorf("schema check failed: %w", err)
	}
	layout, err := svc.CheckLayout(ctx)
	if err != nil {
		return fmt.Errorf("layout check failed: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any{"schema": schema, "layout": layout}); err != nil {
			return err
		}
	} else {
		printIntegrityReport(logg, schema, layout)
	}

	if !schema.Matched || len(layout.Missing) > 0 {
		return fmt.Errorf("integrity check found problems")
	}
	return nil
}

func printIntegrityReport(logg *zap.Logger, schema *checks.SchemaReport, layout *checks.LayoutReport) {
	for table, tbl := range schema.Tables {
		if tbl.Status != "ok" {
			logg.Warn("Table does not match its model", zap.String("table", table), zap.Strings("missing_columns", tbl.MissingColumns))
		}
	}
	for _, e := range schema.Errors {
		logg.Error("Schema inspection error", zap.String("error", e))
	}
	for abbr, counts := range layout.Jurisdictions {
		logg.Info("Record files",
			zap.String("jurisdiction", abbr),
			zap.Int("people", counts.People),
			zap.Int("retired", counts.Retired),
			zap.Int("organizations", counts.Organizations),
		)
	}
	if len(layout.Missing) > 0 {
		logg.Warn("Jurisdictions without person files", zap.Strings("missing", layout.Missing))
	}
	logg.Info("Integrity check finished", zap.Bool("schema_matched", schema.Matched))
}
