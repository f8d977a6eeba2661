package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"civic-sync/core/config"
	"civic-sync/core/database"
	"civic-sync/core/logger"
	"civic-sync/core/metrics"
	"civic-sync/core/storage"
	"civic-sync/feature/civic/metadata"
	"civic-sync/feature/civic/source"
	"civic-sync/feature/civic/syncer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	purgeMissing bool
	dryRunSync   bool
	yesConfirm   bool
)

// syncCmd loads record files into the database.
var syncCmd = &cobra.Command{
	Use:   "sync [abbr...]",
	Short: "Sync people and organizations of one or more jurisdictions",
	Long: `Sync loads the people and organization files of the given jurisdictions
(all jurisdictions of the metadata catalog when none are given) into the database.

The whole run is one transaction. People or organizations that are stored but
no longer have a file cancel the run unless they can be merged into another
record, or --purge is given.

Examples:
  # Sync North Carolina
  sync nc

  # Check what a sync would do, without keeping any change
  sync nc --dry-run

  # Delete people and committees that are gone (non-interactive)
  sync nc --purge --yes`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&purgeMissing, "purge", false, "Delete stored records that no longer have a file")
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Roll back every change at the end of the run")
	syncCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.Sync.IsValidSource() {
		return fmt.Errorf("invalid sync source %q", cfg.Sync.Source)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	catalog, err := metadata.Load(cfg.Sync.MetadataFile)
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := recordStore(cfg)
	if err != nil {
		return err
	}
	if b, ok := store.(source.Bucket); ok {
		if err := b.Check(ctx); err != nil {
			return err
		}
	}

	purge := purgeMissing || cfg.Sync.Purge
	if purge && !dryRunSync && !confirmDestructiveAction(os.Stdin) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	l.Info("Starting sync",
		zap.Strings("jurisdictions", args),
		zap.Bool("purge", purge),
		zap.Bool("dry_run", dryRunSync),
	)

	s := syncer.New(db, catalog, store, l, metrics.New(), cfg.Sync)
	summary, err := s.Run(ctx, syncer.Options{Abbreviations: args, Purge: purge, DryRun: dryRunSync})
	if err != nil {
		return err
	}

	printSyncReport(l, summary)
	return nil
}

// recordStore opens the record store the sync config selects.
func recordStore(cfg *config.Config) (source.Store, error) {
	var client storage.Client
	if cfg.Sync.Source == syncer.SourceBucket {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		client = c
	}
	return syncer.NewStore(cfg.Sync, client, cfg.Storage.Bucket)
}

// printSyncReport logs one line per directory report.
func printSyncReport(l *zap.Logger, s *syncer.Summary) {
	l.Info("Sync report", zap.String("outcome", s.Outcome), zap.Int("parties_created", s.Parties))
	for _, r := range s.Reports {
		l.Info("Directory report",
			zap.String("type", r.Type),
			zap.Int("processed", r.Processed),
			zap.Int("created", r.Created),
			zap.Int("updated", r.Updated),
			zap.Int("merged", len(r.Merged)),
			zap.Int("purged", len(r.Purged)),
		)
	}
	if s.Outcome == syncer.OutcomeDryRun {
		l.Info("Dry-run mode: No changes were made.")
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction(in io.Reader) bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to delete records that no longer have a file: ")
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
