// Package syncer runs a sync of one or more jurisdictions.
//
// A run reads and validates every record file first, then does all of its work
// inside a single transaction: parties, jurisdiction structure, people and
// organizations. Any fatal condition rolls the whole run back. A dry run does
// the same work and rolls back at the end.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"civic-sync/core/metrics"
	"civic-sync/core/reconcile"
	"civic-sync/core/storage"
	"civic-sync/feature/civic/directory"
	"civic-sync/feature/civic/jurisdiction"
	"civic-sync/feature/civic/metadata"
	"civic-sync/feature/civic/records"
	"civic-sync/feature/civic/resolve"
	"civic-sync/feature/civic/source"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Run outcomes.
const (
	OutcomeCommitted = "committed"
	OutcomeDryRun    = "dry_run"
	OutcomeCancelled = "cancelled"
	OutcomeFailed    = "failed"
)

// Options select what a run does.
type Options struct {
	// Abbreviations of the jurisdictions to sync. Empty means all of the catalog.
	Abbreviations []string
	Purge         bool
	DryRun        bool
}

// Summary describes a finished run.
type Summary struct {
	Outcome string
	// Parties is the number of party organizations created.
	Parties int
	Reports []*directory.Report
}

// Syncer wires the record source, the catalog and the database together.
type Syncer struct {
	db      *gorm.DB
	catalog *metadata.Catalog
	store   source.Store
	log     *zap.Logger
	metrics *metrics.Recorder
	cfg     Config
}

// New creates a Syncer. rec may be nil.
func New(db *gorm.DB, catalog *metadata.Catalog, store source.Store, log *zap.Logger, rec *metrics.Recorder, cfg Config) *Syncer {
	return &Syncer{
		db:      db,
		catalog: catalog,
		store:   store,
		log:     log,
		metrics: rec,
		cfg:     cfg,
	}
}

// NewStore returns the record store selected by cfg.
func NewStore(cfg Config, client storage.Client, bucket string) (source.Store, error) {
	switch cfg.Source {
	case SourceFS:
		return source.Dir{Root: cfg.DataDir}, nil
	case SourceBucket:
		if client == nil {
			return nil, errors.New("bucket source requires a storage client")
		}
		return source.Bucket{Client: client, Name: bucket, Prefix: cfg.BucketPrefix}, nil
	default:
		return nil, fmt.Errorf("unknown record source %q", cfg.Source)
	}
}

type batch struct {
	jurisdiction *metadata.Jurisdiction
	people       []records.File[*records.Person]
	orgs         []records.File[*records.Organization]
}

// Run syncs the selected jurisdictions. A cancelled run returns an error that
// matches reconcile.ErrCancelled; a dry run returns a summary with
// OutcomeDryRun and no error.
func (s *Syncer) Run(ctx context.Context, opts Options) (*Summary, error) {
	start := time.Now()

	summary, err := s.run(ctx, opts)
	outcome := OutcomeCommitted
	switch {
	case errors.Is(err, reconcile.ErrCancelled):
		outcome = OutcomeCancelled
	case err != nil:
		outcome = OutcomeFailed
	case opts.DryRun:
		outcome = OutcomeDryRun
	}
	s.record(outcome, summary, time.Since(start))

	if err != nil {
		s.log.Error("Sync cancelled", zap.String("outcome", outcome), zap.Error(err))
		return nil, err
	}
	summary.Outcome = outcome
	s.log.Info("Sync finished",
		zap.String("outcome", outcome),
		zap.Int("parties", summary.Parties),
		zap.Duration("duration", time.Since(start)),
	)
	return summary, nil
}

func (s *Syncer) run(ctx context.Context, opts Options) (*Summary, error) {
	batches, err := s.read(ctx, opts.Abbreviations)
	if err != nil {
		return nil, err
	}
	settings, err := LoadSettings(ctx, s.store, s.cfg.SettingsFile)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	err = reconcile.Atomic(ctx, s.db, func(tx *gorm.DB) error {
		res, err := resolve.New(tx, s.catalog, s.cfg.CacheSize)
		if err != nil {
			return err
		}

		if summary.Parties, err = jurisdiction.SeedParties(tx, s.log, settings.Parties); err != nil {
			return err
		}

		for _, b := range batches {
			reports, err := s.sync(tx, res, b, opts.Purge)
			if err != nil {
				return err
			}
			summary.Reports = append(summary.Reports, reports...)
		}

		if opts.DryRun {
			s.log.Info("Dry run, rolling back")
			return reconcile.DryRun()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// read decodes the files of every selected jurisdiction before anything is written.
func (s *Syncer) read(ctx context.Context, abbrs []string) ([]batch, error) {
	if len(abbrs) == 0 {
		abbrs = s.catalog.Abbreviations()
	}

	batches := make([]batch, 0, len(abbrs))
	for _, abbr := range abbrs {
		j, ok := s.catalog.Lookup(abbr)
		if !ok {
			return nil, fmt.Errorf("unknown jurisdiction %q", abbr)
		}

		src := source.New(s.store)
		people, err := src.People(ctx, j.Abbr)
		if err != nil {
			return nil, err
		}
		orgs, err := src.Organizations(ctx, j.Abbr)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch{jurisdiction: j, people: people, orgs: orgs})
	}
	return batches, nil
}

// sync loads one jurisdiction. People go first so that committee memberships
// can bind to them.
func (s *Syncer) sync(tx *gorm.DB, res *resolve.Resolver, b batch, purge bool) ([]*directory.Report, error) {
	if err := jurisdiction.Seed(tx, s.log, b.jurisdiction); err != nil {
		return nil, err
	}
	// posts may have been replaced
	res.Forget()

	dir := directory.New(tx, res, s.log, b.jurisdiction.JurisdictionID, purge)
	people, err := dir.People(b.people)
	if err != nil {
		return nil, err
	}
	orgs, err := dir.Organizations(b.orgs)
	if err != nil {
		return nil, err
	}
	return []*directory.Report{people, orgs}, nil
}

func (s *Syncer) record(outcome string, summary *Summary, d time.Duration) {
	if s.metrics == nil {
		return
	}

	s.metrics.Run(outcome, d)
	if summary != nil {
		for _, r := range summary.Reports {
			s.metrics.Entities(r.Type, "processed", r.Processed)
			s.metrics.Entities(r.Type, "created", r.Created)
			s.metrics.Entities(r.Type, "updated", r.Updated)
			s.metrics.Entities(r.Type, "merged", len(r.Merged))
			s.metrics.Entities(r.Type, "purged", len(r.Purged))
		}
	}

	if s.cfg.MetricsFile == "" {
		return
	}
	if err := s.metrics.WriteTextfile(s.cfg.MetricsFile); err != nil {
		s.log.Warn("Failed to write metrics", zap.Error(err))
	}
}
