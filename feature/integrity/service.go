package integrity

import (
	"context"
	"errors"

	"civic-sync/feature/civic/metadata"
	"civic-sync/feature/civic/source"
	"civic-sync/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoSource is returned by CheckLayout when no record source is configured.
var ErrNoSource = errors.New("record source is not configured")

// Service handles integrity checks.
type Service struct {
	db      *gorm.DB
	store   source.Store
	catalog *metadata.Catalog
	logger  *zap.Logger
}

// NewService creates a new integrity service. Any dependency may be nil; the
// checks that need it then fail.
func NewService(db *gorm.DB, store source.Store, catalog *metadata.Catalog, logger *zap.Logger) *Service {
	return &Service{
		db:      db,
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// CheckSchema compares the stored tables with the models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}

// CheckLayout counts the record files of every catalog jurisdiction.
func (s *Service) CheckLayout(ctx context.Context) (*checks.LayoutReport, error) {
	if s.store == nil || s.catalog == nil {
		return nil, ErrNoSource
	}
	return checks.CheckLayout(ctx, s.store, s.catalog)
}
