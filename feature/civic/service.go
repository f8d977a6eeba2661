package civic

import (
	"context"
	"errors"

	"civic-sync/feature/civic/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("not found")

// JurisdictionSummary counts what is stored for one jurisdiction.
type JurisdictionSummary struct {
	Jurisdiction models.Jurisdiction `json:"jurisdiction"`
	// Organizations counts organizations by classification.
	Organizations map[string]int64 `json:"organizations"`
	Posts         int64            `json:"posts"`
	People        int64            `json:"people"`
}

// Service reads synced records.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new inspection service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Person returns a person with every sub-collection.
func (s *Service) Person(ctx context.Context, id string) (*models.Person, error) {
	var p models.Person
	err := s.db.WithContext(ctx).
		Preload("OtherNames").
		Preload("Links").
		Preload("Sources").
		Preload("Identifiers").
		Preload("ContactDetails").
		Preload("Memberships").
		Take(&p, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// Organization returns an organization with every sub-collection.
func (s *Service) Organization(ctx context.Context, id string) (*models.Organization, error) {
	var o models.Organization
	err := s.db.WithContext(ctx).
		Preload("Links").
		Preload("Sources").
		Preload("Identifiers").
		Preload("Posts").
		Preload("Memberships").
		Take(&o, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

// Summary counts the organizations, posts and people of a jurisdiction.
func (s *Service) Summary(ctx context.Context, id string) (*JurisdictionSummary, error) {
	db := s.db.WithContext(ctx)

	summary := &JurisdictionSummary{Organizations: map[string]int64{}}
	if err := db.Take(&summary.Jurisdiction, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}

	var rows []struct {
		Classification string
		Total          int64
	}
	err := db.Model(&models.Organization{}).
		Select("classification, COUNT(*) AS total").
		Where("jurisdiction_id = ?", id).
		Group("classification").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		summary.Organizations[r.Classification] = r.Total
	}

	err = db.Model(&models.Post{}).
		Joins("JOIN organizations ON organizations.id = posts.organization_id").
		Where("organizations.jurisdiction_id = ?", id).
		Count(&summary.Posts).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.Membership{}).
		Joins("JOIN organizations ON organizations.id = memberships.organization_id").
		Where("organizations.jurisdiction_id = ? AND memberships.person_id IS NOT NULL", id).
		Distinct("memberships.person_id").
		Count(&summary.People).Error
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
