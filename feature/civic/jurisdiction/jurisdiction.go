// Package jurisdiction seeds the structure records refer to: the jurisdiction
// and its division, chambers with their posts, executive and government
// offices, and the shared party organizations.
package jurisdiction

import (
	"fmt"

	"civic-sync/core/reconcile"
	"civic-sync/feature/civic/metadata"
	"civic-sync/feature/civic/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var posts = reconcile.Collection{Name: "posts", OwnerColumn: "organization_id"}

// Seed creates or updates everything metadata declares for one jurisdiction.
func Seed(tx *gorm.DB, log *zap.Logger, j *metadata.Jurisdiction) error {
	log = log.With(zap.String("jurisdiction", j.JurisdictionID))

	_, _, _, err := reconcile.Upsert(tx, map[string]any{"id": j.DivisionID}, &models.Division{
		ID:   j.DivisionID,
		Name: j.Name,
	})
	if err != nil {
		return err
	}

	_, created, updated, err := reconcile.Upsert(tx, map[string]any{"id": j.JurisdictionID}, &models.Jurisdiction{
		ID:             j.JurisdictionID,
		Name:           j.Name,
		URL:            j.URL,
		Classification: models.ClassificationGovernment,
		DivisionID:     j.DivisionID,
	})
	if err != nil {
		return err
	}
	if created || updated {
		log.Info("Jurisdiction saved", zap.Bool("created", created))
	}

	for _, chamber := range j.Chambers {
		org, err := office(tx, j.JurisdictionID, chamber.Classification(), chamber.Name)
		if err != nil {
			return err
		}

		desired := make([]models.Post, 0, len(chamber.Districts))
		for _, d := range chamber.Districts {
			desired = append(desired, models.Post{
				OrganizationID:     org.ID,
				Label:              d.Name,
				Role:               chamber.Title,
				DivisionID:         d.DivisionID,
				MaximumMemberships: d.Seats,
			})
		}
		changed, err := reconcile.ReplaceIfChanged(tx, org, posts, desired)
		if err != nil {
			return err
		}
		if changed {
			log.Info("Updated posts", zap.String("organization", org.Name), zap.Int("count", len(desired)))
		}
	}

	if j.Executive != "" {
		if _, err := office(tx, j.JurisdictionID, models.ClassificationExecutive, j.Executive); err != nil {
			return err
		}
	}
	if j.Government != "" {
		if _, err := office(tx, j.JurisdictionID, models.ClassificationGovernment, j.Government); err != nil {
			return err
		}
	}
	return nil
}

// office finds the organization of a jurisdiction by classification, creating
// it with a generated id when absent. Only its name is kept up to date.
func office(tx *gorm.DB, jurisdictionID, classification, name string) (*models.Organization, error) {
	jid := jurisdictionID
	org, _, _, err := reconcile.Upsert(tx,
		map[string]any{"jurisdiction_id": jurisdictionID, "classification": classification},
		&models.Organization{Name: name, JurisdictionID: &jid, Classification: classification},
		"name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save %s organization: %w", classification, err)
	}
	return org, nil
}

// SeedParties makes sure a party organization exists for every name.
// It returns how many were created.
func SeedParties(tx *gorm.DB, log *zap.Logger, names []string) (int, error) {
	created := 0
	for _, name := range names {
		_, isNew, _, err := reconcile.Upsert(tx,
			map[string]any{"classification": models.ClassificationParty, "name": name},
			&models.Organization{Name: name, Classification: models.ClassificationParty},
			"name",
		)
		if err != nil {
			return created, fmt.Errorf("failed to save party %q: %w", name, err)
		}
		if isNew {
			created++
			log.Info("Created party", zap.String("name", name))
		}
	}
	return created, nil
}
