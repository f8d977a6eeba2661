package directory

import (
	"fmt"

	"civic-sync/core/reconcile"
	"civic-sync/feature/civic/models"

	"gorm.io/gorm"
)

// LegacyScheme is the identifier scheme that records the former id of a
// renamed or merged entity.
const LegacyScheme = "openstates"

// entity describes how a stored entity type is merged and removed.
type entity struct {
	typ   string
	table string
	// model returns an empty row of the entity.
	model func() any
	// identifiers is the identifier model searched for legacy ids.
	identifiers any
	// ownerColumn is the foreign key of the entity in its sub-collection tables.
	ownerColumn string
	// children are the sub-collection models deleted with the entity.
	children []any
	// redirect rewrites rows of other entities that point at old.
	redirect func(tx *gorm.DB, old, target string) error
	// detach clears rows of other entities that point at a purged id.
	detach func(tx *gorm.DB, id string) error
}

var personEntity = entity{
	typ:         TypePerson,
	table:       "people",
	model:       func() any { return &models.Person{} },
	identifiers: &models.PersonIdentifier{},
	ownerColumn: "person_id",
	children: []any{
		&models.PersonName{},
		&models.PersonLink{},
		&models.PersonSource{},
		&models.PersonIdentifier{},
		&models.PersonContactDetail{},
	},
	redirect: func(tx *gorm.DB, old, target string) error {
		if err := tx.Model(&models.BillSponsorship{}).Where("person_id = ?", old).
			Update("person_id", target).Error; err != nil {
			return err
		}
		// committee rosters keep the seat, now held by the surviving person
		return tx.Model(&models.Membership{}).
			Where("person_id = ? AND organization_id IN (?)", old, committeeIDs(tx)).
			Update("person_id", target).Error
	},
	detach: func(tx *gorm.DB, id string) error {
		if err := tx.Model(&models.BillSponsorship{}).Where("person_id = ?", id).
			Update("person_id", nil).Error; err != nil {
			return err
		}
		// committee memberships stay as free text under person_name
		return tx.Model(&models.Membership{}).
			Where("person_id = ? AND organization_id IN (?)", id, committeeIDs(tx)).
			Update("person_id", nil).Error
	},
}

var organizationEntity = entity{
	typ:         TypeOrganization,
	table:       "organizations",
	model:       func() any { return &models.Organization{} },
	identifiers: &models.OrganizationIdentifier{},
	ownerColumn: "organization_id",
	children: []any{
		&models.OrganizationLink{},
		&models.OrganizationSource{},
		&models.OrganizationIdentifier{},
		&models.Post{},
	},
	redirect: func(tx *gorm.DB, old, target string) error {
		if err := tx.Model(&models.Organization{}).Where("parent_id = ?", old).
			Update("parent_id", target).Error; err != nil {
			return err
		}
		return tx.Model(&models.BillSponsorship{}).Where("organization_id = ?", old).
			Update("organization_id", target).Error
	},
	detach: func(tx *gorm.DB, id string) error {
		if err := tx.Model(&models.Organization{}).Where("parent_id = ?", id).
			Update("parent_id", nil).Error; err != nil {
			return err
		}
		return tx.Model(&models.BillSponsorship{}).Where("organization_id = ?", id).
			Update("organization_id", nil).Error
	},
}

func committeeIDs(tx *gorm.DB) *gorm.DB {
	return tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.Organization{}).
		Select("id").
		Where("classification = ?", models.ClassificationCommittee)
}

// mergeTarget finds the entity of the current batch carrying id as its legacy
// identifier. Owners outside seen are stale themselves and never a target.
// More than one distinct owner is ambiguous and cancels the run.
func (d *Directory) mergeTarget(e entity, id string, seen map[string]bool) (string, bool, error) {
	var claimed []string
	err := d.tx.Model(e.identifiers).
		Where("scheme = ? AND identifier = ? AND "+e.ownerColumn+" <> ?", LegacyScheme, id, id).
		Distinct(e.ownerColumn).
		Order(e.ownerColumn).
		Pluck(e.ownerColumn, &claimed).Error
	if err != nil {
		return "", false, fmt.Errorf("failed to look up merge target of %s: %w", id, err)
	}

	var owners []string
	for _, owner := range claimed {
		if seen[owner] {
			owners = append(owners, owner)
		}
	}

	switch len(owners) {
	case 0:
		return "", false, nil
	case 1:
		return owners[0], true, nil
	default:
		return "", false, reconcile.Fatal(reconcile.KindAmbiguousMerge, "legacy identifier is claimed by more than one entity", map[string]string{
			"type":       e.typ,
			"identifier": id,
			"owners":     fmt.Sprint(owners),
		})
	}
}

// merge points every dependent row of old at target and deletes old.
func (d *Directory) merge(e entity, old, target string) error {
	if err := e.redirect(d.tx, old, target); err != nil {
		return fmt.Errorf("failed to redirect %s to %s: %w", old, target, err)
	}
	return d.remove(e, old, target)
}

// remove deletes an entity with its sub-collections and memberships. Without a
// merge target, rows of other entities that reference it are detached first.
func (d *Directory) remove(e entity, id, target string) error {
	if target == "" {
		if err := e.detach(d.tx, id); err != nil {
			return fmt.Errorf("failed to detach %s: %w", id, err)
		}
	}

	for _, child := range e.children {
		if err := d.tx.Where(e.ownerColumn+" = ?", id).Delete(child).Error; err != nil {
			return fmt.Errorf("failed to delete %T of %s: %w", child, id, err)
		}
	}
	if err := d.tx.Where(e.ownerColumn+" = ?", id).Delete(&models.Membership{}).Error; err != nil {
		return fmt.Errorf("failed to delete memberships of %s: %w", id, err)
	}
	if err := d.tx.Where("id = ?", id).Delete(e.model()).Error; err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", e.typ, id, err)
	}
	return nil
}
