package load

import (
	"civic-sync/core/reconcile"
	"civic-sync/feature/civic/models"

	"gorm.io/gorm"
)

var (
	personNames          = reconcile.Collection{Name: "other_names", OwnerColumn: "person_id"}
	personLinks          = reconcile.Collection{Name: "links", OwnerColumn: "person_id"}
	personSources        = reconcile.Collection{Name: "sources", OwnerColumn: "person_id"}
	personIdentifiers    = reconcile.Collection{Name: "identifiers", OwnerColumn: "person_id"}
	personContactDetails = reconcile.Collection{Name: "contact_details", OwnerColumn: "person_id"}

	// personMemberships leaves committee memberships alone; those belong to the committee files.
	personMemberships = reconcile.Collection{
		Name:        "memberships",
		OwnerColumn: "person_id",
		View:        excludeCommittees,
	}

	organizationLinks       = reconcile.Collection{Name: "links", OwnerColumn: "organization_id"}
	organizationSources     = reconcile.Collection{Name: "sources", OwnerColumn: "organization_id"}
	organizationMemberships = reconcile.Collection{Name: "memberships", OwnerColumn: "organization_id"}
)

func excludeCommittees(q *gorm.DB) *gorm.DB {
	committees := q.Session(&gorm.Session{NewDB: true}).
		Model(&models.Organization{}).
		Select("id").
		Where("classification = ?", models.ClassificationCommittee)
	return q.Where("organization_id NOT IN (?)", committees)
}
