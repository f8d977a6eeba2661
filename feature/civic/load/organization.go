package load

import (
	"civic-sync/core/reconcile"
	"civic-sync/feature/civic/models"
	"civic-sync/feature/civic/records"
	"civic-sync/feature/civic/resolve"

	"gorm.io/gorm"
)

// Organization upserts an organization record and reconciles its links,
// sources and memberships.
//
// The parent is either an organization id or a classification (upper, lower...)
// scoped to the record's jurisdiction. Memberships naming a person id must
// point at a stored person; the others are kept as free text.
func Organization(tx *gorm.DB, res *resolve.Resolver, rec *records.Organization) (reconcile.Result, error) {
	var (
		parent *models.Organization
		err    error
	)
	if records.ParentIsInternal(rec.Parent) {
		parent, err = res.OrganizationByID(rec.Parent)
	} else {
		parent, err = res.Organization(rec.Parent, rec.Jurisdiction)
	}
	if err != nil {
		return reconcile.Result{}, withOrganization(err, rec)
	}

	memberships, err := organizationMembershipRows(res, rec)
	if err != nil {
		return reconcile.Result{}, err
	}

	jurisdictionID := rec.Jurisdiction
	parentID := parent.ID
	desired := &models.Organization{
		ID:              rec.ID,
		Name:            rec.Name,
		JurisdictionID:  &jurisdictionID,
		Classification:  rec.Classification,
		FoundingDate:    rec.FoundingDate.String(),
		DissolutionDate: rec.DissolutionDate.String(),
		ParentID:        &parentID,
	}

	org, created, updated, err := reconcile.Upsert(tx, map[string]any{"id": rec.ID}, desired)
	if err != nil {
		return reconcile.Result{}, err
	}
	result := reconcile.Result{Created: created, Updated: updated}

	changed, err := reconcile.ReplaceIfChanged(tx, org, organizationLinks, mapRows(rec.Links, func(l records.Link) models.OrganizationLink {
		return models.OrganizationLink{OrganizationID: rec.ID, URL: l.URL, Note: l.Note}
	}))
	if err != nil {
		return reconcile.Result{}, err
	}
	result.Merge(changed)

	changed, err = reconcile.ReplaceIfChanged(tx, org, organizationSources, mapRows(rec.Sources, func(l records.Link) models.OrganizationSource {
		return models.OrganizationSource{OrganizationID: rec.ID, URL: l.URL, Note: l.Note}
	}))
	if err != nil {
		return reconcile.Result{}, err
	}
	result.Merge(changed)

	changed, err = reconcile.ReplaceIfChanged(tx, org, organizationMemberships, memberships)
	if err != nil {
		return reconcile.Result{}, err
	}
	result.Merge(changed)

	return result, nil
}

func organizationMembershipRows(res *resolve.Resolver, rec *records.Organization) ([]models.Membership, error) {
	rows := make([]models.Membership, 0, len(rec.Memberships))
	for _, m := range rec.Memberships {
		row := models.Membership{
			OrganizationID: rec.ID,
			PersonName:     m.Name,
			Role:           m.Role,
			StartDate:      m.StartDate.String(),
			EndDate:        m.EndDate.String(),
		}
		if row.Role == "" {
			row.Role = "member"
		}
		if m.ID != "" {
			person, err := res.Person(m.ID)
			if err != nil {
				return nil, withOrganization(err, rec)
			}
			personID := person.ID
			row.PersonID = &personID
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// withOrganization adds the offending organization to a resolution failure.
func withOrganization(err error, rec *records.Organization) error {
	return withContext(err, "organization", rec.ID)
}
