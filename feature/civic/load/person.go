package load

import (
	"errors"
	"sort"

	"civic-sync/core/reconcile"
	"civic-sync/feature/civic/models"
	"civic-sync/feature/civic/records"
	"civic-sync/feature/civic/resolve"

	"gorm.io/gorm"
)

// Role types a person record may carry.
const (
	RoleUpper       = "upper"
	RoleLower       = "lower"
	RoleLegislature = "legislature"
	RoleGovernor    = "governor"
	RoleMayor       = "mayor"
)

// executiveRoles maps non-legislative role types to the organization
// classification they resolve to and the fixed title of the membership.
var executiveRoles = map[string]struct {
	classification string
	title          string
}{
	RoleGovernor: {models.ClassificationExecutive, "Governor"},
	RoleMayor:    {models.ClassificationGovernment, "Mayor"},
}

// contactTypes is the order in which contact channels are flattened.
var contactTypes = []string{"address", "email", "voice", "fax"}

// Person upserts a person record and reconciles its sub-collections.
//
// The person row is matched by id. Other names, links, sources, identifiers,
// contact details and non-committee memberships are each replaced when they
// differ from the record. Any unresolved party, chamber or post aborts the run.
func Person(tx *gorm.DB, res *resolve.Resolver, rec *records.Person) (reconcile.Result, error) {
	memberships, err := personMembershipRows(res, rec)
	if err != nil {
		return reconcile.Result{}, err
	}

	desired := &models.Person{
		ID:         rec.ID,
		Name:       rec.Name,
		GivenName:  rec.GivenName,
		FamilyName: rec.FamilyName,
		Gender:     rec.Gender,
		Biography:  rec.Biography,
		BirthDate:  rec.BirthDate.String(),
		DeathDate:  rec.DeathDate.String(),
		Image:      rec.Image,
		Extras:     models.Extras(rec.Extras),
	}

	person, created, updated, err := reconcile.Upsert(tx, map[string]any{"id": rec.ID}, desired)
	if err != nil {
		return reconcile.Result{}, err
	}
	result := reconcile.Result{Created: created, Updated: updated}

	steps := []func() (bool, error){
		func() (bool, error) {
			return reconcile.ReplaceIfChanged(tx, person, personNames, otherNameRows(rec))
		},
		func() (bool, error) {
			return reconcile.ReplaceIfChanged(tx, person, personLinks, mapRows(rec.Links, func(l records.Link) models.PersonLink {
				return models.PersonLink{PersonID: rec.ID, URL: l.URL, Note: l.Note}
			}))
		},
		func() (bool, error) {
			return reconcile.ReplaceIfChanged(tx, person, personSources, mapRows(rec.Sources, func(l records.Link) models.PersonSource {
				return models.PersonSource{PersonID: rec.ID, URL: l.URL, Note: l.Note}
			}))
		},
		func() (bool, error) {
			return reconcile.ReplaceIfChanged(tx, person, personIdentifiers, identifierRows(rec))
		},
		func() (bool, error) {
			return reconcile.ReplaceIfChanged(tx, person, personContactDetails, contactRows(rec))
		},
		func() (bool, error) {
			return reconcile.ReplaceIfChanged(tx, person, personMemberships, memberships)
		},
	}
	for _, step := range steps {
		changed, err := step()
		if err != nil {
			return reconcile.Result{}, err
		}
		result.Merge(changed)
	}
	return result, nil
}

// mapRows converts record entries into stored rows.
func mapRows[S, T any](in []S, fn func(S) T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

func otherNameRows(rec *records.Person) []models.PersonName {
	rows := make([]models.PersonName, 0, len(rec.OtherNames))
	for _, n := range rec.OtherNames {
		rows = append(rows, models.PersonName{
			PersonID:  rec.ID,
			Name:      n.Name,
			Note:      n.Note,
			StartDate: n.StartDate.String(),
			EndDate:   n.EndDate.String(),
		})
	}
	return rows
}

// identifierRows lists the ids map sorted by scheme, then other_identifiers as given.
func identifierRows(rec *records.Person) []models.PersonIdentifier {
	schemes := make([]string, 0, len(rec.IDs))
	for scheme := range rec.IDs {
		schemes = append(schemes, scheme)
	}
	sort.Strings(schemes)

	rows := make([]models.PersonIdentifier, 0, len(schemes)+len(rec.OtherIdentifiers))
	for _, scheme := range schemes {
		rows = append(rows, models.PersonIdentifier{
			PersonID:   rec.ID,
			Scheme:     scheme,
			Identifier: rec.IDs[scheme].String(),
		})
	}
	for _, oi := range rec.OtherIdentifiers {
		rows = append(rows, models.PersonIdentifier{
			PersonID:   rec.ID,
			Scheme:     oi.Scheme,
			Identifier: oi.Identifier.String(),
		})
	}
	return rows
}

// contactRows emits one row per populated channel of every contact entry.
func contactRows(rec *records.Person) []models.PersonContactDetail {
	var rows []models.PersonContactDetail
	for _, cd := range rec.ContactDetails {
		values := map[string]string{
			"address": cd.Address,
			"email":   cd.Email,
			"voice":   cd.Voice,
			"fax":     cd.Fax,
		}
		for _, typ := range contactTypes {
			if values[typ] == "" {
				continue
			}
			rows = append(rows, models.PersonContactDetail{
				PersonID: rec.ID,
				Type:     typ,
				Value:    values[typ],
				Note:     cd.Note,
			})
		}
	}
	return rows
}

func personMembershipRows(res *resolve.Resolver, rec *records.Person) ([]models.Membership, error) {
	var rows []models.Membership
	personID := rec.ID

	for _, party := range rec.Party {
		org, err := res.Party(party.Name)
		if err != nil {
			return nil, withPerson(err, rec)
		}
		rows = append(rows, models.Membership{
			OrganizationID: org.ID,
			PersonID:       &personID,
			PersonName:     rec.Name,
			Role:           "member",
			StartDate:      party.StartDate.String(),
			EndDate:        party.EndDate.String(),
		})
	}

	for _, role := range rec.Roles {
		m := models.Membership{
			PersonID:   &personID,
			PersonName: rec.Name,
			StartDate:  role.StartDate.String(),
			EndDate:    role.EndDate.String(),
		}

		switch role.Type {
		case RoleUpper, RoleLower, RoleLegislature:
			org, post, ok, err := res.Seat(role.Type, role.Jurisdiction, role.District.String())
			if err != nil {
				return nil, withPerson(err, rec)
			}
			if !ok {
				// legacy district, nothing to bind to
				continue
			}
			postID := post.ID
			m.OrganizationID = org.ID
			m.PostID = &postID
			m.Role = post.Role
		default:
			exec, known := executiveRoles[role.Type]
			if !known {
				return nil, reconcile.Fatal(reconcile.KindResolution, "unsupported role type", map[string]string{
					"person":       rec.ID,
					"type":         role.Type,
					"jurisdiction": role.Jurisdiction,
				})
			}
			org, err := res.Organization(exec.classification, role.Jurisdiction)
			if err != nil {
				return nil, withPerson(err, rec)
			}
			m.OrganizationID = org.ID
			m.Role = exec.title
		}
		rows = append(rows, m)
	}
	return rows, nil
}

// withPerson adds the offending person to a resolution failure.
func withPerson(err error, rec *records.Person) error {
	return withContext(err, "person", rec.ID)
}

// withContext copies a FatalError with one more context entry. Other errors pass through.
func withContext(err error, key, value string) error {
	var fe *reconcile.FatalError
	if !errors.As(err, &fe) {
		return err
	}
	ctx := map[string]string{key: value}
	for k, v := range fe.Context {
		ctx[k] = v
	}
	return &reconcile.FatalError{Kind: fe.Kind, Message: fe.Message, Context: ctx, Err: fe.Err}
}
