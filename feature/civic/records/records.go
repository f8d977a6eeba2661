package records

import "strings"

// Link is a url with an optional note. Used for links and sources.
type Link struct {
	URL  string `yaml:"url" validate:"required"`
	Note string `yaml:"note"`
}

// OtherName is an alternate name of a person.
type OtherName struct {
	Name      string `yaml:"name" validate:"required"`
	Note      string `yaml:"note"`
	StartDate Scalar `yaml:"start_date"`
	EndDate   Scalar `yaml:"end_date"`
}

// Identifier is a (scheme, identifier) pair listed under other_identifiers.
type Identifier struct {
	Scheme     string `yaml:"scheme" validate:"required"`
	Identifier Scalar `yaml:"identifier" validate:"required"`
}

// ContactDetail groups the contact channels of one office.
type ContactDetail struct {
	Note    string `yaml:"note"`
	Address string `yaml:"address"`
	Email   string `yaml:"email"`
	Voice   string `yaml:"voice"`
	Fax     string `yaml:"fax"`
}

// Party is a party affiliation of a person.
type Party struct {
	Name      string `yaml:"name" validate:"required"`
	StartDate Scalar `yaml:"start_date"`
	EndDate   Scalar `yaml:"end_date"`
}

// Role is an office held by a person.
type Role struct {
	Type         string `yaml:"type" validate:"required"`
	District     Scalar `yaml:"district"`
	Jurisdiction string `yaml:"jurisdiction" validate:"required"`
	StartDate    Scalar `yaml:"start_date"`
	EndDate      Scalar `yaml:"end_date"`
	EndReason    string `yaml:"end_reason"`
}

// Person is one file under people/ or retired/.
type Person struct {
	ID               string            `yaml:"id" validate:"required,startswith=ocd-person/"`
	Name             string            `yaml:"name" validate:"required"`
	GivenName        string            `yaml:"given_name"`
	FamilyName       string            `yaml:"family_name"`
	Gender           string            `yaml:"gender"`
	Biography        string            `yaml:"biography"`
	BirthDate        Scalar            `yaml:"birth_date"`
	DeathDate        Scalar            `yaml:"death_date"`
	Image            string            `yaml:"image"`
	Extras           map[string]any    `yaml:"extras"`
	OtherNames       []OtherName       `yaml:"other_names" validate:"dive"`
	Links            []Link            `yaml:"links" validate:"dive"`
	Sources          []Link            `yaml:"sources" validate:"dive"`
	IDs              map[string]Scalar `yaml:"ids"`
	OtherIdentifiers []Identifier      `yaml:"other_identifiers" validate:"dive"`
	ContactDetails   []ContactDetail   `yaml:"contact_details"`
	Party            []Party           `yaml:"party" validate:"dive"`
	Roles            []Role            `yaml:"roles" validate:"dive"`
}

// Member is a membership listed in an organization file.
type Member struct {
	// ID optionally binds the membership to a stored person.
	ID        string `yaml:"id"`
	Name      string `yaml:"name" validate:"required"`
	Role      string `yaml:"role"`
	StartDate Scalar `yaml:"start_date"`
	EndDate   Scalar `yaml:"end_date"`
}

// Organization is one file under organizations/.
type Organization struct {
	ID              string   `yaml:"id" validate:"required,startswith=ocd-organization/"`
	Name            string   `yaml:"name" validate:"required"`
	Jurisdiction    string   `yaml:"jurisdiction" validate:"required"`
	Classification  string   `yaml:"classification" validate:"required"`
	Parent          string   `yaml:"parent" validate:"required"`
	FoundingDate    Scalar   `yaml:"founding_date"`
	DissolutionDate Scalar   `yaml:"dissolution_date"`
	Links           []Link   `yaml:"links" validate:"dive"`
	Sources         []Link   `yaml:"sources" validate:"dive"`
	Memberships     []Member `yaml:"memberships" validate:"dive"`
}

// ParentIsInternal reports whether the parent is a direct organization id
// (as opposed to a classification such as "upper").
func ParentIsInternal(parent string) bool {
	return strings.HasPrefix(parent, "ocd-organization")
}
