package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Organization classifications the sync engine depends on.
const (
	ClassificationCommittee   = "committee"
	ClassificationParty       = "party"
	ClassificationLegislature = "legislature"
	ClassificationUpper       = "upper"
	ClassificationLower       = "lower"
	ClassificationExecutive   = "executive"
	ClassificationGovernment  = "government"
)

// Division is a political geography (state, district, place).
type Division struct {
	ID        string    `gorm:"column:id;primaryKey;size:300" json:"id"`
	Name      string    `gorm:"column:name;size:300" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Division) TableName() string { return "divisions" }

// Fields implements reconcile.Record.
func (d *Division) Fields() map[string]any {
	return map[string]any{"id": d.ID, "name": d.Name}
}

// Jurisdiction is a governing body whose data is synced as one unit.
type Jurisdiction struct {
	ID             string    `gorm:"column:id;primaryKey;size:300" json:"id"`
	Name           string    `gorm:"column:name;size:300" json:"name"`
	URL            string    `gorm:"column:url;size:2000" json:"url"`
	Classification string    `gorm:"column:classification;size:50" json:"classification"`
	DivisionID     string    `gorm:"column:division_id;size:300" json:"division_id"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Jurisdiction) TableName() string { return "jurisdictions" }

// Fields implements reconcile.Record.
func (j *Jurisdiction) Fields() map[string]any {
	return map[string]any{
		"id":             j.ID,
		"name":           j.Name,
		"url":            j.URL,
		"classification": j.Classification,
		"division_id":    j.DivisionID,
	}
}

// Organization is a chamber, committee, party, executive or government body.
type Organization struct {
	ID              string    `gorm:"column:id;primaryKey;size:100" json:"id"`
	Name            string    `gorm:"column:name;size:300" json:"name"`
	JurisdictionID  *string   `gorm:"column:jurisdiction_id;size:300;index" json:"jurisdiction_id"`
	Classification  string    `gorm:"column:classification;size:100;index" json:"classification"`
	FoundingDate    string    `gorm:"column:founding_date;size:10" json:"founding_date"`
	DissolutionDate string    `gorm:"column:dissolution_date;size:10" json:"dissolution_date"`
	ParentID        *string   `gorm:"column:parent_id;size:100;index" json:"parent_id"`
	Extras          Extras    `gorm:"column:extras" json:"extras"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`

	Links       []OrganizationLink       `gorm:"foreignKey:OrganizationID" json:"links,omitempty"`
	Sources     []OrganizationSource     `gorm:"foreignKey:OrganizationID" json:"sources,omitempty"`
	Identifiers []OrganizationIdentifier `gorm:"foreignKey:OrganizationID" json:"identifiers,omitempty"`
	Posts       []Post                   `gorm:"foreignKey:OrganizationID" json:"posts,omitempty"`
	Memberships []Membership             `gorm:"foreignKey:OrganizationID" json:"memberships,omitempty"`
}

// TableName overrides the table name.
func (Organization) TableName() string { return "organizations" }

// BeforeCreate assigns an ocd-organization id to organizations seeded without one.
func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = "ocd-organization/" + uuid.NewString()
	}
	return nil
}

// OwnerID implements reconcile.Owner.
func (o *Organization) OwnerID() string { return o.ID }

// Fields implements reconcile.Record.
func (o *Organization) Fields() map[string]any {
	return map[string]any{
		"id":               o.ID,
		"name":             o.Name,
		"jurisdiction_id":  o.JurisdictionID,
		"classification":   o.Classification,
		"founding_date":    o.FoundingDate,
		"dissolution_date": o.DissolutionDate,
		"parent_id":        o.ParentID,
	}
}

// Post is a seat within an organization, usually tied to a district.
type Post struct {
	ID                 string `gorm:"column:id;primaryKey;size:100" json:"id"`
	OrganizationID     string `gorm:"column:organization_id;size:100;index" json:"organization_id"`
	Label              string `gorm:"column:label;size:300" json:"label"`
	Role               string `gorm:"column:role;size:300" json:"role"`
	DivisionID         string `gorm:"column:division_id;size:300" json:"division_id"`
	MaximumMemberships int    `gorm:"column:maximum_memberships" json:"maximum_memberships"`
}

// TableName overrides the table name.
func (Post) TableName() string { return "posts" }

// BeforeCreate assigns an ocd-post id.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = "ocd-post/" + uuid.NewString()
	}
	return nil
}

// Values implements reconcile.Item.
func (p *Post) Values() map[string]any {
	return map[string]any{
		"organization_id":     p.OrganizationID,
		"label":               p.Label,
		"role":                p.Role,
		"division_id":         p.DivisionID,
		"maximum_memberships": p.MaximumMemberships,
	}
}

// Person is an individual office holder.
type Person struct {
	ID         string    `gorm:"column:id;primaryKey;size:100" json:"id"`
	Name       string    `gorm:"column:name;size:300" json:"name"`
	GivenName  string    `gorm:"column:given_name;size:100" json:"given_name"`
	FamilyName string    `gorm:"column:family_name;size:100" json:"family_name"`
	Gender     string    `gorm:"column:gender;size:100" json:"gender"`
	Biography  string    `gorm:"column:biography;type:text" json:"biography"`
	BirthDate  string    `gorm:"column:birth_date;size:10" json:"birth_date"`
	DeathDate  string    `gorm:"column:death_date;size:10" json:"death_date"`
	Image      string    `gorm:"column:image;size:2000" json:"image"`
	Extras     Extras    `gorm:"column:extras" json:"extras"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`

	OtherNames     []PersonName          `gorm:"foreignKey:PersonID" json:"other_names,omitempty"`
	Links          []PersonLink          `gorm:"foreignKey:PersonID" json:"links,omitempty"`
	Sources        []PersonSource        `gorm:"foreignKey:PersonID" json:"sources,omitempty"`
	Identifiers    []PersonIdentifier    `gorm:"foreignKey:PersonID" json:"identifiers,omitempty"`
	ContactDetails []PersonContactDetail `gorm:"foreignKey:PersonID" json:"contact_details,omitempty"`
	Memberships    []Membership          `gorm:"foreignKey:PersonID" json:"memberships,omitempty"`
}

// TableName overrides the table name.
func (Person) TableName() string { return "people" }

// OwnerID implements reconcile.Owner.
func (p *Person) OwnerID() string { return p.ID }

// Fields implements reconcile.Record.
func (p *Person) Fields() map[string]any {
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"given_name":  p.GivenName,
		"family_name": p.FamilyName,
		"gender":      p.Gender,
		"biography":   p.Biography,
		"birth_date":  p.BirthDate,
		"death_date":  p.DeathDate,
		"image":       p.Image,
		"extras":      p.Extras,
	}
}

// Membership links a person (or a free-text name) to an organization, optionally via a post.
type Membership struct {
	ID             uint    `gorm:"column:id;primaryKey" json:"-"`
	OrganizationID string  `gorm:"column:organization_id;size:100;index" json:"organization_id"`
	PersonID       *string `gorm:"column:person_id;size:100;index" json:"person_id"`
	PersonName     string  `gorm:"column:person_name;size:300" json:"person_name"`
	PostID         *string `gorm:"column:post_id;size:100" json:"post_id"`
	Role           string  `gorm:"column:role;size:300" json:"role"`
	StartDate      string  `gorm:"column:start_date;size:10" json:"start_date"`
	EndDate        string  `gorm:"column:end_date;size:10" json:"end_date"`
}

// TableName overrides the table name.
func (Membership) TableName() string { return "memberships" }

// Values implements reconcile.Item.
func (m *Membership) Values() map[string]any {
	return map[string]any{
		"organization_id": m.OrganizationID,
		"person_id":       m.PersonID,
		"person_name":     m.PersonName,
		"post_id":         m.PostID,
		"role":            m.Role,
		"start_date":      m.StartDate,
		"end_date":        m.EndDate,
	}
}

// BillSponsorship references a sponsor of a bill. It is the dependent row rewritten on merges.
type BillSponsorship struct {
	ID             uint    `gorm:"column:id;primaryKey" json:"-"`
	BillID         string  `gorm:"column:bill_id;size:100;index" json:"bill_id"`
	Name           string  `gorm:"column:name;size:300" json:"name"`
	Classification string  `gorm:"column:classification;size:100" json:"classification"`
	Primary        bool    `gorm:"column:primary_sponsor" json:"primary"`
	PersonID       *string `gorm:"column:person_id;size:100;index" json:"person_id"`
	OrganizationID *string `gorm:"column:organization_id;size:100;index" json:"organization_id"`
}

// TableName overrides the table name.
func (BillSponsorship) TableName() string { return "bill_sponsorships" }

// All lists every model for migrations, parents first.
func All() []any {
	return []any{
		&Division{},
		&Jurisdiction{},
		&Organization{},
		&Post{},
		&Person{},
		&PersonName{},
		&PersonLink{},
		&PersonSource{},
		&PersonIdentifier{},
		&PersonContactDetail{},
		&OrganizationLink{},
		&OrganizationSource{},
		&OrganizationIdentifier{},
		&Membership{},
		&BillSponsorship{},
	}
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
