package models

// PersonName is an alternate name of a person.
type PersonName struct {
	ID        uint   `gorm:"column:id;primaryKey" json:"-"`
	PersonID  string `gorm:"column:person_id;size:100;index" json:"-"`
	Name      string `gorm:"column:name;size:500" json:"name"`
	Note      string `gorm:"column:note;size:500" json:"note"`
	StartDate string `gorm:"column:start_date;size:10" json:"start_date"`
	EndDate   string `gorm:"column:end_date;size:10" json:"end_date"`
}

func (PersonName) TableName() string { return "person_names" }

func (n *PersonName) Values() map[string]any {
	return map[string]any{
		"person_id":  n.PersonID,
		"name":       n.Name,
		"note":       n.Note,
		"start_date": n.StartDate,
		"end_date":   n.EndDate,
	}
}

// PersonLink is a web link about a person.
type PersonLink struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"-"`
	PersonID string `gorm:"column:person_id;size:100;index" json:"-"`
	URL      string `gorm:"column:url;size:2000" json:"url"`
	Note     string `gorm:"column:note;size:300" json:"note"`
}

func (PersonLink) TableName() string { return "person_links" }

func (l *PersonLink) Values() map[string]any {
	return map[string]any{"person_id": l.PersonID, "url": l.URL, "note": l.Note}
}

// PersonSource is a page the person data was collected from.
type PersonSource struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"-"`
	PersonID string `gorm:"column:person_id;size:100;index" json:"-"`
	URL      string `gorm:"column:url;size:2000" json:"url"`
	Note     string `gorm:"column:note;size:300" json:"note"`
}

func (PersonSource) TableName() string { return "person_sources" }

func (s *PersonSource) Values() map[string]any {
	return map[string]any{"person_id": s.PersonID, "url": s.URL, "note": s.Note}
}

// PersonIdentifier is an external (scheme, identifier) pair.
type PersonIdentifier struct {
	ID         uint   `gorm:"column:id;primaryKey" json:"-"`
	PersonID   string `gorm:"column:person_id;size:100;index" json:"-"`
	Scheme     string `gorm:"column:scheme;size:300;index:idx_person_identifier" json:"scheme"`
	Identifier string `gorm:"column:identifier;size:300;index:idx_person_identifier" json:"identifier"`
}

func (PersonIdentifier) TableName() string { return "person_identifiers" }

func (i *PersonIdentifier) Values() map[string]any {
	return map[string]any{"person_id": i.PersonID, "scheme": i.Scheme, "identifier": i.Identifier}
}

// PersonContactDetail is one contact channel (address, email, voice, fax).
type PersonContactDetail struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"-"`
	PersonID string `gorm:"column:person_id;size:100;index" json:"-"`
	Type     string `gorm:"column:type;size:50" json:"type"`
	Value    string `gorm:"column:value;size:300" json:"value"`
	Note     string `gorm:"column:note;size:300" json:"note"`
}

func (PersonContactDetail) TableName() string { return "person_contact_details" }

func (c *PersonContactDetail) Values() map[string]any {
	return map[string]any{"person_id": c.PersonID, "type": c.Type, "value": c.Value, "note": c.Note}
}

// OrganizationLink is a web link about an organization.
type OrganizationLink struct {
	ID             uint   `gorm:"column:id;primaryKey" json:"-"`
	OrganizationID string `gorm:"column:organization_id;size:100;index" json:"-"`
	URL            string `gorm:"column:url;size:2000" json:"url"`
	Note           string `gorm:"column:note;size:300" json:"note"`
}

func (OrganizationLink) TableName() string { return "organization_links" }

func (l *OrganizationLink) Values() map[string]any {
	return map[string]any{"organization_id": l.OrganizationID, "url": l.URL, "note": l.Note}
}

// OrganizationSource is a page the organization data was collected from.
type OrganizationSource struct {
	ID             uint   `gorm:"column:id;primaryKey" json:"-"`
	OrganizationID string `gorm:"column:organization_id;size:100;index" json:"-"`
	URL            string `gorm:"column:url;size:2000" json:"url"`
	Note           string `gorm:"column:note;size:300" json:"note"`
}

func (OrganizationSource) TableName() string { return "organization_sources" }

func (s *OrganizationSource) Values() map[string]any {
	return map[string]any{"organization_id": s.OrganizationID, "url": s.URL, "note": s.Note}
}

// OrganizationIdentifier is an external (scheme, identifier) pair.
type OrganizationIdentifier struct {
	ID             uint   `gorm:"column:id;primaryKey" json:"-"`
	OrganizationID string `gorm:"column:organization_id;size:100;index" json:"-"`
	Scheme         string `gorm:"column:scheme;size:300;index:idx_organization_identifier" json:"scheme"`
	Identifier     string `gorm:"column:identifier;size:300;index:idx_organization_identifier" json:"identifier"`
}

func (OrganizationIdentifier) TableName() string { return "organization_identifiers" }

func (i *OrganizationIdentifier) Values() map[string]any {
	return map[string]any{"organization_id": i.OrganizationID, "scheme": i.Scheme, "identifier": i.Identifier}
}
