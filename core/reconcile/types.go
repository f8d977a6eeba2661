package reconcile

import "gorm.io/gorm"

// Record is a top-level entity row that can be diffed field by field.
type Record interface {
	// Fields returns column name -> value for every scalar column the loader owns.
	Fields() map[string]any
}

// Item is one element of a sub-collection (a link, an identifier, a membership...).
type Item interface {
	// Values returns column name -> value for every column that takes part in
	// equality, including the owner foreign key but excluding the row's own primary key.
	Values() map[string]any
}

// Owner is an entity that owns sub-collections.
type Owner interface {
	OwnerID() string
}

// Collection describes where the items of one sub-collection live.
type Collection struct {
	// Name is used for logging and error messages (e.g. "links").
	Name string

	// OwnerColumn is the foreign key column pointing at the owner (e.g. "person_id").
	OwnerColumn string

	// View optionally narrows the stored items that are compared and replaced.
	// Items outside the view are never read, deleted or counted.
	View func(*gorm.DB) *gorm.DB
}

// Result is the outcome of loading a single record.
type Result struct {
	Created bool
	Updated bool
}

// Merge folds another outcome into r.
func (r *Result) Merge(updated bool) {
	r.Updated = r.Updated || updated
}
