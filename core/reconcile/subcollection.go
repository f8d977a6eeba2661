package reconcile

import (
	"fmt"

	"gorm.io/gorm"
)

// ReplaceIfChanged reconciles one sub-collection of owner against desired.
//
// The stored items visible under col.View are compared to desired: a different
// count is always a change, otherwise every stored item must have an exact match
// in desired. On change, all visible stored items are deleted, every desired item
// is inserted and the owner's updated_at is bumped. Without a change nothing is
// written. Items must already carry the owner foreign key.
//
// Duplicates are compared by membership, not multiplicity: [a, a] against a stored
// [a, b] is a change (b has no match) but [a, b] against a stored [a, a] is not.
func ReplaceIfChanged[T any, P interface {
	*T
	Item
}](tx *gorm.DB, owner Owner, col Collection, desired []T) (bool, error) {
	stored, err := visible[T](tx, owner, col)
	if err != nil {
		return false, err
	}

	if !changed[T, P](stored, desired) {
		return false, nil
	}

	if len(stored) > 0 {
		if err := tx.Delete(&stored).Error; err != nil {
			return false, fmt.Errorf("failed to delete %s of %s: %w", col.Name, owner.OwnerID(), err)
		}
	}

	if len(desired) > 0 {
		fresh := make([]T, len(desired))
		copy(fresh, desired)
		if err := tx.Create(&fresh).Error; err != nil {
			return false, fmt.Errorf("failed to insert %s of %s: %w", col.Name, owner.OwnerID(), err)
		}
	}

	if err := Touch(tx, owner); err != nil {
		return false, err
	}
	return true, nil
}

// Touch bumps the owner's updated_at timestamp.
func Touch(tx *gorm.DB, owner Owner) error {
	if err := tx.Model(owner).Update("updated_at", tx.NowFunc()).Error; err != nil {
		return fmt.Errorf("failed to touch %s: %w", owner.OwnerID(), err)
	}
	return nil
}

func visible[T any](tx *gorm.DB, owner Owner, col Collection) ([]T, error) {
	var stored []T
	q := tx.Where(col.OwnerColumn+" = ?", owner.OwnerID())
	if col.View != nil {
		q = q.Scopes(col.View)
	}
	if err := q.Find(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to read %s of %s: %w", col.Name, owner.OwnerID(), err)
	}
	return stored, nil
}

func changed[T any, P interface {
	*T
	Item
}](stored, desired []T) bool {
	if len(stored) != len(desired) {
		return true
	}

	want := make([]map[string]any, len(desired))
	for i := range desired {
		want[i] = P(&desired[i]).Values()
	}

	for i := range stored {
		have := P(&stored[i]).Values()
		found := false
		for _, w := range want {
			if Matches(have, w) {
				found = true
				break
			}
		}
		if !found {
			return true
		}
	}
	return false
}
