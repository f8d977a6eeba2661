package reconcile

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/gorm"
)

// Upsert creates or updates a single row identified by lookup.
//
// If no row matches, desired is inserted as-is and created is true. Otherwise every
// column returned by desired.Fields() is compared to the stored row and only the
// differing columns are written (which also bumps updated_at). When columns is
// non-empty, only those columns are compared and written.
//
// A missing row is never an error.
func Upsert[T any, P interface {
	*T
	Record
}](tx *gorm.DB, lookup map[string]any, desired P, columns ...string) (P, bool, bool, error) {
	existing := P(new(T))
	err := tx.Where(lookup).Take(existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := tx.Create(desired).Error; err != nil {
			return nil, false, false, fmt.Errorf("failed to create %T: %w", desired, err)
		}
		return desired, true, false, nil
	}
	if err != nil {
		return nil, false, false, fmt.Errorf("failed to look up %T: %w", desired, err)
	}

	changes := Diff(existing.Fields(), desired.Fields(), columns...)
	if len(changes) == 0 {
		return existing, false, false, nil
	}

	if err := tx.Model(existing).Updates(changes).Error; err != nil {
		return nil, false, false, fmt.Errorf("failed to update %T: %w", desired, err)
	}

	// Re-read so the caller sees the stored representation (timestamps, scanned JSON).
	if err := tx.Where(lookup).Take(existing).Error; err != nil {
		return nil, false, false, fmt.Errorf("failed to reload %T: %w", desired, err)
	}
	return existing, false, true, nil
}

// Diff returns the entries of desired whose value differs from stored.
// When columns is non-empty the comparison is restricted to those keys.
func Diff(stored, desired map[string]any, columns ...string) map[string]any {
	keys := columns
	if len(keys) == 0 {
		keys = make([]string, 0, len(desired))
		for k := range desired {
			keys = append(keys, k)
		}
	}

	changes := make(map[string]any)
	for _, k := range keys {
		want, ok := desired[k]
		if !ok {
			continue
		}
		if !SameValue(stored[k], want) {
			changes[k] = want
		}
	}
	return changes
}

// SameValue compares two column values the way the store would see them:
// nil pointers equal nil, pointers compare by target and driver.Valuer types
// compare by their database representation.
func SameValue(a, b any) bool {
	return reflect.DeepEqual(normalize(a), normalize(b))
}

// Matches reports whether every column of a equals the same column of b.
func Matches(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		w, ok := b[k]
		if !ok || !SameValue(v, w) {
			return false
		}
	}
	return true
}

func normalize(v any) any {
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		if valuer, ok := v.(driver.Valuer); ok {
			return valuerValue(valuer)
		}
		return normalize(rv.Elem().Interface())
	}

	if valuer, ok := v.(driver.Valuer); ok {
		return valuerValue(valuer)
	}
	return v
}

func valuerValue(valuer driver.Valuer) any {
	out, err := valuer.Value()
	if err != nil {
		return valuer
	}
	if b, ok := out.([]byte); ok {
		return string(b)
	}
	return out
}
