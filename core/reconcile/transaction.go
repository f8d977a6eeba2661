package reconcile

import (
	"context"

	"gorm.io/gorm"
)

// Atomic runs fn inside a single database transaction.
//
// Any error returned by fn rolls back every write made through tx. The dry-run
// cancellation is swallowed after the rollback and Atomic returns nil; every
// other error, including the other FatalError kinds, is returned unchanged so
// callers can match ErrCancelled.
func Atomic(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	err := db.WithContext(ctx).Transaction(fn)
	if err != nil && IsDryRun(err) {
		return nil
	}
	return err
}
