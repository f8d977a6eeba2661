// Package reconcile provides the generic diff-and-replace engine used to sync
// externally sourced records into the relational store.
//
// The engine is model-agnostic: it works on gorm models that describe their own
// comparable columns, and never needs to know what a person or an organization is.
//
// # Components
//
//  1. Upsert: creates a row when the lookup key is unknown, otherwise writes only
//     the scalar columns that differ. Unchanged rows are never written, so their
//     updated_at timestamp survives a re-run.
//
//  2. ReplaceIfChanged: compares a sub-collection (links, identifiers, memberships)
//     with the desired items and, on any difference, deletes the stored items and
//     inserts the desired ones. Items are never patched individually. An optional
//     read view restricts which stored items take part.
//
//  3. OrderByParent: Kahn's topological sort so that children are loaded after
//     their in-batch parents. Cycles and dangling parents are fatal.
//
//  4. Atomic: the transaction boundary. FatalError values (resolution failures,
//     missing ids without purge, ordering failures) roll the whole run back; the
//     dry-run variant rolls back and reports success.
//
// # Usage
//
//	err := reconcile.Atomic(ctx, db, func(tx *gorm.DB) error {
//	    person, created, updated, err := reconcile.Upsert(tx, map[string]any{"id": p.ID}, p)
//	    if err != nil {
//	        return err
//	    }
//	    changed, err := reconcile.ReplaceIfChanged(tx, person, linksCollection, links)
//	    ...
//	})
//	if errors.Is(err, reconcile.ErrCancelled) {
//	    os.Exit(1)
//	}
package reconcile
