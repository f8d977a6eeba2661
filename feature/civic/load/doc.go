// Package load applies one decoded record to the store.
//
// Person and Organization upsert the entity row by id and then reconcile each
// of its sub-collections. Both report whether the entity was created or changed
// and return a reconcile.FatalError when a reference cannot be resolved.
package load
