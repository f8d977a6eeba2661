package reconcile

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrCancelled is matched by every FatalError. It marks a run that must not commit.
var ErrCancelled = errors.New("sync cancelled")

// Kind classifies a fatal condition.
type Kind string

const (
	// KindResolution means a referenced organization, post, party or person does not exist.
	KindResolution Kind = "resolution"
	// KindOrdering means organizations could not be ordered parent-first.
	KindOrdering Kind = "ordering"
	// KindMissingIDs means stored entities went missing from the batch and purge was not requested.
	KindMissingIDs Kind = "missing_ids"
	// KindAmbiguousMerge means more than one stored entity claims the same legacy identifier.
	KindAmbiguousMerge Kind = "ambiguous_merge"
	// KindDryRun is raised on purpose to roll back a run that otherwise succeeded.
	KindDryRun Kind = "dry_run"
)

// FatalError is the cancellation signal of a sync run. It unwinds to the transaction
// boundary through ordinary error returns and is never retried.
type FatalError struct {
	Kind    Kind
	Message string
	// Context carries the offending jurisdiction, role, ids, etc. for reporting.
	Context map[string]string
	Err     error
}

// Error implements the error interface
func (e *FatalError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	b.WriteString(": ")
	b.WriteString(e.Message)

	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%s", k, e.Context[k])
		}
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap implements errors.Unwrap
func (e *FatalError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *FatalError) Is(target error) bool {
	return target == ErrCancelled
}

// Fatal builds a FatalError of the given kind.
func Fatal(kind Kind, message string, context map[string]string) *FatalError {
	return &FatalError{Kind: kind, Message: message, Context: context}
}

// DryRun returns the error used to force a rollback in dry-run mode.
func DryRun() error {
	return &FatalError{Kind: KindDryRun, Message: "dry run, no changes were made"}
}

// KindOf returns the kind of a FatalError in the chain, or "" for any other error.
func KindOf(err error) Kind {
	var fe *FatalError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// IsDryRun reports whether err is the dry-run cancellation.
func IsDryRun(err error) bool {
	return KindOf(err) == KindDryRun
}
