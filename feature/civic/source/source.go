// Package source enumerates and decodes the record files of a jurisdiction.
//
// Files are laid out per jurisdiction abbreviation:
//
//	<root>/<abbr>/people/*.yml
//	<root>/<abbr>/retired/*.yml
//	<root>/<abbr>/organizations/*.yml
//
// The root is either a local directory (Dir) or a bucket prefix (Bucket).
package source

import (
	"context"
	"fmt"
	"sort"

	"civic-sync/feature/civic/records"
)

// Extension of record files.
const Extension = ".yml"

// Store lists and reads files relative to a root.
type Store interface {
	// List returns the names of the record files directly under dir, sorted.
	// A missing dir yields no names.
	List(ctx context.Context, dir string) ([]string, error)
	// Read returns the content of a file returned by List.
	Read(ctx context.Context, name string) ([]byte, error)
}

// Source decodes the person and organization files of a jurisdiction.
type Source struct {
	store Store
}

// New creates a Source over store.
func New(store Store) *Source {
	return &Source{store: store}
}

// People returns the decoded files of people/ then retired/.
func (s *Source) People(ctx context.Context, abbr string) ([]records.File[*records.Person], error) {
	var out []records.File[*records.Person]
	for _, dir := range []string{abbr + "/people", abbr + "/retired"} {
		files, err := decodeDir(ctx, s.store, dir, records.DecodePerson)
		if err != nil {
			return nil, err
		}
		out = append(out, files...)
	}
	return out, nil
}

// Organizations returns the decoded files of organizations/.
func (s *Source) Organizations(ctx context.Context, abbr string) ([]records.File[*records.Organization], error) {
	return decodeDir(ctx, s.store, abbr+"/organizations", records.DecodeOrganization)
}

func decodeDir[T any](ctx context.Context, store Store, dir string, decode func([]byte) (T, error)) ([]records.File[T], error) {
	names, err := store.List(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	sort.Strings(names)

	out := make([]records.File[T], 0, len(names))
	for _, name := range names {
		data, err := store.Read(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		rec, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out = append(out, records.File[T]{Name: name, Record: rec})
	}
	return out, nil
}
