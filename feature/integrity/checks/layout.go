package checks

import (
	"context"
	"fmt"

	"civic-sync/feature/civic/metadata"
	"civic-sync/feature/civic/source"
)

// Record folders of a jurisdiction.
const (
	FolderPeople        = "people"
	FolderRetired       = "retired"
	FolderOrganizations = "organizations"
)

// FolderCounts is the number of record files per folder.
type FolderCounts struct {
	People        int `json:"people"`
	Retired       int `json:"retired"`
	Organizations int `json:"organizations"`
}

// LayoutReport is the result of a record layout check.
type LayoutReport struct {
	Jurisdictions map[string]FolderCounts `json:"jurisdictions"`
	// Missing lists the abbreviations of the catalog without any person file, sorted.
	Missing []string `json:"missing"`
}

// CheckLayout counts the record files of every jurisdiction in the catalog.
func CheckLayout(ctx context.Context, store source.Store, catalog *metadata.Catalog) (*LayoutReport, error) {
	report := &LayoutReport{
		Jurisdictions: make(map[string]FolderCounts),
		Missing:       []string{},
	}

	for _, abbr := range catalog.Abbreviations() {
		var counts FolderCounts
		for folder, n := range map[string]*int{
			FolderPeople:        &counts.People,
			FolderRetired:       &counts.Retired,
			FolderOrganizations: &counts.Organizations,
		} {
			names, err := store.List(ctx, abbr+"/"+folder)
			if err != nil {
				return nil, fmt.Errorf("failed to list %s/%s: %w", abbr, folder, err)
			}
			*n = len(names)
		}

		report.Jurisdictions[abbr] = counts
		if counts.People == 0 {
			report.Missing = append(report.Missing, abbr)
		}
	}
	return report, nil
}
