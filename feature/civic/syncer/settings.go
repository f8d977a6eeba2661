package syncer

import (
	"context"
	"fmt"

	"civic-sync/feature/civic/source"

	"github.com/goccy/go-yaml"
)

// Settings is the shared settings file at the root of the record source.
type Settings struct {
	// Parties lists every party a person may belong to.
	Parties []string `yaml:"parties"`
}

// LoadSettings reads and decodes the settings file from store.
func LoadSettings(ctx context.Context, store source.Store, name string) (*Settings, error) {
	if name == "" {
		return &Settings{}, nil
	}

	data, err := store.Read(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return &s, nil
}
