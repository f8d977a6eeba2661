package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"civic-sync/feature/civic/civictest"
	"civic-sync/feature/civic/metadata"
	"civic-sync/feature/civic/source"
	"civic-sync/feature/integrity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func integrityService(t *testing.T, withPeople bool) *integrity.Service {
	t.Helper()

	root := t.TempDir()
	if withPeople {
		path := filepath.Join(root, "nc", "people", "a.yml")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("id: x\n"), 0o644))
	}
	catalog, err := metadata.Parse(`
[[jurisdictions]]
abbr = "nc"
jurisdiction_id = "ocd-jurisdiction/country:us/state:nc/government"
`)
	require.NoError(t, err)
	return integrity.NewService(civictest.NewDB(t), source.Dir{Root: root}, catalog, zap.NewNop())
}

func TestRunIntegrityChecks(t *testing.T) {
	var out bytes.Buffer
	err := runIntegrityChecks(context.Background(), integrityService(t, true), zap.NewNop(), &out)
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestRunIntegrityChecks_JSON(t *testing.T) {
	jsonOutput = true
	defer func() { jsonOutput = false }()

	var out bytes.Buffer
	err := runIntegrityChecks(context.Background(), integrityService(t, false), zap.NewNop(), &out)
	assert.EqualError(t, err, "integrity check found problems")

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &body))
	assert.Equal(t, true, body["schema"]["matched"])
	assert.Equal(t, []any{"nc"}, body["layout"]["missing"])
}
