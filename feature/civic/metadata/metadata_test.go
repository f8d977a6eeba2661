package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogTOML = `
[[jurisdictions]]
abbr = "NC"
name = "North Carolina"
url = "https://www.ncleg.gov"
jurisdiction_id = "ocd-jurisdiction/country:us/state:nc/government"
division_id = "ocd-division/country:us/state:nc"
executive = "Office of the Governor"

  [[jurisdictions.chambers]]
  type = "lower"
  name = "North Carolina House"
  title = "Representative"

    [[jurisdictions.chambers.districts]]
    name = "1"
    division_id = "ocd-division/country:us/state:nc/sldl:1"
    seats = 1

  [jurisdictions.legacy_districts]
  lower = ["121"]

[[jurisdictions]]
abbr = "ne"
name = "Nebraska"
url = "https://nebraskalegislature.gov"
jurisdiction_id = "ocd-jurisdiction/country:us/state:ne/government"
division_id = "ocd-division/country:us/state:ne"

  [[jurisdictions.chambers]]
  type = "unicameral"
  name = "Nebraska Legislature"
  title = "Senator"
`

func TestParse(t *testing.T) {
	c, err := Parse(catalogTOML)
	require.NoError(t, err)

	assert.Equal(t, []string{"nc", "ne"}, c.Abbreviations())

	nc, ok := c.Lookup("NC")
	require.True(t, ok)
	assert.Equal(t, "Office of the Governor", nc.Executive)
	require.Len(t, nc.Chambers, 1)
	assert.Equal(t, "lower", nc.Chambers[0].Classification())
	assert.Equal(t, 1, nc.Chambers[0].Districts[0].Seats)

	ne, ok := c.ByID("ocd-jurisdiction/country:us/state:ne/government")
	require.True(t, ok)
	assert.Equal(t, "legislature", ne.Chambers[0].Classification())

	_, ok = c.Lookup("zz")
	assert.False(t, ok)
}

func TestIsLegacyDistrict(t *testing.T) {
	c, err := Parse(catalogTOML)
	require.NoError(t, err)

	id := "ocd-jurisdiction/country:us/state:nc/government"
	assert.True(t, c.IsLegacyDistrict(id, "lower", "121"))
	assert.False(t, c.IsLegacyDistrict(id, "upper", "121"))
	assert.False(t, c.IsLegacyDistrict(id, "lower", "1"))
	assert.False(t, c.IsLegacyDistrict("ocd-jurisdiction/unknown", "lower", "121"))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"syntax", "[[jurisdictions]\n", "failed to decode metadata"},
		{"unknown key", "[[jurisdictions]]\nabbr = \"nc\"\njurisdiction_id = \"x\"\ncolor = \"red\"\n", "unknown metadata keys"},
		{"missing id", "[[jurisdictions]]\nabbr = \"nc\"\n", "abbr and jurisdiction_id are required"},
		{"duplicate", "[[jurisdictions]]\nabbr = \"nc\"\njurisdiction_id = \"x\"\n[[jurisdictions]]\nabbr = \"NC\"\njurisdiction_id = \"y\"\n", "duplicate jurisdiction abbreviation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jurisdictions.toml")
	require.NoError(t, os.WriteFile(path, []byte(catalogTOML), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Abbreviations(), 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "failed to read metadata file")
}
