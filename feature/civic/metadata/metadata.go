// Package metadata holds the read-only reference data of every jurisdiction:
// identity, chambers with their districts, and retired (legacy) district labels.
//
// The catalog is a TOML file:
//
//	[[jurisdictions]]
//	abbr = "nc"
//	name = "North Carolina"
//	url = "https://www.ncleg.gov"
//	jurisdiction_id = "ocd-jurisdiction/country:us/state:nc/government"
//	division_id = "ocd-division/country:us/state:nc"
//	executive = "Office of the Governor"
//
//	  [[jurisdictions.chambers]]
//	  type = "lower"
//	  name = "North Carolina House"
//	  title = "Representative"
//
//	    [[jurisdictions.chambers.districts]]
//	    name = "1"
//	    division_id = "ocd-division/country:us/state:nc/sldl:1"
//	    seats = 1
//
//	  [jurisdictions.legacy_districts]
//	  lower = ["121"]
package metadata

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ChamberUnicameral marks the single chamber of a unicameral legislature.
const ChamberUnicameral = "unicameral"

// District is one post of a chamber.
type District struct {
	Name       string `toml:"name"`
	DivisionID string `toml:"division_id"`
	Seats      int    `toml:"seats"`
}

// Chamber is one legislative chamber.
type Chamber struct {
	// Type is upper, lower or unicameral.
	Type      string     `toml:"type"`
	Name      string     `toml:"name"`
	Title     string     `toml:"title"`
	Districts []District `toml:"districts"`
}

// Classification is the organization classification the chamber is stored under.
func (c Chamber) Classification() string {
	if c.Type == ChamberUnicameral {
		return "legislature"
	}
	return c.Type
}

// Jurisdiction is the reference data of one jurisdiction.
type Jurisdiction struct {
	Abbr           string `toml:"abbr"`
	Name           string `toml:"name"`
	URL            string `toml:"url"`
	JurisdictionID string `toml:"jurisdiction_id"`
	DivisionID     string `toml:"division_id"`
	// Executive names the executive organization (governor's office); empty means none.
	Executive string `toml:"executive"`
	// Government names the municipal government organization (mayor's office); empty means none.
	Government      string              `toml:"government"`
	Chambers        []Chamber           `toml:"chambers"`
	LegacyDistricts map[string][]string `toml:"legacy_districts"`
}

// Catalog indexes jurisdictions by abbreviation and by jurisdiction id.
type Catalog struct {
	byAbbr map[string]*Jurisdiction
	byID   map[string]*Jurisdiction
}

type file struct {
	Jurisdictions []Jurisdiction `toml:"jurisdictions"`
}

// Load reads a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes a catalog from TOML text.
func Parse(data string) (*Catalog, error) {
	var raw file
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown metadata keys: %v", undecoded)
	}

	c := &Catalog{
		byAbbr: make(map[string]*Jurisdiction, len(raw.Jurisdictions)),
		byID:   make(map[string]*Jurisdiction, len(raw.Jurisdictions)),
	}
	for i := range raw.Jurisdictions {
		j := &raw.Jurisdictions[i]
		abbr := strings.ToLower(strings.TrimSpace(j.Abbr))
		if abbr == "" || j.JurisdictionID == "" {
			return nil, fmt.Errorf("jurisdiction #%d: abbr and jurisdiction_id are required", i+1)
		}
		if _, dup := c.byAbbr[abbr]; dup {
			return nil, fmt.Errorf("duplicate jurisdiction abbreviation %q", abbr)
		}
		j.Abbr = abbr
		c.byAbbr[abbr] = j
		c.byID[j.JurisdictionID] = j
	}
	return c, nil
}

// Lookup finds a jurisdiction by abbreviation.
func (c *Catalog) Lookup(abbr string) (*Jurisdiction, bool) {
	j, ok := c.byAbbr[strings.ToLower(abbr)]
	return j, ok
}

// ByID finds a jurisdiction by its jurisdiction id.
func (c *Catalog) ByID(jurisdictionID string) (*Jurisdiction, bool) {
	j, ok := c.byID[jurisdictionID]
	return j, ok
}

// Abbreviations lists every known abbreviation, sorted.
func (c *Catalog) Abbreviations() []string {
	out := make([]string, 0, len(c.byAbbr))
	for abbr := range c.byAbbr {
		out = append(out, abbr)
	}
	sort.Strings(out)
	return out
}

// IsLegacyDistrict reports whether label is a retired district of the given
// role type (upper, lower, legislature) in the jurisdiction.
func (c *Catalog) IsLegacyDistrict(jurisdictionID, roleType, label string) bool {
	j, ok := c.byID[jurisdictionID]
	if !ok {
		return false
	}
	for _, d := range j.LegacyDistricts[roleType] {
		if d == label {
			return true
		}
	}
	return false
}
