package jurisdiction

import (
	"strings"
	"testing"

	"civic-sync/feature/civic/civictest"
	"civic-sync/feature/civic/metadata"
	"civic-sync/feature/civic/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func nebraska() *metadata.Jurisdiction {
	return &metadata.Jurisdiction{
		Abbr:           "ne",
		Name:           "Nebraska",
		URL:            "https://nebraskalegislature.gov",
		JurisdictionID: "ocd-jurisdiction/country:us/state:ne/government",
		DivisionID:     "ocd-division/country:us/state:ne",
		Executive:      "Office of the Governor",
		Chambers: []metadata.Chamber{{
			Type:  metadata.ChamberUnicameral,
			Name:  "Nebraska Legislature",
			Title: "Senator",
			Districts: []metadata.District{
				{Name: "1", DivisionID: "ocd-division/country:us/state:ne/sldu:1", Seats: 1},
				{Name: "2", DivisionID: "ocd-division/country:us/state:ne/sldu:2", Seats: 1},
			},
		}},
	}
}

func legislature(t *testing.T, db *gorm.DB) models.Organization {
	t.Helper()

	var org models.Organization
	require.NoError(t, db.Preload("Posts").
		Where("jurisdiction_id = ? AND classification = ?", nebraska().JurisdictionID, models.ClassificationLegislature).
		Take(&org).Error)
	return org
}

func TestSeed(t *testing.T) {
	db := civictest.NewDB(t)
	require.NoError(t, Seed(db, zap.NewNop(), nebraska()))

	var j models.Jurisdiction
	require.NoError(t, db.Take(&j, "id = ?", nebraska().JurisdictionID).Error)
	assert.Equal(t, "government", j.Classification)
	assert.Equal(t, "ocd-division/country:us/state:ne", j.DivisionID)

	org := legislature(t, db)
	assert.True(t, strings.HasPrefix(org.ID, "ocd-organization/"))
	assert.Equal(t, "Nebraska Legislature", org.Name)
	require.Len(t, org.Posts, 2)
	assert.Equal(t, "Senator", org.Posts[0].Role)
	assert.True(t, strings.HasPrefix(org.Posts[0].ID, "ocd-post/"))

	var exec models.Organization
	require.NoError(t, db.Take(&exec, "classification = ?", models.ClassificationExecutive).Error)
	assert.Equal(t, "Office of the Governor", exec.Name)

	var gov int64
	require.NoError(t, db.Model(&models.Organization{}).Where("classification = ?", models.ClassificationGovernment).Count(&gov).Error)
	assert.Zero(t, gov)
}

func TestSeed_Idempotent(t *testing.T) {
	db := civictest.NewDB(t)
	require.NoError(t, Seed(db, zap.NewNop(), nebraska()))
	before := legislature(t, db)
	stamp := civictest.UpdatedAt(t, db, "organizations", before.ID)

	require.NoError(t, Seed(db, zap.NewNop(), nebraska()))
	after := legislature(t, db)

	assert.Equal(t, before.ID, after.ID)
	assert.ElementsMatch(t, []string{before.Posts[0].ID, before.Posts[1].ID}, []string{after.Posts[0].ID, after.Posts[1].ID})
	assert.Equal(t, stamp, civictest.UpdatedAt(t, db, "organizations", before.ID))
}

func TestSeed_Redistricting(t *testing.T) {
	db := civictest.NewDB(t)
	require.NoError(t, Seed(db, zap.NewNop(), nebraska()))
	before := legislature(t, db)

	j := nebraska()
	j.Name = "State of Nebraska"
	j.Chambers[0].Name = "Unicameral Legislature"
	j.Chambers[0].Districts = append(j.Chambers[0].Districts, metadata.District{Name: "3", Seats: 1})
	require.NoError(t, Seed(db, zap.NewNop(), j))

	after := legislature(t, db)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, "Unicameral Legislature", after.Name)
	assert.Len(t, after.Posts, 3)

	var jur models.Jurisdiction
	require.NoError(t, db.Take(&jur, "id = ?", j.JurisdictionID).Error)
	assert.Equal(t, "State of Nebraska", jur.Name)
}

func TestSeedParties(t *testing.T) {
	db := civictest.NewDB(t)

	created, err := SeedParties(db, zap.NewNop(), []string{"Democratic", "Republican"})
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = SeedParties(db, zap.NewNop(), []string{"Democratic", "Republican", "Libertarian"})
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	var n int64
	require.NoError(t, db.Model(&models.Organization{}).Where("classification = ?", models.ClassificationParty).Count(&n).Error)
	assert.EqualValues(t, 3, n)
}
