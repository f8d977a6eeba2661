package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var tagsCollection = Collection{Name: "tags", OwnerColumn: "widget_id"}

func seedWidget(t *testing.T, db *gorm.DB, id string, tags ...widgetTag) *widget {
	t.Helper()

	w := &widget{ID: id, Name: id}
	require.NoError(t, db.Create(w).Error)
	if len(tags) > 0 {
		require.NoError(t, db.Create(&tags).Error)
	}
	return w
}

func tag(owner, label, kind string) widgetTag {
	return widgetTag{WidgetID: owner, Label: label, Kind: kind}
}

func storedTags(t *testing.T, db *gorm.DB, owner string) []widgetTag {
	t.Helper()

	var tags []widgetTag
	require.NoError(t, db.Where("widget_id = ?", owner).Order("id").Find(&tags).Error)
	return tags
}

func TestReplaceIfChanged_NoChangeNoWrites(t *testing.T) {
	db := newTestDB(t)
	w := seedWidget(t, db, "w1", tag("w1", "a", "x"), tag("w1", "b", "x"))
	before := storedTags(t, db, "w1")
	stamp := updatedAt(t, db, "w1")

	// order does not matter
	changed, err := ReplaceIfChanged(db, w, tagsCollection, []widgetTag{tag("w1", "b", "x"), tag("w1", "a", "x")})
	require.NoError(t, err)
	assert.False(t, changed)

	assert.Equal(t, before, storedTags(t, db, "w1"), "rows must not be rewritten")
	assert.Equal(t, stamp, updatedAt(t, db, "w1"))
}

func TestReplaceIfChanged_ReplacesOnDifference(t *testing.T) {
	tests := []struct {
		name    string
		stored  []widgetTag
		desired []widgetTag
	}{
		{"count differs", []widgetTag{tag("w1", "a", "x")}, []widgetTag{tag("w1", "a", "x"), tag("w1", "b", "x")}},
		{"field differs", []widgetTag{tag("w1", "a", "x")}, []widgetTag{tag("w1", "a", "y")}},
		{"emptied", []widgetTag{tag("w1", "a", "x")}, nil},
		{"first items", nil, []widgetTag{tag("w1", "a", "x")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			w := seedWidget(t, db, "w1", tt.stored...)
			stamp := updatedAt(t, db, "w1")

			changed, err := ReplaceIfChanged(db, w, tagsCollection, tt.desired)
			require.NoError(t, err)
			assert.True(t, changed)

			got := storedTags(t, db, "w1")
			require.Len(t, got, len(tt.desired))
			for i := range got {
				assert.True(t, Matches(got[i].Values(), tt.desired[i].Values()))
			}
			assert.True(t, updatedAt(t, db, "w1").After(stamp))
		})
	}
}

func TestReplaceIfChanged_OtherOwnersUntouched(t *testing.T) {
	db := newTestDB(t)
	w1 := seedWidget(t, db, "w1", tag("w1", "a", "x"))
	seedWidget(t, db, "w2", tag("w2", "a", "x"))

	_, err := ReplaceIfChanged(db, w1, tagsCollection, []widgetTag{tag("w1", "z", "x")})
	require.NoError(t, err)

	assert.Len(t, storedTags(t, db, "w2"), 1)
}

func TestReplaceIfChanged_ReadView(t *testing.T) {
	db := newTestDB(t)
	w := seedWidget(t, db, "w1", tag("w1", "a", "managed"), tag("w1", "keep", "foreign"))

	managed := Collection{
		Name:        "managed tags",
		OwnerColumn: "widget_id",
		View: func(q *gorm.DB) *gorm.DB {
			return q.Where("kind <> ?", "foreign")
		},
	}

	changed, err := ReplaceIfChanged(db, w, managed, []widgetTag{tag("w1", "a", "managed")})
	require.NoError(t, err)
	assert.False(t, changed, "foreign items are outside the comparison")

	changed, err = ReplaceIfChanged(db, w, managed, []widgetTag{tag("w1", "b", "managed")})
	require.NoError(t, err)
	assert.True(t, changed)

	got := storedTags(t, db, "w1")
	require.Len(t, got, 2)
	assert.Equal(t, "keep", got[0].Label, "items outside the view survive a replace")
	assert.Equal(t, "b", got[1].Label)
}

// Equality checks that every stored item has a match and counts agree. It does
// not pair items one to one, so some duplicate patterns report no change.
func TestReplaceIfChanged_DuplicatePatterns(t *testing.T) {
	t.Run("desired duplicates against distinct stored items is a change", func(t *testing.T) {
		db := newTestDB(t)
		w := seedWidget(t, db, "w1", tag("w1", "a", "x"), tag("w1", "b", "x"))

		changed, err := ReplaceIfChanged(db, w, tagsCollection, []widgetTag{tag("w1", "a", "x"), tag("w1", "a", "x")})
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Len(t, storedTags(t, db, "w1"), 2)
	})

	t.Run("stored duplicates against distinct desired items is not detected", func(t *testing.T) {
		db := newTestDB(t)
		w := seedWidget(t, db, "w1", tag("w1", "a", "x"), tag("w1", "a", "x"))

		changed, err := ReplaceIfChanged(db, w, tagsCollection, []widgetTag{tag("w1", "a", "x"), tag("w1", "b", "x")})
		require.NoError(t, err)
		assert.False(t, changed)

		got := storedTags(t, db, "w1")
		assert.Equal(t, "a", got[0].Label)
		assert.Equal(t, "a", got[1].Label)
	})
}
