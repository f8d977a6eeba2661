package reconcile

import (
	"testing"
	"time"

	"civic-sync/core/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// widget is a minimal owner record used by the engine tests.
type widget struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Color     *string   `gorm:"column:color"`
	Size      int       `gorm:"column:size"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (widget) TableName() string { return "widgets" }

func (w *widget) OwnerID() string { return w.ID }

func (w *widget) Fields() map[string]any {
	return map[string]any{"id": w.ID, "name": w.Name, "color": w.Color, "size": w.Size}
}

// widgetTag is a sub-collection item of widget.
type widgetTag struct {
	ID       uint   `gorm:"column:id;primaryKey"`
	WidgetID string `gorm:"column:widget_id"`
	Label    string `gorm:"column:label"`
	Kind     string `gorm:"column:kind"`
}

func (widgetTag) TableName() string { return "widget_tags" }

func (t *widgetTag) Values() map[string]any {
	return map[string]any{"widget_id": t.WidgetID, "label": t.Label, "kind": t.Kind}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}, &widgetTag{}))

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	db.Config.NowFunc = func() time.Time {
		now = now.Add(time.Second)
		return now
	}
	return db
}

func updatedAt(t *testing.T, db *gorm.DB, id string) time.Time {
	t.Helper()

	var w widget
	require.NoError(t, db.Where("id = ?", id).Take(&w).Error)
	return w.UpdatedAt
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func strPtr(s string) *string { return &s }
