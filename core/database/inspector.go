package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo describes one stored column.
type ColumnInfo struct {
	Field string
	Type  string
}

// GetTableColumns retrieves the column definitions for a given table.
// A table that does not exist yields no columns and no error.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo

	switch db.Dialector.Name() {
	case DriverSQLite:
		type sqliteColumn struct {
			Cid        int
			Name       string
			Type       string
			Notnull    int
			DefaultVal *string
			Pk         int
		}
		var rows []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range rows {
			columns = append(columns, ColumnInfo{Field: col.Name, Type: col.Type})
		}
	case DriverPostgres:
		err := db.Raw(`SELECT column_name AS field, data_type AS type
			FROM information_schema.columns
			WHERE table_schema = current_schema() AND table_name = ?
			ORDER BY ordinal_position`, tableName).Scan(&columns).Error
		if err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
	default:
		if !db.Migrator().HasTable(tableName) {
			return nil, nil
		}
		type mysqlColumn struct {
			Field   string
			Type    string
			Null    string
			Key     string
			Default *string
			Extra   string
		}
		var rows []mysqlColumn
		if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range rows {
			columns = append(columns, ColumnInfo{Field: col.Field, Type: col.Type})
		}
	}

	for i := range columns {
		columns[i].Field = strings.ToLower(columns[i].Field)
		columns[i].Type = strings.ToLower(columns[i].Type)
	}
	return columns, nil
}

// MissingColumns compares the stored table of model with the columns gorm expects
// and returns the expected columns that are absent, in declaration order.
func MissingColumns(db *gorm.DB, model any) (string, []string, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return "", nil, fmt.Errorf("failed to parse model %T: %w", model, err)
	}
	table := stmt.Schema.Table

	columns, err := GetTableColumns(db, table)
	if err != nil {
		return table, nil, err
	}

	stored := make(map[string]bool, len(columns))
	for _, c := range columns {
		stored[c.Field] = true
	}

	var missing []string
	for _, name := range stmt.Schema.DBNames {
		if !stored[strings.ToLower(name)] {
			missing = append(missing, name)
		}
	}
	return table, missing, nil
}
