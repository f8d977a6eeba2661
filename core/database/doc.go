// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL, PostgreSQL or SQLite
// connections based on the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, applies pool limits and pings with a
// timeout. SQLite is limited to one open connection so that in-memory databases
// are shared by every query.
//
// # Schema Inspection
//
// GetTableColumns reads the stored columns of a table for every supported
// driver. MissingColumns compares them with a gorm model; the integrity
// schema check and the migrate command build on it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	table, missing, err := database.MissingColumns(db, &models.Person{})
package database
