// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL, PostgreSQL or SQLite
// connections based on the application's configuration.
//
// # Connect
//
// Connect picks the dialector from Config.Driver, applies pool settings and
// verifies the connection with a bounded ping. SQLite is limited to a single open
// connection so that ":memory:" databases behave as one database.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let the migrate command verify that the
// tables the sync engine writes to carry every expected column.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "ipo_stocks", []string{"symbol", "market"})
package database
