// Package database handles database connections.
//
// It provides a wrapper around GORM to configure MySQL connections (the
// production driver) and sqlite connections (local runs and tests) based on
// the application's configuration. Verification history and mapping
// profiles are the only data persisted here; the reconciliation engine
// itself never touches the database.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
