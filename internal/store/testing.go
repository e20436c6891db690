package store

import (
	"database/sql"
)

// NewTestDB creates a DB from an existing database connection.
// This is only intended for use in tests.
func NewTestDB(sqlDB *sql.DB) *DB {
	return &DB{sqlDB}
}

// Migrate runs the schema migrations on an existing connection.
// This is only intended for use in tests.
func Migrate(sqlDB *sql.DB) error {
	return migrate(sqlDB)
}
