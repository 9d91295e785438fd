package database

import (
	"database/sql"
	_ "embed"
	"fmt"
)

// Schema is embedded so the binary migrates itself regardless of the
// working directory it is started from.
//
//go:embed schema.sql
var schemaSQL string

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
