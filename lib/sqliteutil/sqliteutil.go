package sqliteutil

import (
	"database/sql"
	"strings"

	_ "modernc.org/sqlite"
)

// OpenDB opens (or creates) a sqlite database at the given path and
// applies the schema. Re-applying the schema to an existing database is
// fine, tables that already exist are left alone.
func OpenDB(schema, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(schema)
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		db.Close()
		return nil, err
	}
	return db, nil
}
