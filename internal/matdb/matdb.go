// Package matdb loads the material database. The draping engine only needs
// material identity; all other per-material properties in the document are
// ignored on load.
package matdb

import (
	"encoding/json"
	"fmt"
	"os"
)

// Material is a single database entry. Fields beyond the id are ignored
// here but preserved in the source document.
type Material struct {
	ID int `json:"id"`
}

// DB maps material names to their records.
type DB map[string]Material

// Load reads a material database from a JSON file of the form
// {"carbon": {"id": 7, ...}, ...}.
func Load(path string) (DB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read material db: %w", err)
	}
	var db DB
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("parse material db %s: %w", path, err)
	}
	return db, nil
}

// Has reports whether the database contains name.
func (db DB) Has(name string) bool {
	_, ok := db[name]
	return ok
}

// ID returns the id for name, or 0 if the material is unknown.
func (db DB) ID(name string) int {
	return db[name].ID
}
