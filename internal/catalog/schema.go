// Package catalog implements the SQLite-backed definition catalog.
package catalog

// Schema DDL. The database is rebuilt from definitions.jsonl on every
// Attach, so no migrations are kept.
const (
	createDefinitions = `CREATE TABLE definitions (
    definition_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    body TEXT NOT NULL,
    digest TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	idxDefinitionsUpdated = `CREATE INDEX idx_definitions_updated ON definitions(updated_at);`
	idxDefinitionsDigest  = `CREATE INDEX idx_definitions_digest ON definitions(digest);`
)

// schemaDDL lists every statement run against a fresh database.
var schemaDDL = []string{
	createDefinitions,
	idxDefinitionsUpdated,
	idxDefinitionsDigest,
}

// File names inside DataDir.
const (
	dbFileName    = "catalog.db"
	jsonlFileName = "definitions.jsonl"
)
