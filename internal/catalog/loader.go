package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mesh-intelligence/hydrogen/pkg/types"
)

// loadJSONL reads definitions.jsonl and inserts every valid entry into the
// definitions table inside one transaction: either all load or the table
// stays empty. Lines that do not decode, lack a name or ID, carry a name
// padded with whitespace, or hold an invalid definition are skipped. A
// later line for the same name replaces an earlier one. Digests are
// recomputed from the stored definition.
func loadJSONL(db *sql.DB, path string, logger *slog.Logger) (int, error) {
	records, err := readJSONL(path)
	if err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO definitions
        (definition_id, name, body, digest, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	loaded := 0
	for i, rec := range records {
		var e types.Entry
		if err := json.Unmarshal(rec, &e); err != nil {
			logger.Warn("skipping malformed catalog line", "line", i+1, "error", err)
			continue
		}
		if e.Name == "" || e.DefinitionID == "" || strings.TrimSpace(e.Name) != e.Name {
			logger.Warn("skipping catalog line without valid name or id", "line", i+1)
			continue
		}
		if err := e.Definition.Validate(); err != nil {
			logger.Warn("skipping invalid definition", "line", i+1, "name", e.Name, "error", err)
			continue
		}
		body, err := json.Marshal(e.Definition)
		if err != nil {
			return 0, fmt.Errorf("encoding definition %q: %w", e.Name, err)
		}
		if _, err := stmt.Exec(e.DefinitionID, e.Name, string(body), digest(body),
			formatTime(e.CreatedAt), formatTime(e.UpdatedAt)); err != nil {
			return 0, fmt.Errorf("inserting definition %q: %w", e.Name, err)
		}
		loaded++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing load transaction: %w", err)
	}
	return loaded, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
