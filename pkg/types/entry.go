package types

import "time"

// Entry is a named interface definition stored in a Catalog. Digest is the
// hex BLAKE3-256 hash of the JSON-encoded definition.
type Entry struct {
	DefinitionID string      `json:"definition_id"`
	Name         string      `json:"name"`
	Definition   *Definition `json:"definition"`
	Digest       string      `json:"digest"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
