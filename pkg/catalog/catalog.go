// Package catalog provides the public API for the definition catalog.
// This package exposes the factory function while keeping the storage
// implementation internal.
package catalog

import (
	"log/slog"

	"github.com/mesh-intelligence/hydrogen/internal/catalog"
	"github.com/mesh-intelligence/hydrogen/pkg/types"
)

// New creates a definition catalog backed by SQLite and a JSONL file. The
// catalog is not attached; call Attach with a Config to initialize. A nil
// logger discards catalog events.
//
// Example:
//
//	c := catalog.New(nil)
//	err := c.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".hydrogen-db",
//	})
//	defer c.Detach()
func New(logger *slog.Logger) types.Catalog {
	return catalog.NewCatalog(catalog.WithLogger(logger))
}
