package types

// Catalog stores interface definitions under unique names so they can be
// registered once and checked against repeatedly.
type Catalog interface {
	// Attach connects the Catalog to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, all other operations return ErrCatalogDetached.
	Detach() error

	// Put validates def and stores it under name, replacing any existing
	// definition with that name. The entry keeps its ID and CreatedAt
	// across replacements.
	Put(name string, def *Definition) (*Entry, error)

	// Get returns the entry stored under name, or ErrNotFound.
	Get(name string) (*Entry, error)

	// List returns every entry ordered by name. Returns an empty slice
	// (not nil) when the catalog is empty.
	List() ([]*Entry, error)

	// Delete removes the entry stored under name, or returns ErrNotFound.
	Delete(name string) error
}
