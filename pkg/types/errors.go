package types

import "errors"

// Composition errors. These signal programmer mistakes and are returned
// immediately, before any type is mutated.
var (
	ErrNilType          = errors.New("type is nil")
	ErrAlreadyComposed  = errors.New("type is already composed")
	ErrNotCallable      = errors.New("value is not callable")
	ErrPropertyNotFound = errors.New("property not found")
)

// Definition errors, reported by Definition.Validate and ParseDefinition.
var (
	ErrNilDefinition      = errors.New("interface definition is nil")
	ErrInvalidKind        = errors.New("invalid interface type")
	ErrInvalidArity       = errors.New("minimum arity must not be negative")
	ErrArityNotAllowed    = errors.New("minArity is only valid on function definitions")
	ErrContentsNotAllowed = errors.New("contents is only valid on object definitions")
)

// Catalog errors.
var (
	ErrNotFound        = errors.New("definition not found")
	ErrInvalidName     = errors.New("invalid definition name")
	ErrCatalogDetached = errors.New("catalog is detached")
	ErrAlreadyAttached = errors.New("catalog is already attached")
)
