package types

// Value kinds. Every value classifies as exactly one kind; a Definition
// names the kind a value must have.
const (
	KindString    = "string"
	KindNumber    = "number"
	KindBoolean   = "boolean"
	KindFunction  = "function"
	KindObject    = "object"
	KindNull      = "null"
	KindUndefined = "undefined"
)

// validKinds is the set of kinds a Definition may name.
var validKinds = map[string]bool{
	KindString:    true,
	KindNumber:    true,
	KindBoolean:   true,
	KindFunction:  true,
	KindObject:    true,
	KindNull:      true,
	KindUndefined: true,
}

// IsValidKind reports whether the given string is a recognized kind.
func IsValidKind(kind string) bool {
	return validKinds[kind]
}
