package hydrogen

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/hydrogen/pkg/types"
)

// Mismatch describes the first place a value failed to satisfy a
// definition. Path lists the keys walked from the root, outermost first.
type Mismatch struct {
	Path   []string
	Reason string
}

// Error renders the diagnostic, for example:
//
//	At key ["details"]: At key ["summary"]: Value is not a string
func (m *Mismatch) Error() string {
	var b strings.Builder
	for _, key := range m.Path {
		b.WriteString(`At key ["`)
		b.WriteString(key)
		b.WriteString(`"]: `)
	}
	b.WriteString(m.Reason)
	return b.String()
}

func (m *Mismatch) String() string { return m.Error() }

// Check reports whether value structurally satisfies def. It returns nil on
// success and the first mismatch otherwise; required keys are visited in
// sorted order and extra keys on value are ignored. Check neither mutates
// its arguments nor panics on a valid definition.
func Check(value any, def *types.Definition) *Mismatch {
	return check(value, true, def)
}

// Conforms reports whether Check(value, def) succeeds.
func Conforms(value any, def *types.Definition) bool {
	return Check(value, def) == nil
}

func check(value any, present bool, def *types.Definition) *Mismatch {
	if def == nil {
		return &Mismatch{Reason: "Interface definition is missing"}
	}

	kind := types.KindUndefined
	if present {
		kind = Classify(value)
	}
	if kind != def.Type {
		return &Mismatch{Reason: "Value is not " + article(def.Type) + " " + def.Type}
	}

	switch def.Type {
	case types.KindFunction:
		if Arity(value) < def.MinArity {
			noun := "parameters"
			if def.MinArity == 1 {
				noun = "parameter"
			}
			return &Mismatch{
				Reason: fmt.Sprintf("Function does not accept at least %d %s", def.MinArity, noun),
			}
		}
	case types.KindObject:
		for _, key := range def.Keys() {
			v, ok := Lookup(value, key)
			if m := check(v, ok, def.Contents[key]); m != nil {
				m.Path = append([]string{key}, m.Path...)
				return m
			}
		}
	}
	return nil
}

func article(kind string) string {
	if kind == "" {
		return "a"
	}
	switch kind[0] {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return "an"
	}
	return "a"
}
