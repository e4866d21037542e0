package types

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition describes the structural shape a value must have. Type names
// the required kind. MinArity applies only to function definitions and
// Contents only to object definitions; Contents lists required keys and
// never forbids extra ones.
type Definition struct {
	Type     string                 `json:"type" yaml:"type"`
	MinArity int                    `json:"minArity,omitempty" yaml:"minArity,omitempty"`
	Contents map[string]*Definition `json:"contents,omitempty" yaml:"contents,omitempty"`
}

// StringDef returns a definition matching any string.
func StringDef() *Definition { return &Definition{Type: KindString} }

// NumberDef returns a definition matching any number.
func NumberDef() *Definition { return &Definition{Type: KindNumber} }

// BooleanDef returns a definition matching any boolean.
func BooleanDef() *Definition { return &Definition{Type: KindBoolean} }

// FunctionDef returns a definition matching functions that accept at least
// minArity parameters.
func FunctionDef(minArity int) *Definition {
	return &Definition{Type: KindFunction, MinArity: minArity}
}

// ObjectDef returns a definition matching objects that carry every key in
// contents. A nil or empty contents matches any object.
func ObjectDef(contents map[string]*Definition) *Definition {
	return &Definition{Type: KindObject, Contents: contents}
}

// Keys returns the required keys of an object definition in sorted order.
func (d *Definition) Keys() []string {
	keys := make([]string, 0, len(d.Contents))
	for k := range d.Contents {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks that the definition tree is well-formed. Errors name the
// offending path and wrap a sentinel from this package.
func (d *Definition) Validate() error {
	return d.validate(nil)
}

func (d *Definition) validate(path []string) error {
	if d == nil {
		return wrapPath(path, ErrNilDefinition)
	}
	if !IsValidKind(d.Type) {
		return wrapPath(path, fmt.Errorf("%w %q", ErrInvalidKind, d.Type))
	}
	if d.MinArity < 0 {
		return wrapPath(path, ErrInvalidArity)
	}
	if d.MinArity != 0 && d.Type != KindFunction {
		return wrapPath(path, ErrArityNotAllowed)
	}
	if len(d.Contents) > 0 && d.Type != KindObject {
		return wrapPath(path, ErrContentsNotAllowed)
	}
	for _, key := range d.Keys() {
		if err := d.Contents[key].validate(append(path, key)); err != nil {
			return err
		}
	}
	return nil
}

func wrapPath(path []string, err error) error {
	if len(path) == 0 {
		return err
	}
	var b strings.Builder
	for _, key := range path {
		fmt.Fprintf(&b, "[%q]", key)
	}
	return fmt.Errorf("contents%s: %w", b.String(), err)
}

// ParseDefinition decodes a YAML or JSON document into a Definition and
// validates it.
func ParseDefinition(data []byte) (*Definition, error) {
	var d *Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
