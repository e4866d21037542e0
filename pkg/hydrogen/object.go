package hydrogen

import (
	"fmt"

	"github.com/mesh-intelligence/hydrogen/pkg/types"
)

// Props maps property names to values. Callable entries are *Func values.
type Props map[string]any

// Func is a callable property value. Arity is the declared parameter count
// reported to the structural checker; Fn receives the object the function
// was invoked on.
type Func struct {
	Arity int
	Fn    func(this *Object, args ...any) any
}

// Method returns a Func with the given declared arity.
func Method(arity int, fn func(this *Object, args ...any) any) *Func {
	return &Func{Arity: arity, Fn: fn}
}

// Call invokes the function with this bound to the given object.
// A nil Func returns nil.
func (f *Func) Call(this *Object, args ...any) any {
	if f == nil || f.Fn == nil {
		return nil
	}
	return f.Fn(this, args...)
}

// Arg returns args[i], or nil when fewer arguments were supplied.
func Arg(args []any, i int) any {
	if i < 0 || i >= len(args) {
		return nil
	}
	return args[i]
}

// Object is a property container linked to at most one prototype. Reads
// walk the prototype chain; writes always land on the object itself.
type Object struct {
	proto *Object
	own   map[string]any
	keys  []string // own keys in insertion order
	typ   *Type
	super *Type // parent type, recorded on composed prototypes
}

// NewObject returns an empty object whose prototype is proto (may be nil).
func NewObject(proto *Object) *Object {
	return &Object{proto: proto, own: make(map[string]any)}
}

// Proto returns the object's prototype, or nil.
func (o *Object) Proto() *Object { return o.proto }

// Type returns the type that constructed the object, or nil for plain
// objects.
func (o *Object) Type() *Type { return o.typ }

// Get returns the value stored under key on the object or the nearest
// prototype that has it.
func (o *Object) Get(key string) (any, bool) {
	for cur := o; cur != nil; cur = cur.proto {
		if v, ok := cur.own[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// Value is Get without the presence flag.
func (o *Object) Value(key string) any {
	v, _ := o.Get(key)
	return v
}

// Set stores value as an own property, shadowing any inherited one.
func (o *Object) Set(key string, value any) {
	if _, ok := o.own[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.own[key] = value
}

// Delete removes an own property and reports whether it existed.
// Inherited properties are unaffected and become visible again.
func (o *Object) Delete(key string) bool {
	if _, ok := o.own[key]; !ok {
		return false
	}
	delete(o.own, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// HasOwn reports whether key is an own property.
func (o *Object) HasOwn(key string) bool {
	_, ok := o.own[key]
	return ok
}

// Has reports whether key is reachable on the object or its prototypes.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// OwnKeys returns the own property names in insertion order.
func (o *Object) OwnKeys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Keys returns every reachable property name, own keys first, then each
// prototype's keys not already seen.
func (o *Object) Keys() []string {
	seen := make(map[string]bool)
	var out []string
	for cur := o; cur != nil; cur = cur.proto {
		for _, k := range cur.keys {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	return out
}

// Call looks up name and invokes it with this bound to o.
// Returns ErrPropertyNotFound if name is unreachable and ErrNotCallable
// if the value is not a *Func.
func (o *Object) Call(name string, args ...any) (any, error) {
	v, ok := o.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrPropertyNotFound, name)
	}
	fn, ok := v.(*Func)
	if !ok || fn == nil {
		return nil, fmt.Errorf("property %q is of type %s: %w", name, Classify(v), types.ErrNotCallable)
	}
	return fn.Call(o, args...), nil
}

// InstanceOf reports whether t's prototype appears on o's prototype chain.
func (o *Object) InstanceOf(t *Type) bool {
	if t == nil {
		return false
	}
	for p := o.proto; p != nil; p = p.proto {
		if p == t.proto {
			return true
		}
	}
	return false
}

// Super returns the parent type recorded on the nearest composed prototype
// of o, or nil. It resolves from the object being constructed, so in a
// chain of three or more types a middle constructor should call its own
// Type's Parent instead.
func (o *Object) Super() *Type {
	for cur := o; cur != nil; cur = cur.proto {
		if cur.super != nil {
			return cur.super
		}
	}
	return nil
}
