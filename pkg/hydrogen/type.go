package hydrogen

import "github.com/mesh-intelligence/hydrogen/pkg/types"

// Constructor is a type's construction body. It runs with this bound to the
// new object and receives the construction arguments. Returning a non-nil
// object replaces the constructed one.
type Constructor func(this *Object, args ...any) *Object

// ClosureFactory produces the hidden-state accessors for one instance. It
// runs once per constructed instance with this bound to that instance.
type ClosureFactory func(this *Object) Props

// Type is a constructible type descriptor: a constructor body, a prototype
// shared by every instance, and at most one parent fixed at composition.
type Type struct {
	id       string
	name     string
	body     Constructor
	proto    *Object
	parent   *Type
	composed bool
	factory  bool
	closures []ClosureFactory
}

// NewType returns a plain constructible type with an empty prototype.
// body may be nil for types that only carry prototype members.
func NewType(name string, body Constructor) *Type {
	return &Type{
		id:    types.NewID(),
		name:  name,
		body:  body,
		proto: NewObject(nil),
	}
}

// ID returns the type's UUID v7, generated when the type was created.
func (t *Type) ID() string { return t.id }

// Name returns the display name given to NewType.
func (t *Type) Name() string { return t.name }

// Prototype returns the object every instance inherits from.
func (t *Type) Prototype() *Object { return t.proto }

// Parent returns the type this one was composed beneath, or nil.
func (t *Type) Parent() *Type { return t.parent }

// Composed reports whether Compose has been applied to t.
func (t *Type) Composed() bool { return t.composed }

// HasFactory reports whether Compose or Attach has installed a factory.
func (t *Type) HasFactory() bool { return t.factory }

// New constructs an instance directly: the prototype link and constructor
// body only, without attachment closures.
func (t *Type) New(args ...any) *Object {
	return Instantiate(t, args)
}

// Make constructs an instance through the type's factory: it instantiates
// with args, then runs each attached closure in attachment order with the
// instance as receiver and merges the returned properties onto it.
func (t *Type) Make(args ...any) *Object {
	obj := Instantiate(t, args)
	for _, closure := range t.closures {
		Extend(obj, closure(obj))
	}
	return obj
}

// Init runs t's constructor body against an existing object. Subclass
// constructors use it for explicit base construction:
//
//	villain.Parent().Init(this, name, medium)
func (t *Type) Init(this *Object, args ...any) *Object {
	if t.body == nil {
		return nil
	}
	return t.body(this, args...)
}

// Instantiate constructs a new object whose prototype is t's prototype and
// runs t's constructor body on it with args as positional arguments. If the
// body returns a non-nil object, that object is returned instead.
func Instantiate(t *Type, args []any) *Object {
	obj := NewObject(t.proto)
	obj.typ = t
	if t.body != nil {
		if ret := t.body(obj, args...); ret != nil {
			return ret
		}
	}
	return obj
}
