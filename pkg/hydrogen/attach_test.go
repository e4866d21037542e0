package hydrogen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/hydrogen/pkg/types"
)

// privateVar returns a closure factory holding one private string
// behind get and set accessors.
func privateVar(initial string) ClosureFactory {
	return func(this *Object) Props {
		private := initial
		return Props{
			"get": Method(0, func(*Object, ...any) any { return private }),
			"set": Method(1, func(_ *Object, args ...any) any {
				private = Arg(args, 0).(string)
				return nil
			}),
		}
	}
}

func call(t *testing.T, obj *Object, name string, args ...any) any {
	t.Helper()
	v, err := obj.Call(name, args...)
	require.NoError(t, err)
	return v
}

func TestAttachSimpleClosure(t *testing.T) {
	base := NewType("Base", nil)
	require.NoError(t, Attach(base, privateVar("A private variable")).Err())

	obj := base.Make()
	assert.Equal(t, "A private variable", call(t, obj, "get"))
	assert.True(t, obj.HasOwn("get"), "closure members are own properties")
	assert.False(t, obj.Has("private"))
	assert.True(t, base.HasFactory())
	assert.False(t, base.Composed())
}

func TestAttachKeepsInstancesSeparate(t *testing.T) {
	base := NewType("Base", nil)
	require.NoError(t, Attach(base, privateVar("A private variable")).Err())

	obj1 := base.Make()
	obj2 := base.Make()
	call(t, obj1, "set", "foo")
	call(t, obj2, "set", "bar")
	assert.Equal(t, "foo", call(t, obj1, "get"))
	assert.Equal(t, "bar", call(t, obj2, "get"))
}

func TestAttachNewSkipsClosures(t *testing.T) {
	base := NewType("Base", nil)
	require.NoError(t, Attach(base, privateVar("x")).Err())
	assert.False(t, base.New().Has("get"))
}

func TestAttachClosureSeesInstance(t *testing.T) {
	base := NewType("Base", assign("name"))
	err := Compose(base, nil, Props{"someVar": "A public variable"}).
		Attach(base, func(this *Object) Props {
			name := this.Value("name")
			return Props{
				"get": Method(0, func(this *Object, _ ...any) any {
					return this.Value("someVar")
				}),
				"constructedAs": Method(0, func(*Object, ...any) any { return name }),
			}
		}).Err()
	require.NoError(t, err)

	obj := base.Make("Batmobile")
	assert.Equal(t, "A public variable", call(t, obj, "get"))
	assert.Equal(t, "Batmobile", call(t, obj, "constructedAs"))
}

func TestAttachShadowsPrototypeForInstanceOnly(t *testing.T) {
	base := NewType("Base", nil)
	err := Compose(base, nil, Props{"label": "prototype"}).
		Attach(base, func(this *Object) Props { return Props{"label": "closure"} }).
		Err()
	require.NoError(t, err)

	obj := base.Make()
	assert.Equal(t, "closure", obj.Value("label"))
	assert.Equal(t, "prototype", base.Prototype().Value("label"))
	assert.Equal(t, "prototype", base.New().Value("label"))
}

func TestAttachInheritedByDerived(t *testing.T) {
	base := NewType("Base", nil)
	require.NoError(t, Compose(base, nil, Props{}).Attach(base, privateVar("A private variable")).Err())
	derived := NewType("Derived", nil)
	require.NoError(t, Compose(derived, base, Props{}).Err())

	obj := derived.Make()
	assert.Equal(t, "A private variable", call(t, obj, "get"))
	assert.False(t, obj.HasOwn("get"), "inherited from the shared parent instance")
}

func TestAttachOverriddenInDerivedPrototype(t *testing.T) {
	base := NewType("Base", nil)
	require.NoError(t, Compose(base, nil, Props{}).Attach(base, privateVar("A private variable")).Err())
	derived := NewType("Derived", nil)
	require.NoError(t, Compose(derived, base, Props{
		"get": Method(0, func(*Object, ...any) any { return "Overridden get" }),
	}).Err())

	assert.Equal(t, "Overridden get", call(t, derived.Make(), "get"))
}

func TestAttachOverriddenInDerivedClosure(t *testing.T) {
	base := NewType("Base", nil)
	require.NoError(t, Compose(base, nil, Props{}).Attach(base, privateVar("A private variable")).Err())
	derived := NewType("Derived", nil)
	require.NoError(t, Compose(derived, base, Props{}).
		Attach(derived, privateVar("Private variable in override")).Err())

	assert.Equal(t, "Private variable in override", call(t, derived.Make(), "get"))
}

func TestAttachAncestryStateIsShared(t *testing.T) {
	base := NewType("Base", nil)
	require.NoError(t, Attach(base, privateVar("initial")).Err())
	derived := NewType("Derived", nil)
	require.NoError(t, Compose(derived, base, Props{}).Err())

	a := derived.Make()
	b := derived.Make()
	call(t, a, "set", "changed through a")
	assert.Equal(t, "changed through a", call(t, b, "get"),
		"a parent's closure runs once at composition and is shared by every subclass instance")

	own := base.Make()
	assert.Equal(t, "initial", call(t, own, "get"), "direct parent instances get fresh state")
}

func TestAttachLayersReattachment(t *testing.T) {
	base := NewType("Base", nil)
	require.NoError(t, Attach(base, func(this *Object) Props {
		return Props{"first": 1, "shared": "first"}
	}).Err())
	before := base.Make()

	require.NoError(t, Attach(base, func(this *Object) Props {
		return Props{"second": 2, "shared": "second"}
	}).Err())
	after := base.Make()

	assert.Equal(t, 1, after.Value("first"))
	assert.Equal(t, 2, after.Value("second"))
	assert.Equal(t, "second", after.Value("shared"), "later attachment wins")

	assert.False(t, before.Has("second"), "existing instances are unaffected")
	assert.Equal(t, "first", before.Value("shared"))
}

func TestAttachClosureRunsOncePerInstance(t *testing.T) {
	calls := 0
	base := NewType("Base", nil)
	require.NoError(t, Attach(base, func(this *Object) Props {
		calls++
		return nil
	}).Err())

	base.Make()
	base.Make()
	base.New()
	assert.Equal(t, 2, calls)
}

func TestAttachAcceptsClosureForms(t *testing.T) {
	tests := []struct {
		name    string
		closure any
	}{
		{"ClosureFactory", ClosureFactory(func(*Object) Props { return Props{"v": 1} })},
		{"func literal", func(*Object) Props { return Props{"v": 1} }},
		{"Func returning Props", Method(0, func(*Object, ...any) any { return Props{"v": 1} })},
		{"Func returning map", Method(0, func(*Object, ...any) any { return map[string]any{"v": 1} })},
		{"Func returning object", Method(0, func(*Object, ...any) any {
			o := NewObject(nil)
			o.Set("v", 1)
			return o
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := NewType("Base", nil)
			require.NoError(t, Attach(base, tt.closure).Err())
			assert.Equal(t, 1, base.Make().Value("v"))
		})
	}
}

func TestAttachFuncReturningNonMapping(t *testing.T) {
	base := NewType("Base", nil)
	require.NoError(t, Attach(base, Method(0, func(*Object, ...any) any { return "nope" })).Err())
	assert.Empty(t, base.Make().OwnKeys())
}

func TestAttachRejectsNonCallable(t *testing.T) {
	var nilFactory ClosureFactory
	tests := []struct {
		name     string
		closure  any
		wantKind string
	}{
		{"nil", nil, "null"},
		{"string", "Not a function", "string"},
		{"number", 42, "number"},
		{"props", Props{"a": 1}, "object"},
		{"nil ClosureFactory", nilFactory, "null"},
		{"nil Func", (*Func)(nil), "null"},
		{"Func without body", &Func{Arity: 1}, "function"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := NewType("Base", nil)
			err := Attach(base, tt.closure).Err()
			require.ErrorIs(t, err, types.ErrNotCallable)
			assert.Contains(t, err.Error(), "closure is of type "+tt.wantKind+", expected to be a function")
			assert.False(t, base.HasFactory(), "type must not be mutated")
			assert.Empty(t, base.Make().OwnKeys())
		})
	}
}

func TestAttachNilType(t *testing.T) {
	err := Attach(nil, privateVar("x")).Err()
	assert.ErrorIs(t, err, types.ErrNilType)

	err = Attach(nil, nil).Err()
	assert.ErrorIs(t, err, types.ErrNotCallable, "closure is validated first")
}
