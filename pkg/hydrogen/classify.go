package hydrogen

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/hydrogen/pkg/types"
)

// Classify returns the kind of v: one of the types.Kind constants other
// than KindUndefined, which only describes absent keys. Arrays, slices,
// maps, structs and pointers classify as objects; nil values of any kind
// classify as null.
func Classify(v any) string {
	switch x := v.(type) {
	case nil:
		return types.KindNull
	case *Object:
		if x == nil {
			return types.KindNull
		}
		return types.KindObject
	case *Func:
		if x == nil {
			return types.KindNull
		}
		return types.KindFunction
	case json.Number:
		return types.KindNumber
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return types.KindString
	case reflect.Bool:
		return types.KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return types.KindNumber
	case reflect.Func:
		if rv.IsNil() {
			return types.KindNull
		}
		return types.KindFunction
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface, reflect.Chan:
		if rv.IsNil() {
			return types.KindNull
		}
	}
	return types.KindObject
}

// Arity returns the declared parameter count of a function value: Func.Arity
// for *Func, the number of non-variadic inputs for Go funcs, and 0 for
// anything else.
func Arity(v any) int {
	if f, ok := v.(*Func); ok {
		if f == nil {
			return 0
		}
		return f.Arity
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func {
		return 0
	}
	n := rv.Type().NumIn()
	if rv.Type().IsVariadic() {
		n--
	}
	return n
}

// Lookup returns the value reachable under key on v. Objects walk their
// prototype chain; maps with string keys are indexed directly; slices and
// arrays take a decimal index; structs resolve an exported field by name,
// then by json tag, then an exported method by name.
func Lookup(v any, key string) (any, bool) {
	switch x := v.(type) {
	case *Object:
		if x == nil {
			return nil, false
		}
		return x.Get(key)
	case Props:
		val, ok := x[key]
		return val, ok
	case map[string]any:
		val, ok := x[key]
		return val, ok
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String || rv.IsNil() {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, false
		}
		if elem := rv.Elem(); elem.Kind() == reflect.Struct {
			if val, ok := structField(elem, key); ok {
				return val, true
			}
		}
		return method(rv, key)
	case reflect.Struct:
		if val, ok := structField(rv, key); ok {
			return val, true
		}
		return method(rv, key)
	}
	return nil, false
}

func structField(rv reflect.Value, key string) (any, bool) {
	rt := rv.Type()
	if sf, ok := rt.FieldByName(key); ok && sf.IsExported() {
		// Fields promoted through a nil embedded pointer are absent.
		if fv, err := rv.FieldByIndexErr(sf.Index); err == nil {
			return fv.Interface(), true
		}
		return nil, false
	}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == key {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

func method(rv reflect.Value, key string) (any, bool) {
	m := rv.MethodByName(key)
	if !m.IsValid() {
		return nil, false
	}
	return m.Interface(), true
}
