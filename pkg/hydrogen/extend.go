package hydrogen

import "sort"

// Extend shallow-copies every entry of props onto target as own
// properties. Keys are applied in sorted order.
func Extend(target *Object, props Props) {
	if target == nil || len(props) == 0 {
		return
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		target.Set(k, props[k])
	}
}

// ExtendFrom copies the own properties of source onto target, in source's
// insertion order. Inherited properties of source are not copied.
func ExtendFrom(target, source *Object) {
	if target == nil || source == nil {
		return
	}
	for _, k := range source.keys {
		target.Set(k, source.own[k])
	}
}

// asProps converts the result of an attachment closure into a property bag.
func asProps(v any) Props {
	switch x := v.(type) {
	case Props:
		return x
	case map[string]any:
		return Props(x)
	case *Object:
		if x == nil {
			return nil
		}
		out := make(Props, len(x.keys))
		for _, k := range x.keys {
			out[k] = x.own[k]
		}
		return out
	}
	return nil
}
