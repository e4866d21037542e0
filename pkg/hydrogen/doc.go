// Package hydrogen composes constructible types with single inheritance,
// attaches per-instance hidden state, and checks values against structural
// interface definitions.
//
// A Type pairs a constructor body with a prototype Object. Compose chains a
// type beneath one shared instance of its parent and merges a property bag
// onto the prototype; Attach layers closures that run once per constructed
// instance and merge their results onto that instance. Check walks a
// types.Definition tree and reports the first structural mismatch.
//
// Objects and types are not safe for concurrent use.
//
// Example:
//
//	character := hydrogen.NewType("Character", func(this *hydrogen.Object, args ...any) *hydrogen.Object {
//	    this.Set("name", hydrogen.Arg(args, 0))
//	    return nil
//	})
//	err := hydrogen.Compose(character, nil, hydrogen.Props{
//	    "getName": hydrogen.Method(0, func(this *hydrogen.Object, _ ...any) any {
//	        return this.Value("name")
//	    }),
//	}).Err()
package hydrogen
