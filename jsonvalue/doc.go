// Package jsonvalue provides an ordered, immutable-by-convention
// representation of JSON documents.
//
// A [Value] is a tagged union over the six JSON kinds. Objects are stored
// as an [Object], an insertion-ordered mapping with unique keys, so that a
// document parsed with [Parse] and written back with [Marshal] keeps its
// member order. Duplicate member names are accepted on input and resolve to
// the last occurrence, keeping the position of the first.
//
// Values are plain data. Operations that derive a new document from an
// existing one are expected to [Object.Clone] before calling [Object.Set];
// nothing in this package mutates a value it did not create.
//
// # Parsing with a literal fallback
//
// Several operations accept text that is "JSON if it parses, otherwise a
// plain string". [Decode] makes that decision explicit and returns a
// [Decoded] that records which branch was taken:
//
//	d := jsonvalue.Decode(`{"a":1}`)
//	d.IsLiteral() // false
//
//	d = jsonvalue.Decode(`hello`)
//	d.IsLiteral() // true
//	d.Value()     // the string "hello"
//
// # String forms
//
// [Value.String] returns the canonical scalar text used when a value is
// embedded into other text: strings verbatim, numbers in the shortest
// round-trip form (exponent notation outside [1e-6, 1e21)), booleans as
// "true"/"false", null as "null", and arrays/objects as compact JSON.
package jsonvalue
