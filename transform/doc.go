// Package transform implements the JSON transformation operations: adding a
// property, joining two objects, merging a template with data, and the
// serialize/deserialize passthroughs.
//
// Every function is pure. Inputs are never modified; results may share
// unmodified substructure with their inputs.
//
// # Merge dispatch
//
// [Merge] chooses one of three strategies, reported as a [Mode]:
//
//   - [ModeTemplate]: the template is text and its {{path}} placeholders
//     are resolved against the data with [RenderTemplate].
//   - [ModeFieldSubstitution]: the template is an object whose string
//     values name keys of the data ("mail-merge"), see [FieldSubstitute].
//   - [ModeDeepMerge]: the template is an object that the data is merged
//     into recursively, see [MergeObjects].
//
// Placeholder paths walk object members by name and array elements by
// canonical index only; "length" and other array properties are not
// resolvable.
//
// The choice between the two object strategies is made by [Classify], a
// majority vote: if at least half of the template's non-blank string values
// are keys of the data, the template is treated as a field map. Templates
// that mix literal strings and lookup keys near that boundary are
// inherently ambiguous.
//
// # Errors
//
// Failures wrap one of [ErrMissingInput], [ErrInvalidInput] or
// [ErrMalformedJSON]. A field that must hold a JSON object but holds
// unparseable text wraps both [ErrInvalidInput] and [ErrMalformedJSON].
// The "parse, otherwise treat as text" paths never fail.
package transform
