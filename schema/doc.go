// Package schema infers a JSON Schema-like description from a sample JSON
// document on a best-effort basis.
//
// Inference is structural and looks at one sample only. It never widens
// types across array elements: the first element of an array decides the
// items schema, and an empty array is assumed to hold strings.
//
// # Shape
//
// Every [Node] has a type. Objects list their members, in sample order, as
// [Property] values. A primitive member carries a [Descriptor] (name, title,
// a null description, readonly false, and the type); object and array
// members embed their own schema without a descriptor, so only leaves get
// metadata:
//
//	{"schema": {"type": "object", "properties": {
//	    "n":    {"name": "n", "title": "n", "description": null, "readonly": false, "type": "string"},
//	    "tags": {"type": "array", "items": {"type": "string"}}
//	}}}
//
// # Policies
//
// [WithTreatAllAsStrings] (default true) types numbers and booleans as
// "string". [WithTreatAllAsRequired] (default false) lists every member of
// every object in "required"; the list is omitted when empty.
//
// # Envelopes
//
// [Generator.Generate] accepts either the raw sample or an envelope of the
// form {"sample": ...}. A string sample is parsed as JSON, so callers can
// submit a pre-serialized document.
//
// # Dialects
//
// [Render] writes the {"schema": ...} document ([DialectLegacy]) or a
// standard Draft 7 schema produced by [Node.JSONSchema] ([DialectDraft7]).
//
// [Config] bridges CLI flags to the library following the RegisterFlags /
// RegisterCompletions / NewGenerator pattern.
package schema
