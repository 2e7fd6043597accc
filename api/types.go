package api

// Request bodies. Handlers read bodies as ordered JSON values so presence
// checks can follow truthiness; these types describe the same shapes for
// the API description.

// AddPropertyRequest is the body of POST /api/add-property.
type AddPropertyRequest struct {
	JSON  string `json:"json" jsonschema:"JSON text of the object to modify"`
	Key   string `json:"key" jsonschema:"name of the property to add or overwrite"`
	Value string `json:"value" jsonschema:"JSON text of the new value, or a plain string"`
}

// JoinRequest is the body of POST /api/join.
type JoinRequest struct {
	First  string `json:"first,omitempty" jsonschema:"JSON text of the first object"`
	Second string `json:"second,omitempty" jsonschema:"JSON text of the second object; wins on shared keys"`
}

// MergeRequest is the body of POST /api/merge.
type MergeRequest struct {
	Template any `json:"template" jsonschema:"template object, JSON text, or plain-text template with {{path}} placeholders"`
	Data     any `json:"data" jsonschema:"data object or its JSON text"`
}

// GenerateSchemaRequest is the wrapped body of POST /api/generate-schema.
// An unwrapped sample document is accepted as well.
type GenerateSchemaRequest struct {
	Sample             any   `json:"sample" jsonschema:"sample document or its JSON text"`
	TreatAllAsStrings  *bool `json:"treatAllAsStrings,omitempty" jsonschema:"type numbers and booleans as string"`
	TreatAllAsRequired *bool `json:"treatAllAsRequired,omitempty" jsonschema:"list every object key as required"`
}

// SerializeRequest is the body of POST /api/serialize.
type SerializeRequest struct {
	Object any `json:"object" jsonschema:"value to serialize"`
}

// DeserializeRequest is the body of POST /api/deserialize.
type DeserializeRequest struct {
	Value string `json:"value" jsonschema:"JSON text to parse"`
}

// ToXMLRequest is the body of POST /api/to-xml.
type ToXMLRequest struct {
	SerializedJSON string `json:"serializedJson" jsonschema:"JSON text to convert"`
	Encode         bool   `json:"encode,omitempty" jsonschema:"percent-encode the resulting XML"`
}
