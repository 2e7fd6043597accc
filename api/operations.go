package api

import (
	"errors"
	"net/http"

	"go.jacobcolvin.com/jsonops/jsonvalue"
	"go.jacobcolvin.com/jsonops/schema"
	"go.jacobcolvin.com/jsonops/toxml"
	"go.jacobcolvin.com/jsonops/transform"
)

// operation is one POST endpoint. The envelope messages are returned when
// the body is empty, when it is not JSON, and when run fails unexpectedly.
type operation struct {
	run         func(r *http.Request, body jsonvalue.Value) (reply, error)
	name        string
	bodyMissing string
	bodyInvalid string
	internal    string
}

func (h *Handler) operations() []operation {
	return []operation{
		{
			name:        "add-property",
			bodyMissing: "Request body is required. Please provide 'json', 'key', and 'value' properties.",
			bodyInvalid: "Invalid JSON in request body. Please provide valid JSON with 'json', 'key', and 'value' properties.",
			internal:    "Internal server error occurred while adding property to JSON.",
			run:         h.addProperty,
		},
		{
			name:        "join",
			bodyMissing: "Request body is required. Please provide 'first' and 'second' JSON strings to join.",
			bodyInvalid: "Invalid JSON in request body. Please provide valid JSON with 'first' and 'second' properties.",
			internal:    "Internal server error occurred while joining JSON objects.",
			run:         h.join,
		},
		{
			name:        "merge",
			bodyMissing: "Request body is required. Please provide template and data to merge.",
			bodyInvalid: "Invalid JSON in request body. Please provide valid JSON with 'template' and 'data' properties.",
			internal:    "Internal server error occurred while merging data.",
			run:         h.merge,
		},
		{
			name:        "generate-schema",
			bodyMissing: "Request body is required. Please provide a JSON string to analyze.",
			bodyInvalid: "Invalid JSON string. Unable to analyze.",
			internal:    "Internal server error occurred while generating schema.",
			run:         h.generateSchema,
		},
		{
			name:        "serialize",
			bodyMissing: "Request body is required. Please provide an object to serialize.",
			bodyInvalid: "Invalid JSON format in request body.",
			internal:    "Internal server error occurred while processing the request.",
			run:         h.serialize,
		},
		{
			name:        "deserialize",
			bodyMissing: "Request body is required. Please provide parameters for deserialization.",
			bodyInvalid: "Invalid JSON format in request body.",
			internal:    "Internal server error occurred while processing the request.",
			run:         h.deserialize,
		},
		{
			name:        "to-xml",
			bodyMissing: "Request body is required. Please provide 'serializedJson' property.",
			bodyInvalid: "Invalid JSON in request body. Please provide valid JSON with 'serializedJson' property.",
			internal:    "Internal server error occurred while converting JSON to XML.",
			run:         h.toXML,
		},
	}
}

// field returns the named member of body, or null when body is not an
// object or lacks it.
func field(body jsonvalue.Value, name string) jsonvalue.Value {
	v, _ := body.Get(name)

	return v
}

func (h *Handler) addProperty(_ *http.Request, body jsonvalue.Value) (reply, error) {
	jsonField := field(body, "json")
	if !jsonField.Truthy() {
		return reply{}, badRequest(transform.ErrMissingInput,
			"Missing 'json' property. Please provide a JSON string to modify.")
	}

	keyField := field(body, "key")
	if !keyField.Truthy() {
		return reply{}, badRequest(transform.ErrMissingInput,
			"Missing 'key' property. Please provide the name of the property to add.")
	}

	valueField := field(body, "value")
	if valueField.IsNull() {
		return reply{}, badRequest(transform.ErrMissingInput,
			"Missing 'value' property. Please provide the value for the property to add.")
	}

	jsonText, ok := jsonField.AsString()
	if !ok {
		return reply{}, badRequest(transform.ErrInvalidInput, "Property 'json' must be a string containing valid JSON.")
	}

	key, ok := keyField.AsString()
	if !ok {
		return reply{}, badRequest(transform.ErrInvalidInput, "Property 'key' must be a string.")
	}

	value, ok := valueField.AsString()
	if !ok {
		return reply{}, badRequest(transform.ErrInvalidInput, "Property 'value' must be a string.")
	}

	out, err := transform.AddProperty(jsonText, key, value)

	switch {
	case errors.Is(err, transform.ErrMalformedJSON):
		return reply{}, badRequest(err, "Invalid JSON in 'json' property. Please provide a valid JSON string.")
	case errors.Is(err, transform.ErrInvalidInput):
		return reply{}, badRequest(err,
			"The 'json' property must contain a valid JSON object, not an array or primitive value.")
	case err != nil:
		return reply{}, err
	}

	return textReply(out), nil
}

func (h *Handler) join(_ *http.Request, body jsonvalue.Value) (reply, error) {
	first := field(body, "first")
	second := field(body, "second")

	if !first.Truthy() && !second.Truthy() {
		return reply{}, badRequest(transform.ErrMissingInput,
			"At least one of 'first' or 'second' properties must be provided.")
	}

	texts := [2]string{}

	for i, m := range []jsonvalue.Member{{Key: "first", Value: first}, {Key: "second", Value: second}} {
		if !m.Value.Truthy() {
			continue
		}

		s, ok := m.Value.AsString()
		if !ok {
			return reply{}, badRequest(transform.ErrInvalidInput, "Property '%s' must be a JSON string.", m.Key)
		}

		texts[i] = s
	}

	out, err := transform.Join(texts[0], texts[1])
	if err != nil {
		name, _ := transform.Field(err)

		switch {
		case errors.Is(err, transform.ErrMalformedJSON):
			return reply{}, badRequest(err,
				"Invalid JSON in '%s' property. Please provide a valid JSON object string.", name)
		case errors.Is(err, transform.ErrInvalidInput):
			return reply{}, badRequest(err,
				"Property '%s' must be a valid JSON object string, not an array or primitive value.", name)
		}

		return reply{}, err
	}

	return textReply(out), nil
}

func (h *Handler) merge(_ *http.Request, body jsonvalue.Value) (reply, error) {
	template := field(body, "template")
	if !template.Truthy() {
		return reply{}, badRequest(transform.ErrMissingInput,
			"Missing 'template' property. Please provide a template object or string.")
	}

	data := field(body, "data")
	if !data.Truthy() {
		return reply{}, badRequest(transform.ErrMissingInput,
			"Missing 'data' property. Please provide data to merge with the template.")
	}

	res, err := transform.Merge(template, data)
	if err != nil {
		name, _ := transform.Field(err)

		switch {
		case name == "data" && errors.Is(err, transform.ErrInvalidInput):
			return reply{}, badRequest(err, "Invalid JSON in 'data' property. Data must be a valid JSON string.")
		case name == "template" && errors.Is(err, transform.ErrInvalidInput):
			return reply{}, badRequest(err, "Template must be either a JSON object or a string.")
		}

		return reply{}, err
	}

	out, err := res.Text()
	if err != nil {
		return reply{}, err
	}

	rep := textReply(out)
	rep.header = http.Header{headerMergeMode: {res.Mode.String()}}

	return rep, nil
}

func (h *Handler) generateSchema(r *http.Request, body jsonvalue.Value) (reply, error) {
	dialect := r.URL.Query().Get("dialect")
	if dialect == "" {
		dialect = schema.DialectLegacy
	}

	strs, required := h.cfg.TreatAllAsStrings, h.cfg.TreatAllAsRequired

	if field(body, "sample").Truthy() {
		if b, ok := field(body, "treatAllAsStrings").AsBool(); ok {
			strs = b
		}

		if b, ok := field(body, "treatAllAsRequired").AsBool(); ok {
			required = b
		}
	}

	sample, err := schema.Unwrap(body)
	if err != nil {
		return reply{}, badRequest(err, "Invalid JSON string. Unable to analyze.")
	}

	gen := schema.NewGenerator(
		schema.WithTreatAllAsStrings(strs),
		schema.WithTreatAllAsRequired(required),
	)

	indent := 0
	if h.cfg.PrettySchema {
		indent = 2
	}

	out, err := schema.Render(gen.Infer(sample), dialect, indent)
	if errors.Is(err, schema.ErrInvalidOption) {
		return reply{}, badRequest(err, "Unknown dialect '%s'. Supported dialects: %s, %s.",
			dialect, schema.DialectLegacy, schema.DialectDraft7)
	}

	if err != nil {
		return reply{}, err
	}

	return jsonReply(out), nil
}

func (h *Handler) serialize(_ *http.Request, body jsonvalue.Value) (reply, error) {
	obj := field(body, "object")
	if !obj.Truthy() {
		return reply{}, badRequest(transform.ErrMissingInput,
			"Missing required parameter 'object'. Please provide an object to serialize.")
	}

	out, err := transform.Serialize(obj)
	if err != nil {
		return reply{}, err
	}

	return textReply(out), nil
}

func (h *Handler) deserialize(_ *http.Request, body jsonvalue.Value) (reply, error) {
	value := field(body, "value")
	if !value.Truthy() {
		return reply{}, badRequest(transform.ErrMissingInput,
			"Missing required parameter 'value'. Please provide a JSON string to deserialize.")
	}

	// Numbers and booleans are accepted in their text form.
	var text string

	switch value.Kind() {
	case jsonvalue.KindString, jsonvalue.KindNumber, jsonvalue.KindBool:
		text = value.String()
	default:
		return reply{}, badRequest(transform.ErrInvalidInput,
			"Invalid JSON string in 'value' parameter. Unable to deserialize.")
	}

	out, err := transform.Deserialize(text)
	if errors.Is(err, transform.ErrMalformedJSON) {
		return reply{}, badRequest(err, "Invalid JSON string in 'value' parameter. Unable to deserialize.")
	}

	if err != nil {
		return reply{}, err
	}

	return jsonReply([]byte(out)), nil
}

func (h *Handler) toXML(_ *http.Request, body jsonvalue.Value) (reply, error) {
	serialized := field(body, "serializedJson")
	if !serialized.Truthy() {
		return reply{}, badRequest(transform.ErrMissingInput,
			"Missing 'serializedJson' property. Please provide a JSON string to convert to XML.")
	}

	text, ok := serialized.AsString()
	if !ok {
		return reply{}, badRequest(transform.ErrInvalidInput,
			"Property 'serializedJson' must be a string containing valid JSON.")
	}

	v, err := jsonvalue.ParseString(text)
	if err != nil {
		return reply{}, badRequest(errors.Join(transform.ErrMalformedJSON, err),
			"Invalid JSON in 'serializedJson' property. Please provide a valid JSON string.")
	}

	encode, _ := field(body, "encode").AsBool()

	return textReply(toxml.Convert(v, encode)), nil
}
