package transform

import (
	"fmt"

	"go.jacobcolvin.com/jsonops/jsonvalue"
)

// AddProperty parses jsonText as an object and returns its serialization
// with key set. rawValue is stored as the JSON value it parses to, or as a
// plain string when it is not JSON. An existing key is overwritten in place;
// a new key is appended.
func AddProperty(jsonText, key, rawValue string) (string, error) {
	obj, err := parseObject("json", jsonText)
	if err != nil {
		return "", err
	}

	return serializeObject(SetProperty(obj, key, jsonvalue.Decode(rawValue).Value()))
}

// SetProperty returns a shallow copy of obj with key set to v.
func SetProperty(obj *jsonvalue.Object, key string, v jsonvalue.Value) *jsonvalue.Object {
	out := obj.Clone()
	out.Set(key, v)

	return out
}

func serializeObject(obj *jsonvalue.Object) (string, error) {
	b, err := jsonvalue.Marshal(jsonvalue.ObjectValue(obj))
	if err != nil {
		return "", fmt.Errorf("serialize result: %w", err)
	}

	return string(b), nil
}
