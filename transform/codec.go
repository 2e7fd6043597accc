package transform

import (
	"fmt"

	"go.jacobcolvin.com/jsonops/jsonvalue"
)

// Serialize returns the compact JSON text of v.
func Serialize(v jsonvalue.Value) (string, error) {
	b, err := jsonvalue.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("serialize: %w", err)
	}

	return string(b), nil
}

// Deserialize parses text as JSON and returns its compact re-serialization.
func Deserialize(text string) (string, error) {
	v, err := jsonvalue.ParseString(text)
	if err != nil {
		return "", fieldError("value", fmt.Errorf("%w: %w: %w", ErrInvalidInput, ErrMalformedJSON, err))
	}

	return Serialize(v)
}
