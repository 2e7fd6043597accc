package transform

import (
	"errors"
	"fmt"

	"go.jacobcolvin.com/jsonops/jsonvalue"
)

// Sentinel errors for the failure kinds of every operation.
var (
	// ErrMissingInput indicates a required field is absent.
	ErrMissingInput = errors.New("missing input")
	// ErrInvalidInput indicates a field is present but has the wrong type
	// or shape.
	ErrInvalidInput = errors.New("invalid input")
	// ErrMalformedJSON indicates text that must be JSON does not parse.
	ErrMalformedJSON = errors.New("malformed json")
)

// FieldError reports which input field an error refers to.
type FieldError struct {
	Err   error
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Field returns the name of the input field err refers to, if any.
func Field(err error) (string, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field, true
	}

	return "", false
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}

// parseObject parses text that must hold a JSON object. field names the
// input in error messages.
func parseObject(field, text string) (*jsonvalue.Object, error) {
	v, err := jsonvalue.ParseString(text)
	if err != nil {
		return nil, fieldError(field, fmt.Errorf("%w: %w: %w", ErrInvalidInput, ErrMalformedJSON, err))
	}

	obj, ok := v.AsObject()
	if !ok {
		return nil, fieldError(field, fmt.Errorf("%w: must be a JSON object, not %s", ErrInvalidInput, describe(v)))
	}

	return obj, nil
}

// describe names the kind of v the way error messages refer to it.
func describe(v jsonvalue.Value) string {
	switch v.Kind() {
	case jsonvalue.KindArray:
		return "an array"
	case jsonvalue.KindObject:
		return "an object"
	case jsonvalue.KindNull:
		return "null"
	}

	return "a primitive value (" + v.Kind().String() + ")"
}
