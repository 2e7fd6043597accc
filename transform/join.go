package transform

import (
	"fmt"

	"go.jacobcolvin.com/jsonops/jsonvalue"
)

// Join parses first and second as objects and returns the serialization of
// their shallow union. For keys present in both, second wins; keys keep the
// position of their first appearance. An empty string means the input is
// absent and stands for an empty object, but at least one must be present.
func Join(first, second string) (string, error) {
	if first == "" && second == "" {
		return "", fmt.Errorf("%w: at least one of %q or %q must be provided", ErrMissingInput, "first", "second")
	}

	a := jsonvalue.NewObject()
	b := jsonvalue.NewObject()

	var err error

	if first != "" {
		a, err = parseObject("first", first)
		if err != nil {
			return "", err
		}
	}

	if second != "" {
		b, err = parseObject("second", second)
		if err != nil {
			return "", err
		}
	}

	return serializeObject(JoinObjects(a, b))
}

// JoinObjects returns the shallow union of a and b, right-biased.
func JoinObjects(a, b *jsonvalue.Object) *jsonvalue.Object {
	out := a.Clone()
	for k, v := range b.All() {
		out.Set(k, v)
	}

	return out
}
