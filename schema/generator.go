package schema

import (
	"errors"
	"fmt"

	"go.jacobcolvin.com/jsonops/jsonvalue"
)

// Sentinel errors returned by the generator.
var (
	ErrInvalidSample = errors.New("invalid sample")
	ErrInvalidOption = errors.New("invalid option")
)

// Generator infers schemas from sample JSON values.
type Generator struct {
	treatAllAsStrings  bool
	treatAllAsRequired bool
}

// Option configures a Generator.
type Option func(*Generator)

// NewGenerator creates a Generator with the given options. By default
// numbers and booleans are typed as strings and no property is required.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		treatAllAsStrings: true,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// WithTreatAllAsStrings types numbers and booleans as "string" when true.
func WithTreatAllAsStrings(b bool) Option {
	return func(g *Generator) {
		g.treatAllAsStrings = b
	}
}

// WithTreatAllAsRequired lists every object key in "required" when true.
func WithTreatAllAsRequired(b bool) Option {
	return func(g *Generator) {
		g.treatAllAsRequired = b
	}
}

// Infer derives a schema from v.
//
// Arrays take their items schema from the first element only; an empty
// array is assumed to hold strings.
func (g *Generator) Infer(v jsonvalue.Value) *Node {
	switch v.Kind() {
	case jsonvalue.KindNull:
		return &Node{Type: typeNull}

	case jsonvalue.KindArray:
		first, ok := v.Index(0)
		if !ok {
			return &Node{Type: typeArray, Items: &Node{Type: typeString}}
		}

		return &Node{Type: typeArray, Items: g.Infer(first)}

	case jsonvalue.KindNumber:
		if g.treatAllAsStrings {
			return &Node{Type: typeString}
		}

		return &Node{Type: typeNumber}

	case jsonvalue.KindBool:
		if g.treatAllAsStrings {
			return &Node{Type: typeString}
		}

		return &Node{Type: typeBoolean}

	case jsonvalue.KindObject:
		return g.inferObject(v)
	}

	return &Node{Type: typeString}
}

// inferObject walks members in order. Primitive children are wrapped in a
// descriptor; object and array children are embedded unchanged.
func (g *Generator) inferObject(v jsonvalue.Value) *Node {
	obj, _ := v.AsObject()

	node := &Node{
		Type:       typeObject,
		Properties: make([]Property, 0, obj.Len()),
	}

	for key, child := range obj.All() {
		childSchema := g.Infer(child)

		prop := Property{Key: key, Schema: childSchema}
		if childSchema.IsPrimitive() {
			prop.Descriptor = &Descriptor{Name: key, Title: key}
		}

		node.Properties = append(node.Properties, prop)

		if g.treatAllAsRequired {
			node.Required = append(node.Required, key)
		}
	}

	return node
}

// Generate parses input, unwraps a {"sample": ...} envelope when present,
// and infers a schema for the result.
func (g *Generator) Generate(input []byte) (*Node, error) {
	v, err := jsonvalue.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSample, err)
	}

	sample, err := Unwrap(v)
	if err != nil {
		return nil, err
	}

	return g.Infer(sample), nil
}

// Unwrap returns the sample carried by a {"sample": ...} envelope. A string
// sample is parsed as JSON; any other sample is used directly. When v is
// not an object or its "sample" member is missing or falsy, v itself is the
// sample.
func Unwrap(v jsonvalue.Value) (jsonvalue.Value, error) {
	sample, ok := v.Get("sample")
	if !ok || !sample.Truthy() {
		return v, nil
	}

	s, ok := sample.AsString()
	if !ok {
		return sample, nil
	}

	parsed, err := jsonvalue.ParseString(s)
	if err != nil {
		return jsonvalue.Value{}, fmt.Errorf("%w: %q: %w", ErrInvalidSample, "sample", err)
	}

	return parsed, nil
}
