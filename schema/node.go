package schema

import (
	"go.jacobcolvin.com/jsonops/jsonvalue"
)

// JSON Schema type constants.
const (
	typeNull    = "null"
	typeBoolean = "boolean"
	typeNumber  = "number"
	typeString  = "string"
	typeArray   = "array"
	typeObject  = "object"
)

// Node is an inferred schema.
//
// Exactly one shape is populated, matching Type: objects carry Properties
// (and Required when the required policy is on), arrays carry Items, and
// every other type is a bare type.
type Node struct {
	Items      *Node
	Type       string
	Properties []Property
	Required   []string
}

// Property is one member of an object [Node]. Primitive members carry a
// [Descriptor]; object and array members embed their schema as-is.
type Property struct {
	Schema     *Node
	Descriptor *Descriptor
	Key        string
}

// Descriptor is the metadata attached to a primitive property. Description
// is always emitted as null.
type Descriptor struct {
	Name     string
	Title    string
	ReadOnly bool
}

// IsPrimitive reports whether n has neither properties nor items.
func (n *Node) IsPrimitive() bool {
	return n.Type != typeObject && n.Type != typeArray
}

// Property returns the property named key.
func (n *Node) Property(key string) (Property, bool) {
	for _, p := range n.Properties {
		if p.Key == key {
			return p, true
		}
	}

	return Property{}, false
}

// Value renders n as an ordered JSON value: type first, then properties and
// required for objects, or items for arrays.
func (n *Node) Value() jsonvalue.Value {
	obj := jsonvalue.NewObject()
	obj.Set("type", jsonvalue.String(n.Type))

	switch n.Type {
	case typeObject:
		props := jsonvalue.NewObject()
		for _, p := range n.Properties {
			props.Set(p.Key, p.Value())
		}

		obj.Set("properties", jsonvalue.ObjectValue(props))

		if len(n.Required) > 0 {
			req := make([]jsonvalue.Value, len(n.Required))
			for i, k := range n.Required {
				req[i] = jsonvalue.String(k)
			}

			obj.Set("required", jsonvalue.Array(req...))
		}

	case typeArray:
		if n.Items != nil {
			obj.Set("items", n.Items.Value())
		}
	}

	return jsonvalue.ObjectValue(obj)
}

// MarshalJSON implements [encoding/json.Marshaler] with stable key order.
func (n *Node) MarshalJSON() ([]byte, error) {
	return jsonvalue.Marshal(n.Value())
}

// Value renders p either as its descriptor or as its embedded schema.
func (p Property) Value() jsonvalue.Value {
	if p.Descriptor == nil {
		return p.Schema.Value()
	}

	return jsonvalue.ObjectValue(jsonvalue.ObjectOf(
		jsonvalue.Member{Key: "name", Value: jsonvalue.String(p.Descriptor.Name)},
		jsonvalue.Member{Key: "title", Value: jsonvalue.String(p.Descriptor.Title)},
		jsonvalue.Member{Key: "description", Value: jsonvalue.Null()},
		jsonvalue.Member{Key: "readonly", Value: jsonvalue.Bool(p.Descriptor.ReadOnly)},
		jsonvalue.Member{Key: "type", Value: jsonvalue.String(p.Schema.Type)},
	))
}

// Document wraps the root node as {"schema": ...}.
func Document(n *Node) jsonvalue.Value {
	return jsonvalue.ObjectValue(jsonvalue.ObjectOf(
		jsonvalue.Member{Key: "schema", Value: n.Value()},
	))
}
