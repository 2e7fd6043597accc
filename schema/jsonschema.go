package schema

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// Draft7 is the $schema URI set on exported root schemas.
const Draft7 = "http://json-schema.org/draft-07/schema#"

// JSONSchema converts n to a standard JSON Schema (Draft 7). Descriptor
// names become titles and property order is kept via PropertyOrder.
func (n *Node) JSONSchema() *jsonschema.Schema {
	s := n.toJSONSchema()
	s.Schema = Draft7

	return s
}

func (n *Node) toJSONSchema() *jsonschema.Schema {
	s := &jsonschema.Schema{Type: n.Type}

	switch n.Type {
	case typeObject:
		s.Properties = make(map[string]*jsonschema.Schema, len(n.Properties))
		s.PropertyOrder = make([]string, 0, len(n.Properties))

		for _, p := range n.Properties {
			child := p.Schema.toJSONSchema()
			if p.Descriptor != nil {
				child.Title = p.Descriptor.Title
				child.ReadOnly = p.Descriptor.ReadOnly
			}

			s.Properties[p.Key] = child
			s.PropertyOrder = append(s.PropertyOrder, p.Key)
		}

		if len(n.Required) > 0 {
			s.Required = append([]string(nil), n.Required...)
		}

	case typeArray:
		if n.Items != nil {
			s.Items = n.Items.toJSONSchema()
		}
	}

	return s
}
