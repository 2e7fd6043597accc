package toxml

import (
	"strings"

	"go.jacobcolvin.com/jsonops/jsonvalue"
)

const (
	rootElement = "root"
	itemElement = "item"
)

// Render returns the XML projection of v.
func Render(v jsonvalue.Value) string {
	var sb strings.Builder

	switch v.Kind() {
	case jsonvalue.KindObject:
		obj, _ := v.AsObject()
		writeMembers(&sb, obj)

	default:
		writeElement(&sb, rootElement, v)
	}

	return sb.String()
}

// Convert renders v and percent-encodes the result when encode is true.
func Convert(v jsonvalue.Value, encode bool) string {
	xml := Render(v)
	if encode {
		return PercentEncode(xml)
	}

	return xml
}

// writeElement writes <name>...</name> holding v. Null values and empty
// arrays produce an empty element.
func writeElement(sb *strings.Builder, name string, v jsonvalue.Value) {
	sb.WriteString("<")
	sb.WriteString(name)
	sb.WriteString(">")

	switch v.Kind() {
	case jsonvalue.KindNull:

	case jsonvalue.KindArray:
		elems, _ := v.AsArray()
		for _, elem := range elems {
			writeElement(sb, itemElement, elem)
		}

	case jsonvalue.KindObject:
		obj, _ := v.AsObject()
		writeMembers(sb, obj)

	default:
		sb.WriteString(EscapeText(v.String()))
	}

	sb.WriteString("</")
	sb.WriteString(name)
	sb.WriteString(">")
}

func writeMembers(sb *strings.Builder, obj *jsonvalue.Object) {
	for key, child := range obj.All() {
		writeElement(sb, SanitizeName(key), child)
	}
}
