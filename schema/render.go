package schema

import (
	"fmt"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"go.jacobcolvin.com/jsonops/jsonvalue"
)

// Render serializes n in the given dialect. An indent of zero produces
// compact output.
func Render(n *Node, dialect string, indent int) ([]byte, error) {
	prefix := strings.Repeat(" ", max(indent, 0))

	switch dialect {
	case DialectLegacy, "":
		if prefix == "" {
			return jsonvalue.Marshal(Document(n))
		}

		return jsonvalue.MarshalIndent(Document(n), prefix)

	case DialectDraft7:
		if prefix == "" {
			return json.Marshal(n.JSONSchema())
		}

		return json.Marshal(n.JSONSchema(), jsontext.WithIndent(prefix), jsontext.SpaceAfterColon(true))
	}

	return nil, fmt.Errorf("%w: unknown dialect %q", ErrInvalidOption, dialect)
}
