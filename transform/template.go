package transform

import (
	"regexp"
	"strconv"
	"strings"

	"go.jacobcolvin.com/jsonops/jsonvalue"
)

var placeholderPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// RenderTemplate replaces every {{path}} placeholder in template with the
// value found by walking data along the dot-separated path.
//
// Whitespace around the path is ignored. A placeholder whose path cannot be
// resolved is left in the output exactly as written. A resolved null becomes
// the empty string; other values use [jsonvalue.Value.String]. Substituted
// text is not scanned again, and there is no escape for a literal "{{".
func RenderTemplate(template string, data jsonvalue.Value) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		path := strings.TrimSpace(match[2 : len(match)-2])

		v, ok := Lookup(data, path)
		if !ok {
			return match
		}

		if v.IsNull() {
			return ""
		}

		return v.String()
	})
}

// Lookup resolves a dot-separated path against v. Each segment selects an
// object member by name, or an array element by its canonical decimal index.
// Arrays expose no other names, so a segment such as "length" does not
// resolve against an array.
func Lookup(v jsonvalue.Value, path string) (jsonvalue.Value, bool) {
	cur := v

	for _, seg := range strings.Split(path, ".") {
		switch cur.Kind() {
		case jsonvalue.KindObject:
			next, ok := cur.Get(seg)
			if !ok {
				return jsonvalue.Value{}, false
			}

			cur = next
		case jsonvalue.KindArray:
			i, ok := arrayIndex(seg)
			if !ok {
				return jsonvalue.Value{}, false
			}

			next, ok := cur.Index(i)
			if !ok {
				return jsonvalue.Value{}, false
			}

			cur = next
		default:
			return jsonvalue.Value{}, false
		}
	}

	return cur, true
}

// arrayIndex accepts only canonical decimal indexes ("0", "12", not "01").
func arrayIndex(seg string) (int, bool) {
	if seg == "" || (len(seg) > 1 && seg[0] == '0') {
		return 0, false
	}

	for _, c := range seg {
		if c < '0' || c > '9' {
			return 0, false
		}
	}

	i, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}

	return i, true
}
