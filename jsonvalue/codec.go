package jsonvalue

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json/jsontext"
)

// ErrInvalidJSON indicates input text is not a single well-formed JSON value.
var ErrInvalidJSON = errors.New("invalid json")

var decodeOptions = []jsontext.Options{
	jsontext.AllowDuplicateNames(true),
	jsontext.AllowInvalidUTF8(true),
}

// Parse parses data as exactly one JSON value. Leading and trailing
// whitespace is allowed; anything else after the value is an error.
func Parse(data []byte) (Value, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(data), decodeOptions...)

	v, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, fmt.Errorf("%w: unexpected end of input", ErrInvalidJSON)
		}

		return Value{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	_, err = dec.ReadToken()
	if !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("%w: unexpected data after top-level value", ErrInvalidJSON)
	}

	return v, nil
}

// ParseString is [Parse] for string input.
func ParseString(s string) (Value, error) {
	return Parse([]byte(s))
}

func decodeValue(dec *jsontext.Decoder) (Value, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return Value{}, err
	}

	switch tok.Kind() {
	case 'n':
		return Null(), nil
	case 't', 'f':
		return Bool(tok.Bool()), nil
	case '"':
		return String(tok.String()), nil
	case '0':
		return Number(tok.Float()), nil
	case '[':
		elems := []Value{}

		for dec.PeekKind() != ']' {
			elem, err := decodeValue(dec)
			if err != nil {
				return Value{}, err
			}

			elems = append(elems, elem)
		}

		_, err = dec.ReadToken()
		if err != nil {
			return Value{}, err
		}

		return Array(elems...), nil
	case '{':
		obj := NewObject()

		for dec.PeekKind() != '}' {
			nameTok, err := dec.ReadToken()
			if err != nil {
				return Value{}, err
			}

			// Tokens are voided by the next decoder call.
			name := nameTok.String()

			val, err := decodeValue(dec)
			if err != nil {
				return Value{}, err
			}

			obj.Set(name, val)
		}

		_, err = dec.ReadToken()
		if err != nil {
			return Value{}, err
		}

		return ObjectValue(obj), nil
	}

	return Value{}, fmt.Errorf("unexpected token %q", tok.Kind())
}

// Marshal returns the compact JSON encoding of v. HTML characters are not
// escaped and member order is preserved.
func Marshal(v Value) ([]byte, error) {
	return marshal(v)
}

// MarshalIndent is like [Marshal] but places each element on its own line,
// indented with indent, with a space after each colon.
func MarshalIndent(v Value, indent string) ([]byte, error) {
	return marshal(v, jsontext.WithIndent(indent), jsontext.SpaceAfterColon(true))
}

func marshal(v Value, opts ...jsontext.Options) ([]byte, error) {
	var buf bytes.Buffer

	enc := jsontext.NewEncoder(&buf, opts...)

	err := encodeValue(enc, v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", v.kind, err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func encodeValue(enc *jsontext.Encoder, v Value) error {
	switch v.kind {
	case KindNull:
		return enc.WriteToken(jsontext.Null)
	case KindBool:
		return enc.WriteToken(jsontext.Bool(v.b))
	case KindNumber:
		return enc.WriteValue(jsontext.Value(FormatNumber(v.num)))
	case KindString:
		return enc.WriteToken(jsontext.String(v.str))
	case KindArray:
		err := enc.WriteToken(jsontext.BeginArray)
		if err != nil {
			return err
		}

		for _, elem := range v.arr {
			err = encodeValue(enc, elem)
			if err != nil {
				return err
			}
		}

		return enc.WriteToken(jsontext.EndArray)
	case KindObject:
		err := enc.WriteToken(jsontext.BeginObject)
		if err != nil {
			return err
		}

		for k, mv := range v.obj.All() {
			err = enc.WriteToken(jsontext.String(k))
			if err != nil {
				return err
			}

			err = encodeValue(enc, mv)
			if err != nil {
				return err
			}
		}

		return enc.WriteToken(jsontext.EndObject)
	}

	return fmt.Errorf("unknown kind %d", v.kind)
}

// MarshalJSON implements [encoding/json.Marshaler].
func (v Value) MarshalJSON() ([]byte, error) {
	return Marshal(v)
}

// UnmarshalJSON implements [encoding/json.Unmarshaler].
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// Decoded is the outcome of [Decode]: either a parsed JSON value or the
// original text kept as a literal string.
type Decoded struct {
	value   Value
	literal bool
}

// Decode parses s as JSON. When s is not valid JSON, the result holds s as a
// string value and [Decoded.IsLiteral] reports true. Decode never fails.
func Decode(s string) Decoded {
	v, err := ParseString(s)
	if err != nil {
		return Decoded{value: String(s), literal: true}
	}

	return Decoded{value: v}
}

// Value returns the parsed value, or the literal string.
func (d Decoded) Value() Value {
	return d.value
}

// IsLiteral reports whether the input failed to parse and was kept as text.
func (d Decoded) IsLiteral() bool {
	return d.literal
}
