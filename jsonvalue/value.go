package jsonvalue

import (
	"iter"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant a [Value] holds.
type Kind uint8

// Value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}

	return "unknown"
}

// Value is a JSON value. The zero Value is null.
type Value struct {
	obj  *Object
	str  string
	arr  []Value
	num  float64
	kind Kind
	b    bool
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Array returns an array value holding elems. The slice is not copied.
func Array(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}

	return Value{kind: KindArray, arr: elems}
}

// ObjectValue wraps o as a value. A nil o is treated as an empty object.
func ObjectValue(o *Object) Value {
	if o == nil {
		o = NewObject()
	}

	return Value{kind: KindObject, obj: o}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// IsObject reports whether v is an object. Arrays are not objects.
func (v Value) IsObject() bool {
	return v.kind == KindObject
}

// IsArray reports whether v is an array.
func (v Value) IsArray() bool {
	return v.kind == KindArray
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsNumber returns the number held by v.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsArray returns the elements held by v. Callers must not modify the
// returned slice.
func (v Value) AsArray() ([]Value, bool) {
	return v.arr, v.kind == KindArray
}

// AsObject returns the object held by v.
func (v Value) AsObject() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}

	return v.obj, true
}

// Len returns the number of elements or members for arrays and objects, the
// byte length for strings, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	case KindString:
		return len(v.str)
	}

	return 0
}

// Truthy reports whether v would be considered set by a presence check:
// null, false, 0, NaN and the empty string are falsy, everything else
// (including empty arrays and objects) is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBool:
		return v.b
	case KindNumber:
		return v.num != 0 && !math.IsNaN(v.num)
	case KindString:
		return v.str != ""
	}

	return true
}

// Get returns the member named key when v is an object.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}

	return v.obj.Get(key)
}

// Index returns the element at i when v is an array.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}

	return v.arr[i], true
}

// String returns the text form of v used when embedding it in other text.
// See the package documentation for the exact rules.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return FormatNumber(v.num)
	case KindString:
		return v.str
	}

	b, err := Marshal(v)
	if err != nil {
		return ""
	}

	return string(b)
}

// FormatNumber formats f the way JSON serializers in browsers do: integral
// values without a fraction, the shortest representation that round-trips,
// and exponent notation only below 1e-6 or from 1e21 upward. Negative zero
// formats as "0".
func FormatNumber(f float64) string {
	if f == 0 {
		return "0"
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}

	format := byte('f')
	if abs := math.Abs(f); abs < 1e-6 || abs >= 1e21 {
		format = 'e'
	}

	s := strconv.FormatFloat(f, format, -1, 64)
	if format == 'e' {
		// Trim a leading zero from two-digit exponents: "1e-07" -> "1e-7".
		if i := strings.LastIndexByte(s, 'e'); i >= 0 && len(s) == i+4 && s[i+2] == '0' {
			s = s[:i+2] + s[i+3:]
		}
	}

	return s
}

// Equal reports whether a and b hold the same JSON value. Object member
// order is not significant.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.num == b.num
	case KindString:
		return a.str == b.str
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}

		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}

		return true
	case KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}

		for k, av := range a.obj.All() {
			bv, ok := b.obj.Get(k)
			if !ok || !Equal(av, bv) {
				return false
			}
		}

		return true
	}

	return false
}

// Member is a single key/value pair of an [Object].
type Member struct {
	Key   string
	Value Value
}

// Object is an insertion-ordered mapping from unique string keys to values.
//
// Create instances with [NewObject].
type Object struct {
	index   map[string]int
	members []Member
}

// NewObject returns an empty [Object].
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// ObjectOf builds an [Object] from members. A repeated key keeps its first
// position and its last value.
func ObjectOf(members ...Member) *Object {
	o := &Object{
		index:   make(map[string]int, len(members)),
		members: make([]Member, 0, len(members)),
	}

	for _, m := range members {
		o.Set(m.Key, m.Value)
	}

	return o
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.members)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}

	i, ok := o.index[key]
	if !ok {
		return Value{}, false
	}

	return o.members[i].Value, true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}

	_, ok := o.index[key]

	return ok
}

// Set stores v under key. An existing key is overwritten in place; a new key
// is appended.
func (o *Object) Set(key string, v Value) {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}

	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}

	return keys
}

// All iterates over members in insertion order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}

		for _, m := range o.members {
			if !yield(m.Key, m.Value) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of o. Member values are shared.
func (o *Object) Clone() *Object {
	c := &Object{
		index:   make(map[string]int, o.Len()),
		members: make([]Member, o.Len()),
	}

	if o == nil {
		return c
	}

	copy(c.members, o.members)

	for k, i := range o.index {
		c.index[k] = i
	}

	return c
}
