// Package jsonval provides a tagged-variant tree for decoded JSON/YAML values.
//
// The normalizer consumes specification documents as generic nested data. A
// plain map[string]any loses two things that matter there: the declaration
// order of object members, and the distinction between a field that is absent
// and a field explicitly set to null. Value preserves both.
//
// The zero Value has kind Absent, so accessor chains like
// v.Get("components").Get("schemas") are safe on any input and report
// absence explicitly instead of defaulting to null.
package jsonval

import "sort"

// Kind identifies the variant held by a Value.
type Kind int

const (
	// Absent marks a value that was not present in the source document.
	Absent Kind = iota
	// Null marks an explicit null in the source document.
	Null
	// Bool holds a boolean scalar.
	Bool
	// Number holds a numeric scalar as float64.
	Number
	// String holds a string scalar.
	String
	// Array holds an ordered list of values.
	Array
	// Object holds an ordered list of key/value members.
	Object
)

var kindNames = map[Kind]string{
	Absent: "absent",
	Null:   "null",
	Bool:   "bool",
	Number: "number",
	String: "string",
	Array:  "array",
	Object: "object",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Member is one key/value pair of an Object, in declaration order.
type Member struct {
	Key   string
	Value Value
}

// Value is one node of a decoded JSON/YAML document.
// Values are immutable after construction and safe for concurrent reads.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  []Member
	idx  map[string]int
}

// Kind returns the variant held by this value.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the value was missing from the source document.
func (v Value) IsAbsent() bool { return v.kind == Absent }

// IsNull reports whether the value was an explicit null.
func (v Value) IsNull() bool { return v.kind == Null }

// IsObject reports whether the value is an object.
func (v Value) IsObject() bool { return v.kind == Object }

// IsArray reports whether the value is an array.
func (v Value) IsArray() bool { return v.kind == Array }

// Get returns the member named key. If the value is not an object, or the
// key is not present, the result has kind Absent.
func (v Value) Get(key string) Value {
	if v.kind != Object {
		return Value{}
	}
	if i, ok := v.idx[key]; ok {
		return v.obj[i].Value
	}
	return Value{}
}

// Has reports whether the value is an object containing key.
func (v Value) Has(key string) bool {
	if v.kind != Object {
		return false
	}
	_, ok := v.idx[key]
	return ok
}

// Str returns the string scalar and true, or "" and false for any other kind.
func (v Value) Str() (string, bool) {
	if v.kind == String {
		return v.s, true
	}
	return "", false
}

// StrOr returns the string scalar, or def for any other kind.
func (v Value) StrOr(def string) string {
	if v.kind == String {
		return v.s
	}
	return def
}

// BoolOr returns the boolean scalar, or def for any other kind.
func (v Value) BoolOr(def bool) bool {
	if v.kind == Bool {
		return v.b
	}
	return def
}

// NumOr returns the numeric scalar, or def for any other kind.
func (v Value) NumOr(def float64) float64 {
	if v.kind == Number {
		return v.n
	}
	return def
}

// Items returns the array elements in order, or nil for any other kind.
func (v Value) Items() []Value {
	if v.kind != Array {
		return nil
	}
	return v.arr
}

// Members returns the object members in declaration order, or nil for any
// other kind.
func (v Value) Members() []Member {
	if v.kind != Object {
		return nil
	}
	return v.obj
}

// Len returns the number of array elements or object members, and 0 for
// scalar kinds.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arr)
	case Object:
		return len(v.obj)
	default:
		return 0
	}
}

// Interface converts the value back to generic Go data for serialization:
// objects become map[string]any (member order is not preserved), arrays
// become []any, and both Absent and Null become nil.
func (v Value) Interface() any {
	switch v.kind {
	case Bool:
		return v.b
	case Number:
		return v.n
	case String:
		return v.s
	case Array:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Interface()
		}
		return out
	case Object:
		out := make(map[string]any, len(v.obj))
		for _, m := range v.obj {
			out[m.Key] = m.Value.Interface()
		}
		return out
	default:
		return nil
	}
}

// MapOr converts an object value to map[string]any, or returns def for any
// other kind. This is the accessor for raw pass-through fields (schemas,
// flows) whose absence resolves to an explicit default.
func (v Value) MapOr(def map[string]any) map[string]any {
	if v.kind != Object {
		return def
	}
	out := make(map[string]any, len(v.obj))
	for _, m := range v.obj {
		out[m.Key] = m.Value.Interface()
	}
	return out
}

// newObject builds an Object value from members, indexing keys.
// On duplicate keys the first occurrence wins the index slot, matching
// the lookup behavior of JSON decoders.
func newObject(members []Member) Value {
	idx := make(map[string]int, len(members))
	for i, m := range members {
		if _, exists := idx[m.Key]; !exists {
			idx[m.Key] = i
		}
	}
	return Value{kind: Object, obj: members, idx: idx}
}

// FromAny converts generic Go data (as produced by encoding/json or yaml
// unmarshaling into any) to a Value. Map member order is not recoverable
// from Go maps, so keys are sorted for deterministic output; use Decode for
// order-preserving ingestion of raw documents.
func FromAny(data any) Value {
	switch t := data.(type) {
	case nil:
		return Value{kind: Null}
	case Value:
		return t
	case bool:
		return Value{kind: Bool, b: t}
	case string:
		return Value{kind: String, s: t}
	case float64:
		return Value{kind: Number, n: t}
	case float32:
		return Value{kind: Number, n: float64(t)}
	case int:
		return Value{kind: Number, n: float64(t)}
	case int64:
		return Value{kind: Number, n: float64(t)}
	case uint64:
		return Value{kind: Number, n: float64(t)}
	case []any:
		arr := make([]Value, len(t))
		for i, item := range t {
			arr[i] = FromAny(item)
		}
		return Value{kind: Array, arr: arr}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, 0, len(t))
		for _, k := range keys {
			members = append(members, Member{Key: k, Value: FromAny(t[k])})
		}
		return newObject(members)
	default:
		return Value{}
	}
}
