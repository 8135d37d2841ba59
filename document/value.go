package document

import (
	"strconv"
)

// Kind identifies the shape of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

var kindNames = [...]string{"null", "bool", "number", "string", "sequence", "mapping"}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is one node of a decoded document.
// The zero Value is null, and so is a nil *Value.
type Value struct {
	kind  Kind
	b     bool
	text  string // string content or number literal
	items []*Value
	keys  []string
	props map[string]*Value
}

// Entry is one key/value pair of a mapping.
type Entry struct {
	Key   string
	Value *Value
}

// Null returns a new null value.
func Null() *Value { return &Value{kind: KindNull} }

// Bool returns a new boolean value.
func Bool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// Number returns a new number value holding the literal text, e.g. "42" or "1.5e3".
func Number(text string) *Value { return &Value{kind: KindNumber, text: text} }

// Int returns a new number value for n.
func Int(n int) *Value { return Number(strconv.Itoa(n)) }

// String returns a new string value.
func String(s string) *Value { return &Value{kind: KindString, text: s} }

// Sequence returns a new sequence holding items.
func Sequence(items ...*Value) *Value {
	return &Value{kind: KindSequence, items: append([]*Value(nil), items...)}
}

// Mapping returns a new empty mapping.
func Mapping() *Value {
	return &Value{kind: KindMapping, props: make(map[string]*Value)}
}

// Strings returns a sequence of string values.
func Strings(ss ...string) *Value {
	v := Sequence()
	for _, s := range ss {
		v.items = append(v.items, String(s))
	}
	return v
}

// Kind returns the shape of v. A nil Value is KindNull.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether v is null or nil.
func (v *Value) IsNull() bool { return v.Kind() == KindNull }

// IsMapping reports whether v is a mapping.
func (v *Value) IsMapping() bool { return v.Kind() == KindMapping }

// IsSequence reports whether v is a sequence.
func (v *Value) IsSequence() bool { return v.Kind() == KindSequence }

// Str returns the string content of a string value.
func (v *Value) Str() (string, bool) {
	if v.Kind() != KindString {
		return "", false
	}
	return v.text, true
}

// BoolValue returns the content of a boolean value.
func (v *Value) BoolValue() (bool, bool) {
	if v.Kind() != KindBool {
		return false, false
	}
	return v.b, true
}

// NumberText returns the literal text of a number value.
func (v *Value) NumberText() (string, bool) {
	if v.Kind() != KindNumber {
		return "", false
	}
	return v.text, true
}

// Float returns a number value as float64.
func (v *Value) Float() (float64, bool) {
	if v.Kind() != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Scalar returns the textual form of a string, number or bool value.
// Version markers such as `swagger: 2.0` decode as numbers in YAML, so callers
// that only need text use this instead of Str.
func (v *Value) Scalar() (string, bool) {
	switch v.Kind() {
	case KindString, KindNumber:
		return v.text, true
	case KindBool:
		return strconv.FormatBool(v.b), true
	default:
		return "", false
	}
}

// Items returns the elements of a sequence. The slice is shared with v.
func (v *Value) Items() ([]*Value, bool) {
	if v.Kind() != KindSequence {
		return nil, false
	}
	return v.items, true
}

// Len returns the number of entries of a mapping or elements of a sequence.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindMapping:
		return len(v.keys)
	case KindSequence:
		return len(v.items)
	default:
		return 0
	}
}

// Append adds items to the end of a sequence. It does nothing on other kinds.
func (v *Value) Append(items ...*Value) {
	if v.Kind() != KindSequence {
		return
	}
	v.items = append(v.items, items...)
}

// SetItem replaces the i-th element of a sequence.
func (v *Value) SetItem(i int, item *Value) {
	if v.Kind() != KindSequence || i < 0 || i >= len(v.items) {
		return
	}
	v.items[i] = item
}

// Get returns the value stored under key in a mapping.
func (v *Value) Get(key string) (*Value, bool) {
	if v.Kind() != KindMapping {
		return nil, false
	}
	val, ok := v.props[key]
	return val, ok
}

// Has reports whether a mapping contains key.
func (v *Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Set stores val under key. An existing key keeps its position; a new key is
// appended. Set does nothing on values that are not mappings.
func (v *Value) Set(key string, val *Value) {
	if v.Kind() != KindMapping {
		return
	}
	if _, exists := v.props[key]; !exists {
		v.keys = append(v.keys, key)
	}
	v.props[key] = val
}

// Delete removes key from a mapping.
func (v *Value) Delete(key string) {
	if v.Kind() != KindMapping {
		return
	}
	if _, exists := v.props[key]; !exists {
		return
	}
	delete(v.props, key)
	for i, k := range v.keys {
		if k == key {
			v.keys = append(v.keys[:i], v.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys of a mapping in order.
func (v *Value) Keys() []string {
	if v.Kind() != KindMapping {
		return nil
	}
	return append([]string(nil), v.keys...)
}

// Entries returns the key/value pairs of a mapping in order.
func (v *Value) Entries() []Entry {
	if v.Kind() != KindMapping {
		return nil
	}
	out := make([]Entry, len(v.keys))
	for i, k := range v.keys {
		out[i] = Entry{Key: k, Value: v.props[k]}
	}
	return out
}

// Field is Get under a name that reads better in schema-walking code.
func (v *Value) Field(key string) (*Value, bool) {
	return v.Get(key)
}

// StrField returns the string stored under key.
func (v *Value) StrField(key string) (string, bool) {
	f, ok := v.Get(key)
	if !ok {
		return "", false
	}
	return f.Str()
}

// BoolField returns the boolean stored under key.
func (v *Value) BoolField(key string) (bool, bool) {
	f, ok := v.Get(key)
	if !ok {
		return false, false
	}
	return f.BoolValue()
}

// MapField returns the mapping stored under key.
func (v *Value) MapField(key string) (*Value, bool) {
	f, ok := v.Get(key)
	if !ok || !f.IsMapping() {
		return nil, false
	}
	return f, true
}

// SeqField returns the elements of the sequence stored under key.
func (v *Value) SeqField(key string) ([]*Value, bool) {
	f, ok := v.Get(key)
	if !ok {
		return nil, false
	}
	return f.Items()
}

// StringsField returns the string elements of the sequence stored under key.
// Non-string elements are skipped.
func (v *Value) StringsField(key string) ([]string, bool) {
	items, ok := v.SeqField(key)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.Str(); ok {
			out = append(out, s)
		}
	}
	return out, true
}

// Assign replaces the content of v with the content of src, keeping v's identity.
// Children are shared, not copied.
func (v *Value) Assign(src *Value) {
	if v == nil {
		return
	}
	if src == nil {
		*v = Value{}
		return
	}
	v.kind = src.kind
	v.b = src.b
	v.text = src.text
	v.items = append([]*Value(nil), src.items...)
	v.keys = append([]string(nil), src.keys...)
	v.props = nil
	if src.props != nil {
		v.props = make(map[string]*Value, len(src.props))
		for k, val := range src.props {
			v.props[k] = val
		}
	}
}

// ScalarKey returns a string that is equal for two scalars with the same kind
// and content. It is empty for sequences and mappings.
func (v *Value) ScalarKey() string {
	switch v.Kind() {
	case KindNull:
		return "n:"
	case KindBool:
		return "b:" + strconv.FormatBool(v.b)
	case KindNumber:
		return "d:" + v.text
	case KindString:
		return "s:" + v.text
	default:
		return ""
	}
}

// Clone returns a deep copy of v. Shared nodes stay shared in the copy and
// cycles are reproduced rather than followed forever.
func (v *Value) Clone() *Value {
	return cloneValue(v, make(map[*Value]*Value))
}

func cloneValue(v *Value, seen map[*Value]*Value) *Value {
	if v == nil {
		return nil
	}
	if c, ok := seen[v]; ok {
		return c
	}
	c := &Value{kind: v.kind, b: v.b, text: v.text}
	seen[v] = c
	switch v.kind {
	case KindSequence:
		c.items = make([]*Value, len(v.items))
		for i, it := range v.items {
			c.items[i] = cloneValue(it, seen)
		}
	case KindMapping:
		c.keys = append([]string(nil), v.keys...)
		c.props = make(map[string]*Value, len(v.props))
		for k, val := range v.props {
			c.props[k] = cloneValue(val, seen)
		}
	}
	return c
}
