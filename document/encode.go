package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"go.yaml.in/yaml/v4"
)

// MarshalJSON writes v as JSON with mapping keys in document order.
// A node that is reached again while it is still being written encodes as {}.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONValue(&buf, v, make(map[*Value]bool)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSONValue(buf *bytes.Buffer, v *Value, stack map[*Value]bool) error {
	switch v.Kind() {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		if json.Valid([]byte(v.text)) {
			buf.WriteString(v.text)
			return nil
		}
		return writeJSONString(buf, v.text)
	case KindString:
		return writeJSONString(buf, v.text)
	case KindSequence:
		if stack[v] {
			buf.WriteString("{}")
			return nil
		}
		stack[v] = true
		defer delete(stack, v)
		buf.WriteByte('[')
		for i, it := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, it, stack); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMapping:
		if stack[v] {
			buf.WriteString("{}")
			return nil
		}
		stack[v] = true
		defer delete(stack, v)
		buf.WriteByte('{')
		for i, k := range v.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSONValue(buf, v.props[k], stack); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// MarshalYAML implements yaml.Marshaler with mapping keys in document order.
func (v *Value) MarshalYAML() (any, error) {
	return toYAMLNode(v, make(map[*Value]bool)), nil
}

func toYAMLNode(v *Value, stack map[*Value]bool) *yaml.Node {
	switch v.Kind() {
	case KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.b)}
	case KindNumber:
		if _, err := strconv.ParseFloat(v.text, 64); err == nil {
			tag := "!!float"
			if _, err := strconv.ParseInt(v.text, 10, 64); err == nil {
				tag = "!!int"
			}
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.text}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.text}
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.text}
	}
	if stack[v] {
		return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	}
	stack[v] = true
	defer delete(stack, v)
	if v.kind == KindSequence {
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, it := range v.items {
			n.Content = append(n.Content, toYAMLNode(it, stack))
		}
		return n
	}
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range v.keys {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			toYAMLNode(v.props[k], stack))
	}
	return n
}

// ToAny converts v into plain Go values: map[string]any, []any, string,
// bool, json.Number and nil. A node revisited on the current path becomes nil.
func (v *Value) ToAny() any {
	return toAny(v, make(map[*Value]bool))
}

func toAny(v *Value, stack map[*Value]bool) any {
	switch v.Kind() {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		return json.Number(v.text)
	case KindString:
		return v.text
	}
	if stack[v] {
		return nil
	}
	stack[v] = true
	defer delete(stack, v)
	if v.kind == KindSequence {
		out := make([]any, len(v.items))
		for i, it := range v.items {
			out[i] = toAny(it, stack)
		}
		return out
	}
	out := make(map[string]any, len(v.keys))
	for _, k := range v.keys {
		out[k] = toAny(v.props[k], stack)
	}
	return out
}

// FromAny builds a Value from plain Go values as produced by encoding/json or
// yaml decoding into any. Map keys are sorted since Go maps carry no order.
func FromAny(x any) *Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case *Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case json.Number:
		return Number(string(t))
	case int:
		return Int(t)
	case int64:
		return Number(strconv.FormatInt(t, 10))
	case float64:
		return Number(strconv.FormatFloat(t, 'f', -1, 64))
	case []any:
		s := Sequence()
		for _, it := range t {
			s.items = append(s.items, FromAny(it))
		}
		return s
	case map[string]any:
		m := Mapping()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			m.Set(k, FromAny(t[k]))
		}
		return m
	default:
		return String(fmt.Sprint(t))
	}
}
