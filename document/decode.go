package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Format is the serialization format of a document.
type Format string

const (
	// FormatAuto detects JSON from the first significant byte and falls back to YAML.
	FormatAuto Format = "auto"
	// FormatJSON parses strictly as JSON.
	FormatJSON Format = "json"
	// FormatYAML parses as YAML, which also accepts most JSON.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a user-supplied format name. Empty means YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "auto":
		return FormatAuto, nil
	default:
		return "", fmt.Errorf("document: unknown format %q (expected json, yaml or auto)", s)
	}
}

// DetectFormat guesses the format of data from its first non-space byte.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// ErrEmpty is returned when the content holds no value at all.
var ErrEmpty = errors.New("document is empty")

// DecodeError describes a syntax failure with its position when known.
type DecodeError struct {
	Format Format
	Line   int
	Column int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d, column %d: %v", e.Format, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode parses data in the given format into a Value tree.
// Mapping keys keep document order and YAML aliases are expanded into shared nodes.
func Decode(data []byte, format Format) (*Value, error) {
	if format == FormatAuto {
		format = DetectFormat(data)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &DecodeError{Format: format, Err: ErrEmpty}
	}
	if format == FormatJSON {
		return decodeJSON(data)
	}
	return decodeYAML(data)
}

func decodeJSON(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := readJSONValue(dec)
	if err != nil {
		return nil, jsonError(data, dec, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, jsonError(data, dec, err)
	}
	return v, nil
}

func jsonError(data []byte, dec *json.Decoder, err error) error {
	offset := dec.InputOffset()
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		offset = syn.Offset
	}
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	line, col := lineColumn(data, offset)
	return &DecodeError{Format: FormatJSON, Line: line, Column: col, Err: err}
}

// lineColumn converts a byte offset into 1-based line and column numbers.
func lineColumn(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, col := 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

func readJSONValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := Mapping()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T, not a string", keyTok)
				}
				val, err := readJSONValue(dec)
				if err != nil {
					return nil, err
				}
				m.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return m, nil
		case '[':
			s := Sequence()
			for dec.More() {
				item, err := readJSONValue(dec)
				if err != nil {
					return nil, err
				}
				s.items = append(s.items, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return s, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(string(t)), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %T", tok)
	}
}

func decodeYAML(data []byte) (*Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &DecodeError{Format: FormatYAML, Err: err}
	}
	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, &DecodeError{Format: FormatYAML, Err: ErrEmpty}
		}
		node = node.Content[0]
	}
	if node.Kind == 0 {
		return nil, &DecodeError{Format: FormatYAML, Err: ErrEmpty}
	}
	c := &yamlConverter{seen: make(map[*yaml.Node]*Value)}
	return c.convert(node)
}

type yamlConverter struct {
	seen map[*yaml.Node]*Value
}

func (c *yamlConverter) convert(n *yaml.Node) (*Value, error) {
	if n == nil {
		return Null(), nil
	}
	if v, ok := c.seen[n]; ok {
		return v, nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return c.convert(n.Content[0])
	case yaml.AliasNode:
		return c.convert(n.Alias)
	case yaml.MappingNode:
		m := Mapping()
		c.seen[n] = m
		var merges []*yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, val := n.Content[i], n.Content[i+1]
			if k.ShortTag() == "!!merge" {
				merges = append(merges, val)
				continue
			}
			child, err := c.convert(val)
			if err != nil {
				return nil, err
			}
			m.Set(k.Value, child)
		}
		for _, mn := range merges {
			if err := c.applyMerge(m, mn); err != nil {
				return nil, err
			}
		}
		return m, nil
	case yaml.SequenceNode:
		s := Sequence()
		c.seen[n] = s
		for _, item := range n.Content {
			child, err := c.convert(item)
			if err != nil {
				return nil, err
			}
			s.items = append(s.items, child)
		}
		return s, nil
	case yaml.ScalarNode:
		return c.scalar(n)
	default:
		return nil, fmt.Errorf("unsupported YAML node kind %d at line %d", n.Kind, n.Line)
	}
}

// applyMerge copies keys from a `<<` merge source that m does not define itself.
func (c *yamlConverter) applyMerge(m *Value, src *yaml.Node) error {
	if src.Kind == yaml.SequenceNode {
		for _, item := range src.Content {
			if err := c.applyMerge(m, item); err != nil {
				return err
			}
		}
		return nil
	}
	v, err := c.convert(src)
	if err != nil {
		return err
	}
	if !v.IsMapping() {
		return &DecodeError{Format: FormatYAML, Line: src.Line, Column: src.Column, Err: errors.New("merge value is not a mapping")}
	}
	for _, e := range v.Entries() {
		if !m.Has(e.Key) {
			m.Set(e.Key, e.Value)
		}
	}
	return nil
}

func (c *yamlConverter) scalar(n *yaml.Node) (*Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, &DecodeError{Format: FormatYAML, Line: n.Line, Column: n.Column, Err: err}
		}
		return Bool(b), nil
	case "!!int", "!!float":
		return Number(n.Value), nil
	default:
		return String(n.Value), nil
	}
}
