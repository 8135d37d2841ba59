package typegen

import (
	"strings"

	"github.com/FreezeNow/swagger-to-axios/document"
	"github.com/FreezeNow/swagger-to-axios/internal/schemautil"
)

// Type expressions emitted for the fixed families.
const (
	TypeAny     = "any"
	TypeNumber  = "number"
	TypeDate    = "Date"
	TypeString  = "string"
	TypeBoolean = "boolean"
	TypeNull    = "null"
	TypeRecord  = "Record<string, any>"
)

var families = map[string]string{
	"integer": TypeNumber,
	"int32":   TypeNumber,
	"int64":   TypeNumber,
	"long":    TypeNumber,
	"float":   TypeNumber,
	"double":  TypeNumber,
	"number":  TypeNumber,

	"date":      TypeDate,
	"dateTime":  TypeDate,
	"date-time": TypeDate,
	"datetime":  TypeDate,

	"string":   TypeString,
	"email":    TypeString,
	"password": TypeString,
	"url":      TypeString,
	"byte":     TypeString,
	"binary":   TypeString,

	"boolean": TypeBoolean,
	"null":    TypeNull,
}

// Translate returns the TypeScript type for schema. It never fails; a schema
// reachable from itself renders as any at the point of recursion.
func Translate(schema *document.Value) string {
	t := &translator{stack: make(map[*document.Value]bool)}
	return t.translate(schema)
}

type translator struct {
	stack map[*document.Value]bool
}

func (t *translator) translate(s *document.Value) string {
	if !s.IsMapping() || t.stack[s] {
		return TypeAny
	}
	t.stack[s] = true
	defer delete(t.stack, s)

	expr := t.base(s)
	if expr != TypeAny && expr != TypeNull && schemautil.IsNullable(s) && !hasTopLevelMember(expr, TypeNull) {
		expr += " | " + TypeNull
	}
	return expr
}

func (t *translator) base(s *document.Value) string {
	types := schemautil.NonNullTypes(s)
	if lit, ok := enumLiterals(s, types); ok {
		return lit
	}
	switch len(types) {
	case 0:
		if len(schemautil.SchemaTypes(s)) > 0 {
			return TypeNull
		}
		if schemautil.HasProperties(s) {
			return t.object(s)
		}
		if format, ok := s.StrField("format"); ok {
			if expr, ok := families[format]; ok {
				return expr
			}
		}
		return TypeAny
	case 1:
		return t.named(types[0], s)
	default:
		parts := make([]string, 0, len(types))
		for _, name := range types {
			parts = appendUnique(parts, t.named(name, s))
		}
		return strings.Join(parts, " | ")
	}
}

// named translates s as the type called name.
func (t *translator) named(name string, s *document.Value) string {
	switch name {
	case "array":
		return t.array(s)
	case "object":
		return t.object(s)
	}
	if expr, ok := families[name]; ok {
		return expr
	}
	if schemautil.HasProperties(s) {
		return t.object(s)
	}
	return TypeAny
}

func (t *translator) array(s *document.Value) string {
	items, ok := s.Get("items")
	if !ok {
		// Some generators nest items one level down under schema.
		if wrapper, found := s.MapField("schema"); found {
			items, ok = wrapper.Get("items")
		}
	}
	if !ok {
		return TypeAny + "[]"
	}
	if tuple, isTuple := items.Items(); isTuple {
		parts := make([]string, len(tuple))
		for i, item := range tuple {
			parts[i] = t.translate(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	elem := t.translate(items)
	if hasTopLevelUnion(elem) {
		elem = "(" + elem + ")"
	}
	return elem + "[]"
}

func (t *translator) object(s *document.Value) string {
	props, ok := s.MapField("properties")
	if !ok || props.Len() == 0 {
		if extra, ok := s.MapField("additionalProperties"); ok {
			return "Record<string, " + t.translate(extra) + ">"
		}
		return TypeRecord
	}
	fields := make([]string, 0, props.Len())
	for _, e := range props.Entries() {
		fields = append(fields, quote(e.Key)+": "+t.translate(e.Value))
	}
	return "{ " + strings.Join(fields, "; ") + " }"
}

// enumLiterals renders a string enum as a union of string literals.
func enumLiterals(s *document.Value, types []string) (string, bool) {
	if len(types) > 1 || (len(types) == 1 && types[0] != "string") {
		return "", false
	}
	values, ok := s.SeqField("enum")
	if !ok || len(values) == 0 {
		return "", false
	}
	parts := make([]string, 0, len(values))
	for _, v := range values {
		str, ok := v.Str()
		if !ok {
			if v.IsNull() {
				continue
			}
			return "", false
		}
		parts = appendUnique(parts, quote(str))
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " | "), true
}

// quote renders s as a single-quoted string literal.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
	return "'" + r.Replace(s) + "'"
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}

// topLevelMembers splits a type expression on the "|" separators that are not
// nested inside brackets, braces, parentheses or string literals.
func topLevelMembers(expr string) []string {
	var members []string
	depth := 0
	inQuote := false
	start := 0
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		if inQuote {
			switch c {
			case '\\':
				i++
			case '\'':
				inQuote = false
			}
			continue
		}
		switch c {
		case '\'':
			inQuote = true
		case '{', '[', '(', '<':
			depth++
		case '}', ']', ')', '>':
			depth--
		case '|':
			if depth == 0 {
				members = append(members, strings.TrimSpace(expr[start:i]))
				start = i + 1
			}
		}
	}
	return append(members, strings.TrimSpace(expr[start:]))
}

func hasTopLevelUnion(expr string) bool {
	return len(topLevelMembers(expr)) > 1
}

func hasTopLevelMember(expr, member string) bool {
	for _, m := range topLevelMembers(expr) {
		if m == member {
			return true
		}
	}
	return false
}
