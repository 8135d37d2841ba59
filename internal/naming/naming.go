package naming

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser upper-cases a single rune with full Unicode rules.
var titleCaser = cases.Title(language.Und, cases.NoLower)

// UpperFirst returns s with its first rune in title case. The rest of s is
// unchanged.
// Example: "user" -> "User", "userID" -> "UserID"
func UpperFirst(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return titleCaser.String(s[:size]) + s[size:]
}

// StripBraces removes every "{" and "}" from s.
func StripBraces(s string) string {
	return strings.NewReplacer("{", "", "}", "").Replace(s)
}

// URLToName converts a path template to the PascalCase suffix of a function
// name. Each "/" segment is capitalized and all braces are removed; a brace
// inside a segment does not start a new word.
// Example: "/test/{id}/{num}" -> "TestIdNum", "/test{id}{num}" -> "Testidnum"
func URLToName(path string) string {
	var b strings.Builder
	for _, seg := range strings.Split(path, "/") {
		b.WriteString(UpperFirst(StripBraces(seg)))
	}
	return b.String()
}

// ArgName returns the name of the argument that carries request input:
// params for GET, data for every other method.
func ArgName(method string) string {
	if strings.EqualFold(method, "get") {
		return "params"
	}
	return "data"
}

// URLToLinkParams converts a path template to the body of a JavaScript
// template literal. A segment that starts with "{" becomes an interpolation
// of the matching field of ArgName(method); other segments are kept as they
// are. Empty segments are dropped.
// Example: "/record/{recordID}/{userID}", "GET" -> "/record/${params.recordID}/${params.userID}"
func URLToLinkParams(path, method string) string {
	arg := ArgName(method)
	var b strings.Builder
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		b.WriteByte('/')
		if !strings.HasPrefix(seg, "{") {
			b.WriteString(seg)
			continue
		}
		// Only the outermost pair is removed: "{a}x" -> "ax", "{a}{b}" -> "a}{b".
		end := strings.LastIndex(seg, "}")
		if end < 2 {
			b.WriteString(seg)
			continue
		}
		b.WriteString("${" + arg + "." + seg[1:end] + seg[end+1:] + "}")
	}
	return b.String()
}

// FunctionName returns the exported function name for an operation: the
// lowercased method followed by URLToName(path). Characters that cannot
// appear in a JavaScript identifier are dropped and start a new word.
// Example: "GET", "/user-info/{id}" -> "getUserInfoId"
func FunctionName(method, path string) string {
	return strings.ToLower(method) + Identifier(URLToName(path))
}

// Identifier drops characters that are not valid in a JavaScript identifier,
// capitalizing the letter after each dropped run.
func Identifier(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	upperNext := false
	for _, r := range s {
		if !isIdentRune(r) {
			upperNext = b.Len() > 0
			continue
		}
		if upperNext {
			b.WriteString(titleCaser.String(string(r)))
			upperNext = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// NameSet hands out unique names. The first claim of a name returns it as
// is; later claims get a numeric suffix starting at 2.
type NameSet map[string]int

// Claim returns name, or name with the smallest free numeric suffix.
func (s NameSet) Claim(name string) string {
	n := s[name]
	s[name] = n + 1
	if n == 0 {
		return name
	}
	for i := n + 1; ; i++ {
		candidate := name + strconv.Itoa(i)
		if _, taken := s[candidate]; !taken {
			s[candidate] = 1
			return candidate
		}
	}
}
