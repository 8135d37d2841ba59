package generator

import (
	"strings"
)

const maxCommentLength = 200

// jsString returns s as a single-quoted JavaScript string literal.
func jsString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// cleanComment prepares a summary or description for a line comment.
// Line breaks are collapsed and long text is truncated at a rune boundary.
func cleanComment(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if runes := []rune(s); len(runes) > maxCommentLength {
		s = string(runes[:maxCommentLength-3]) + "..."
	}
	return s
}

// signature renders the parameter list, plus the return type in TypeScript mode.
func signature(d fileData, f funcData) string {
	if !d.TypeScript {
		return "(" + f.Arg + ", options)"
	}
	ret := f.ResponseType
	if ret == "" {
		ret = "any"
	}
	return "(" + f.Arg + "?: any, options?: any): Promise<" + ret + ">"
}
