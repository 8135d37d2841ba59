package document

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// UnescapeToken decodes one JSON Pointer reference token (RFC 6901).
// ~1 becomes / and ~0 becomes ~, in that order.
func UnescapeToken(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}

// EscapeToken encodes s for use as a JSON Pointer reference token.
func EscapeToken(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}

// Lookup follows a JSON Pointer from root. The pointer may be given with or
// without the leading '#', and percent-encoded tokens from URI fragments are decoded.
func Lookup(root *Value, pointer string) (*Value, error) {
	pointer = strings.TrimPrefix(pointer, "#")
	if pointer == "" {
		return root, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, fmt.Errorf("document: invalid JSON pointer %q: must start with /", pointer)
	}
	cur := root
	for _, raw := range strings.Split(pointer[1:], "/") {
		token := raw
		if dec, err := url.PathUnescape(raw); err == nil {
			token = dec
		}
		token = UnescapeToken(token)
		switch cur.Kind() {
		case KindMapping:
			next, ok := cur.Get(token)
			if !ok {
				return nil, fmt.Errorf("document: %q not found in %q", token, pointer)
			}
			cur = next
		case KindSequence:
			idx, err := strconv.Atoi(token)
			if err != nil || idx < 0 || idx >= len(cur.items) {
				return nil, fmt.Errorf("document: invalid index %q in %q", token, pointer)
			}
			cur = cur.items[idx]
		default:
			return nil, fmt.Errorf("document: cannot descend into %s at %q in %q", cur.Kind(), token, pointer)
		}
	}
	return cur, nil
}
