// Package options provides validation shared by tool inputs.
package options

import (
	"fmt"
	"strings"
)

// Input names one way of supplying a value and whether it was supplied.
type Input struct {
	Name string
	Set  bool
}

// ExactlyOne returns an error unless exactly one of inputs is set. The
// message lists every input, for example
// "exactly one of file, url, or content must be provided (got 2)".
func ExactlyOne(inputs ...Input) error {
	count := 0
	names := make([]string, len(inputs))
	for i, in := range inputs {
		names[i] = in.Name
		if in.Set {
			count++
		}
	}
	if count == 1 {
		return nil
	}
	return fmt.Errorf("exactly one of %s must be provided (got %d)", joinOr(names), count)
}

func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
}
