package pathutil

import "regexp"

// templateVar matches a {name} placeholder and captures name.
var templateVar = regexp.MustCompile(`\{([^{}]+)\}`)

// ExpandTemplate replaces every {name} in s with vars[name]. Placeholders
// without a value are kept as written.
func ExpandTemplate(s string, vars map[string]string) string {
	if len(vars) == 0 {
		return s
	}
	return templateVar.ReplaceAllStringFunc(s, func(m string) string {
		if v, ok := vars[m[1:len(m)-1]]; ok {
			return v
		}
		return m
	})
}
