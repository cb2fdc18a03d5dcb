package executor

import (
	"os"
	"regexp"
	"strings"
)

// Placeholder is replaced with the selected value in command templates
const Placeholder = "{value}"

var envRef = regexp.MustCompile(`\$(\w+|\{[^}]*\})`)

// Render expands environment references in template, then substitutes value
// for every Placeholder.
func Render(template, value string) string {
	return strings.ReplaceAll(ExpandEnv(template), Placeholder, value)
}

// ExpandEnv replaces $NAME and ${NAME} with the variable's value. Unlike
// os.ExpandEnv, references to unset variables are left untouched.
func ExpandEnv(s string) string {
	if !strings.Contains(s, "$") {
		return s
	}

	return envRef.ReplaceAllStringFunc(s, func(ref string) string {
		name := strings.TrimPrefix(ref, "$")
		if strings.HasPrefix(name, "{") && strings.HasSuffix(name, "}") {
			name = name[1 : len(name)-1]
		}
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return ref
	})
}
