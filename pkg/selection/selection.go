// Package selection implements the token passed between `tpick extract`
// and the commands that act on a chosen line.
//
// A token is the mention's value and type joined by a single tab:
//
//	https://example.com<TAB>URL
//
// No escaping is performed. A value or type that contains a tab produces a
// token that will not decode.
package selection

import "strings"

// Delimiter separates the value from the type
const Delimiter = "\t"

// Selection is a typed value, the decoded form of a token
type Selection struct {
	Type  string
	Value string
}

// Encode renders the selection as a token
func (s Selection) Encode() string {
	return s.Value + Delimiter + s.Type
}

// String implements fmt.Stringer
func (s Selection) String() string {
	return s.Encode()
}

// Decode parses a token. It reports false unless the token contains exactly
// one delimiter. An empty value is a valid decode.
func Decode(token string) (Selection, bool) {
	parts := strings.Split(token, Delimiter)
	if len(parts) != 2 {
		return Selection{}, false
	}

	return Selection{Type: parts[1], Value: parts[0]}, true
}
