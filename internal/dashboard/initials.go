package dashboard

import (
	"strings"
	"unicode/utf8"
)

// Initials returns the first character of each space-separated token of
// name, in order, with case as typed. Empty tokens contribute nothing.
func Initials(name string) string {
	var b strings.Builder
	for _, tok := range strings.Split(name, " ") {
		if tok == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(tok)
		b.WriteRune(r)
	}
	return b.String()
}
