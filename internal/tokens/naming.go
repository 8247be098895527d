// Package tokens turns a palette into CSS custom property declarations.
package tokens

import (
	"strings"
	"unicode"
)

// PropertyName converts a mixed-case role name into a custom property name by
// placing a hyphen before each uppercase letter and lowercasing it:
// "cardForeground" becomes "card-foreground".
func PropertyName(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
