package scaffold

import "strings"

// CodeIdentifier converts a registry package name to a camelCase identifier
// safe to use as an import binding in generated source. Separator characters
// (-, _, .) are dropped and the following letter is upcased; a leading digit
// gets an underscore prefix.
func CodeIdentifier(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	upperNext := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '-' || c == '_' || c == '.':
			upperNext = true
		case c >= 'a' && c <= 'z':
			if upperNext && b.Len() > 0 {
				c -= 'a' - 'A'
			}
			b.WriteByte(c)
			upperNext = false
		case c >= 'A' && c <= 'Z' || c >= '0' && c <= '9':
			b.WriteByte(c)
			upperNext = false
		default:
			// Characters outside the registry charset never reach here for
			// validated names; skip them for safety.
			upperNext = true
		}
	}

	id := b.String()
	if id == "" {
		return "pkg"
	}
	if id[0] >= '0' && id[0] <= '9' {
		id = "_" + id
	}
	return id
}
