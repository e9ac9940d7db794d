package codegen

import (
	"strings"
	"unicode"
)

// PascalCase converts a schema name to PascalCase, treating '-' and '_' as
// word boundaries: "user_profile" -> "UserProfile".
func PascalCase(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if r == '-' || r == '_' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CamelCase converts a schema name to camelCase: "user_name" -> "userName".
func CamelCase(s string) string {
	pascal := PascalCase(s)
	if pascal == "" {
		return pascal
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// tsPropName renders a property name for use inside an interface or object
// literal, quoting names that are not valid TypeScript identifiers.
func tsPropName(name string) string {
	if isIdentifier(name) {
		return name
	}
	return `"` + name + `"`
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || r == '$' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
