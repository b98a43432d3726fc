package render

import (
	"strings"
	"unicode"
)

// ModelName returns the generated interface name for a marked type.
func ModelName(simpleName string) string {
	return simpleName + "_Model"
}

// ModelFilename returns the generated file name for a marked type.
func ModelFilename(simpleName string) string {
	return SnakeCase(simpleName) + "_model.go"
}

// ExportedName returns the identifier with its first rune upper-cased,
// suitable as a generated method base name.
func ExportedName(name string) string {
	if name == "" {
		return name
	}

	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])

	return string(r)
}

// SnakeCase converts an identifier to snake_case.
// Examples:
//   - "Point" -> "point"
//   - "OrderItem" -> "order_item"
//   - "HTTPServer" -> "http_server"
func SnakeCase(name string) string {
	tokens := tokenizeCamelCase(name)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return strings.Join(tokens, "_")
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		// Separators start a new token
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i == 0 {
			current.WriteRune(r)

			continue
		}

		if shouldStartNewToken(runes, i) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator returns true if the rune is a common identifier separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)
	isPrevSep := isSeparator(prevRune)

	// Transition from lowercase to uppercase starts a new token,
	// e.g. "orderID" splits before 'I'.
	if isUpper && !isPrevUpper && !isPrevSep {
		return true
	}

	// End of an acronym: "XMLParser" splits before 'P'.
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
	if isUpper && isPrevUpper && hasNextLower {
		return true
	}

	return false
}
