package marker

import (
	"reflect"
	"strings"

	"modelgen/modeled"
)

// FieldTag is the parsed model tag of a struct field.
type FieldTag struct {
	// Flags are the recognized modifier tokens.
	Flags modeled.Flags
	// Unknown holds unrecognized tokens. They do not fail parsing; the
	// driver reports them as warnings.
	Unknown []string
}

// ParseFieldTag extracts the model tag from a struct tag. ok is false when
// the field carries no model tag or opts out with "-".
//
// The tag value is a comma-separated token list. The conventional lead
// token "prop" and empty tokens are accepted and ignored.
func ParseFieldTag(tag reflect.StructTag) (FieldTag, bool) {
	value, ok := tag.Lookup(modeled.TagKey)
	if !ok || value == modeled.TagSkip {
		return FieldTag{}, false
	}

	var ft FieldTag

	for _, token := range strings.Split(value, ",") {
		switch strings.TrimSpace(token) {
		case "", "prop":
		case modeled.FlagNameReadonly:
			ft.Flags |= modeled.FlagReadonly
		case modeled.FlagNameImmutable:
			ft.Flags |= modeled.FlagImmutable
		default:
			ft.Unknown = append(ft.Unknown, strings.TrimSpace(token))
		}
	}

	return ft, true
}

// IsNonNull reports whether the field carries any of the recognized
// never-empty markers: a nonnull tag key, or a required token inside a
// validate or binding tag.
func IsNonNull(tag reflect.StructTag) bool {
	if _, ok := tag.Lookup(modeled.TagNonNull); ok {
		return true
	}

	return hasToken(tag.Get(modeled.TagValidate), modeled.RequiredToken) ||
		hasToken(tag.Get(modeled.TagBinding), modeled.RequiredToken)
}

// hasToken reports whether the comma-separated value contains the token.
func hasToken(value, token string) bool {
	for _, t := range strings.Split(value, ",") {
		if strings.TrimSpace(t) == token {
			return true
		}
	}

	return false
}
