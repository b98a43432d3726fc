package modeled

import "iter"

// Marker is the doc-comment annotation that opts a struct type into model
// generation. It must start a line of the type's doc comment and may be
// followed by key=value options, which are forwarded to the generated
// output verbatim:
//
//	// Point is a coordinate on the map.
//	//
//	// @model scope=geo
//	type Point struct { ... }
const Marker = "model"

// TagKey is the struct tag key that opts a field into the generated model.
// A field with no model tag, or with the value "-", is skipped.
//
//	x    float64  `model:"prop,readonly"`
//	tags []string `model:"prop"`
const TagKey = "model"

// TagSkip is the tag value that explicitly excludes a field.
const TagSkip = "-"

// Field tag flags recognized after the leading "prop" token.
const (
	FlagNameReadonly  = "readonly"
	FlagNameImmutable = "immutable"
)

// Tag keys whose presence marks a field as never-empty. Any one of them is
// sufficient; the generator does not interpret their values beyond the
// required token.
const (
	TagNonNull  = "nonnull"
	TagValidate = "validate"
	TagBinding  = "binding"

	// RequiredToken is the value token that activates TagValidate and
	// TagBinding. TagNonNull activates on key presence alone.
	RequiredToken = "required"
)

// Flags is the set of per-field modifiers parsed from the model tag.
type Flags int

const (
	FlagReadonly  Flags = 1 << iota // no mutator is generated
	FlagImmutable                   // value is fixed after construction, no mutator

	FlagsAll  = (1 << iota) - 1 // all flags combined
	FlagsNone = 0               // no flags set
)

// Has reports whether all bits of f2 are set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// String returns the flag names joined by "|", or "none".
func (f Flags) String() string {
	if f == FlagsNone {
		return "none"
	}

	names := ""
	if f.Has(FlagReadonly) {
		names = FlagNameReadonly
	}

	if f.Has(FlagImmutable) {
		if names != "" {
			names += "|"
		}

		names += FlagNameImmutable
	}

	return names
}

// Collection is the capability interface that marks a field type as a
// collection for model generation. A field whose declared type embeds
// Collection (directly or through intermediate interfaces), or whose
// concrete type satisfies it, gets stream and length views instead of a
// plain accessor.
//
// The sole type parameter names the element type the generated views
// expose, so the declared field type must carry exactly one type argument.
type Collection[E any] interface {
	// Len returns the number of elements held.
	Len() int
	// Values yields the elements in iteration order.
	Values() iter.Seq[E]
}
