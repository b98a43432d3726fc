package marker

import (
	"regexp"
	"strings"

	"modelgen/modeled"
)

// Annotation holds a parsed doc-comment annotation.
type Annotation struct {
	// Options are the verbatim key=value pairs following the marker.
	// The generator forwards them to the rendered output uninterpreted.
	Options map[string]string
}

var optionRe = regexp.MustCompile(`([\w.-]+)=(\S+)`)

// ParseAnnotation scans a declaration doc comment for an @name marker. The
// marker must start a line of the doc text (as returned by
// ast.CommentGroup.Text, with comment markers already stripped).
func ParseAnnotation(doc, name string) (Annotation, bool) {
	re := regexp.MustCompile(`^@` + regexp.QuoteMeta(name) + `(?:\s+(.*))?$`)

	for _, line := range strings.Split(doc, "\n") {
		m := re.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}

		anno := Annotation{Options: map[string]string{}}
		for _, pair := range optionRe.FindAllStringSubmatch(m[1], -1) {
			anno.Options[pair[1]] = pair[2]
		}

		return anno, true
	}

	return Annotation{}, false
}

// HasAnnotation reports whether the doc text carries the @name marker.
func HasAnnotation(doc, name string) bool {
	_, ok := ParseAnnotation(doc, name)
	return ok
}

// ParseClassAnnotation parses the @model marker.
func ParseClassAnnotation(doc string) (Annotation, bool) {
	return ParseAnnotation(doc, modeled.Marker)
}

// HasClassAnnotation reports whether the doc text carries the @model marker.
func HasClassAnnotation(doc string) bool {
	return HasAnnotation(doc, modeled.Marker)
}
