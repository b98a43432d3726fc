// Package marker parses the modelgen marker grammar out of Go source:
// the @model doc-comment annotation on type declarations and the
// model:"prop,..." struct tag on fields, plus the recognized never-empty
// tag markers.
package marker
