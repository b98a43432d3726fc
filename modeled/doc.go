// Package modeled declares the marker contract between user code and the
// modelgen generator.
//
// It is intentionally dependency-free: user packages import it for the
// Collection capability interface and the tag grammar, and must not pull
// generator machinery into their builds.
//
// Key pieces:
//   - Marker: the @model doc-comment annotation on struct types
//   - TagKey: the model:"prop,..." field tag and its flags
//   - Collection: the capability interface that classifies collection fields
package modeled
