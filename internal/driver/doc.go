// Package driver runs generation rounds over loaded scopes.
//
// Key capabilities:
//   - collects @model-marked structs and kind-checks the whole round
//     before any file is written
//   - assembles per-field descriptors (shape, modifier flags, never-empty
//     intent, resolved property type) in declaration order
//   - renders each unit through the model template and emits the result
//     next to its source package, failing fast on the first broken unit
package driver
