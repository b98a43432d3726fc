// Package render turns assembled model data into Go source text.
//
// Key pieces:
//   - Engine: the fixed model template with sprig helpers, parsed once
//   - TypeString: package-qualified type formatting with import collection
//   - ModelName / ModelFilename / SnakeCase: generated naming scheme
package render
