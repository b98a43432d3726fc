// Package emit writes generated sources to their destination.
//
// Key capabilities:
//   - normalizes rendered code with goimports before it touches disk
//   - pluggable Filer backends for the filesystem and for in-memory capture
//   - parks unformattable output in a .unformatted.go sidecar for debugging
package emit
