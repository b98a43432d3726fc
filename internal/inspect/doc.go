// Package inspect provides the introspection facade the generation round
// works against.
//
// It loads packages with golang.org/x/tools/go/packages (AST + go/types)
// and exposes the operations the generator driver needs:
//
// Key capabilities:
//   - Element: a named type declaration with its doc comment
//   - FilterByMarker: select declarations carrying an annotation
//   - FieldsOf: directly declared struct fields in declaration order
//   - Implements: recursive capability-interface check with a cycle guard
//   - FindType / RequireType: tolerant and fail-fast symbol table lookups
//   - Classify: plain / collection / atomic-reference shape resolution
package inspect
