// Package main provides the CLI entrypoint for modelgen.
//
// modelgen is a Go codegen tool that:
//   - Scans Go packages (AST + go/types) for structs marked @model
//   - Classifies eligible fields into plain, collection, and
//     atomic-reference shapes
//   - Generates <Type>_Model interface views next to the source packages
package main

import (
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
