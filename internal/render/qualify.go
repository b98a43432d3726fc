package render

import (
	"go/types"

	"modelgen/internal/common"
)

// ImportSpec represents an import statement of a generated file.
type ImportSpec struct {
	Alias string
	Path  string
}

// TypeString formats t as it must appear inside the package samePkgPath,
// package-qualifying foreign names and recording their imports.
func TypeString(t types.Type, samePkgPath string, imports map[string]ImportSpec) string {
	qualifier := func(p *types.Package) string {
		if p.Path() == samePkgPath {
			return ""
		}

		addImport(imports, p)

		return p.Name()
	}

	return types.TypeString(t, qualifier)
}

// addImport records the package in the import set. The alias is kept only
// when the package name differs from the import path base.
func addImport(imports map[string]ImportSpec, p *types.Package) {
	spec := ImportSpec{Path: p.Path()}
	if p.Name() != common.PkgAlias(p.Path()) {
		spec.Alias = p.Name()
	}

	imports[p.Path()] = spec
}
