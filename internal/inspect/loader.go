package inspect

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// ErrNotAStruct marks a declaration that was expected to be a struct type.
var ErrNotAStruct = errors.New("not a struct type")

// Inspector loads Go packages and builds the element scope the generation
// round works against.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Load loads the specified packages and builds the scope.
// Patterns are standard Go package patterns (e.g., "./...",
// "modelgen/examples/geo").
func (in *Inspector) Load(patterns ...string) (*Scope, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	scope := NewScope()

	for _, pkg := range pkgs {
		if err := scope.addPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return scope, nil
}

// Scope holds the elements and the type universe of one generation round.
type Scope struct {
	// Elements are the named type declarations of the loaded packages,
	// in source order.
	Elements []Element
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo

	// universe indexes every named type reachable through the loaded
	// packages' import closure.
	universe map[TypeID]*types.TypeName
	seen     map[string]bool
}

// NewScope creates a new empty Scope.
func NewScope() *Scope {
	return &Scope{
		Packages: make(map[string]*PackageInfo),
		universe: make(map[TypeID]*types.TypeName),
		seen:     make(map[string]bool),
	}
}

// addPackage extracts type declarations and indexes types from a loaded package.
func (s *Scope) addPackage(pkg *packages.Package) error {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		pkgInfo.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	s.Packages[pkg.PkgPath] = pkgInfo

	// Walk the syntax trees so elements keep their source order and carry
	// their declaration docs.
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if !ok {
					continue
				}

				s.Elements = append(s.Elements, Element{
					ID:  TypeID{PkgPath: pkg.PkgPath, Name: ts.Name.Name},
					Obj: obj,
					Doc: declDoc(gd, ts),
					Pkg: pkgInfo,
				})
			}
		}
	}

	s.indexTypes(pkg.Types)

	return nil
}

// declDoc resolves the doc comment of a type spec. A spec-level doc wins
// over the surrounding declaration group's doc.
func declDoc(gd *ast.GenDecl, ts *ast.TypeSpec) string {
	if ts.Doc != nil {
		return ts.Doc.Text()
	}

	if gd.Doc != nil {
		return gd.Doc.Text()
	}

	return ""
}

// indexTypes records the named types of p and its import closure.
func (s *Scope) indexTypes(p *types.Package) {
	if p == nil || s.seen[p.Path()] {
		return
	}

	s.seen[p.Path()] = true

	scope := p.Scope()
	for _, name := range scope.Names() {
		if tn, ok := scope.Lookup(name).(*types.TypeName); ok {
			s.universe[TypeID{PkgPath: p.Path(), Name: name}] = tn
		}
	}

	for _, imp := range p.Imports() {
		s.indexTypes(imp)
	}
}

// FieldsOf returns the directly declared fields of a struct element in
// declaration order. Promoted members of embedded fields are not expanded;
// the embedded field itself appears as one entry.
func (s *Scope) FieldsOf(el Element) ([]Field, error) {
	st, ok := el.Obj.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("%s: %w", el.ID, ErrNotAStruct)
	}

	fields := make([]Field, 0, st.NumFields())

	for i := range st.NumFields() {
		f := st.Field(i)
		fields = append(fields, Field{
			Name:     f.Name(),
			Var:      f,
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: f.Embedded(),
			Index:    i,
		})
	}

	return fields, nil
}
