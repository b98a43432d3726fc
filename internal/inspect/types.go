package inspect

import (
	"go/types"
	"reflect"

	"modelgen/internal/marker"
)

// TypeID uniquely identifies a named type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "modelgen/examples/geo"
	Name    string // e.g., "Point"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path string // Import path
	Name string // Package name
	Dir  string // Directory holding the package sources
}

// Element is a named type declaration paired with its doc comment.
type Element struct {
	// ID identifies the declared type.
	ID TypeID
	// Obj is the declared type object.
	Obj *types.TypeName
	// Doc is the declaration doc text with comment markers stripped,
	// or "" when the declaration carries none.
	Doc string
	// Pkg is the package the declaration belongs to.
	Pkg *PackageInfo
}

// IsExported returns true if the declared type name is exported.
func (e Element) IsExported() bool {
	return e.Obj.Exported()
}

// IsStruct returns true if the declared type is a struct.
func (e Element) IsStruct() bool {
	_, ok := e.Obj.Type().Underlying().(*types.Struct)
	return ok
}

// FilterByMarker returns the elements whose doc carries the @name
// annotation, preserving input order.
func FilterByMarker(elements []Element, name string) []Element {
	var out []Element

	for _, el := range elements {
		if marker.HasAnnotation(el.Doc, name) {
			out = append(out, el)
		}
	}

	return out
}

// Field describes a directly declared struct field.
type Field struct {
	Name     string            // Go field name
	Var      *types.Var        // Field object
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// Type returns the field's declared type.
func (f Field) Type() types.Type {
	return f.Var.Type()
}

// IsExported returns true if the field name is exported.
func (f Field) IsExported() bool {
	return f.Var.Exported()
}

// IsEmbedded returns true if the field is embedded.
func (f Field) IsEmbedded() bool {
	return f.Embedded
}

// HasTag returns true if the field has the specified tag key.
func (f Field) HasTag(key string) bool {
	_, ok := f.Tag.Lookup(key)
	return ok
}

// GetTag returns the value of the specified tag key.
func (f Field) GetTag(key string) string {
	return f.Tag.Get(key)
}

// TypeArgs returns the type arguments of an instantiated named type,
// or nil for any other type.
func TypeArgs(t types.Type) []types.Type {
	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}

	list := named.TypeArgs()
	if list == nil || list.Len() == 0 {
		return nil
	}

	out := make([]types.Type, list.Len())
	for i := range out {
		out[i] = list.At(i)
	}

	return out
}
