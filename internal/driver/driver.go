package driver

import (
	"fmt"
	"go/types"
	"path/filepath"

	"modelgen/internal/diag"
	"modelgen/internal/emit"
	"modelgen/internal/inspect"
	"modelgen/internal/marker"
	"modelgen/internal/render"
	"modelgen/modeled"
)

// FieldDescriptor is the assembled record of one eligible struct field.
type FieldDescriptor struct {
	// Name is the declared field name.
	Name string
	// Shape drives which accessor family is generated.
	Shape inspect.Shape
	// IsFinal is true for readonly-flagged fields.
	IsFinal bool
	// IsImmutable is true for immutable-flagged fields.
	IsImmutable bool
	// IsNonNull is true when the field carries a never-empty marker.
	IsNonNull bool
	// Resolved is the property type exposed through the accessors: the
	// element type for collection and atomic-reference shapes, the
	// declared field type otherwise.
	Resolved types.Type
}

// Unit is one marked struct together with everything generation needs.
type Unit struct {
	Element inspect.Element
	// Options are the verbatim key=value pairs of the class marker.
	Options map[string]string
	// Fields are the eligible field descriptors in declaration order.
	Fields []FieldDescriptor
}

// BuildUnit assembles the generation unit for one marked struct. Fields
// opt in through the model tag; unknown tag flags are reported as
// warnings and skipped. A wrapper-shaped field without a type argument
// fails the assembly.
func BuildUnit(scope *inspect.Scope, el inspect.Element, reporter diag.Reporter) (*Unit, error) {
	anno, _ := marker.ParseClassAnnotation(el.Doc)

	fields, err := scope.FieldsOf(el)
	if err != nil {
		return nil, err
	}

	unit := &Unit{Element: el, Options: anno.Options}

	for _, f := range fields {
		ft, ok := marker.ParseFieldTag(f.Tag)
		if !ok {
			continue
		}

		for _, flag := range ft.Unknown {
			reporter.Report(diag.Warningf(el.ID.String(), "field %s: unknown model flag %q", f.Name, flag))
		}

		cls, err := scope.Classify(f)
		if err != nil {
			return nil, fmt.Errorf("assembling %s: %w", el.ID, err)
		}

		unit.Fields = append(unit.Fields, FieldDescriptor{
			Name:        f.Name,
			Shape:       cls.Shape,
			IsFinal:     ft.Flags.Has(modeled.FlagReadonly),
			IsImmutable: ft.Flags.Has(modeled.FlagImmutable),
			IsNonNull:   marker.IsNonNull(f.Tag),
			Resolved:    cls.Resolved,
		})
	}

	return unit, nil
}

// Driver runs generation rounds: it turns marked structs of a loaded
// scope into generated model interface files.
type Driver struct {
	engine   *render.Engine
	filer    emit.Filer
	reporter diag.Reporter
}

// New creates a Driver writing through the given filer and reporting
// through the given reporter.
func New(engine *render.Engine, filer emit.Filer, reporter diag.Reporter) *Driver {
	return &Driver{engine: engine, filer: filer, reporter: reporter}
}

// Run executes one generation round over the scope.
//
// Every marked element is kind-checked before any output is written, so a
// round containing a marked non-struct produces no files at all. After
// that the round is fail-fast: the first unit that fails to assemble,
// render or write aborts the round, files of earlier units remain in
// place, and later units are not attempted.
func (d *Driver) Run(scope *inspect.Scope) ([]emit.GeneratedFile, error) {
	marked := inspect.FilterByMarker(scope.Elements, modeled.Marker)

	for _, el := range marked {
		if !el.IsStruct() {
			d.reporter.Report(diag.Errorf(el.ID.String(), "only struct types can carry @%s", modeled.Marker))
			return nil, fmt.Errorf("cannot generate model for %s: %w", el.ID, inspect.ErrNotAStruct)
		}
	}

	files := make([]emit.GeneratedFile, 0, len(marked))

	for _, el := range marked {
		name := render.ModelName(el.ID.Name)
		d.reporter.Report(diag.Notef(el.ID.String(), "generating model interface %s", name))

		unit, err := BuildUnit(scope, el, d.reporter)
		if err != nil {
			d.reporter.Report(diag.Errorf(el.ID.String(), "%v", err))
			return files, err
		}

		file, err := d.generate(unit)
		if err != nil {
			d.reporter.Report(diag.Errorf(el.ID.String(), "failed creating source file for generated interface %s", name))
			return files, fmt.Errorf("failed creating source file for generated interface %s: %w", name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generate renders one unit and writes it next to its source package.
func (d *Driver) generate(unit *Unit) (*emit.GeneratedFile, error) {
	data := buildModelData(unit)

	src, err := d.engine.Render(data)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(unit.Element.Pkg.Dir, data.Filename)

	return emit.Write(d.filer, path, src)
}

// buildModelData lowers a unit into the template's parameter shape,
// qualifying property types for the target package and collecting the
// imports they require.
func buildModelData(unit *Unit) *render.ModelData {
	el := unit.Element
	imports := make(map[string]render.ImportSpec)

	data := &render.ModelData{
		PackageName: el.Pkg.Name,
		SourceType:  el.Pkg.Name + "." + el.ID.Name,
		ModelName:   render.ModelName(el.ID.Name),
		Filename:    render.ModelFilename(el.ID.Name),
		Options:     unit.Options,
		Properties:  make([]render.PropertyData, 0, len(unit.Fields)),
	}

	for _, fd := range unit.Fields {
		p := render.PropertyData{
			Name:         fd.Name,
			MethodName:   render.ExportedName(fd.Name),
			Type:         render.TypeString(fd.Resolved, el.ID.PkgPath, imports),
			IsCollection: fd.Shape == inspect.ShapeCollection,
			IsAtomicRef:  fd.Shape == inspect.ShapeAtomicRef,
			IsFinal:      fd.IsFinal,
			IsImmutable:  fd.IsImmutable,
			IsNonNull:    fd.IsNonNull,
		}
		p.Mutable = !p.IsFinal && !p.IsImmutable

		if p.IsCollection {
			imports["iter"] = render.ImportSpec{Path: "iter"}
		}

		data.Properties = append(data.Properties, p)
	}

	data.Imports = render.SortedImports(imports)

	return data
}
