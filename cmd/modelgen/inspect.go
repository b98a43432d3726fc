package main

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"modelgen/internal/diag"
	"modelgen/internal/driver"
	"modelgen/internal/inspect"
	"modelgen/internal/marker"
	"modelgen/internal/render"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <package.Type>",
		Short: "Show the assembled field descriptors of one struct",
		Long: `Load the package of the given type and dump the field descriptors the
generator would work from: shape, modifier flags, never-empty intent and
the resolved property type. Works on unmarked structs too.`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}
}

// inspectReport is the dump shape printed for one type.
type inspectReport struct {
	Type    string
	Model   string
	Marked  bool
	Options map[string]string
	Fields  []fieldReport
}

type fieldReport struct {
	Name      string
	Shape     string
	Final     bool
	Immutable bool
	NonNull   bool
	Type      string
}

func runInspect(cmd *cobra.Command, args []string) error {
	pkgPath, name, err := splitTypeRef(args[0])
	if err != nil {
		return err
	}

	scope, err := inspect.NewInspector().Load(pkgPath)
	if err != nil {
		return err
	}

	if _, err := scope.RequireType(pkgPath, name); err != nil {
		return err
	}

	el, ok := findElement(scope, pkgPath, name)
	if !ok {
		return fmt.Errorf("type %s.%s is not declared in the loaded package", pkgPath, name)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	reporter := diag.NewTerminalReporter(cmd.ErrOrStderr(), verbose)

	unit, err := driver.BuildUnit(scope, el, reporter)
	if err != nil {
		return err
	}

	report := inspectReport{
		Type:    el.ID.String(),
		Model:   render.ModelName(el.ID.Name),
		Marked:  marker.HasClassAnnotation(el.Doc),
		Options: unit.Options,
		Fields:  make([]fieldReport, 0, len(unit.Fields)),
	}

	for _, fd := range unit.Fields {
		report.Fields = append(report.Fields, fieldReport{
			Name:      fd.Name,
			Shape:     fd.Shape.String(),
			Final:     fd.IsFinal,
			Immutable: fd.IsImmutable,
			NonNull:   fd.IsNonNull,
			Type:      fd.Resolved.String(),
		})
	}

	cmd.Print(spew.Sdump(report))

	return nil
}

// findElement looks up a declared element by package path and simple name.
func findElement(scope *inspect.Scope, pkgPath, name string) (inspect.Element, bool) {
	for _, el := range scope.Elements {
		if el.ID.PkgPath == pkgPath && el.ID.Name == name {
			return el, true
		}
	}

	return inspect.Element{}, false
}

// splitTypeRef splits "path/to/pkg.Type" at the last dot.
func splitTypeRef(ref string) (pkgPath, name string, err error) {
	i := strings.LastIndex(ref, ".")
	if i <= 0 || i == len(ref)-1 {
		return "", "", fmt.Errorf("type reference %q must look like path/to/pkg.Type", ref)
	}

	return ref[:i], ref[i+1:], nil
}
