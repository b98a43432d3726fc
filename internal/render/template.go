package render

import "sort"

// ModelData holds all data needed for the model template.
type ModelData struct {
	// PackageName is the package the generated file belongs to.
	PackageName string
	// SourceType is the qualified name of the marked type, e.g. "geo.Point".
	SourceType string
	// ModelName is the generated interface name, e.g. "Point_Model".
	ModelName string
	// Filename is the generated file name, e.g. "point_model.go".
	Filename string
	// Imports are the packages the property types require, sorted by path.
	Imports []ImportSpec
	// Options are the verbatim marker options of the marked type.
	Options map[string]string
	// Properties are the field records in declaration order.
	Properties []PropertyData
}

// PropertyData is one field record passed to the template.
type PropertyData struct {
	// Name is the declared field name.
	Name string
	// MethodName is the exported accessor base name.
	MethodName string
	// Type is the resolved property type, qualified for the target package.
	Type string

	IsCollection bool
	IsAtomicRef  bool
	IsFinal      bool
	IsImmutable  bool
	IsNonNull    bool

	// Mutable is true when the template emits a mutator: neither final
	// nor immutable.
	Mutable bool
}

// SortedImports flattens the collected import set ordered by path.
func SortedImports(imports map[string]ImportSpec) []ImportSpec {
	out := make([]ImportSpec, 0, len(imports))
	for _, imp := range imports {
		out = append(out, imp)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}

// modelTemplate is the fixed template every generated model interface is
// rendered from. The emitted declaration shape is owned here; the driver
// only supplies ModelData.
const modelTemplate = `// Code generated by modelgen from {{ .SourceType }}. DO NOT EDIT.

package {{ .PackageName }}
{{- if .Imports }}

import (
{{- range .Imports }}
	{{ if .Alias }}{{ .Alias }} {{ end }}"{{ .Path }}"
{{- end }}
)
{{- end }}

// {{ .ModelName }} is the generated model view of {{ .SourceType }}.
{{- if .Options }}
// Marker options: {{ range $i, $k := (keys .Options | sortAlpha) }}{{ if $i }}, {{ end }}{{ $k }}={{ index $.Options $k }}{{ end }}.
{{- end }}
type {{ .ModelName }} interface {
{{- range .Properties }}
{{- if .IsNonNull }}
	// {{ .MethodName }} returns {{ .Name }}. The value is required and never empty.
{{- end }}
{{- if .IsCollection }}
	{{ .MethodName }}() iter.Seq[{{ .Type }}]
	{{ .MethodName }}Len() int
{{- else if .IsAtomicRef }}
	Load{{ .MethodName }}() *{{ .Type }}
{{- if .Mutable }}
	Store{{ .MethodName }}(v *{{ .Type }})
{{- end }}
{{- else }}
	{{ .MethodName }}() {{ .Type }}
{{- if .Mutable }}
	Set{{ .MethodName }}(v {{ .Type }})
{{- end }}
{{- end }}
{{- end }}
}
`
