package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// load loads fixture packages through a real Inspector. The fixtures live
// in this module, so plain import paths resolve.
func load(t *testing.T, patterns ...string) *Scope {
	t.Helper()

	scope, err := NewInspector().Load(patterns...)
	require.NoError(t, err)

	return scope
}

func elementNames(scope *Scope) []string {
	names := make([]string, 0, len(scope.Elements))
	for _, el := range scope.Elements {
		names = append(names, el.ID.Name)
	}

	return names
}

// element returns the loaded element with the given simple name.
func element(t *testing.T, scope *Scope, name string) Element {
	t.Helper()

	for _, el := range scope.Elements {
		if el.ID.Name == name {
			return el
		}
	}

	t.Fatalf("element %s not loaded", name)

	return Element{}
}

func TestLoadKeepsSourceOrder(t *testing.T) {
	scope := load(t, "modelgen/examples/geo", "modelgen/examples/library")

	assert.Equal(t,
		[]string{"Point", "Origin", "Book", "Shelf", "Corner", "Stack", "Library"},
		elementNames(scope))
}

func TestLoadPopulatesElements(t *testing.T) {
	scope := load(t, "modelgen/examples/geo")

	point := element(t, scope, "Point")
	assert.Equal(t, "modelgen/examples/geo", point.ID.PkgPath)
	assert.Equal(t, "modelgen/examples/geo.Point", point.ID.String())
	assert.Contains(t, point.Doc, "@model")
	assert.True(t, point.IsStruct())
	assert.True(t, point.IsExported())

	require.Contains(t, scope.Packages, "modelgen/examples/geo")
	pkg := scope.Packages["modelgen/examples/geo"]
	assert.Equal(t, "geo", pkg.Name)
	assert.NotEmpty(t, pkg.Dir)
	assert.Same(t, pkg, point.Pkg)
}

func TestLoadResolvesGroupedDocs(t *testing.T) {
	scope := load(t, "modelgen/internal/inspect/testdata/docs")

	// A spec-level doc wins; specs without one inherit the group doc.
	assert.Equal(t, "Alpha doc line.\n", element(t, scope, "Alpha").Doc)
	assert.Equal(t, "Shared doc for the pair.\n", element(t, scope, "Beta").Doc)
}

func TestLoadFailsOnUnresolvablePattern(t *testing.T) {
	_, err := NewInspector().Load("modelgen/does/not/exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package errors")
}

func TestFilterByMarker(t *testing.T) {
	scope := load(t, "modelgen/examples/geo", "modelgen/examples/library")

	marked := FilterByMarker(scope.Elements, "model")
	require.Len(t, marked, 3)
	assert.Equal(t, "Point", marked[0].ID.Name)
	assert.Equal(t, "Origin", marked[1].ID.Name)
	assert.Equal(t, "Library", marked[2].ID.Name)

	assert.Empty(t, FilterByMarker(scope.Elements, "view"))
}

func TestFieldsOfKeepsDeclarationOrder(t *testing.T) {
	scope := load(t, "modelgen/examples/library")

	fields, err := scope.FieldsOf(element(t, scope, "Library"))
	require.NoError(t, err)

	var names []string
	for _, f := range fields {
		names = append(names, f.Name)
		assert.Equal(t, len(names)-1, f.Index)
		assert.False(t, f.IsEmbedded())
	}

	assert.Equal(t,
		[]string{"id", "name", "address", "city", "books", "featured", "current", "cache", "notes"},
		names)

	// Tags ride along raw.
	assert.Equal(t, "prop,immutable", fields[0].GetTag("model"))
	assert.True(t, fields[1].HasTag("nonnull"))
	assert.False(t, fields[8].HasTag("model"))
}

func TestFieldsOfRejectsNonStructs(t *testing.T) {
	scope := load(t, "modelgen/examples/library")

	_, err := scope.FieldsOf(element(t, scope, "Shelf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAStruct)
}
