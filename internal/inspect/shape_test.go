package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// classify runs shape classification on one struct field.
func classify(t *testing.T, scope *Scope, elName, fieldName string) (Classification, error) {
	t.Helper()

	fields, err := scope.FieldsOf(element(t, scope, elName))
	require.NoError(t, err)

	for _, f := range fields {
		if f.Name == fieldName {
			return scope.Classify(f)
		}
	}

	t.Fatalf("field %s.%s not found", elName, fieldName)

	return Classification{}, nil
}

func TestClassify(t *testing.T) {
	scope := load(t, "modelgen/examples/library", "modelgen/internal/inspect/testdata/shapes")

	tests := []struct {
		element  string
		field    string
		shape    Shape
		resolved string
	}{
		{element: "Library", field: "id", shape: ShapePlain, resolved: "string"},
		{element: "Library", field: "books", shape: ShapeCollection, resolved: "modelgen/examples/library.Book"},
		{element: "Library", field: "featured", shape: ShapeCollection, resolved: "modelgen/examples/library.Book"},
		{element: "Library", field: "current", shape: ShapeAtomicRef, resolved: "modelgen/examples/library.Book"},
		// The atomic wrapper wins even when it wraps a collection.
		{
			element: "Library", field: "cache", shape: ShapeAtomicRef,
			resolved: "modelgen/examples/library.Stack[modelgen/examples/library.Book]",
		},
		{element: "Grid", field: "row", shape: ShapeCollection, resolved: "int"},
		{element: "Grid", field: "cells", shape: ShapeCollection, resolved: "string"},
		{
			element: "Grid", field: "version", shape: ShapeAtomicRef,
			resolved: "modelgen/internal/inspect/testdata/shapes.Row",
		},
		{element: "Grid", field: "label", shape: ShapePlain, resolved: "string"},
		{element: "Grid", field: "pool", shape: ShapeCollection, resolved: "string"},
	}

	for _, tt := range tests {
		t.Run(tt.element+"."+tt.field, func(t *testing.T) {
			cls, err := classify(t, scope, tt.element, tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, cls.Shape)
			assert.Equal(t, tt.resolved, cls.Resolved.String())
		})
	}
}

func TestClassifyMissingTypeArgument(t *testing.T) {
	scope := load(t, "modelgen/internal/inspect/testdata/shapes")

	_, err := classify(t, scope, "Grid", "bag")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingTypeArgument)
	assert.Contains(t, err.Error(), "should carry a type argument")
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "Plain", ShapePlain.String())
	assert.Equal(t, "Collection", ShapeCollection.String())
	assert.Equal(t, "AtomicRef", ShapeAtomicRef.String())
}
