package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTypeCoversImportClosure(t *testing.T) {
	scope := load(t, "modelgen/examples/library")

	// Declared in the loaded package itself.
	tn, ok := scope.FindType("modelgen/examples/library", "Stack")
	require.True(t, ok)
	assert.Equal(t, "Stack", tn.Name())

	// Reachable only through imports.
	_, ok = scope.FindType("modelgen/modeled", "Collection")
	assert.True(t, ok)

	_, ok = scope.FindType("sync/atomic", "Pointer")
	assert.True(t, ok)

	_, ok = scope.FindType("modelgen/examples/library", "Basement")
	assert.False(t, ok)
}

func TestRequireType(t *testing.T) {
	scope := load(t, "modelgen/examples/geo")

	tn, err := scope.RequireType("modelgen/examples/geo", "Point")
	require.NoError(t, err)
	assert.Equal(t, "Point", tn.Name())

	_, err = scope.RequireType("modelgen/examples/geo", "Nowhere")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeNotFound)
	assert.Contains(t, err.Error(), "no type named modelgen/examples/geo.Nowhere")
}
