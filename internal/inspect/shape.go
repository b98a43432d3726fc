package inspect

import (
	"errors"
	"fmt"
	"go/types"

	"modelgen/internal/common"
)

//go:generate go tool stringer -type=Shape -output=shape_string.go -trimprefix=Shape

// Shape classifies how a field is exposed by the generated model.
type Shape int

const (
	ShapePlain      Shape = iota // ordinary accessor
	ShapeCollection              // stream and length views over the element type
	ShapeAtomicRef               // load/store views over the referenced type
)

// Well-known type identities driving the classification.
var (
	// AtomicPointerID is the atomic reference wrapper.
	AtomicPointerID = TypeID{PkgPath: "sync/atomic", Name: "Pointer"}
	// CollectionID is the collection capability interface.
	CollectionID = TypeID{PkgPath: "modelgen/modeled", Name: "Collection"}
)

// ErrMissingTypeArgument marks a wrapper-shaped field whose declared type
// carries no type argument to resolve the element type from.
var ErrMissingTypeArgument = errors.New("missing type argument")

// Classification is the resolved shape of a field.
type Classification struct {
	Shape Shape
	// Resolved is the element type for collection and atomic-reference
	// shapes, and the field's own declared type otherwise.
	Resolved types.Type
}

// Classify determines the field's shape. Precedence: the atomic reference
// wrapper first, then slice element types, then the collection capability.
// A wrapper-shaped field whose declared type has no type argument is a
// hard failure; there is no silent plain fallback.
func (s *Scope) Classify(f Field) (Classification, error) {
	t := f.Type()

	if isOrigin(t, AtomicPointerID) {
		arg, err := soleTypeArg(f, t)
		if err != nil {
			return Classification{}, err
		}

		return Classification{Shape: ShapeAtomicRef, Resolved: arg}, nil
	}

	if sl, ok := t.Underlying().(*types.Slice); ok {
		return Classification{Shape: ShapeCollection, Resolved: sl.Elem()}, nil
	}

	if s.Implements(t, CollectionID) {
		arg, err := soleTypeArg(f, t)
		if err != nil {
			return Classification{}, err
		}

		return Classification{Shape: ShapeCollection, Resolved: arg}, nil
	}

	return Classification{Shape: ShapePlain, Resolved: t}, nil
}

// soleTypeArg extracts the first type argument of the field's declared type.
func soleTypeArg(f Field, t types.Type) (types.Type, error) {
	arg, ok := common.First(TypeArgs(t))
	if !ok {
		return nil, fmt.Errorf("field %s: type %s should carry a type argument but has none: %w",
			f.Name, t, ErrMissingTypeArgument)
	}

	return arg, nil
}
