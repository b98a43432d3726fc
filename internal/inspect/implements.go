package inspect

import (
	"go/types"

	"modelgen/internal/common"
)

// Implements reports whether t reaches the capability interface identified
// by capID. Interface types match when a declared embedded interface is the
// capability, checked directly first and then transitively through the
// embedding chain. Concrete named types with exactly one type argument
// match when their method set satisfies the capability instantiated at
// that argument. The capability type itself does not implement itself.
//
// The walk carries a visited set, so malformed cyclic embeddings terminate.
func (s *Scope) Implements(t types.Type, capID TypeID) bool {
	return s.implements(t, capID, make(map[*types.TypeName]bool))
}

func (s *Scope) implements(t types.Type, capID TypeID, seen map[*types.TypeName]bool) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	if seen[named.Obj()] {
		return false
	}

	seen[named.Obj()] = true

	iface, ok := named.Underlying().(*types.Interface)
	if !ok {
		return s.satisfiesCapability(named, capID)
	}

	for i := range iface.NumEmbeddeds() {
		if isOrigin(iface.EmbeddedType(i), capID) {
			return true
		}
	}

	for i := range iface.NumEmbeddeds() {
		if s.implements(iface.EmbeddedType(i), capID, seen) {
			return true
		}
	}

	return false
}

// satisfiesCapability checks a concrete named type against the capability
// instantiated at the type's sole type argument. Both the value and the
// pointer method set count.
func (s *Scope) satisfiesCapability(named *types.Named, capID TypeID) bool {
	arg, ok := common.First(TypeArgs(named))
	if !ok {
		return false
	}

	capName, ok := s.FindType(capID.PkgPath, capID.Name)
	if !ok {
		return false
	}

	capNamed, ok := capName.Type().(*types.Named)
	if !ok {
		return false
	}

	inst, err := types.Instantiate(nil, capNamed, []types.Type{arg}, true)
	if err != nil {
		return false
	}

	iface, ok := inst.Underlying().(*types.Interface)
	if !ok {
		return false
	}

	return types.Implements(named, iface) || types.Implements(types.NewPointer(named), iface)
}

// isOrigin reports whether t is a named type declared as id, regardless of
// instantiation.
func isOrigin(t types.Type, id TypeID) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	if obj == nil || obj.Pkg() == nil {
		return false
	}

	return obj.Pkg().Path() == id.PkgPath && obj.Name() == id.Name
}
