package inspect

import (
	"errors"
	"fmt"
	"go/types"
)

// ErrTypeNotFound marks a failed type lookup in the loaded universe.
var ErrTypeNotFound = errors.New("type not found")

// FindType looks up a named type in the loaded universe by package path
// and name. ok is false when the type is absent; absence is not an error
// for callers that merely probe.
func (s *Scope) FindType(pkgPath, name string) (*types.TypeName, bool) {
	tn, ok := s.universe[TypeID{PkgPath: pkgPath, Name: name}]
	return tn, ok
}

// RequireType looks up a named type and fails when it is absent. Callers
// use it where the type is a precondition for continuing.
func (s *Scope) RequireType(pkgPath, name string) (*types.TypeName, error) {
	tn, ok := s.FindType(pkgPath, name)
	if !ok {
		return nil, fmt.Errorf("no type named %s: %w", TypeID{PkgPath: pkgPath, Name: name}, ErrTypeNotFound)
	}

	return tn, nil
}
