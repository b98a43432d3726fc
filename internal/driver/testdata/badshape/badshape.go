package badshape

import "modelgen/modeled"

// Names is a collection interface without a type parameter, so a field of
// this type leaves the generator no type argument to resolve.
type Names interface {
	modeled.Collection[string]
}

// Roster tracks participants.
//
// @model
type Roster struct {
	names Names `model:"prop"`
}
