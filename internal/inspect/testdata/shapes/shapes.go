package shapes

import (
	"iter"
	"sync/atomic"

	"modelgen/modeled"
)

// Row is a named slice. Element resolution must come from the slice
// shape, not from a type argument.
type Row []int

// Len returns the number of cells.
func (r Row) Len() int {
	return len(r)
}

// Values yields the cells left to right.
func (r Row) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, v := range r {
			if !yield(v) {
				return
			}
		}
	}
}

// Pool is a generic collection whose capability methods sit on the
// pointer receiver.
type Pool[E any] struct {
	free []E
}

// Len returns the number of pooled elements.
func (p *Pool[E]) Len() int {
	return len(p.free)
}

// Values yields the pooled elements.
func (p *Pool[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range p.free {
			if !yield(e) {
				return
			}
		}
	}
}

// Bag is a collection interface without a type parameter, so a field of
// this type has no type argument to resolve the element from.
type Bag interface {
	modeled.Collection[string]
}

// Grid exercises every classification branch.
type Grid struct {
	row     Row
	cells   []string
	version atomic.Pointer[Row]
	label   string
	pool    Pool[string]
	bag     Bag
}
