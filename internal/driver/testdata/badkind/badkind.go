package badkind

// Sink consumes events. Interfaces cannot be modeled; the marker here must
// fail the round.
//
// @model
type Sink interface {
	Consume(v any)
}
