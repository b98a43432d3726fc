package flagged

// Gauge reads a sensor level. The frozen flag is not a recognized
// modifier; the generator must warn and keep the field.
//
// @model
type Gauge struct {
	level int `model:"prop,frozen"`
}
