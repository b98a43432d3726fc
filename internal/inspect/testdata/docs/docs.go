package docs

// Shared doc for the pair.
type (
	// Alpha doc line.
	Alpha struct{}
	Beta  struct{}
)
