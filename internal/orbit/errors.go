package orbit

import "errors"

// Sentinel errors for orbit evaluation.
var (
	// ErrUnparseableOrbit indicates a leg matched none of the parse strategies.
	ErrUnparseableOrbit = errors.New("unparseable orbit")
	// ErrBelowSurface indicates an orbit whose energy lies below the surface
	// potential, for which no real delta-v exists.
	ErrBelowSurface = errors.New("orbit energy below surface potential")
)
