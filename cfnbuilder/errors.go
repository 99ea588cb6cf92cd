package cfnbuilder

import "errors"

// Sentinel errors for synthetic CFN construction, named after the
// teacher's builder package's own ErrTooFewVertices/ErrNeedRandSource.
var (
	// ErrTooFewVariables indicates a constructor was asked for fewer
	// variables than its topology requires.
	ErrTooFewVariables = errors.New("cfnbuilder: too few variables for this topology")

	// ErrNeedRandSource indicates Random was called without WithSeed or
	// WithRand to supply an RNG.
	ErrNeedRandSource = errors.New("cfnbuilder: a random source is required (use WithSeed or WithRand)")

	// ErrInvalidDomainSize indicates a non-positive domain size was
	// requested.
	ErrInvalidDomainSize = errors.New("cfnbuilder: domain size must be >= 1")
)
