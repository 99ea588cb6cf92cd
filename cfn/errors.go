package cfn

import "errors"

// Sentinel errors for cost function network operations. Every error returned
// from this package's exported functions is one of these, matched via
// errors.Is. Malformed scopes and table shapes are reported with these
// errors; panics are confined to the programmer error of adding a variable
// or factor to a frozen network (see AddVariable/AddFactor in network.go),
// following the same "validate and panic on misuse, never on user data at
// the algorithm layer" split the teacher uses for its builder package.
var (
	// ErrZeroDomain indicates AddVariable was called with domain_size < 1.
	ErrZeroDomain = errors.New("cfn: domain size must be >= 1")

	// ErrMalformedScope indicates a factor's scope is not strictly increasing
	// by variable index, or references an out-of-range variable.
	ErrMalformedScope = errors.New("cfn: scope must be strictly increasing and in range")

	// ErrTableLengthMismatch indicates a factor's function table length does
	// not equal the product of domain sizes over its scope.
	ErrTableLengthMismatch = errors.New("cfn: function table length does not match scope")

	// ErrUnlabeledVariable indicates FactorCost or TotalCost was invoked with
	// a Solution that leaves some variable in the relevant scope unlabeled.
	ErrUnlabeledVariable = errors.New("cfn: solution leaves a variable unlabeled")

	// ErrNotFrozen indicates an operation that requires a frozen network
	// was attempted before Freeze was called. relax.New does not return it:
	// it panics when given an unfrozen network.
	ErrNotFrozen = errors.New("cfn: network is not frozen")

	// ErrUnknownFactor indicates a factor index outside [0, NumFactors).
	ErrUnknownFactor = errors.New("cfn: unknown factor index")

	// ErrUnknownVariable indicates a variable index outside [0, NumVariables).
	ErrUnknownVariable = errors.New("cfn: unknown variable index")
)
