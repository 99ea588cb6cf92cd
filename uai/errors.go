package uai

import "errors"

// Sentinel errors for UAI reading/writing. Read wraps these with %w around
// the line number. Read can also return, wrapped the same way, a strconv
// error for a field that is not a number and a package cfn error for a
// network-construction failure, and it returns the scanner's own error
// unwrapped.
var (
	// ErrUnsupportedModelType indicates the preamble named a graph type
	// other than MARKOV; the UAI format's BAYES/MARKOV/... variants beyond
	// MARKOV are out of scope (spec.md §6, original source's "Only MARKOV
	// graph type is supported").
	ErrUnsupportedModelType = errors.New("uai: only MARKOV model type is supported")

	// ErrMalformedDomainSizes indicates the domain-size line's field count
	// did not match the declared number of variables.
	ErrMalformedDomainSizes = errors.New("uai: domain size count does not match variable count")

	// ErrMalformedFunctionScope indicates a function-scope line's declared
	// arity did not match the number of variable indices that followed it.
	ErrMalformedFunctionScope = errors.New("uai: function scope length does not match declared arity")

	// ErrTableSizeMismatch indicates a function's collected table entries
	// exceeded the count declared just before them.
	ErrTableSizeMismatch = errors.New("uai: function table has more entries than declared")

	// ErrTruncatedFile indicates the input ended before every declared
	// function's scope and table had been read.
	ErrTruncatedFile = errors.New("uai: file ended before all functions were read")
)
