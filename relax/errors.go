package relax

import "errors"

// Sentinel errors for relaxation-graph operations.
var (
	// ErrUnknownNode indicates a node index outside [0, NodeCount).
	ErrUnknownNode = errors.New("relax: unknown node index")
)
