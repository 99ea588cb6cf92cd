// Package matrix provides a trimmed dense row-major matrix primitive used
// as the backing store for arity-2 ("pairwise") factor kernels in package
// cfn. It keeps exactly the subset of the teacher's original matrix package
// (https://github.com/katalvlaran/lvlath) that has a role in a cost function
// network solver: a flat-slice Dense type with bounds-checked accessors and
// an optional NaN/Inf ingestion policy. Graph-adapter concerns (adjacency
// and incidence matrices, Floyd–Warshall, eigen decomposition) belonged to
// core.Graph, which has no role here, and were dropped; see DESIGN.md.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time, returning an error
//	on invalid indices.
//	Clone() performs a deep copy in O(rows*cols) time, allocating new storage.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values. Each
// method enforces bounds checking and returns clear errors on misuse.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf if the numeric
	// policy rejects v.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
