// Package srmp implements sequential reweighted message passing: a
// block-coordinate-ascent scheduler over a relaxation graph (package relax)
// that tightens a dual lower bound sweep by sweep and, optionally,
// extracts a primal labeling from the current reparametrization.
//
// Construct a Solver with New over a frozen cfn.CostFunctionNetwork and its
// relax.Graph, then call Run. Run alternates forward and backward sweeps
// over a fixed factor sequence until the iteration cap, time budget, or
// epsilon-convergence stop condition triggers, or the caller's context is
// canceled at a sweep boundary.
//
// Time:
//
//	New: O(E) to precompute nodeEdgeAttrs over E relaxation edges.
//	Run: O(iterations * E * average message length).
//
// Memory:
//
//	O(N + E) for the factor sequence and nodeEdgeAttrs bit/weight arrays,
//	plus whatever message.Store already holds.
package srmp
