// Package relax builds the relaxation graph over a frozen cfn.CostFunctionNetwork:
// a directed acyclic graph with one node per variable and one node per
// non-unary factor, and an edge α→β whenever scope(β) ⊂ scope(α). Each edge
// carries an AlignmentIndexing record that lets the message-store layer
// (package message) broadcast a β-shaped tensor into α-shape, and gather an
// α-shaped tensor down to β-shape, without recursion over arity.
//
// The only implemented construction policy is MinimalEdges: for each
// non-unary factor α and each variable v in scope(α), one edge from α's node
// to v's (unary) node. A second policy could in principle add edges between
// sibling sub-factors, but the original source this module is grounded on
// never implements one, and neither does this package (see DESIGN.md).
//
// Time:
//
//	New (MinimalEdges): O(sum of factor arities) for edge construction, plus
//	O(arity(α) * domain_size) per edge for AlignmentIndexing.
//
// Memory:
//
//	O(number of nodes + number of edges), plus O(table_len(β) + table_len(α)/table_len(β))
//	per edge for its AlignmentIndexing vectors.
package relax
