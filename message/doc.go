// Package message owns the per-edge message tensors of a relaxation graph
// and the reparametrization arithmetic SRMP runs on them: initializing a
// message from its target factor, folding in incoming/outgoing messages
// through an edge's AlignmentIndexing, sending (computing and normalizing a
// new outgoing message), and restricted minimization for primal extraction.
//
// Every min/argmin in this package uses totalOrderLess, a NaN-sorts-last
// total order, so a single NaN entry in a factor table can never silently
// corrupt a reparametrization (spec.md's numerical contract).
//
// Time:
//
//	Send, ComputeReparam: O(arity(alpha) * table_len(alpha)) dominated by the
//	alignment-indexed outgoing-message folds.
//	SendRestricted (via restrictedMin), UpdateSolutionRestrictedMin:
//	O(table_len(alpha)) beyond the reparametrization itself.
//
// Memory:
//
//	O(sum of table_len(beta) over every edge) for the message store.
package message
