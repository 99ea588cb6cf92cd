// Package cfn defines the cost function network data model: variables with
// finite label domains, factors (nullary, unary, and higher-arity cost
// tensors), and the network that owns them.
//
// A CostFunctionNetwork is built incrementally via AddVariable/AddFactor,
// then frozen via Freeze before a relaxation graph is constructed over it
// (see package relax). Factors are polymorphic: denseTable is the mandatory
// general-purpose kernel, pairwiseTable/potts/uniformConstant are optional
// specializations that must be behaviorally indistinguishable from their
// dense expansion.
//
// Time:
//
//	AddVariable, DomainSize: O(1).
//	AddFactor: O(len(table)) to validate and copy.
//	FactorCost: O(arity) to compute the flat index, O(1) thereafter for
//	dense/pairwise kernels, O(1) for potts/uniformConstant.
//	TotalCost: O(number of factors * average arity).
//
// Memory:
//
//	O(sum of factor table lengths), plus O(N) for variable bookkeeping.
package cfn
