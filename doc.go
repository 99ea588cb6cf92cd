// Package srmp (module github.com/dualgraph/srmp) is a solver for discrete
// energy minimization over cost function networks, built around sequential
// reweighted message passing (SRMP).
//
// A cost function network (package cfn) is a set of variables with finite
// label domains and a set of factors — dense cost tensors over a variable
// scope — whose sum is the network's energy. Finding the labeling that
// minimizes that sum is NP-hard in general; SRMP instead runs a
// block-coordinate-ascent schedule over a relaxation graph (package relax)
// of the network's factors, producing a non-decreasing dual lower bound on
// the true minimum alongside a heuristic primal labeling.
//
// Everything under this module is organized by concern:
//
//	cfn/            — variables, factors, cost function networks, solutions
//	matrix/         — dense 2-D float64 storage shared by factor kernels
//	relax/          — the relaxation graph and its per-edge AlignmentIndexing
//	message/        — the per-edge message store and reparametrization engine
//	srmp/           — the forward/backward sweep scheduler
//	uai/            — UAI/LG model file format reader and writer
//	cfnbuilder/     — synthetic cost function networks for tests and demos
//	cmd/srmp-solve/ — a CLI driving the solver over a UAI file or a demo
//
// Typical usage:
//
//	net := cfn.New()
//	a, _ := net.AddVariable(2)
//	b, _ := net.AddVariable(2)
//	net.AddFactor([]int{a, b}, []float64{0, 1, 1, 0})
//	net.Freeze()
//
//	g := relax.New(net, relax.MinimalEdges{})
//	result := srmp.New(net, g).Run(context.Background())
package srmp
