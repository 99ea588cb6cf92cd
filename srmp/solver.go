package srmp

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/dualgraph/srmp/cfn"
	"github.com/dualgraph/srmp/message"
	"github.com/dualgraph/srmp/relax"
)

// Solver runs sequential reweighted message passing over a fixed relaxation
// graph. Construct with New, then call Run. Ported from original_source's
// SRMP struct and its Solver trait implementation (init/run).
type Solver struct {
	net   *cfn.CostFunctionNetwork
	g     *relax.Graph
	store *message.Store

	sequence []int
	attrs    *nodeEdgeAttrs

	initialLowerBound float64
	cfg               config
}

// Result reports the outcome of a Run.
type Result struct {
	BestCost     float64
	BestSolution *cfn.Solution
	LowerBound   float64
	Iterations   int
	Stop         StopReason
}

// New builds a Solver over net's relaxation graph g. net must be the same
// frozen network g was built from. Ported from original_source's
// Solver::init: computes the initial lower bound contribution of any node
// with neither incoming nor outgoing edges (a non-unary factor edge
// unreachable from every variable, which MinimalEdges never produces but
// a future Policy might), then fixes the factor sequence and precomputes
// nodeEdgeAttrs over it.
func New(net *cfn.CostFunctionNetwork, g *relax.Graph, opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	store := message.New(net, g)

	initialLowerBound := 0.0
	for node := 0; node < g.NodeCount(); node++ {
		if !g.IsUnary(node) && !g.HasEdges(node, false) && !g.HasEdges(node, true) {
			initialLowerBound += store.SendInitial(node)
		}
	}

	var sequence []int
	switch {
	case cfg.topological:
		sequence = factorSequenceTopological(g)
	case cfg.sequenceCmp != nil:
		cmp := cfg.sequenceCmp
		sequence = factorSequence(g, func(a, b int) bool { return cmp(g.Origin(a), g.Origin(b)) })
	default:
		sequence = factorSequence(g, nil)
	}

	return &Solver{
		net:               net,
		g:                 g,
		store:             store,
		sequence:          sequence,
		attrs:             newNodeEdgeAttrs(g, sequence),
		initialLowerBound: initialLowerBound,
		cfg:               cfg,
	}
}

// computeSolution extends sol by labeling node beta's scope, restricted to
// the labels sol already carries. Ported from original_source's
// SRMP::compute_solution.
func (sv *Solver) computeSolution(sol *cfn.Solution, beta int) {
	scope := sv.store.NodeScope(beta)
	if sol.NumLabeled(scope) == len(scope) {
		return
	}

	thetaStar := sv.store.ComputeRestrictedReparam(beta, sol)
	origin := sv.g.Origin(beta)
	if origin.Kind == relax.KindVariable {
		sol.SetLabel(origin.Index, message.IndexMin(thetaStar))
		return
	}
	sv.store.UpdateSolutionRestrictedMin(thetaStar, beta, sol)
}

// forwardPass runs one SRMP forward sweep. sol is nil when the caller does
// not want a primal solution extracted this sweep. Ported from
// original_source's SRMP::forward_pass.
func (sv *Solver) forwardPass(sol *cfn.Solution) {
	for _, alpha := range sv.sequence {
		for _, edge := range sv.g.Incoming(alpha) {
			if sv.attrs.edgeIsBackward.Test(uint(edge.ID)) {
				sv.store.Send(edge)
			}
		}

		if sol != nil {
			sv.computeSolution(sol, alpha)
		}

		reparam := sv.store.ComputeReparam(alpha)
		floats.Scale(1.0/float64(sv.attrs.weightForward[alpha]), reparam)
		for _, edge := range sv.g.Incoming(alpha) {
			if sv.attrs.edgeIsForward.Test(uint(edge.ID)) {
				sv.store.SubAssignReparam(reparam, edge)
			}
		}
	}
}

// backwardPass runs one SRMP backward sweep and returns the updated dual
// lower bound. Ported from original_source's SRMP::backward_pass.
func (sv *Solver) backwardPass(sol *cfn.Solution) float64 {
	lowerBound := sv.initialLowerBound

	for i := len(sv.sequence) - 1; i >= 0; i-- {
		alpha := sv.sequence[i]

		for _, edge := range sv.g.Incoming(alpha) {
			if !sv.attrs.edgeIsForward.Test(uint(edge.ID)) && !sv.attrs.edgeIsUpdateLB.Test(uint(edge.ID)) {
				continue
			}
			delta := sv.store.Send(edge)
			if sv.attrs.edgeIsUpdateLB.Test(uint(edge.ID)) {
				lowerBound += delta
			}
		}

		if sol != nil {
			sv.computeSolution(sol, alpha)
		}

		reparam := sv.store.ComputeReparam(alpha)
		floats.Scale(1.0/float64(sv.attrs.weightBackward[alpha]), reparam)
		for _, edge := range sv.g.Incoming(alpha) {
			if sv.attrs.edgeIsBackward.Test(uint(edge.ID)) {
				sv.store.SubAssignReparam(reparam, edge)
			}
		}

		if sv.attrs.nodeIsUpdateLB.Test(uint(alpha)) {
			lowerBound += message.Min(reparam) * float64(sv.attrs.weightUpdateLB[alpha])
		}
	}

	return lowerBound
}

func (sv *Solver) initSolution(computeSolution bool) *cfn.Solution {
	if !computeSolution {
		return nil
	}
	return cfn.NewSolution(sv.net.NumVariables())
}

func (sv *Solver) considerCandidate(haveBest *bool, bestCost *float64, best **cfn.Solution, sol *cfn.Solution) {
	cost, err := sv.net.TotalCost(sol)
	if err != nil {
		// computeSolution only leaves a variable unlabeled when nothing in
		// the relaxation ever reaches it; that can't happen here since
		// every variable has a unary node in its own factor sequence.
		panic("srmp: candidate solution left a variable unlabeled: " + err.Error())
	}
	// NaN sorts last, as in package message's total order: a NaN best cost
	// is replaced by any non-NaN candidate.
	if !*haveBest || cost < *bestCost || (math.IsNaN(*bestCost) && !math.IsNaN(cost)) {
		*haveBest = true
		*bestCost = cost
		*best = sol
	}
}

// Run executes the SRMP forward/backward sweep loop until one of: the
// configured iteration cap, the configured time budget, a lower-bound
// improvement smaller than Eps, or ctx's cancellation (checked once per
// sweep pair, matching the scheduler's single-threaded §5 model). Ported
// from original_source's Solver::run.
func (sv *Solver) Run(ctx context.Context) Result {
	start := time.Now()

	iteration := 0
	iterSolution := sv.cfg.computeSolutionPeriod
	computeSolution := sv.cfg.computeSolutionPeriod > 0 || sv.cfg.maxIterations == 1
	currentLowerBound := 0.0

	var haveBest bool
	var bestCost float64
	var best *cfn.Solution

	stop := StopMaxIterations

	for {
		previousLowerBound := currentLowerBound

		forwardSolution := sv.initSolution(computeSolution)
		sv.forwardPass(forwardSolution)
		if forwardSolution != nil {
			sv.considerCandidate(&haveBest, &bestCost, &best, forwardSolution)
		}

		backwardSolution := sv.initSolution(computeSolution)
		currentLowerBound = sv.backwardPass(backwardSolution)
		if backwardSolution != nil {
			sv.considerCandidate(&haveBest, &bestCost, &best, backwardSolution)
		}

		elapsed := time.Since(start)

		iteration++
		if computeSolution && sv.cfg.computeSolutionPeriod > 0 {
			iterSolution -= sv.cfg.computeSolutionPeriod
		}
		iterSolution++
		computeSolution = (sv.cfg.computeSolutionPeriod > 0 && iterSolution == sv.cfg.computeSolutionPeriod) ||
			iteration+1 == sv.cfg.maxIterations

		if iteration >= sv.cfg.maxIterations {
			stop = StopMaxIterations
			break
		}
		if elapsed >= sv.cfg.timeMax {
			stop = StopTimeMax
			break
		}
		if iteration > 1 && currentLowerBound < previousLowerBound+sv.cfg.eps {
			stop = StopConverged
			break
		}
		if err := ctx.Err(); err != nil {
			stop = StopContextCanceled
			break
		}
	}

	sv.cfg.logger.WithFields(logrus.Fields{
		"iterations":  iteration,
		"lower_bound": currentLowerBound,
		"best_cost":   bestCost,
		"stop":        stop.String(),
	}).Info("srmp: run finished")

	return Result{
		BestCost:     bestCost,
		BestSolution: best,
		LowerBound:   currentLowerBound,
		Iterations:   iteration,
		Stop:         stop,
	}
}
