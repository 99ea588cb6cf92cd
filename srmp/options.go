package srmp

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dualgraph/srmp/relax"
)

// config holds resolved solver configuration; assembled by New from
// defaults plus every supplied Option.
type config struct {
	maxIterations         int
	timeMax               time.Duration
	eps                   float64
	computeSolutionPeriod int
	sequenceCmp           func(a, b relax.FactorOrigin) bool
	topological           bool
	logger                *logrus.Logger
}

// defaultConfig mirrors original_source's SolverOptions::default(): 10000
// iterations, 20 minute time budget, 1e-8 epsilon, recompute a primal
// solution every iteration.
func defaultConfig() config {
	return config{
		maxIterations:         10000,
		timeMax:               20 * time.Minute,
		eps:                   1e-8,
		computeSolutionPeriod: 1,
		logger:                logrus.StandardLogger(),
	}
}

// Option customizes Solver construction. Option constructors validate and
// panic on meaningless input, matching the teacher's functional-options
// idiom (package builder): the solver's core loop itself never panics on
// caller input.
type Option func(*config)

// WithMaxIterations sets the hard cap on sweep pairs. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("srmp: WithMaxIterations requires a positive iteration count")
	}
	return func(c *config) { c.maxIterations = n }
}

// WithTimeMax sets the wall-clock budget, checked once per sweep boundary.
// Panics if d <= 0.
func WithTimeMax(d time.Duration) Option {
	if d <= 0 {
		panic("srmp: WithTimeMax requires a positive duration")
	}
	return func(c *config) { c.timeMax = d }
}

// WithEps sets the minimum per-iteration lower-bound improvement below
// which Run stops. Panics if eps < 0.
func WithEps(eps float64) Option {
	if eps < 0 {
		panic("srmp: WithEps requires a non-negative epsilon")
	}
	return func(c *config) { c.eps = eps }
}

// WithComputeSolutionPeriod sets how many iterations elapse between primal
// extractions; 0 disables primal extraction entirely (it is still performed
// once on the very last iteration, matching original_source's
// `iteration + 1 == max_iterations` override). Panics if n < 0.
func WithComputeSolutionPeriod(n int) Option {
	if n < 0 {
		panic("srmp: WithComputeSolutionPeriod requires a non-negative period")
	}
	return func(c *config) { c.computeSolutionPeriod = n }
}

// WithSequenceOrder overrides FactorSequence's ordering comparator. The
// default (no option, or WithTopologicalOrder not given) is ascending
// relaxation node index, matching spec.md's stated default; this hook
// exists because spec.md leaves the ordering an explicit open question.
// Panics if cmp is nil.
func WithSequenceOrder(cmp func(a, b relax.FactorOrigin) bool) Option {
	if cmp == nil {
		panic("srmp: WithSequenceOrder(nil)")
	}
	return func(c *config) { c.sequenceCmp = cmp; c.topological = false }
}

// WithTopologicalOrder orders FactorSequence by a topological order of the
// relaxation graph instead of by node index. Mutually exclusive with
// WithSequenceOrder; whichever is applied last wins.
func WithTopologicalOrder() Option {
	return func(c *config) { c.topological = true; c.sequenceCmp = nil }
}

// WithLogger overrides the logger Run uses for its end-of-run summary
// record (iterations, lower bound, best cost, stop reason); Run logs
// nothing per sweep. Panics if lg is nil.
func WithLogger(lg *logrus.Logger) Option {
	if lg == nil {
		panic("srmp: WithLogger(nil)")
	}
	return func(c *config) { c.logger = lg }
}
