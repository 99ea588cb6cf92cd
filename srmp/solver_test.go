package srmp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dualgraph/srmp/cfn"
	"github.com/dualgraph/srmp/relax"
)

// buildFrustratedCycle builds spec.md's concrete scenario 1: three binary
// variables a, b, c with no unary factors and pairwise constraints
// phi_ab(x,y)=[x!=y], phi_bc(x,y)=[x!=y], phi_ca(x,y)=[x=y]. Every labeling
// violates exactly one constraint, so the optimal cost is 1.
func buildFrustratedCycle(t *testing.T) *cfn.CostFunctionNetwork {
	t.Helper()
	net := cfn.New()
	a, err := net.AddVariable(2)
	require.NoError(t, err)
	b, err := net.AddVariable(2)
	require.NoError(t, err)
	c, err := net.AddVariable(2)
	require.NoError(t, err)

	neq := []float64{0, 1, 1, 0}
	eq := []float64{1, 0, 0, 1}

	_, err = net.AddFactor([]int{a, b}, neq)
	require.NoError(t, err)
	_, err = net.AddFactor([]int{b, c}, neq)
	require.NoError(t, err)
	_, err = net.AddFactor([]int{a, c}, eq)
	require.NoError(t, err)

	net.Freeze()
	return net
}

func TestSolverFrustratedCycleConverges(t *testing.T) {
	net := buildFrustratedCycle(t)
	g := relax.New(net, relax.MinimalEdges{})

	sv := New(net, g, WithMaxIterations(100), WithEps(1e-8))
	result := sv.Run(context.Background())

	require.InDelta(t, 1.0, result.LowerBound, 1e-6)
	require.NotNil(t, result.BestSolution)
	require.InDelta(t, 1.0, result.BestCost, 1e-9)
	require.LessOrEqual(t, result.Iterations, 100)
}

func TestSolverTopologicalOrderAlsoConverges(t *testing.T) {
	net := buildFrustratedCycle(t)
	g := relax.New(net, relax.MinimalEdges{})

	sv := New(net, g, WithMaxIterations(100), WithEps(1e-8), WithTopologicalOrder())
	result := sv.Run(context.Background())

	require.InDelta(t, 1.0, result.LowerBound, 1e-6)
	require.InDelta(t, 1.0, result.BestCost, 1e-9)
}

func TestSolverStopsOnMaxIterations(t *testing.T) {
	net := buildFrustratedCycle(t)
	g := relax.New(net, relax.MinimalEdges{})

	sv := New(net, g, WithMaxIterations(1), WithEps(0))
	result := sv.Run(context.Background())

	require.Equal(t, StopMaxIterations, result.Stop)
	require.Equal(t, 1, result.Iterations)
}

func TestSolverStopsOnContextCancellation(t *testing.T) {
	net := buildFrustratedCycle(t)
	g := relax.New(net, relax.MinimalEdges{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sv := New(net, g, WithMaxIterations(100))
	result := sv.Run(ctx)

	require.Equal(t, StopContextCanceled, result.Stop)
	require.Equal(t, 1, result.Iterations)
}

func TestFactorSequenceDefaultIsAscendingNodeIndex(t *testing.T) {
	net := buildFrustratedCycle(t)
	g := relax.New(net, relax.MinimalEdges{})

	seq := factorSequence(g, nil)
	for i := 1; i < len(seq); i++ {
		require.Less(t, seq[i-1], seq[i])
	}
}

// Under MinimalEdges no non-unary factor node ever has an incoming edge (all
// its edges are outgoing, to its scope's variables), so factorSequence and
// factorSequenceTopological both resolve to exactly the variable nodes —
// only a relaxation with edges between two non-unary factors would ever put
// a factor node in the sequence. This test pins that set-equality, not a
// specific order.
func TestFactorSequenceTopologicalSameMembersAsDefault(t *testing.T) {
	net := buildFrustratedCycle(t)
	g := relax.New(net, relax.MinimalEdges{})

	def := factorSequence(g, nil)
	topo := factorSequenceTopological(g)
	require.ElementsMatch(t, def, topo)
	for _, node := range topo {
		require.True(t, g.IsUnary(node))
	}
}
