package message

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dualgraph/srmp/cfn"
	"github.com/dualgraph/srmp/relax"
)

// buildPairNetwork builds a tiny network: 5 binary variables, one pairwise
// factor over {2,3}, everything else carrying only the zero-valued unary
// placeholders relax.New materializes.
func buildPairNetwork(t *testing.T, table []float64) (*cfn.CostFunctionNetwork, *relax.Graph) {
	t.Helper()
	net := cfn.New()
	for i := 0; i < 5; i++ {
		_, err := net.AddVariable(2)
		require.NoError(t, err)
	}
	_, err := net.AddFactor([]int{2, 3}, table)
	require.NoError(t, err)
	net.Freeze()
	return net, relax.New(net, relax.MinimalEdges{})
}

func TestNewZeroesEveryMessage(t *testing.T) {
	net, g := buildPairNetwork(t, []float64{3, 4, 0, 1})
	s := New(net, g)
	for node := 0; node < g.NodeCount(); node++ {
		for _, e := range g.Outgoing(node) {
			for _, v := range s.Message(e) {
				require.Zero(t, v)
			}
		}
	}
}

func TestSendNormalizesToZeroMinimum(t *testing.T) {
	net, g := buildPairNetwork(t, []float64{3, 4, 0, 1})
	s := New(net, g)
	alphaNode := g.NodeForFactor(0)
	edges := g.Outgoing(alphaNode)
	require.Len(t, edges, 2)

	delta := s.Send(edges[0])
	require.GreaterOrEqual(t, delta, 0.0)
	require.Equal(t, 0.0, minTotalOrder(s.Message(edges[0])))
}

// TestRestrictedMinScenario5 reproduces spec.md's concrete restricted-
// minimization scenario: a binary pairwise factor over {2,3} with table
// [3,4,0,1] (row-major, variable 3 fastest-varying), minimized over the
// free variable 2 for each label of variable 3 — expected [0, 1].
func TestRestrictedMinScenario5(t *testing.T) {
	net, g := buildPairNetwork(t, []float64{3, 4, 0, 1})
	s := New(net, g)

	sol := cfn.NewSolution(5)
	sol.SetLabel(0, 0)
	sol.SetLabel(1, 1)

	alphaNode := g.NodeForFactor(0)
	var edgeToVar3 relax.Edge
	for _, e := range g.Outgoing(alphaNode) {
		if g.Origin(e.To).Index == 3 {
			edgeToVar3 = e
		}
	}
	require.NotNil(t, edgeToVar3.Align)

	restricted := s.SendRestricted(edgeToVar3, sol)
	require.Equal(t, []float64{0, 1}, restricted)
}

func TestUpdateSolutionRestrictedMinLabelsUnaryNode(t *testing.T) {
	net, g := buildPairNetwork(t, []float64{3, 4, 0, 1})
	s := New(net, g)
	sol := cfn.NewSolution(5)

	node2 := g.NodeForVariable(2)
	reparam := []float64{5, 1} // label 1 is cheaper
	s.UpdateSolutionRestrictedMin(reparam, node2, sol)
	require.Equal(t, 1, sol.Label(2))
}

func TestTotalOrderLessSortsNaNLast(t *testing.T) {
	require.True(t, totalOrderLess(1.0, math.NaN()))
	require.False(t, totalOrderLess(math.NaN(), 1.0))
	require.False(t, totalOrderLess(math.NaN(), math.NaN()))
	require.True(t, totalOrderLess(-1.0, 0.0))
}
