package relax

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dualgraph/srmp/cfn"
)

// buildScenario3 reproduces spec.md's scenario 3: three variables with
// domains (3,4,5), one ternary factor over (0,1,2), plus unary factors on
// each variable.
func buildScenario3(t *testing.T) *cfn.CostFunctionNetwork {
	t.Helper()
	net := cfn.New()
	v0, err := net.AddVariable(3)
	require.NoError(t, err)
	v1, err := net.AddVariable(4)
	require.NoError(t, err)
	v2, err := net.AddVariable(5)
	require.NoError(t, err)

	_, err = net.AddFactor([]int{v0, v1, v2}, make([]float64, 3*4*5))
	require.NoError(t, err)
	_, err = net.AddFactor([]int{v0}, []float64{1, 2, 3})
	require.NoError(t, err)
	_, err = net.AddFactor([]int{v1}, []float64{0, 0, 0, 0})
	require.NoError(t, err)
	_, err = net.AddFactor([]int{v2}, []float64{11, 12, 13, 14, 15})
	require.NoError(t, err)

	net.Freeze()
	return net
}

func TestNewPanicsOnUnfrozenNetwork(t *testing.T) {
	net := cfn.New()
	_, err := net.AddVariable(2)
	require.NoError(t, err)
	require.Panics(t, func() { New(net, MinimalEdges{}) })
}

func TestMinimalEdgesNodeNumbering(t *testing.T) {
	net := buildScenario3(t)
	g := New(net, MinimalEdges{})

	require.Equal(t, 4, g.NodeCount()) // 3 variables + 1 ternary factor

	for v := 0; v < 3; v++ {
		require.Equal(t, v, g.NodeForVariable(v))
		require.True(t, g.IsUnary(g.NodeForVariable(v)))
	}
	require.Equal(t, 3, g.NodeForFactor(0))
	require.False(t, g.IsUnary(3))

	// Unary factors (indices 1,2,3 in the network) have no distinct node.
	require.Equal(t, -1, g.NodeForFactor(1))
	require.Equal(t, -1, g.NodeForFactor(2))
	require.Equal(t, -1, g.NodeForFactor(3))
}

func TestMinimalEdgesEdgeSet(t *testing.T) {
	net := buildScenario3(t)
	g := New(net, MinimalEdges{})

	require.Equal(t, 3, g.EdgeCount())

	ternaryNode := g.NodeForFactor(0)
	out := g.Outgoing(ternaryNode)
	require.Len(t, out, 3)

	seenTargets := make(map[int]bool)
	for _, e := range out {
		require.Equal(t, ternaryNode, e.From)
		seenTargets[e.To] = true
		require.NotNil(t, e.Align)
		require.Len(t, e.Align.IndexFirst, net.DomainSize(g.Origin(e.To).Index))
	}
	require.Len(t, seenTargets, 3)

	for v := 0; v < 3; v++ {
		in := g.Incoming(g.NodeForVariable(v))
		require.Len(t, in, 1)
		require.Equal(t, ternaryNode, in[0].From)
	}
}
