package cfnbuilder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dualgraph/srmp/relax"
	"github.com/dualgraph/srmp/srmp"
)

func TestFrustratedCycleRejectsTooFewVariables(t *testing.T) {
	_, err := FrustratedCycle(2)
	require.ErrorIs(t, err, ErrTooFewVariables)
}

func TestFrustratedCycleSolvesToOptimalCostOne(t *testing.T) {
	net, err := FrustratedCycle(3)
	require.NoError(t, err)

	g := relax.New(net, relax.MinimalEdges{})
	result := srmp.New(net, g, srmp.WithMaxIterations(200), srmp.WithEps(1e-9)).Run(context.Background())

	require.InDelta(t, 1.0, result.BestCost, 1e-6)
}

func TestGridPottsBuildsExpectedVariableAndFactorCount(t *testing.T) {
	net, err := GridPotts(2, 3, 2)
	require.NoError(t, err)

	require.Equal(t, 6, net.NumVariables())
	// 2*3 grid: 2 rows * 2 horizontal edges + 3 cols * 1 vertical edge = 7.
	require.Equal(t, 7, net.NumFactors())
}

func TestRandomRequiresRandSource(t *testing.T) {
	_, err := Random(4)
	require.ErrorIs(t, err, ErrNeedRandSource)
}

func TestRandomIsReproducibleWithSameSeed(t *testing.T) {
	net1, err := Random(5, WithSeed(42))
	require.NoError(t, err)
	net2, err := Random(5, WithSeed(42))
	require.NoError(t, err)

	require.Equal(t, net1.NumVariables(), net2.NumVariables())
	for v := 0; v < net1.NumVariables(); v++ {
		require.Equal(t, net1.DomainSize(v), net2.DomainSize(v))
	}
	for f := 0; f < net1.NumFactors(); f++ {
		require.Equal(t, net1.Factor(f).CloneFunctionTable(), net2.Factor(f).CloneFunctionTable())
	}
}
