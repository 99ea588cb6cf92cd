package cfn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dualgraph/srmp/cfn"
)

func TestAddVariableRejectsZeroDomain(t *testing.T) {
	net := cfn.New()
	_, err := net.AddVariable(0)
	require.ErrorIs(t, err, cfn.ErrZeroDomain)
}

func TestAddFactorValidatesScopeAndTableLength(t *testing.T) {
	net := cfn.New()
	a, _ := net.AddVariable(2)
	b, _ := net.AddVariable(2)

	_, err := net.AddFactor([]int{b, a}, []float64{1, 2, 3, 4})
	require.ErrorIs(t, err, cfn.ErrMalformedScope)

	_, err = net.AddFactor([]int{a, b}, []float64{1, 2, 3})
	require.ErrorIs(t, err, cfn.ErrTableLengthMismatch)
}

func TestAddFactorUnaryReplaceSemantics(t *testing.T) {
	net := cfn.New()
	v, _ := net.AddVariable(3)

	idx1, err := net.AddFactor([]int{v}, []float64{1, 2, 3})
	require.NoError(t, err)

	idx2, err := net.AddFactor([]int{v}, []float64{5, 6, 7})
	require.NoError(t, err)
	require.Equal(t, idx1, idx2, "replacing the unary factor must reuse its index")
	require.Equal(t, 1, net.NumFactors())

	sol := cfn.NewSolution(1)
	sol.SetLabel(v, 1)
	cost, err := net.FactorCost(idx2, sol)
	require.NoError(t, err)
	require.Equal(t, 6.0, cost)
}

func TestAddFactorArity2UsesPairwiseKernel(t *testing.T) {
	net := cfn.New()
	a, _ := net.AddVariable(2)
	b, _ := net.AddVariable(3)
	idx, err := net.AddFactor([]int{a, b}, []float64{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)

	sol := cfn.NewSolution(2)
	sol.SetLabel(a, 1)
	sol.SetLabel(b, 2)
	cost, err := net.FactorCost(idx, sol)
	require.NoError(t, err)
	require.Equal(t, 5.0, cost) // row-major: a=1,b=2 -> index 1*3+2=5
}

func TestTotalCostRequiresFullLabeling(t *testing.T) {
	net := cfn.New()
	a, _ := net.AddVariable(2)
	b, _ := net.AddVariable(2)
	_, _ = net.AddFactor([]int{a, b}, []float64{0, 10, 10, 0})

	sol := cfn.NewSolution(2)
	sol.SetLabel(a, 0)
	_, err := net.TotalCost(sol)
	require.ErrorIs(t, err, cfn.ErrUnlabeledVariable)

	sol.SetLabel(b, 0)
	cost, err := net.TotalCost(sol)
	require.NoError(t, err)
	require.Equal(t, 0.0, cost)
}

func TestAddPottsFactor(t *testing.T) {
	net := cfn.New()
	a, _ := net.AddVariable(2)
	b, _ := net.AddVariable(2)
	idx, err := net.AddPottsFactor(a, b, 3.0)
	require.NoError(t, err)

	sol := cfn.NewSolution(2)
	sol.SetLabel(a, 1)
	sol.SetLabel(b, 1)
	cost, err := net.FactorCost(idx, sol)
	require.NoError(t, err)
	require.Equal(t, 3.0, cost)

	sol.SetLabel(b, 0)
	cost, err = net.FactorCost(idx, sol)
	require.NoError(t, err)
	require.Equal(t, 0.0, cost)
}

// scenario3 builds the three-variable, four-factor fixture from the
// concrete scenario 3 of the specification: domains (3,4,5), an all-zeros
// ternary factor over (0,1,2), and three unary factors.
func scenario3(t *testing.T) (*cfn.CostFunctionNetwork, int, int, int) {
	t.Helper()
	net := cfn.New()
	a, _ := net.AddVariable(3)
	b, _ := net.AddVariable(4)
	c, _ := net.AddVariable(5)
	_, err := net.AddFactor([]int{a, b, c}, make([]float64, 3*4*5))
	require.NoError(t, err)
	_, err = net.AddFactor([]int{a}, []float64{1, 2, 3})
	require.NoError(t, err)
	_, err = net.AddFactor([]int{b}, []float64{0, 0, 0, 0})
	require.NoError(t, err)
	_, err = net.AddFactor([]int{c}, []float64{11, 12, 13, 14, 15})
	require.NoError(t, err)
	return net, a, b, c
}

func TestScenario3OptimalCost(t *testing.T) {
	net, a, b, c := scenario3(t)
	sol := cfn.NewSolution(net.NumVariables())
	sol.SetLabel(a, 0)
	sol.SetLabel(b, 0)
	sol.SetLabel(c, 0)
	cost, err := net.TotalCost(sol)
	require.NoError(t, err)
	require.Equal(t, 12.0, cost)
}

func TestEnsureUnaryPlaceholderMaterializesZeroValuedUnary(t *testing.T) {
	net := cfn.New()
	v, _ := net.AddVariable(3)
	require.Equal(t, -1, net.UnaryFactorIndex(v))

	idx := net.EnsureUnaryPlaceholder(v)
	require.Equal(t, idx, net.UnaryFactorIndex(v))
	require.Equal(t, []float64{0, 0, 0}, net.Factor(idx).CloneFunctionTable())

	// Calling it again returns the same factor, not a second one.
	require.Equal(t, idx, net.EnsureUnaryPlaceholder(v))
	require.Equal(t, 1, net.NumFactors())
}

func TestEnsureUnaryPlaceholderLeavesExistingUnaryAlone(t *testing.T) {
	net := cfn.New()
	v, _ := net.AddVariable(2)
	want, err := net.AddFactor([]int{v}, []float64{3, 4})
	require.NoError(t, err)

	got := net.EnsureUnaryPlaceholder(v)
	require.Equal(t, want, got)
	require.Equal(t, []float64{3, 4}, net.Factor(got).CloneFunctionTable())
}

func TestSolutionNumLabeled(t *testing.T) {
	sol := cfn.NewSolution(3)
	require.Equal(t, 0, sol.NumLabeled([]int{0, 1, 2}))

	sol.SetLabel(0, 1)
	sol.SetLabel(2, 0)
	require.Equal(t, 2, sol.NumLabeled([]int{0, 1, 2}))
	require.Equal(t, 1, sol.NumLabeled([]int{1}))
}
