package srmp_test

import (
	"context"
	"fmt"

	"github.com/dualgraph/srmp/cfn"
	"github.com/dualgraph/srmp/relax"
	"github.com/dualgraph/srmp/srmp"
)

// ExampleSolver_Run solves spec.md's concrete scenario 1: a frustrated
// binary 3-cycle whose optimal energy is 1.
func ExampleSolver_Run() {
	net := cfn.New()
	a, _ := net.AddVariable(2)
	b, _ := net.AddVariable(2)
	c, _ := net.AddVariable(2)

	neq := []float64{0, 1, 1, 0}
	eq := []float64{1, 0, 0, 1}
	_, _ = net.AddFactor([]int{a, b}, neq)
	_, _ = net.AddFactor([]int{b, c}, neq)
	_, _ = net.AddFactor([]int{a, c}, eq)
	net.Freeze()

	g := relax.New(net, relax.MinimalEdges{})
	result := srmp.New(net, g, srmp.WithMaxIterations(100), srmp.WithEps(1e-8)).
		Run(context.Background())

	fmt.Printf("%.0f\n", result.BestCost)

	// Output:
	// 1
}
