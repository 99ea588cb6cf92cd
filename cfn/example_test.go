package cfn_test

import (
	"fmt"

	"github.com/dualgraph/srmp/cfn"
)

// ExampleCostFunctionNetwork_TotalCost builds the two-variable, one-factor
// fixture of concrete scenario 2: a binary agreement cost, optimal at (0,0)
// or (1,1).
func ExampleCostFunctionNetwork_TotalCost() {
	net := cfn.New()
	x, _ := net.AddVariable(2)
	y, _ := net.AddVariable(2)
	_, _ = net.AddFactor([]int{x, y}, []float64{0, 10, 10, 0})
	net.Freeze()

	sol := cfn.NewSolution(net.NumVariables())
	sol.SetLabel(x, 0)
	sol.SetLabel(y, 0)
	cost, _ := net.TotalCost(sol)
	fmt.Println(cost)

	// Output:
	// 0
}
