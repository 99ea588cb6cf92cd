package cfnbuilder

import "github.com/dualgraph/srmp/cfn"

// FrustratedCycle builds an n-cycle of binary variables with no unary
// factors and alternating equality/inequality pairwise factors between
// consecutive variables (variable n-1 wraps back to variable 0),
// generalizing spec.md §8 scenario 1's 3-cycle. When n/2 is even, the
// closing factor takes the opposite kind, so the cycle always has an odd
// number of [x = y] factors and no labeling satisfies every factor: the
// optimal cost is 1 for every n. n must be at least 3: with n = 2 both
// pairwise factors would share the scope (0, 1), and package cfn stores
// them as two distinct factors over the same pair rather than a cycle.
// Unlike GridPotts and Random, this topology has no tunable
// construction parameters, so it takes no Option.
func FrustratedCycle(n int) (*cfn.CostFunctionNetwork, error) {
	if n < 3 {
		return nil, ErrTooFewVariables
	}

	net := cfn.New()
	vars := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := net.AddVariable(2)
		if err != nil {
			return nil, err
		}
		vars[i] = v
	}

	neq := []float64{0, 1, 1, 0}
	eq := []float64{1, 0, 0, 1}

	for i := 0; i < n; i++ {
		a, b := vars[i], vars[(i+1)%n]
		scope := []int{a, b}
		if a > b {
			scope = []int{b, a}
		}
		useEq := i%2 != 0
		if i == n-1 && (n/2)%2 == 0 {
			useEq = !useEq
		}
		table := neq
		if useEq {
			table = eq
		}
		if _, err := net.AddFactor(scope, table); err != nil {
			return nil, err
		}
	}

	net.Freeze()
	return net, nil
}
