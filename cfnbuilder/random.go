package cfnbuilder

import "github.com/dualgraph/srmp/cfn"

// Random builds n variables with random domain sizes in [2,4], a random
// pairwise factor between each consecutive pair of variables, and — when
// n >= 3 — one random ternary factor over the last three variables, so
// fuzz/property tests exercise both the pairwise and general dense-table
// factor kernels in the same network. Requires WithSeed or WithRand;
// returns ErrNeedRandSource otherwise, matching the teacher's
// RandomSparse/RandomRegular "RNG required" contract.
func Random(n int, opts ...Option) (*cfn.CostFunctionNetwork, error) {
	if n < 1 {
		return nil, ErrTooFewVariables
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}

	net := cfn.New()
	vars := make([]int, n)
	domains := make([]int, n)
	for i := 0; i < n; i++ {
		d := 2 + cfg.rng.Intn(3)
		v, err := net.AddVariable(d)
		if err != nil {
			return nil, err
		}
		vars[i] = v
		domains[i] = d
	}

	randomTable := func(size int) []float64 {
		table := make([]float64, size)
		for i := range table {
			table[i] = cfg.rng.Float64()
		}
		return table
	}

	for i := 0; i+1 < n; i++ {
		table := randomTable(domains[i] * domains[i+1])
		if _, err := net.AddFactor([]int{vars[i], vars[i+1]}, table); err != nil {
			return nil, err
		}
	}

	if n >= 3 {
		scope := []int{vars[n-3], vars[n-2], vars[n-1]}
		table := randomTable(domains[n-3] * domains[n-2] * domains[n-1])
		if _, err := net.AddFactor(scope, table); err != nil {
			return nil, err
		}
	}

	net.Freeze()
	return net, nil
}
