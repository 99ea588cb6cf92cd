package cfnbuilder

import "github.com/dualgraph/srmp/cfn"

// GridPotts builds a rows x cols grid of variables, each with the same
// domain size, connected to its horizontal and vertical neighbors by Potts
// pairwise factors (cost pottsCost when the two labels agree, 0 otherwise;
// see WithPottsCost), grounded on the original source's factor_types/potts.rs
// semantics carried into cfn.AddPottsFactor. Variables are numbered
// row-major: variable index = row*cols + col.
func GridPotts(rows, cols, domainSize int, opts ...Option) (*cfn.CostFunctionNetwork, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrTooFewVariables
	}
	if domainSize < 1 {
		return nil, ErrInvalidDomainSize
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	net := cfn.New()
	index := func(r, c int) int { return r*cols + c }
	for i := 0; i < rows*cols; i++ {
		if _, err := net.AddVariable(domainSize); err != nil {
			return nil, err
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := index(r, c)
			if c+1 < cols {
				right := index(r, c+1)
				if _, err := net.AddPottsFactor(v, right, cfg.pottsCost); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				down := index(r+1, c)
				if _, err := net.AddPottsFactor(v, down, cfg.pottsCost); err != nil {
					return nil, err
				}
			}
		}
	}

	net.Freeze()
	return net, nil
}
