package cfn

import "fmt"

// variable records the bookkeeping the teacher's own core.Vertex adjacency
// idiom would keep for a node: its domain size, the index of its unary
// factor if any, and which non-unary factors touch it. The last field
// mirrors original_source's Variable.in_non_unary_factors — spec.md never
// names it; it is exposed through NonUnaryFactorIndices, while relax.New
// builds its edges from each factor's own scope.
type variable struct {
	domainSize int
	unaryIdx   int   // index into factors, or -1
	nonUnary   []int // indices into factors with arity >= 2 touching this variable
}

// CostFunctionNetwork owns the variables and factors of a cost function
// network. It is built incrementally via AddVariable/AddFactor and must be
// Freeze'd before a relaxation graph is constructed over it (package relax).
type CostFunctionNetwork struct {
	variables []variable
	factors   []Factor
	frozen    bool
}

// New returns an empty CostFunctionNetwork.
func New() *CostFunctionNetwork {
	return &CostFunctionNetwork{}
}

// NumVariables returns the number of variables added so far.
func (c *CostFunctionNetwork) NumVariables() int { return len(c.variables) }

// NumFactors returns the number of factors added so far.
func (c *CostFunctionNetwork) NumFactors() int { return len(c.factors) }

// DomainSize returns the domain size of variable v.
func (c *CostFunctionNetwork) DomainSize(v int) int { return c.variables[v].domainSize }

// Factor returns the factor at index f.
func (c *CostFunctionNetwork) Factor(f int) Factor { return c.factors[f] }

// UnaryFactorIndex returns the factor index of v's unary factor, or -1 if v
// has none. A missing unary factor is not an error: relax.New gives every
// such variable a zero-valued placeholder through EnsureUnaryPlaceholder
// before any message is computed.
func (c *CostFunctionNetwork) UnaryFactorIndex(v int) int { return c.variables[v].unaryIdx }

// NonUnaryFactorIndices returns the indices of non-unary factors whose scope
// includes v, in the order they were added.
func (c *CostFunctionNetwork) NonUnaryFactorIndices(v int) []int { return c.variables[v].nonUnary }

// Frozen reports whether Freeze has been called.
func (c *CostFunctionNetwork) Frozen() bool { return c.frozen }

// Freeze marks construction complete. relax.New panics if given a network
// that is not frozen, mirroring the teacher's "validate early" philosophy
// while keeping the core single-threaded (§5).
func (c *CostFunctionNetwork) Freeze() { c.frozen = true }

// AddVariable adds a new variable with the given domain size and returns its
// (monotonically increasing) index. Panics if the network is already
// frozen: adding a variable after construction has been declared complete
// is a programmer error, not recoverable user input.
func (c *CostFunctionNetwork) AddVariable(domainSize int) (int, error) {
	if c.frozen {
		panic("cfn: AddVariable called on a frozen network")
	}
	if domainSize < 1 {
		return 0, ErrZeroDomain
	}
	c.variables = append(c.variables, variable{domainSize: domainSize, unaryIdx: -1})
	return len(c.variables) - 1, nil
}

// validateScope checks that scope is strictly increasing and every entry is
// a valid variable index, and returns the corresponding domain sizes.
func (c *CostFunctionNetwork) validateScope(scope []int) ([]int, error) {
	domains := make([]int, len(scope))
	prev := -1
	for i, v := range scope {
		if v <= prev || v < 0 || v >= len(c.variables) {
			return nil, ErrMalformedScope
		}
		prev = v
		domains[i] = c.variables[v].domainSize
	}
	return domains, nil
}

// AddFactor adds a factor over scope with the given dense function table.
// scope must be strictly increasing and in range; len(table) must equal the
// product of the scope's domain sizes. Arity-1 scopes replace any existing
// unary factor for that variable (spec.md §3: "adding a second replaces the
// first"). Arity-2 scopes whose table entries are all finite are stored as
// pairwiseTable automatically; any other arity, and an arity-2 table with a
// NaN or ±Inf entry, uses the general denseTable kernel. Returns the factor's
// index (for arity-1 replacement, the pre-existing index is reused).
func (c *CostFunctionNetwork) AddFactor(scope []int, table []float64) (int, error) {
	if c.frozen {
		panic("cfn: AddFactor called on a frozen network")
	}
	domains, err := c.validateScope(scope)
	if err != nil {
		return 0, err
	}
	if tableLen(domains) != len(table) {
		return 0, ErrTableLengthMismatch
	}

	finite := true
	for _, v := range table {
		finite = finite && isFinite(v)
	}

	var f Factor
	switch {
	case len(scope) == 2 && finite:
		f, err = newPairwiseTable(scope[0], scope[1], domains[0], domains[1], table)
		if err != nil {
			return 0, err
		}
	default:
		owned := make([]float64, len(table))
		copy(owned, table)
		f = newDenseTable(append([]int(nil), scope...), domains, owned)
	}

	return c.insertFactor(scope, f), nil
}

// AddPottsFactor adds an explicit Potts factor over (v0, v1): cost when the
// two labels are equal, zero otherwise. v0 must be strictly less than v1.
func (c *CostFunctionNetwork) AddPottsFactor(v0, v1 int, cost float64) (int, error) {
	if c.frozen {
		panic("cfn: AddPottsFactor called on a frozen network")
	}
	scope := []int{v0, v1}
	domains, err := c.validateScope(scope)
	if err != nil {
		return 0, err
	}
	f := newPotts(v0, v1, domains[0], domains[1], cost)
	return c.insertFactor(scope, f), nil
}

// AddUniformFactor adds an explicit uniform-constant factor over scope: the
// same scalar value for every labeling.
func (c *CostFunctionNetwork) AddUniformFactor(scope []int, value float64) (int, error) {
	if c.frozen {
		panic("cfn: AddUniformFactor called on a frozen network")
	}
	domains, err := c.validateScope(scope)
	if err != nil {
		return 0, err
	}
	f := newUniformConstant(append([]int(nil), scope...), domains, value)
	return c.insertFactor(scope, f), nil
}

// insertFactor records f under scope, replacing an existing unary factor in
// place if arity == 1, else appending and updating the touched variables'
// non-unary factor lists.
func (c *CostFunctionNetwork) insertFactor(scope []int, f Factor) int {
	if len(scope) == 1 {
		v := scope[0]
		if idx := c.variables[v].unaryIdx; idx >= 0 {
			c.factors[idx] = f
			return idx
		}
		c.factors = append(c.factors, f)
		idx := len(c.factors) - 1
		c.variables[v].unaryIdx = idx
		return idx
	}

	c.factors = append(c.factors, f)
	idx := len(c.factors) - 1
	if len(scope) >= 2 {
		for _, v := range scope {
			c.variables[v].nonUnary = append(c.variables[v].nonUnary, idx)
		}
	}
	return idx
}

// EnsureUnaryPlaceholder returns v's unary factor index, materializing a
// zero-valued uniformConstant unary factor for v first if it has none. This
// is the one mutation allowed on a frozen network: relax.New calls it while
// building the relaxation graph, since every relaxation node needs a unary
// factor to carry its messages, and spec.md §4.C requires a zero-valued
// placeholder for variables the caller never gave one (a frozen network
// otherwise never gains factors after Freeze).
func (c *CostFunctionNetwork) EnsureUnaryPlaceholder(v int) int {
	if idx := c.variables[v].unaryIdx; idx >= 0 {
		return idx
	}
	scope := []int{v}
	f := newUniformConstant(scope, []int{c.variables[v].domainSize}, 0)
	return c.insertFactor(scope, f)
}

// FactorCost returns factor f's value for the labels sol assigns to
// scope(f), or ErrUnlabeledVariable if any scope variable is unlabeled.
func (c *CostFunctionNetwork) FactorCost(f int, sol *Solution) (float64, error) {
	factor := c.factors[f]
	labels, ok := sol.scopeLabels(factor.Scope())
	if !ok {
		return 0, ErrUnlabeledVariable
	}
	return factor.Cost(labels), nil
}

// TotalCost returns the sum of FactorCost over every factor, requiring sol
// to label every variable appearing in any factor's scope.
func (c *CostFunctionNetwork) TotalCost(sol *Solution) (float64, error) {
	var total float64
	for i := range c.factors {
		cost, err := c.FactorCost(i, sol)
		if err != nil {
			return 0, fmt.Errorf("cfn: TotalCost: factor %d: %w", i, err)
		}
		total += cost
	}
	return total, nil
}
