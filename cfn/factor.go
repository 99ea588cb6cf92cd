package cfn

// Factor is the capability set every factor kernel must expose: arity,
// scope, function-table length, a fully expanded dense table on demand, an
// in-place pointwise map, and cost evaluation for a complete labeling of its
// scope. The relaxation and message layers are written against this
// interface only, so a kernel specialization (Potts, uniform constant) never
// leaks into the solver core.
type Factor interface {
	// Arity returns len(Scope()).
	Arity() int

	// Scope returns the ordered, strictly increasing tuple of variable
	// indices this factor depends on. Callers must not mutate the result.
	Scope() []int

	// FunctionTableLen returns the product of domain sizes over Scope(), or
	// 1 for a nullary factor.
	FunctionTableLen() int

	// CloneFunctionTable returns a freshly allocated dense function table in
	// row-major order with the last scope variable varying fastest.
	CloneFunctionTable() []float64

	// CopyFunctionTableInto writes the same values CloneFunctionTable would
	// return into dst, which must already have length FunctionTableLen().
	// Lets callers reuse a pooled buffer instead of allocating one.
	CopyFunctionTableInto(dst []float64)

	// Map applies f to every logical entry of the function table in place.
	Map(f func(float64) float64)

	// Cost returns the factor's value for the given per-scope labels. labels
	// must have length Arity(); entry i is the label of Scope()[i]. The
	// result for a labels slice of any other length is not defined: a
	// kernel may panic or may return a value, and no kernel checks the
	// length. Callers in this module only pass full per-scope labelings.
	Cost(labels []int) float64
}

// strides computes row-major strides for domains, last index fastest:
// strides[len-1] = 1, strides[i] = strides[i+1] * domains[i+1].
func strides(domains []int) []int {
	n := len(domains)
	s := make([]int, n)
	acc := 1
	for i := n - 1; i >= 0; i-- {
		s[i] = acc
		acc *= domains[i]
	}
	return s
}

// tableLen returns the product of domains, 1 for an empty scope.
func tableLen(domains []int) int {
	n := 1
	for _, d := range domains {
		n *= d
	}
	return n
}

// flatIndex computes the row-major flat offset for labels against strides.
// Panics (via index-out-of-range slice access) if len(labels) > len(strides);
// a shorter labels slice is not detected. This is only ever called with
// internally-validated slices.
func flatIndex(labels []int, strides []int) int {
	idx := 0
	for i, l := range labels {
		idx += l * strides[i]
	}
	return idx
}
