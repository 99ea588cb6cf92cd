package cfn

import (
	"math"

	"github.com/dualgraph/srmp/matrix"
)

// denseTable is the mandatory general-purpose kernel: an arbitrary-arity
// dense function table stored row-major with the last scope variable
// varying fastest.
type denseTable struct {
	scope   []int
	domains []int
	str     []int
	table   []float64
}

func newDenseTable(scope, domains []int, table []float64) *denseTable {
	return &denseTable{scope: scope, domains: domains, str: strides(domains), table: table}
}

func (d *denseTable) Arity() int              { return len(d.scope) }
func (d *denseTable) Scope() []int            { return d.scope }
func (d *denseTable) FunctionTableLen() int   { return len(d.table) }
func (d *denseTable) CloneFunctionTable() []float64 {
	out := make([]float64, len(d.table))
	d.CopyFunctionTableInto(out)
	return out
}
func (d *denseTable) CopyFunctionTableInto(dst []float64) { copy(dst, d.table) }
func (d *denseTable) Map(f func(float64) float64) {
	for i, v := range d.table {
		d.table[i] = f(v)
	}
}
func (d *denseTable) Cost(labels []int) float64 {
	return d.table[flatIndex(labels, d.str)]
}

// pairwiseTable is the arity-2 specialization backed by matrix.Dense: row is
// the label of the lower-indexed scope variable, column the label of the
// higher-indexed one. Dense's row-major storage makes the column — the last
// (and only higher) variable in scope — the fast-varying index, matching
// the dense kernel's stride convention exactly.
type pairwiseTable struct {
	scope   [2]int
	domains [2]int
	mat     *matrix.Dense
}

func newPairwiseTable(v0, v1, d0, d1 int, table []float64) (*pairwiseTable, error) {
	m, err := matrix.NewDense(d0, d1)
	if err != nil {
		return nil, err
	}
	for i := 0; i < d0; i++ {
		for j := 0; j < d1; j++ {
			if err := m.Set(i, j, table[i*d1+j]); err != nil {
				return nil, err
			}
		}
	}
	return &pairwiseTable{scope: [2]int{v0, v1}, domains: [2]int{d0, d1}, mat: m}, nil
}

func (p *pairwiseTable) Arity() int            { return 2 }
func (p *pairwiseTable) Scope() []int          { return []int{p.scope[0], p.scope[1]} }
func (p *pairwiseTable) FunctionTableLen() int { return p.domains[0] * p.domains[1] }
func (p *pairwiseTable) CloneFunctionTable() []float64 {
	out := make([]float64, p.domains[0]*p.domains[1])
	p.CopyFunctionTableInto(out)
	return out
}
func (p *pairwiseTable) CopyFunctionTableInto(dst []float64) {
	idx := 0
	for i := 0; i < p.domains[0]; i++ {
		for j := 0; j < p.domains[1]; j++ {
			dst[idx], _ = p.mat.At(i, j)
			idx++
		}
	}
}
func (p *pairwiseTable) Map(f func(float64) float64) {
	for i := 0; i < p.domains[0]; i++ {
		for j := 0; j < p.domains[1]; j++ {
			v, _ := p.mat.At(i, j)
			_ = p.mat.Set(i, j, f(v))
		}
	}
}
func (p *pairwiseTable) Cost(labels []int) float64 {
	v, _ := p.mat.At(labels[0], labels[1])
	return v
}

// potts stores a scalar cost charged when both labels are equal, and the
// value of every entry whose labels differ (0 at construction, changed
// only by Map), regardless of scope arity-2 domain sizes (which may
// differ). Grounded on original_source/src/factor_types/potts.rs.
type potts struct {
	scope   [2]int
	domains [2]int
	cost    float64
	other   float64
}

func newPotts(v0, v1, d0, d1 int, cost float64) *potts {
	return &potts{scope: [2]int{v0, v1}, domains: [2]int{d0, d1}, cost: cost}
}

func (p *potts) Arity() int            { return 2 }
func (p *potts) Scope() []int          { return []int{p.scope[0], p.scope[1]} }
func (p *potts) FunctionTableLen() int { return p.domains[0] * p.domains[1] }
func (p *potts) CloneFunctionTable() []float64 {
	out := make([]float64, p.domains[0]*p.domains[1])
	p.CopyFunctionTableInto(out)
	return out
}
func (p *potts) CopyFunctionTableInto(dst []float64) {
	idx := 0
	for i := 0; i < p.domains[0]; i++ {
		for j := 0; j < p.domains[1]; j++ {
			if i == j {
				dst[idx] = p.cost
			} else {
				dst[idx] = p.other
			}
			idx++
		}
	}
}
func (p *potts) Map(f func(float64) float64) {
	// A Potts factor's table has at most two distinct values (other and
	// cost); map them both rather than materializing the dense table.
	p.cost = f(p.cost)
	p.other = f(p.other)
}
func (p *potts) Cost(labels []int) float64 {
	if labels[0] == labels[1] {
		return p.cost
	}
	return p.other
}

// uniformConstant broadcasts a single scalar across every labeling of an
// arbitrary scope. Used by relax.New to materialize the zero-valued unary
// factor required when a variable has no unary factor of its own, and
// available as an explicit constructor for uniform higher-arity factors.
type uniformConstant struct {
	scope   []int
	domains []int
	length  int
	value   float64
}

func newUniformConstant(scope, domains []int, value float64) *uniformConstant {
	return &uniformConstant{scope: scope, domains: domains, length: tableLen(domains), value: value}
}

func (u *uniformConstant) Arity() int              { return len(u.scope) }
func (u *uniformConstant) Scope() []int            { return u.scope }
func (u *uniformConstant) FunctionTableLen() int   { return u.length }
func (u *uniformConstant) CloneFunctionTable() []float64 {
	out := make([]float64, u.length)
	u.CopyFunctionTableInto(out)
	return out
}
func (u *uniformConstant) CopyFunctionTableInto(dst []float64) {
	for i := range dst {
		dst[i] = u.value
	}
}
func (u *uniformConstant) Map(f func(float64) float64) { u.value = f(u.value) }
func (u *uniformConstant) Cost(_ []int) float64        { return u.value }

// isFinite reports whether v is neither NaN nor ±Inf. A factor table is
// validated for shape only and NaN/Inf values are allowed through (§7
// MalformedInput vs. Numerical error-kind split); AddFactor uses this helper
// to store an arity-2 table holding any non-finite entry as a denseTable
// instead of a pairwiseTable, whose matrix.Dense storage rejects NaN/Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
