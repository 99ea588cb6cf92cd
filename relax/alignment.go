package relax

// AlignmentIndexing holds, for one relaxation edge (α, β) with β ⊊ α, the
// two integer offset vectors that let a β-shaped tensor be broadcast into
// α-shape (and an α-shaped tensor gathered down to β-shape) via two nested
// loops instead of recursion over arity.
//
// Invariant: for every α-entry index k there is exactly one pair (f, s)
// with f ∈ IndexFirst, s ∈ IndexSecond such that k = f + s (spec.md I2).
type AlignmentIndexing struct {
	// IndexFirst has length table_len(β). Entry i is the α-offset of the
	// α-entry whose labels on scope(β) equal β's i-th row-major labeling
	// and whose labels on scope(α) ∖ scope(β) are all zero.
	IndexFirst []int

	// IndexSecond has length table_len(α) / table_len(β). Entry j is the
	// α-offset obtained by the j-th row-major labeling of
	// scope(α) ∖ scope(β), holding scope(β) at its all-zero labeling.
	IndexSecond []int
}

// newAlignmentIndexing builds the AlignmentIndexing for an edge α→β, given
// α's full scope/domains and β's scope/domains (β's scope must be a subset
// of α's, both already sorted ascending, which cfn.Factor.Scope/DomainSize
// guarantee). It implements the odometer/stride algorithm of spec.md §4.C,
// grounded line-for-line on original_source's AlignmentIndexing::new.
func newAlignmentIndexing(alphaScope, alphaDomains, betaScope, betaDomains []int) *AlignmentIndexing {
	alphaStrides := computeStrides(alphaDomains)

	// Project α's strides onto β's scope positions (betaStrideInAlpha[i] is
	// the stride, in α's flat index space, of β's i-th scope variable).
	betaStrideInAlpha := make([]int, len(betaScope))
	betaPos := make(map[int]bool, len(betaScope))
	ai := 0
	for bi, v := range betaScope {
		for alphaScope[ai] != v {
			ai++
		}
		betaStrideInAlpha[bi] = alphaStrides[ai]
		betaPos[ai] = true
		ai++
	}

	// Remaining α positions (scope(α) ∖ scope(β)), in α's own order.
	diffDomains := make([]int, 0, len(alphaScope)-len(betaScope))
	diffStrides := make([]int, 0, len(alphaScope)-len(betaScope))
	for i, d := range alphaDomains {
		if !betaPos[i] {
			diffDomains = append(diffDomains, d)
			diffStrides = append(diffStrides, alphaStrides[i])
		}
	}

	return &AlignmentIndexing{
		IndexFirst:  enumerateOffsets(betaDomains, betaStrideInAlpha),
		IndexSecond: enumerateOffsets(diffDomains, diffStrides),
	}
}

// computeStrides returns row-major strides for domains with the last
// position varying fastest: strides[n-1]=1, strides[i]=strides[i+1]*domains[i+1].
func computeStrides(domains []int) []int {
	n := len(domains)
	s := make([]int, n)
	acc := 1
	for i := n - 1; i >= 0; i-- {
		s[i] = acc
		acc *= domains[i]
	}
	return s
}

// enumerateOffsets walks every row-major labeling of domains using an
// odometer pattern (advance the last position; on overflow reset and carry)
// and records, for each labeling, the dot product of labels with strides.
// A nullary scope (len(domains) == 0) yields the single offset [0].
func enumerateOffsets(domains, strides []int) []int {
	if len(domains) == 0 {
		return []int{0}
	}
	n := 1
	for _, d := range domains {
		n *= d
	}
	offsets := make([]int, n)
	labels := make([]int, len(domains))
	for i := 0; i < n; i++ {
		off := 0
		for k, l := range labels {
			off += l * strides[k]
		}
		offsets[i] = off

		for k := len(labels) - 1; k >= 0; k-- {
			labels[k]++
			if labels[k] < domains[k] {
				break
			}
			labels[k] = 0
		}
	}
	return offsets
}
