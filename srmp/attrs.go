package srmp

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/dualgraph/srmp/relax"
)

// nodeEdgeAttrs precomputes, once per relaxation, which edges/nodes
// participate in the forward pass, the backward pass, and lower-bound
// accounting, plus the per-node reparametrization weights. Ported field for
// field from original_source's NodeEdgeAttrs, generalized from
// bitvec::vec::BitVec to *bitset.BitSet.
type nodeEdgeAttrs struct {
	edgeIsForward  *bitset.BitSet // alpha-beta edge updated during the forward pass
	edgeIsBackward *bitset.BitSet // alpha-beta edge updated during the backward pass
	edgeIsUpdateLB *bitset.BitSet // alpha-beta edge whose send() delta feeds the lower bound
	nodeIsUpdateLB *bitset.BitSet // node whose backward-pass reparametrization feeds the lower bound

	weightForward  []int // 1/weightForward[alpha] scales alpha's forward reparametrization
	weightBackward []int // 1/weightBackward[alpha] scales alpha's backward reparametrization
	weightUpdateLB []int // multiplier applied to alpha's reparam minimum when node_is_update_lb
}

func setBit(b *bitset.BitSet, i int, v bool) {
	if v {
		b.Set(uint(i))
	} else {
		b.Clear(uint(i))
	}
}

// newNodeEdgeAttrs runs the three passes of original_source's
// NodeEdgeAttrs::new over sequence (a FactorSequence's node order).
func newNodeEdgeAttrs(g *relax.Graph, sequence []int) *nodeEdgeAttrs {
	n, e := g.NodeCount(), g.EdgeCount()
	a := &nodeEdgeAttrs{
		edgeIsForward:  bitset.New(uint(e)),
		edgeIsBackward: bitset.New(uint(e)),
		edgeIsUpdateLB: bitset.New(uint(e)),
		nodeIsUpdateLB: bitset.New(uint(n)),
		weightForward:  make([]int, n),
		weightBackward: make([]int, n),
		weightUpdateLB: make([]int, n),
	}

	// Pass 1 (forward traversal over sequence): label backward edges and
	// seed node_is_update_lb.
	touched := bitset.New(uint(n))
	for _, alpha := range sequence {
		setBit(a.nodeIsUpdateLB, alpha, !touched.Test(uint(alpha)) || g.IsUnary(alpha))
		touched.Set(uint(alpha))
		for _, edge := range g.Incoming(alpha) {
			beta := edge.From
			setBit(a.edgeIsBackward, edge.ID, touched.Test(uint(beta)))
			setBit(a.edgeIsUpdateLB, edge.ID, !touched.Test(uint(beta)))
			touched.Set(uint(beta))
		}
	}

	// Pass 2 (reverse traversal over sequence): label forward edges.
	touched.ClearAll()
	for i := len(sequence) - 1; i >= 0; i-- {
		alpha := sequence[i]
		touched.Set(uint(alpha))
		for _, edge := range g.Incoming(alpha) {
			beta := edge.From
			setBit(a.edgeIsForward, edge.ID, touched.Test(uint(beta)))
			touched.Set(uint(beta))
		}
	}

	// Pass 3 (forward traversal over sequence): compute weights.
	touched.ClearAll()
	for _, alpha := range sequence {
		touched.Set(uint(alpha))

		outFwd, outBwd := 0, 0
		for _, edge := range g.Outgoing(alpha) {
			if touched.Test(uint(edge.To)) {
				outFwd++
			} else {
				outBwd++
			}
		}

		inFwd, inBwd, inTotal := 0, 0, 0
		for _, edge := range g.Incoming(alpha) {
			if a.edgeIsForward.Test(uint(edge.ID)) {
				inFwd++
			}
			if a.edgeIsBackward.Test(uint(edge.ID)) {
				inBwd++
			}
			inTotal++
		}

		wf := maxInt(inTotal-inFwd, inFwd) + outFwd
		if wf+inFwd == 0 {
			wf = 1
		}
		wb := maxInt(inTotal-inBwd, inBwd) + outBwd
		if wb+inBwd == 0 {
			wb = 1
		}
		a.weightForward[alpha] = wf
		a.weightBackward[alpha] = wb

		setBit(a.nodeIsUpdateLB, alpha, a.nodeIsUpdateLB.Test(uint(alpha)) && wb > 0)
		a.weightUpdateLB[alpha] = wb - inBwd
	}

	return a
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
