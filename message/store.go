package message

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/dualgraph/srmp/cfn"
	"github.com/dualgraph/srmp/relax"
)

// Store owns one message tensor per relaxation edge, each shaped like the
// edge's target node's function table, all initially zero. It is the Go
// counterpart of original_source's Messages, generalized from petgraph edge
// indices to relax.Edge.ID.
type Store struct {
	net      *cfn.CostFunctionNetwork
	g        *relax.Graph
	messages [][]float64 // indexed by relax.Edge.ID

	// scratch pools per-iteration reparametrization buffers by length, keyed
	// by tensor size since table lengths repeat across nodes sharing a
	// domain size (spec.md §5's scratch-buffer-pool allowance). Only
	// call sites whose buffer never escapes the call return it here; a
	// buffer handed back to a caller (ComputeReparam, ComputeRestrictedReparam)
	// is drawn from the same pools but never returned to them, which costs
	// nothing beyond an ordinary allocation on those paths.
	scratch map[int]*sync.Pool
}

// New allocates a zero message for every edge of g.
func New(net *cfn.CostFunctionNetwork, g *relax.Graph) *Store {
	s := &Store{
		net:      net,
		g:        g,
		messages: make([][]float64, g.EdgeCount()),
		scratch:  make(map[int]*sync.Pool),
	}
	for node := 0; node < g.NodeCount(); node++ {
		for _, e := range g.Outgoing(node) {
			s.messages[e.ID] = make([]float64, s.nodeTableLen(e.To))
		}
	}
	return s
}

// scratchGet returns a buffer of length n, reused from a prior scratchPut
// when one is available.
func (s *Store) scratchGet(n int) []float64 {
	p, ok := s.scratch[n]
	if !ok {
		p = &sync.Pool{New: func() any { return make([]float64, n) }}
		s.scratch[n] = p
	}
	return p.Get().([]float64)
}

// scratchPut returns buf to its length-keyed pool for reuse. Only call this
// for a buffer that does not escape to another caller.
func (s *Store) scratchPut(buf []float64) {
	s.scratch[len(buf)].Put(buf)
}

// Message returns the current message tensor on edge. Callers must not
// mutate the returned slice.
func (s *Store) Message(edge relax.Edge) []float64 { return s.messages[edge.ID] }

func (s *Store) nodeFactor(node int) cfn.Factor {
	origin := s.g.Origin(node)
	if origin.Kind == relax.KindVariable {
		return s.net.Factor(s.net.UnaryFactorIndex(origin.Index))
	}
	return s.net.Factor(origin.Index)
}

func (s *Store) nodeScope(node int) []int { return s.nodeFactor(node).Scope() }

// NodeScope returns the scope of the factor standing at node — exported for
// package srmp, which needs it to decide whether a node's labeling is
// already complete before extracting a primal solution over it.
func (s *Store) NodeScope(node int) []int { return s.nodeScope(node) }

func (s *Store) nodeTableLen(node int) int { return s.nodeFactor(node).FunctionTableLen() }

// initReparam seeds a reparametrization buffer with node's own factor table
// — the starting point for every reparametrization computation (original
// source's init_reparam / clone_factor). Drawn from the scratch pool rather
// than CloneFunctionTable so a caller whose buffer never escapes (Send,
// SendInitial) can hand it back with scratchPut.
func (s *Store) initReparam(node int) []float64 {
	buf := s.scratchGet(s.nodeTableLen(node))
	s.nodeFactor(node).CopyFunctionTableInto(buf)
	return buf
}

// addAllIncoming adds every message entering node into reparam, in place.
func (s *Store) addAllIncoming(reparam []float64, node int) {
	for _, e := range s.g.Incoming(node) {
		floats.Add(reparam, s.messages[e.ID])
	}
}

// subAllOutgoing subtracts every message leaving node into reparam, in
// place, broadcasting each one up through its edge's AlignmentIndexing.
func (s *Store) subAllOutgoing(reparam []float64, node int) {
	for _, e := range s.g.Outgoing(node) {
		subAssignOutgoing(reparam, s.messages[e.ID], e.Align)
	}
}

// subAllOtherOutgoing is subAllOutgoing, skipping the edge with id exclude.
func (s *Store) subAllOtherOutgoing(reparam []float64, node, exclude int) {
	for _, e := range s.g.Outgoing(node) {
		if e.ID == exclude {
			continue
		}
		subAssignOutgoing(reparam, s.messages[e.ID], e.Align)
	}
}

// subAssignOutgoing subtracts a beta-shaped rhs into an alpha-shaped dst,
// broadcasting through align's offset pairs: every alpha-entry dst[f+s]
// loses rhs[i] where f=align.IndexFirst[i], s ranges over align.IndexSecond.
func subAssignOutgoing(dst, rhs []float64, align *relax.AlignmentIndexing) {
	for i, f := range align.IndexFirst {
		v := rhs[i]
		for _, off := range align.IndexSecond {
			dst[f+off] -= v
		}
	}
}

// updateWithMinimization gathers, for every beta-entry, the minimum of rhs
// over the corresponding alpha-entries (equation 17 of the SRMP paper), and
// writes the result into dst (beta-shaped). Returns the overall minimum, so
// callers can renormalize dst to have minimum zero.
func updateWithMinimization(dst, rhs []float64, align *relax.AlignmentIndexing) float64 {
	rhsMin := math.Inf(1)
	for i, f := range align.IndexFirst {
		m := math.Inf(1)
		for _, off := range align.IndexSecond {
			v := rhs[f+off]
			if totalOrderLess(v, m) {
				m = v
			}
		}
		dst[i] = m
		if totalOrderLess(m, rhsMin) {
			rhsMin = m
		}
	}
	return rhsMin
}

// Send updates the message on edge by computing alpha's reparametrization
// excluding edge's own outgoing contribution, minimizing it down to beta's
// shape, and renormalizing so the new message's minimum entry is zero.
// Returns the normalization delta (the dual bound increment this edge's
// message update has earned).
func (s *Store) Send(edge relax.Edge) float64 {
	alpha := edge.From
	reparam := s.initReparam(alpha)
	s.addAllIncoming(reparam, alpha)
	s.subAllOtherOutgoing(reparam, alpha, edge.ID)

	delta := updateWithMinimization(s.messages[edge.ID], reparam, edge.Align)
	floats.AddConst(-delta, s.messages[edge.ID])
	s.scratchPut(reparam)
	return delta
}

// ComputeReparam returns node's full reparametrization: its own factor table
// plus every incoming message, minus every outgoing message (broadcast
// through each edge's alignment).
func (s *Store) ComputeReparam(node int) []float64 {
	reparam := s.initReparam(node)
	s.addAllIncoming(reparam, node)
	s.subAllOutgoing(reparam, node)
	return reparam
}

// SubAssignReparam subtracts reparam (which must be shaped like edge's
// target node) from edge's message in place.
func (s *Store) SubAssignReparam(reparam []float64, edge relax.Edge) {
	floats.Sub(s.messages[edge.ID], reparam)
}

// SendInitial computes node's reparametrization from incoming messages only
// (no outgoing subtraction) and returns its minimum, used once per node
// during SRMP initialization to seed the lower bound.
func (s *Store) SendInitial(node int) float64 {
	reparam := s.initReparam(node)
	s.addAllIncoming(reparam, node)
	m := minTotalOrder(reparam)
	s.scratchPut(reparam)
	return m
}
