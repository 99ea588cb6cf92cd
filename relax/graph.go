package relax

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/dualgraph/srmp/cfn"
)

// Graph is the relaxation graph: a DAG of FactorOrigin nodes with
// AlignmentIndexing-carrying edges. It is adapted from the teacher's
// core.Graph adjacency-list idiom, generalized from string-keyed
// vertices/edges to integer-indexed FactorOrigin nodes. The RWMutex guards
// construction only — New holds the write lock while the policy adds edges;
// once New returns, the graph is read-only and the query methods take no
// lock at all, matching §5's single-threaded scheduler model.
type Graph struct {
	mu sync.RWMutex

	nodes []FactorOrigin
	out   [][]Edge // out[node] = edges leaving node
	in    [][]Edge // in[node] = edges entering node

	variableNode map[int]int // variable index -> node index
	factorNode   map[int]int // non-unary factor index -> node index
}

// NodeCount returns the number of nodes in the relaxation graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the relaxation graph.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, es := range g.out {
		n += len(es)
	}
	return n
}

// Origin returns the FactorOrigin of the given node.
func (g *Graph) Origin(node int) FactorOrigin { return g.nodes[node] }

// IsUnary reports whether node stands for a variable's unary factor slot.
func (g *Graph) IsUnary(node int) bool { return g.nodes[node].Kind == KindVariable }

// Outgoing returns the edges leaving node, in construction order.
func (g *Graph) Outgoing(node int) []Edge { return g.out[node] }

// Incoming returns the edges entering node, in construction order.
func (g *Graph) Incoming(node int) []Edge { return g.in[node] }

// HasEdges reports whether node has at least one edge in the given
// direction; outgoing selects outgoing (true) or incoming (false) edges.
func (g *Graph) HasEdges(node int, outgoing bool) bool {
	if outgoing {
		return len(g.out[node]) > 0
	}
	return len(g.in[node]) > 0
}

// NodeForVariable returns the node index standing for variable v.
func (g *Graph) NodeForVariable(v int) int { return g.variableNode[v] }

// NodeForFactor returns the node index standing for non-unary factor f, or
// -1 if f is unary (unary factors have no node of their own distinct from
// their variable's node).
func (g *Graph) NodeForFactor(f int) int {
	if n, ok := g.factorNode[f]; ok {
		return n
	}
	return -1
}

// Policy builds a relaxation graph's edge set over a frozen cfn.CostFunctionNetwork.
// MinimalEdges is the only implementation; see DESIGN.md for why no second
// policy is provided.
type Policy interface {
	apply(net *cfn.CostFunctionNetwork, g *Graph)
}

// MinimalEdges is the relaxation policy of spec.md §4.C: for each non-unary
// factor α and each variable v in scope(α), one edge from α's node to v's
// node. No other edges are added.
type MinimalEdges struct{}

func (MinimalEdges) apply(net *cfn.CostFunctionNetwork, g *Graph) {
	nextID := 0
	for f := 0; f < net.NumFactors(); f++ {
		factor := net.Factor(f)
		if factor.Arity() < 2 {
			continue
		}
		alphaNode, ok := g.factorNode[f]
		if !ok {
			continue
		}
		alphaScope := factor.Scope()
		alphaDomains := make([]int, len(alphaScope))
		for i, v := range alphaScope {
			alphaDomains[i] = net.DomainSize(v)
		}
		for _, v := range alphaScope {
			betaNode := g.variableNode[v]
			align := newAlignmentIndexing(alphaScope, alphaDomains, []int{v}, []int{net.DomainSize(v)})
			edge := Edge{ID: nextID, From: alphaNode, To: betaNode, Align: align}
			nextID++
			g.out[alphaNode] = append(g.out[alphaNode], edge)
			g.in[betaNode] = append(g.in[betaNode], edge)
		}
	}
}

// New builds a relaxation graph over net using policy. net must be frozen
// (cfn.CostFunctionNetwork.Freeze); New panics otherwise, since building a
// relaxation over a network that might still change is a programmer error,
// not a recoverable condition. Any variable with no unary factor of its own
// gets a zero-valued one materialized via EnsureUnaryPlaceholder, so every
// relaxation node has a real factor to carry messages.
func New(net *cfn.CostFunctionNetwork, policy Policy) *Graph {
	if !net.Frozen() {
		panic("relax: New called on a network that has not been frozen")
	}
	logrus.Debug("relax: constructing relaxation graph")

	n := net.NumVariables()
	g := &Graph{
		variableNode: make(map[int]int, n),
		factorNode:   make(map[int]int),
	}

	// Nodes: every variable first (ascending index), then every non-unary
	// factor in increasing factor-index order — matching the original
	// source's node-numbering so that "ascending node index" (the default
	// FactorSequence order) means "variables, then factors by index".
	for v := 0; v < n; v++ {
		idx := len(g.nodes)
		g.nodes = append(g.nodes, FactorOrigin{Kind: KindVariable, Index: v})
		g.variableNode[v] = idx
		net.EnsureUnaryPlaceholder(v)
		logrus.Debugf("relax: added variable %d as node %d", v, idx)
	}
	for f := 0; f < net.NumFactors(); f++ {
		if net.Factor(f).Arity() < 2 {
			continue
		}
		idx := len(g.nodes)
		g.nodes = append(g.nodes, FactorOrigin{Kind: KindFactor, Index: f})
		g.factorNode[f] = idx
		logrus.Debugf("relax: added non-unary factor %d as node %d", f, idx)
	}

	g.out = make([][]Edge, len(g.nodes))
	g.in = make([][]Edge, len(g.nodes))

	g.mu.Lock()
	policy.apply(net, g)
	g.mu.Unlock()

	logrus.Debug("relax: finished constructing relaxation graph")
	return g
}
