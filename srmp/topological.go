package srmp

import "github.com/dualgraph/srmp/relax"

// White/Gray/Black DFS visitation states, matching the teacher's dfs package
// naming for the same three-color scheme.
const (
	white = 0
	gray  = 1
	black = 2
)

// topoSort returns a topological order over g's nodes: for every edge
// alpha->beta, alpha (the higher-arity factor) comes before beta (the
// lower-arity factor or variable it projects onto) in the returned order.
// Adapted from the teacher's dfs.TopologicalSort, generalized from
// string-keyed core.Graph vertices to integer relax.Graph nodes.
//
// The relaxation graph is acyclic by construction (every edge strictly
// decreases arity), so a cycle here can only mean an internal invariant was
// violated; topoSort panics rather than returning dfs.ErrCycleDetected; it
// has no way to surface that to a caller who asked for a simple slice.
func topoSort(g *relax.Graph) []int {
	state := make([]int, g.NodeCount())
	order := make([]int, 0, g.NodeCount())

	var visit func(node int)
	visit = func(node int) {
		if state[node] == black {
			return
		}
		if state[node] == gray {
			panic("srmp: cycle detected in relaxation graph")
		}
		state[node] = gray
		for _, edge := range g.Outgoing(node) {
			visit(edge.To)
		}
		state[node] = black
		order = append(order, node)
	}

	for node := 0; node < g.NodeCount(); node++ {
		if state[node] == white {
			visit(node)
		}
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}
