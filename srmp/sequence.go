package srmp

import (
	"sort"

	"github.com/dualgraph/srmp/relax"
)

// factorSequence returns every unary node plus every node with at least one
// incoming edge, ordered by cmp. Ported from original_source's
// FactorSequence::new/sort. The default order (cmp == nil) is ascending node
// index, matching spec.md's stated default and the Rust source's
// sort_unstable() over NodeIndex.
func factorSequence(g *relax.Graph, cmp func(a, b int) bool) []int {
	seq := make([]int, 0, g.NodeCount())
	for node := 0; node < g.NodeCount(); node++ {
		if g.IsUnary(node) || g.HasEdges(node, false) {
			seq = append(seq, node)
		}
	}
	if cmp == nil {
		sort.Ints(seq)
		return seq
	}
	sort.Slice(seq, func(i, j int) bool { return cmp(seq[i], seq[j]) })
	return seq
}

// factorSequenceTopological returns the same node subset as factorSequence,
// but ordered consistently with a topological order of the whole relaxation
// graph rather than by raw node index. Used when WithTopologicalOrder is set.
func factorSequenceTopological(g *relax.Graph) []int {
	topo := topoSort(g)
	member := make([]bool, g.NodeCount())
	for node := 0; node < g.NodeCount(); node++ {
		member[node] = g.IsUnary(node) || g.HasEdges(node, false)
	}
	seq := make([]int, 0, len(topo))
	for _, node := range topo {
		if member[node] {
			seq = append(seq, node)
		}
	}
	return seq
}
