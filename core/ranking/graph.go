package ranking

import (
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// BuildGraph constructs a weighted undirected graph from a similarity
// matrix: one node per matrix index, an edge for every strictly positive
// off-diagonal entry. Diagonal entries are ignored, so self-similarity
// never biases the ranking.
func BuildGraph(m mat.Symmetric) *simple.WeightedUndirectedGraph {
	n := m.SymmetricDim()
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w := m.At(i, j); w > 0 {
				g.SetWeightedEdge(simple.WeightedEdge{
					F: simple.Node(i),
					T: simple.Node(j),
					W: w,
				})
			}
		}
	}
	return g
}

// orderedNodeIDs returns the graph's node IDs in ascending order so all
// iteration over the graph is deterministic.
func orderedNodeIDs(g graph.Graph) []int64 {
	nodes := g.Nodes()
	ids := make([]int64, 0, nodes.Len())
	for nodes.Next() {
		ids = append(ids, nodes.Node().ID())
	}
	slices.Sort(ids)
	return ids
}
