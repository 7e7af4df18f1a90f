// Package refgraph reconstructs the ground-truth argument graph from AIF
// relation records. Support and conflict nodes act as temporary hubs:
// every proposition feeding a relation becomes adjacent to every other
// proposition feeding the same relation, and the hub itself is discarded
// so only original propositions are ever scored.
package refgraph

import (
	"log/slog"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/adalundhe/kentro/core/aif"
)

// hub is the pass-one materialization of one relation: the corpus indices
// of its source propositions.
type hub struct {
	relationID string
	spokes     []int64
}

// Build derives the undirected proposition adjacency graph from the
// corpus's RA/CA relations. Node IDs are corpus indices, so rankings over
// the result map straight back to proposition identifiers. Propositions
// that feed no relation do not appear in the graph.
func Build(corpus *aif.Corpus, logger *slog.Logger) *simple.WeightedUndirectedGraph {
	if logger == nil {
		logger = slog.Default()
	}

	// Pass 1: materialize hubs with their spokes.
	hubs := make([]hub, 0, len(corpus.Relations))
	for _, rel := range corpus.Relations {
		h := hub{relationID: rel.ID}
		for _, src := range rel.Sources {
			idx, ok := corpus.Index(src)
			if !ok {
				continue
			}
			h.spokes = append(h.spokes, int64(idx))
		}
		hubs = append(hubs, h)
	}

	// Pass 2: collapse each hub into pairwise edges among its spokes and
	// drop the hub. Relation IDs never enter the node set.
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for _, h := range hubs {
		for _, s := range h.spokes {
			if g.Node(s) == nil {
				g.AddNode(simple.Node(s))
			}
		}
		for i := 0; i < len(h.spokes); i++ {
			for j := i + 1; j < len(h.spokes); j++ {
				if h.spokes[i] == h.spokes[j] {
					continue
				}
				g.SetWeightedEdge(simple.WeightedEdge{
					F: simple.Node(h.spokes[i]),
					T: simple.Node(h.spokes[j]),
					W: 1,
				})
			}
		}
	}

	logger.Debug("reference graph built",
		"relations", len(hubs),
		"nodes", g.Nodes().Len(),
		"edges", g.WeightedEdges().Len(),
	)
	return g
}
