package ranking

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"
)

// =============================================================================
// Weighted PageRank
// =============================================================================
//
// Standard damped PageRank adapted to weighted undirected graphs: each
// node redistributes its mass to neighbors proportional to edge weight,
// with uniform teleportation at rate (1 - damping). Mass from dangling
// (edge-less) nodes is redistributed uniformly, so scores always sum to 1.

// PageRank computes the stationary importance distribution over g.
// Returns ErrNotConverged (wrapped) if the L1 movement between sweeps is
// still above tolerance at the iteration cap.
func PageRank(g *simple.WeightedUndirectedGraph, opts Options) (Result, error) {
	opts = opts.withDefaults()

	ids := orderedNodeIDs(g)
	n := len(ids)
	if n == 0 {
		return nil, nil
	}

	index := make(map[int64]int, n)
	for i, id := range ids {
		index[id] = i
	}

	// Adjacency lists with per-node total incident weight, built once.
	type link struct {
		to     int
		weight float64
	}
	adj := make([][]link, n)
	outWeight := make([]float64, n)
	for i, id := range ids {
		neighbors := g.From(id)
		for neighbors.Next() {
			vid := neighbors.Node().ID()
			w := g.WeightedEdge(id, vid).Weight()
			adj[i] = append(adj[i], link{to: index[vid], weight: w})
			outWeight[i] += w
		}
	}

	nf := float64(n)
	damping := opts.Damping

	rank := make([]float64, n)
	for i := range rank {
		rank[i] = 1 / nf
	}
	next := make([]float64, n)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		dangling := 0.0
		for i := range rank {
			if outWeight[i] == 0 {
				dangling += rank[i]
			}
		}
		base := (1-damping)/nf + damping*dangling/nf

		for i := range next {
			sum := 0.0
			for _, e := range adj[i] {
				sum += e.weight / outWeight[e.to] * rank[e.to]
			}
			next[i] = base + damping*sum
		}

		delta := 0.0
		for i := range rank {
			delta += math.Abs(next[i] - rank[i])
		}
		rank, next = next, rank

		if delta < opts.Tolerance {
			scores := make(map[int64]float64, n)
			for i, id := range ids {
				scores[id] = rank[i]
			}
			return sortedResult(scores), nil
		}
	}

	return nil, fmt.Errorf("pagerank after %d iterations: %w", opts.MaxIterations, ErrNotConverged)
}

// TeleportationFloor is the converged PageRank score of an isolated node
// in a graph of n nodes of which isolated are edge-less. With dangling
// mass redistributed uniformly the fixed point is
//
//	x = ((1-d)/n) / (1 - d*k/n)
//
// which reduces to the bare teleportation term (1-d)/n as k/n -> 0.
func TeleportationFloor(n, isolated int, damping float64) float64 {
	nf := float64(n)
	return ((1 - damping) / nf) / (1 - damping*float64(isolated)/nf)
}
