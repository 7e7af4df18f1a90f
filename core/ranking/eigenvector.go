package ranking

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// =============================================================================
// Eigenvector centrality
// =============================================================================
//
// Power iteration on the adjacency matrix, shifted by the identity
// (A + I shares A's eigenvectors but keeps the dominant eigenvalue
// strictly largest in magnitude, so bipartite graphs such as stars do
// not oscillate). The result is the L2-normalized principal eigenvector.

// EigenvectorCentrality computes eigenvector centrality over g. Returns
// ErrNotConverged (wrapped) when the iteration cap is hit first; no
// partial scores are returned in that case.
func EigenvectorCentrality(g *simple.WeightedUndirectedGraph, opts Options) (Result, error) {
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

	a := mat.NewDense(n, n, nil)
	edges := g.WeightedEdges()
	for edges.Next() {
		e := edges.WeightedEdge()
		i, j := index[e.From().ID()], index[e.To().ID()]
		a.Set(i, j, e.Weight())
		a.Set(j, i, e.Weight())
	}

	v := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		v.SetVec(i, 1/math.Sqrt(float64(n)))
	}
	next := mat.NewVecDense(n, nil)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		next.MulVec(a, v)
		next.AddVec(next, v)

		// A is non-negative and v strictly positive, so the shifted
		// product never vanishes.
		norm := mat.Norm(next, 2)
		next.ScaleVec(1/norm, next)

		delta := 0.0
		for i := 0; i < n; i++ {
			delta += math.Abs(next.AtVec(i) - v.AtVec(i))
		}
		v.CopyVec(next)

		if delta < opts.Tolerance {
			scores := make(map[int64]float64, n)
			for i, id := range ids {
				scores[id] = v.AtVec(i)
			}
			return sortedResult(scores), nil
		}
	}

	return nil, fmt.Errorf("eigenvector centrality after %d iterations: %w", opts.MaxIterations, ErrNotConverged)
}
