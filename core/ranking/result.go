// Package ranking turns similarity matrices and reference graphs into
// per-node importance scores: weighted PageRank over the similarity graph
// and eigenvector centrality over the support/conflict graph.
package ranking

import (
	"errors"
	"sort"
)

// ErrNotConverged reports that an iterative ranking stopped at its
// iteration cap before stabilizing. Callers get no partial scores.
var ErrNotConverged = errors.New("ranking did not converge within iteration cap")

// Score is one node's importance value.
type Score struct {
	Node  int64
	Value float64
}

// Result is a ranking sorted by score descending, ties broken by node ID
// so ordering is stable across runs.
type Result []Score

// sortedResult builds a Result from per-node scores keyed by node ID.
func sortedResult(scores map[int64]float64) Result {
	out := make(Result, 0, len(scores))
	for id, v := range scores {
		out = append(out, Score{Node: id, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Node < out[j].Node
	})
	return out
}

// Options configures the iterative rankers.
type Options struct {
	// Damping is the PageRank teleportation factor.
	Damping float64

	// Tolerance is the L1 movement threshold that counts as converged.
	Tolerance float64

	// MaxIterations caps the iteration count; hitting it without
	// converging is an error, never a best-effort result.
	MaxIterations int
}

// DefaultOptions mirrors the conventional PageRank parameters.
func DefaultOptions() Options {
	return Options{
		Damping:       0.85,
		Tolerance:     1e-6,
		MaxIterations: 100,
	}
}

func (o Options) withDefaults() Options {
	if o.Damping <= 0 || o.Damping >= 1 {
		o.Damping = 0.85
	}
	if o.Tolerance <= 0 {
		o.Tolerance = 1e-6
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = 100
	}
	return o
}
