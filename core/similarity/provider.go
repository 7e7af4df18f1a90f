// Package similarity scores pairs of normalized token sequences and
// assembles the full pairwise matrix the ranking stage consumes. Two
// interchangeable strategies are provided: token overlap (Mihalcea-Tarau)
// and embedding-centroid cosine.
package similarity

import (
	"gonum.org/v1/gonum/mat"
)

// Provider scores a pair of token sequences. Implementations must be
// symmetric (Similarity(a, b) == Similarity(b, a)), non-negative, and
// must resolve degenerate inputs to 0 rather than NaN or an error.
type Provider interface {
	Name() string
	Similarity(a, b []string) float64
}

// BuildMatrix computes the full pairwise similarity matrix for texts.
// The result is symmetric by construction and the diagonal is left at
// zero: self-similarity carries no ranking information and a self-loop
// would only inflate a node's own stationary mass.
func BuildMatrix(p Provider, texts [][]string) *mat.SymDense {
	n := len(texts)
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.SetSym(i, j, p.Similarity(texts[i], texts[j]))
		}
	}
	return m
}
