package similarity

import (
	"log/slog"
	"math"

	"github.com/viterin/vek/vek32"

	"github.com/adalundhe/kentro/core/embeddings"
)

// Centroid scores texts by the cosine of their embedding centroids: each
// text is represented by the arithmetic mean of its in-vocabulary token
// vectors.
type Centroid struct {
	lookup embeddings.Lookup
	logger *slog.Logger
}

// NewCentroid returns the embedding-centroid strategy backed by lookup.
func NewCentroid(lookup embeddings.Lookup, logger *slog.Logger) *Centroid {
	if logger == nil {
		logger = slog.Default()
	}
	return &Centroid{lookup: lookup, logger: logger}
}

func (*Centroid) Name() string {
	return "centroid"
}

// Similarity returns the cosine of the two text centroids. A text with no
// in-vocabulary tokens has no centroid; any pair involving one scores 0
// rather than propagating NaN downstream.
func (c *Centroid) Similarity(a, b []string) float64 {
	ca, okA := c.centroid(a)
	cb, okB := c.centroid(b)
	if !okA || !okB {
		return 0
	}
	return cosine(ca, cb)
}

// centroid averages the in-vocabulary token vectors. The second return is
// false when no token resolved.
func (c *Centroid) centroid(tokens []string) ([]float32, bool) {
	dim := c.lookup.Dim()
	sum := make([]float32, dim)
	resolved := 0

	for _, tok := range tokens {
		vec, ok := c.lookup.Vector(tok)
		if !ok {
			continue
		}
		vek32.Add_Inplace(sum, vec)
		resolved++
	}
	if resolved == 0 {
		return nil, false
	}

	inv := 1 / float32(resolved)
	for i := range sum {
		sum[i] *= inv
	}
	return sum, true
}

// cosine is defined as 0 for zero-norm inputs so degenerate centroids
// never surface as NaN.
func cosine(a, b []float32) float64 {
	normA := float64(vek32.Dot(a, a))
	normB := float64(vek32.Dot(b, b))
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := float64(vek32.Dot(a, b)) / (math.Sqrt(normA) * math.Sqrt(normB))
	if math.IsNaN(sim) || sim < 0 {
		// Provider scores are non-negative; anti-aligned centroids carry
		// no edge weight.
		return 0
	}
	return sim
}
