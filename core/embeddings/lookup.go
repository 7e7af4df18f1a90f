// Package embeddings provides the pretrained word-vector lookup used by
// the centroid similarity strategy. The table is loaded once, shared
// read-only for the rest of the run, and never mutated.
package embeddings

// Lookup resolves a token to its pretrained vector. The second return is
// false for out-of-vocabulary tokens; callers treat that as "skip", never
// as an error.
type Lookup interface {
	Vector(token string) ([]float32, bool)
	Dim() int
}

// StaticLookup is an in-memory Lookup for tests and small fixtures.
type StaticLookup struct {
	dim     int
	vectors map[string][]float32
}

// NewStaticLookup builds a StaticLookup. All vectors must share dim.
func NewStaticLookup(dim int, vectors map[string][]float32) *StaticLookup {
	return &StaticLookup{dim: dim, vectors: vectors}
}

func (s *StaticLookup) Vector(token string) ([]float32, bool) {
	v, ok := s.vectors[token]
	return v, ok
}

func (s *StaticLookup) Dim() int {
	return s.dim
}
