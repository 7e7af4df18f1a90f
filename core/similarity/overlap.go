package similarity

import "math"

// Overlap implements the Mihalcea-Tarau sentence similarity: the number
// of distinct shared tokens normalized by the sum of the log lengths of
// the two sequences.
type Overlap struct{}

// NewOverlap returns the token-overlap strategy.
func NewOverlap() *Overlap {
	return &Overlap{}
}

func (*Overlap) Name() string {
	return "overlap"
}

// Similarity returns |distinct tokens in both a and b| / (log|a| + log|b|),
// clamped to [0, 1] so identical texts score exactly 1.0. Sequences of
// length 0 or 1 make the denominator zero or negative, so any such pair
// scores 0: degenerate short texts have no measurable similarity to
// anything.
func (*Overlap) Similarity(a, b []string) float64 {
	if len(a) <= 1 || len(b) <= 1 {
		return 0
	}

	seen := make(map[string]struct{}, len(a))
	for _, tok := range a {
		seen[tok] = struct{}{}
	}

	shared := 0
	counted := make(map[string]struct{}, len(b))
	for _, tok := range b {
		if _, ok := seen[tok]; !ok {
			continue
		}
		if _, dup := counted[tok]; dup {
			continue
		}
		counted[tok] = struct{}{}
		shared++
	}

	denom := math.Log(float64(len(a))) + math.Log(float64(len(b)))
	if denom <= 0 {
		return 0
	}
	return math.Min(float64(shared)/denom, 1)
}
