package evaluate

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrTooFewRanks reports that the two alignments share too few mutually
// ranked propositions for a correlation to be meaningful.
var ErrTooFewRanks = errors.New("fewer than two commonly ranked propositions")

// Report quantifies rank agreement between two alignments.
type Report struct {
	// Tau is Kendall's rank correlation over the commonly ranked set.
	Tau float64

	// PValue is the two-sided p-value under the large-sample normal
	// approximation.
	PValue float64

	// N is the number of propositions both alignments ranked.
	N int

	// Dropped counts propositions excluded because at least one side
	// held the sentinel rank. A large Dropped relative to N means the
	// correlation covers only a biased slice of the corpus.
	Dropped int
}

// Correlate computes Kendall's tau between two alignments over the same
// corpus, restricted to propositions both sides actually ranked.
func Correlate(a, b Alignment) (Report, error) {
	if len(a.Ranks) != len(b.Ranks) {
		return Report{}, fmt.Errorf("alignment size mismatch: %d vs %d", len(a.Ranks), len(b.Ranks))
	}

	var x, y []float64
	dropped := 0
	for i := range a.Ranks {
		if !a.Ranked(i) || !b.Ranked(i) {
			dropped++
			continue
		}
		x = append(x, float64(a.Ranks[i]))
		y = append(y, float64(b.Ranks[i]))
	}
	if len(x) < 2 {
		return Report{}, fmt.Errorf("correlate over %d propositions: %w", len(x), ErrTooFewRanks)
	}

	tau := stat.Kendall(x, y, nil)
	return Report{
		Tau:     tau,
		PValue:  tauPValue(tau, len(x)),
		N:       len(x),
		Dropped: dropped,
	}, nil
}

// tauPValue is the two-sided p-value for tau under the standard normal
// approximation z = 3*tau*sqrt(n(n-1)) / sqrt(2(2n+5)).
func tauPValue(tau float64, n int) float64 {
	nf := float64(n)
	z := 3 * tau * math.Sqrt(nf*(nf-1)) / math.Sqrt(2*(2*nf+5))
	normal := distuv.Normal{Mu: 0, Sigma: 1}
	p := 2 * (1 - normal.CDF(math.Abs(z)))
	return math.Min(p, 1)
}
