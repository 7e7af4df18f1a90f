// Package evaluate maps ranking output back onto proposition identifiers
// and measures agreement between two rankings with Kendall's tau.
package evaluate

import (
	"github.com/adalundhe/kentro/core/aif"
	"github.com/adalundhe/kentro/core/ranking"
)

// Alignment assigns every proposition in corpus order a dense rank:
// 0 is most central. Propositions absent from the underlying ranking get
// the sentinel value instead — "unranked", which is not the same thing
// as last place.
type Alignment struct {
	IDs   []string
	Ranks []int

	sentinel int
}

// Align produces the dense rank vector for res over the full corpus.
// res node IDs are corpus indices. Align is idempotent: the same inputs
// always yield identical rank assignments.
func Align(corpus *aif.Corpus, res ranking.Result) Alignment {
	n := corpus.Len()
	a := Alignment{
		IDs:      make([]string, n),
		Ranks:    make([]int, n),
		sentinel: n,
	}
	for i, p := range corpus.Propositions {
		a.IDs[i] = p.ID
		a.Ranks[i] = a.sentinel
	}
	for rank, score := range res {
		idx := int(score.Node)
		if idx < 0 || idx >= n {
			continue
		}
		a.Ranks[idx] = rank
	}
	return a
}

// Sentinel is the rank value marking unranked propositions. It is always
// one past the last valid dense rank (len(corpus)), strictly outside the
// valid range.
func (a Alignment) Sentinel() int {
	return a.sentinel
}

// Ranked reports whether the proposition at corpus index i received a
// real rank.
func (a Alignment) Ranked(i int) bool {
	return a.Ranks[i] != a.sentinel
}
