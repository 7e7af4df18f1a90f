package pipeline

import (
	"fmt"
	"io"

	"github.com/adalundhe/kentro/core/aif"
	"github.com/adalundhe/kentro/core/evaluate"
	"github.com/adalundhe/kentro/core/ranking"
)

// Row is one proposition in a ranking table, in rank order.
type Row struct {
	ID    string  `json:"id"`
	Text  string  `json:"text"`
	Rank  int     `json:"rank"`
	Score float64 `json:"score"`
}

// StrategyOutcome is one similarity variant's full result: the ranked
// table plus its correlation against the reference centrality.
type StrategyOutcome struct {
	Strategy string          `json:"strategy"`
	Table    []Row           `json:"table"`
	Report   evaluate.Report `json:"report"`
}

// Outcome is the product of one pipeline run.
type Outcome struct {
	RunID      string            `json:"run_id"`
	Strategies []StrategyOutcome `json:"strategies"`
}

// buildTable walks the ranking in rank order and pairs each node with its
// proposition identity and text.
func buildTable(corpus *aif.Corpus, res ranking.Result) []Row {
	rows := make([]Row, 0, len(res))
	for rank, score := range res {
		idx := int(score.Node)
		if idx < 0 || idx >= corpus.Len() {
			continue
		}
		rows = append(rows, Row{
			ID:    corpus.Propositions[idx].ID,
			Text:  corpus.Propositions[idx].Text,
			Rank:  rank,
			Score: score.Value,
		})
	}
	return rows
}

const maxRenderedText = 72

// Render writes the outcome as plain text tables for console output.
func (o *Outcome) Render(w io.Writer) error {
	for _, s := range o.Strategies {
		if _, err := fmt.Fprintf(w, "== %s ==\n", s.Strategy); err != nil {
			return err
		}
		for _, row := range s.Table {
			text := row.Text
			if len(text) > maxRenderedText {
				text = text[:maxRenderedText-3] + "..."
			}
			if _, err := fmt.Fprintf(w, "%4d  %-24s  %.6f  %s\n", row.Rank, row.ID, row.Score, text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "kendall tau=%.4f p=%.4f n=%d dropped=%d\n\n",
			s.Report.Tau, s.Report.PValue, s.Report.N, s.Report.Dropped); err != nil {
			return err
		}
	}
	return nil
}
