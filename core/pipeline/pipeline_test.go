package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adalundhe/kentro/core/config"
	"github.com/adalundhe/kentro/core/embeddings"
)

const debateDoc = `{
  "nodes": [
    {"nodeID": "p1", "type": "I", "text": "carson want a flat tax"},
    {"nodeID": "p2", "type": "I", "text": "carson wants two flat taxes"},
    {"nodeID": "p3", "type": "I", "text": "the sky is blue"},
    {"nodeID": "r1", "type": "RA", "text": "Default Inference"}
  ],
  "edges": [
    {"fromID": "p1", "toID": "r1"},
    {"fromID": "p2", "toID": "r1"}
  ]
}`

func debateConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "debate.json"), []byte(debateDoc), 0o644))

	cfg := config.Default()
	cfg.Corpus.Dir = dir
	return cfg
}

// The pipeline lookup covers the stemmed forms of the corpus vocabulary;
// tax-related tokens and sky-related tokens are orthogonal.
func debateLookup() embeddings.Lookup {
	return embeddings.NewStaticLookup(3, map[string][]float32{
		"carson": {1, 0, 0},
		"flat":   {0.9, 0.1, 0},
		"sky":    {0, 0, 1},
		"blue":   {0, 0, 1},
	})
}

func TestRunBothStrategies(t *testing.T) {
	cfg := debateConfig(t)

	outcome, err := New(cfg, nil).WithLookup(debateLookup()).Run(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, outcome.RunID)
	require.Len(t, outcome.Strategies, 2)

	for _, s := range outcome.Strategies {
		require.Len(t, s.Table, 3, "strategy %s", s.Strategy)

		// The two flat-tax propositions outrank the unrelated one.
		assert.Equal(t, "p3", s.Table[2].ID, "strategy %s", s.Strategy)
		assert.Greater(t, s.Table[0].Score, s.Table[2].Score, "strategy %s", s.Strategy)
		assert.Greater(t, s.Table[1].Score, s.Table[2].Score, "strategy %s", s.Strategy)

		// Ranks are dense from zero.
		for i, row := range s.Table {
			assert.Equal(t, i, row.Rank)
		}

		// p3 feeds no relation, so it is absent from the reference
		// ranking and excluded from the correlation.
		assert.Equal(t, 2, s.Report.N)
		assert.Equal(t, 1, s.Report.Dropped)
		assert.InDelta(t, 1.0, s.Report.Tau, 1e-9)
	}
}

func TestRunSingleStrategy(t *testing.T) {
	cfg := debateConfig(t)
	cfg.Strategies = []string{config.StrategyOverlap}

	outcome, err := New(cfg, nil).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, outcome.Strategies, 1)
	assert.Equal(t, "overlap", outcome.Strategies[0].Strategy)
}

func TestRunEmptyCorpusFails(t *testing.T) {
	cfg := config.Default()
	cfg.Corpus.Dir = t.TempDir()
	cfg.Strategies = []string{config.StrategyOverlap}

	_, err := New(cfg, nil).Run(context.Background())
	assert.Error(t, err)
}

func TestRunCentroidWithoutVectorsFails(t *testing.T) {
	cfg := debateConfig(t)
	cfg.Strategies = []string{config.StrategyCentroid}

	_, err := New(cfg, nil).Run(context.Background())
	assert.Error(t, err)
}

func TestRunCancelledContext(t *testing.T) {
	cfg := debateConfig(t)
	cfg.Strategies = []string{config.StrategyOverlap}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(cfg, nil).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOutcomeRender(t *testing.T) {
	cfg := debateConfig(t)
	cfg.Strategies = []string{config.StrategyOverlap}

	outcome, err := New(cfg, nil).Run(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, outcome.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "== overlap ==")
	assert.Contains(t, out, "p1")
	assert.Contains(t, out, "kendall tau=")
}
