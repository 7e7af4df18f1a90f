// Package pipeline wires the corpus loader, normalizer, similarity
// strategies and rankers into one synchronous batch run: load once,
// process start to finish, discard.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/adalundhe/kentro/core/aif"
	"github.com/adalundhe/kentro/core/config"
	"github.com/adalundhe/kentro/core/embeddings"
	"github.com/adalundhe/kentro/core/evaluate"
	"github.com/adalundhe/kentro/core/ranking"
	"github.com/adalundhe/kentro/core/refgraph"
	"github.com/adalundhe/kentro/core/similarity"
	"github.com/adalundhe/kentro/core/textnorm"
)

type Pipeline struct {
	cfg        *config.Config
	logger     *slog.Logger
	normalizer *textnorm.Normalizer

	// lookup, when pre-set, overrides the word2vec file load. Tests use
	// this to supply a StaticLookup.
	lookup embeddings.Lookup
}

func New(cfg *config.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:        cfg,
		logger:     logger,
		normalizer: textnorm.New(),
	}
}

// WithLookup substitutes the pretrained-vector lookup used by the
// centroid strategy.
func (p *Pipeline) WithLookup(l embeddings.Lookup) *Pipeline {
	p.lookup = l
	return p
}

// Run executes one batch over the configured corpus.
func (p *Pipeline) Run(ctx context.Context) (*Outcome, error) {
	runID := uuid.NewString()
	logger := p.logger.With("run_id", runID)
	logger.Info("pipeline start", "corpus", p.cfg.Corpus.Dir, "strategies", p.cfg.Strategies, "seed", p.cfg.Seed)

	loader, err := aif.NewLoader(p.cfg.Corpus.Pattern, logger)
	if err != nil {
		return nil, err
	}
	corpus, err := loader.LoadCorpus(p.cfg.Corpus.Dir)
	if err != nil {
		return nil, err
	}
	if corpus.Len() == 0 {
		return nil, fmt.Errorf("corpus %s holds no propositions", p.cfg.Corpus.Dir)
	}

	for i := range corpus.Propositions {
		corpus.Propositions[i].Tokens = p.normalizer.Normalize(corpus.Propositions[i].Text)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reference, err := p.referenceAlignment(corpus, logger)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{RunID: runID}
	for _, name := range p.cfg.Strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		so, err := p.runStrategy(name, corpus, reference, logger)
		if err != nil {
			return nil, fmt.Errorf("strategy %s: %w", name, err)
		}
		outcome.Strategies = append(outcome.Strategies, *so)
	}

	logger.Info("pipeline done", "strategies", len(outcome.Strategies))
	return outcome, nil
}

// referenceAlignment computes eigenvector centrality over the
// support/conflict graph and aligns it back onto the corpus.
func (p *Pipeline) referenceAlignment(corpus *aif.Corpus, logger *slog.Logger) (evaluate.Alignment, error) {
	g := refgraph.Build(corpus, logger)
	res, err := ranking.EigenvectorCentrality(g, p.rankOptions())
	if err != nil {
		return evaluate.Alignment{}, fmt.Errorf("reference centrality: %w", err)
	}
	return evaluate.Align(corpus, res), nil
}

func (p *Pipeline) runStrategy(name string, corpus *aif.Corpus, reference evaluate.Alignment, logger *slog.Logger) (*StrategyOutcome, error) {
	provider, err := p.provider(name, logger)
	if err != nil {
		return nil, err
	}

	texts := make([][]string, corpus.Len())
	for i, prop := range corpus.Propositions {
		texts[i] = prop.Tokens
	}

	matrix := similarity.BuildMatrix(provider, texts)
	graph := ranking.BuildGraph(matrix)
	res, err := ranking.PageRank(graph, p.rankOptions())
	if err != nil {
		return nil, err
	}

	aligned := evaluate.Align(corpus, res)
	report, err := evaluate.Correlate(aligned, reference)
	if err != nil {
		return nil, err
	}

	logger.Info("strategy complete",
		"strategy", name,
		"tau", report.Tau,
		"p_value", report.PValue,
		"common", report.N,
		"dropped", report.Dropped,
	)
	return &StrategyOutcome{
		Strategy: name,
		Table:    buildTable(corpus, res),
		Report:   report,
	}, nil
}

func (p *Pipeline) provider(name string, logger *slog.Logger) (similarity.Provider, error) {
	switch name {
	case config.StrategyOverlap:
		return similarity.NewOverlap(), nil
	case config.StrategyCentroid:
		lookup, err := p.vectorLookup(logger)
		if err != nil {
			return nil, err
		}
		return similarity.NewCentroid(lookup, logger), nil
	default:
		return nil, fmt.Errorf("unknown similarity strategy %q", name)
	}
}

func (p *Pipeline) vectorLookup(logger *slog.Logger) (embeddings.Lookup, error) {
	if p.lookup != nil {
		return p.lookup, nil
	}
	if p.cfg.Vectors.Path == "" {
		return nil, fmt.Errorf("centroid strategy needs a pretrained vector path")
	}
	w2v, err := embeddings.OpenWord2Vec(p.cfg.Vectors.Path, logger)
	if err != nil {
		return nil, err
	}
	cached, err := embeddings.NewCachedLookup(w2v, p.cfg.Vectors.CacheSize)
	if err != nil {
		return nil, err
	}
	p.lookup = cached
	return cached, nil
}

func (p *Pipeline) rankOptions() ranking.Options {
	return ranking.Options{
		Damping:       p.cfg.Ranking.Damping,
		Tolerance:     p.cfg.Ranking.Tolerance,
		MaxIterations: p.cfg.Ranking.MaxIterations,
	}
}
