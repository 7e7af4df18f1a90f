// Package cmd provides the CLI entrypoints for kentro.
// This file implements the rank command: one batch pipeline run over a
// corpus directory.
package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adalundhe/kentro/core/config"
	"github.com/adalundhe/kentro/core/pipeline"
)

var (
	rankCorpusDir  string
	rankPattern    string
	rankVectors    string
	rankStrategy   string
	rankConfigPath string
	rankJSON       bool
	rankVerbose    bool
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank corpus propositions by centrality",
	Long: `Rank propositions in an AIF corpus with each configured similarity
strategy, score the reference argument graph by eigenvector centrality,
and report Kendall's tau between the two rankings.

Examples:
  kentro rank --corpus ./debates
  kentro rank --corpus ./debates --strategy overlap
  kentro rank --corpus ./debates --vectors GoogleNews-vectors-negative300.bin --strategy all
  kentro rank --corpus ./debates --json | jq '.strategies[0].report'`,
	RunE: runRank,
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringVarP(&rankCorpusDir, "corpus", "c", "", "Directory of AIF JSON documents")
	rankCmd.Flags().StringVar(&rankPattern, "pattern", "", "Glob over corpus filenames (default \"*.json\")")
	rankCmd.Flags().StringVar(&rankVectors, "vectors", "", "Path to a word2vec binary model (centroid strategy)")
	rankCmd.Flags().StringVarP(&rankStrategy, "strategy", "s", "", "Similarity strategy: overlap, centroid or all")
	rankCmd.Flags().StringVar(&rankConfigPath, "config", "", "Path to a YAML config file")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Output the full outcome as JSON")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Enable debug logging")
}

func runRank(cmd *cobra.Command, args []string) error {
	logger := newLogger(rankVerbose)

	cfg, err := config.Load(rankConfigPath)
	if err != nil {
		return err
	}
	applyRankFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Corpus.Dir == "" {
		return fmt.Errorf("no corpus directory: pass --corpus or set corpus.dir in the config")
	}
	if cfg.RequiresVectors() && cfg.Vectors.Path == "" {
		return fmt.Errorf("centroid strategy selected but no vector model: pass --vectors or drop the strategy")
	}

	outcome, err := pipeline.New(cfg, logger).Run(cmd.Context())
	if err != nil {
		return err
	}

	if rankJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(outcome)
	}
	return outcome.Render(os.Stdout)
}

func applyRankFlags(cfg *config.Config) {
	if rankCorpusDir != "" {
		cfg.Corpus.Dir = rankCorpusDir
	}
	if rankPattern != "" {
		cfg.Corpus.Pattern = rankPattern
	}
	if rankVectors != "" {
		cfg.Vectors.Path = rankVectors
	}
	switch strings.ToLower(rankStrategy) {
	case "":
	case "all":
		cfg.Strategies = []string{config.StrategyOverlap, config.StrategyCentroid}
	default:
		cfg.Strategies = strings.Split(strings.ToLower(rankStrategy), ",")
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
