// Package config carries the run configuration: corpus location,
// pretrained vector path, similarity strategy selection and the ranking
// iteration parameters.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Strategy names accepted by the similarity stage.
const (
	StrategyOverlap  = "overlap"
	StrategyCentroid = "centroid"
)

type Config struct {
	Corpus  CorpusConfig  `yaml:"corpus"`
	Vectors VectorsConfig `yaml:"vectors"`
	Ranking RankingConfig `yaml:"ranking"`

	// Strategies selects which similarity variants to run.
	Strategies []string `yaml:"strategies"`

	// Seed is threaded through the pipeline for reproducibility of any
	// sampled initialization; the default rankers are deterministic.
	Seed int64 `yaml:"seed"`
}

type CorpusConfig struct {
	Dir     string `yaml:"dir"`
	Pattern string `yaml:"pattern"`
}

type VectorsConfig struct {
	Path      string `yaml:"path"`
	CacheSize int    `yaml:"cache_size"`
}

type RankingConfig struct {
	Damping       float64 `yaml:"damping"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
}

func Default() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Pattern: "*.json",
		},
		Vectors: VectorsConfig{
			CacheSize: 8192,
		},
		Ranking: RankingConfig{
			Damping:       0.85,
			Tolerance:     1e-6,
			MaxIterations: 100,
		},
		Strategies: []string{StrategyOverlap, StrategyCentroid},
		Seed:       42,
	}
}

// Load reads path over the defaults. A missing file is not an error; the
// defaults plus environment overrides apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnvironment(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvironment(cfg *Config) {
	if v := os.Getenv("KENTRO_CORPUS_DIR"); v != "" {
		cfg.Corpus.Dir = v
	}
	if v := os.Getenv("KENTRO_CORPUS_PATTERN"); v != "" {
		cfg.Corpus.Pattern = v
	}
	if v := os.Getenv("KENTRO_VECTORS_PATH"); v != "" {
		cfg.Vectors.Path = v
	}
	if v := os.Getenv("KENTRO_RANKING_DAMPING"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Ranking.Damping = f
		}
	}
	if v := os.Getenv("KENTRO_RANKING_MAX_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Ranking.MaxIterations = n
		}
	}
	if v := os.Getenv("KENTRO_STRATEGIES"); v != "" {
		cfg.Strategies = strings.Split(v, ",")
	}
}

func (c *Config) Validate() error {
	if c.Ranking.Damping <= 0 || c.Ranking.Damping >= 1 {
		return fmt.Errorf("ranking damping %v out of range (0, 1)", c.Ranking.Damping)
	}
	if c.Ranking.Tolerance <= 0 {
		return fmt.Errorf("ranking tolerance must be positive, got %v", c.Ranking.Tolerance)
	}
	if c.Ranking.MaxIterations <= 0 {
		return fmt.Errorf("ranking max iterations must be positive, got %d", c.Ranking.MaxIterations)
	}
	if len(c.Strategies) == 0 {
		return fmt.Errorf("no similarity strategies selected")
	}
	for _, s := range c.Strategies {
		switch s {
		case StrategyOverlap, StrategyCentroid:
		default:
			return fmt.Errorf("unknown similarity strategy %q", s)
		}
	}
	return nil
}

// RequiresVectors reports whether any selected strategy needs the
// pretrained vector table.
func (c *Config) RequiresVectors() bool {
	for _, s := range c.Strategies {
		if s == StrategyCentroid {
			return true
		}
	}
	return false
}
