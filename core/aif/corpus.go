// Package aif loads debate corpora encoded in the Argument Interchange
// Format: JSON documents carrying proposition ("I") nodes and support
// ("RA") / conflict ("CA") relation nodes linked by directed edges.
package aif

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"
)

const (
	// NodeTypeInformation marks proposition nodes carrying argument text.
	NodeTypeInformation = "I"

	// NodeTypeSupport and NodeTypeConflict mark relation nodes. They are
	// scaffolding: they induce adjacency between propositions and are
	// never themselves ranked.
	NodeTypeSupport  = "RA"
	NodeTypeConflict = "CA"
)

// Node is a raw AIF node record.
type Node struct {
	NodeID string `json:"nodeID"`
	Type   string `json:"type"`
	Text   string `json:"text"`
}

// Edge is a raw AIF edge record.
type Edge struct {
	FromID string `json:"fromID"`
	ToID   string `json:"toID"`
}

// Document is one AIF JSON file.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Proposition is an informational node after extraction. Tokens is filled
// in by the normalization stage and immutable afterwards.
type Proposition struct {
	ID     string
	Text   string
	Tokens []string
}

// Relation is a support or conflict node together with the propositions
// feeding into it (the fromIDs of edges targeting the relation).
type Relation struct {
	ID      string
	Type    string
	Sources []string
}

// Corpus is the single source of truth for proposition identity. Ordering
// is fixed at load time (file order, then node order within a file) and
// every downstream matrix and graph indexes against it.
type Corpus struct {
	Propositions []Proposition
	Relations    []Relation

	index map[string]int
}

// Index returns the position of a proposition ID in corpus order.
func (c *Corpus) Index(id string) (int, bool) {
	i, ok := c.index[id]
	return i, ok
}

// Len returns the number of propositions.
func (c *Corpus) Len() int {
	return len(c.Propositions)
}

// Loader reads AIF documents from a directory.
type Loader struct {
	pattern glob.Glob
	logger  *slog.Logger
}

// NewLoader creates a loader that accepts files matching pattern
// (a glob over the base filename, e.g. "*.json").
func NewLoader(pattern string, logger *slog.Logger) (*Loader, error) {
	if pattern == "" {
		pattern = "*.json"
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile corpus pattern %q: %w", pattern, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{pattern: g, logger: logger}, nil
}

// LoadCorpus walks dir and assembles a Corpus from every matching AIF
// document. Malformed entries are skipped with a warning; only I/O or
// JSON failures on a whole file abort the load.
func (l *Loader) LoadCorpus(dir string) (*Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !l.pattern.Match(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	corpus := &Corpus{index: make(map[string]int)}
	for _, name := range names {
		path := filepath.Join(dir, name)
		doc, err := readDocument(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		l.appendDocument(corpus, name, doc)
	}

	l.logger.Info("corpus loaded",
		"dir", dir,
		"files", len(names),
		"propositions", len(corpus.Propositions),
		"relations", len(corpus.Relations),
	)
	return corpus, nil
}

func readDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (l *Loader) appendDocument(corpus *Corpus, file string, doc *Document) {
	relations := make(map[string]*Relation)

	for _, node := range doc.Nodes {
		switch node.Type {
		case NodeTypeInformation:
			if node.Text == "" {
				l.logger.Warn("skipping proposition without text", "file", file, "nodeID", node.NodeID)
				continue
			}
			if _, dup := corpus.index[node.NodeID]; dup {
				l.logger.Warn("skipping duplicate proposition", "file", file, "nodeID", node.NodeID)
				continue
			}
			corpus.index[node.NodeID] = len(corpus.Propositions)
			corpus.Propositions = append(corpus.Propositions, Proposition{
				ID:   node.NodeID,
				Text: node.Text,
			})
		case NodeTypeSupport, NodeTypeConflict:
			relations[node.NodeID] = &Relation{ID: node.NodeID, Type: node.Type}
		default:
			// Preference, transition and other AIF node types carry no
			// ranking signal.
			l.logger.Debug("ignoring node", "file", file, "nodeID", node.NodeID, "type", node.Type)
		}
	}

	for _, edge := range doc.Edges {
		rel, ok := relations[edge.ToID]
		if !ok {
			continue
		}
		if _, known := corpus.index[edge.FromID]; !known {
			l.logger.Warn("skipping edge from unknown source", "file", file, "fromID", edge.FromID)
			continue
		}
		rel.Sources = append(rel.Sources, edge.FromID)
	}

	ids := make([]string, 0, len(relations))
	for id := range relations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		corpus.Relations = append(corpus.Relations, *relations[id])
	}
}
