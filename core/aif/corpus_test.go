package aif

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "debate.json", `{
	  "nodes": [
	    {"nodeID": "n1", "type": "I", "text": "carson want a flat tax"},
	    {"nodeID": "n2", "type": "I", "text": "the sky is blue"},
	    {"nodeID": "n3", "type": "RA", "text": "Default Inference"},
	    {"nodeID": "n4", "type": "CA", "text": "Default Conflict"}
	  ],
	  "edges": [
	    {"fromID": "n1", "toID": "n3"},
	    {"fromID": "n2", "toID": "n3"},
	    {"fromID": "n1", "toID": "n4"}
	  ]
	}`)

	loader, err := NewLoader("*.json", nil)
	require.NoError(t, err)
	corpus, err := loader.LoadCorpus(dir)
	require.NoError(t, err)

	require.Equal(t, 2, corpus.Len())
	assert.Equal(t, "n1", corpus.Propositions[0].ID)
	assert.Equal(t, "carson want a flat tax", corpus.Propositions[0].Text)

	require.Len(t, corpus.Relations, 2)
	byID := map[string]Relation{}
	for _, rel := range corpus.Relations {
		byID[rel.ID] = rel
	}
	assert.ElementsMatch(t, []string{"n1", "n2"}, byID["n3"].Sources)
	assert.Equal(t, NodeTypeSupport, byID["n3"].Type)
	assert.ElementsMatch(t, []string{"n1"}, byID["n4"].Sources)
	assert.Equal(t, NodeTypeConflict, byID["n4"].Type)
}

func TestLoadCorpusSkipsMalformedEntries(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "debate.json", `{
	  "nodes": [
	    {"nodeID": "n1", "type": "I", "text": "a real proposition"},
	    {"nodeID": "n2", "type": "I"},
	    {"nodeID": "n3", "type": "XYZ", "text": "unknown node type"}
	  ],
	  "edges": [
	    {"fromID": "missing", "toID": "also-missing"}
	  ]
	}`)

	loader, err := NewLoader("", nil)
	require.NoError(t, err)
	corpus, err := loader.LoadCorpus(dir)
	require.NoError(t, err, "malformed entries are skipped, not fatal")

	assert.Equal(t, 1, corpus.Len())
	assert.Empty(t, corpus.Relations)
}

func TestLoadCorpusPatternFilter(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "keep.json", `{"nodes": [{"nodeID": "n1", "type": "I", "text": "kept"}], "edges": []}`)
	write(t, dir, "skip.txt", `not json at all`)
	write(t, dir, "other.json", `{"nodes": [{"nodeID": "n2", "type": "I", "text": "also kept"}], "edges": []}`)

	loader, err := NewLoader("*.json", nil)
	require.NoError(t, err)
	corpus, err := loader.LoadCorpus(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, corpus.Len())
}

func TestLoadCorpusStableOrdering(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "b.json", `{"nodes": [{"nodeID": "later", "type": "I", "text": "second file"}], "edges": []}`)
	write(t, dir, "a.json", `{"nodes": [{"nodeID": "earlier", "type": "I", "text": "first file"}], "edges": []}`)

	loader, err := NewLoader("*.json", nil)
	require.NoError(t, err)
	corpus, err := loader.LoadCorpus(dir)
	require.NoError(t, err)

	require.Equal(t, 2, corpus.Len())
	assert.Equal(t, "earlier", corpus.Propositions[0].ID)

	idx, ok := corpus.Index("later")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestLoadCorpusBadJSON(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "broken.json", `{"nodes": [`)

	loader, err := NewLoader("*.json", nil)
	require.NoError(t, err)
	_, err = loader.LoadCorpus(dir)
	assert.Error(t, err)
}
