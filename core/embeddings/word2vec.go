package embeddings

import (
	"fmt"
	"log/slog"
	"os"

	"code.sajari.com/word2vec"
)

// Word2VecLookup wraps a binary-format word2vec model (the format used for
// published pretrained vectors such as GoogleNews-vectors-negative300).
type Word2VecLookup struct {
	model *word2vec.Model
}

// OpenWord2Vec loads a word2vec binary model from path. The load happens
// once per process; the returned lookup is read-only.
func OpenWord2Vec(path string, logger *slog.Logger) (*Word2VecLookup, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vectors: %w", err)
	}
	defer f.Close()

	model, err := word2vec.FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parse word2vec model %s: %w", path, err)
	}

	logger.Info("pretrained vectors loaded",
		"path", path,
		"words", model.Size(),
		"dim", model.Dim(),
	)
	return &Word2VecLookup{model: model}, nil
}

func (w *Word2VecLookup) Vector(token string) ([]float32, bool) {
	vecs := w.model.Map([]string{token})
	v, ok := vecs[token]
	if !ok {
		return nil, false
	}
	return []float32(v), true
}

func (w *Word2VecLookup) Dim() int {
	return w.model.Dim()
}
