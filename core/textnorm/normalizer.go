// Package textnorm turns raw proposition text into canonical token
// sequences: punctuation stripped, unicode word segmentation, treebank
// contraction splitting, lowercasing and Porter stemming.
package textnorm

import (
	"strings"
	"unicode"

	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/token/porter"
	unicodetokenizer "github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
)

// Normalizer is a pure text-to-tokens transform. Safe for concurrent use;
// it holds no per-call state.
type Normalizer struct {
	tokenizer analysis.Tokenizer
	filters   []analysis.TokenFilter
}

// New returns a Normalizer with the standard analysis chain.
func New() *Normalizer {
	return &Normalizer{
		tokenizer: unicodetokenizer.NewUnicodeTokenizer(),
		filters: []analysis.TokenFilter{
			lowercase.NewLowerCaseFilter(),
			porter.NewPorterStemmer(),
		},
	}
}

// Normalize produces the canonical token sequence for text. Empty input
// yields an empty (nil) sequence, never an error.
func (n *Normalizer) Normalize(text string) []string {
	if text == "" {
		return nil
	}

	stream := n.tokenizer.Tokenize([]byte(stripPunctuation(text)))
	stream = splitContractions(stream)
	for _, f := range n.filters {
		stream = f.Filter(stream)
	}

	tokens := make([]string, 0, len(stream))
	for _, tok := range stream {
		if len(tok.Term) == 0 {
			continue
		}
		tokens = append(tokens, string(tok.Term))
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// stripPunctuation replaces punctuation with spaces. Apostrophes survive
// so contractions reach the splitter intact.
func stripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '\'' || r == '’' {
			return '\''
		}
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return ' '
		}
		return r
	}, text)
}

// clitics are the treebank contraction suffixes split into their own
// tokens ("they'll" -> "they", "'ll").
var clitics = []string{"'s", "'m", "'d", "'ll", "'re", "'ve"}

// splitContractions rewrites the stream with treebank contraction
// splitting applied: "don't" becomes "do" + "n't".
func splitContractions(stream analysis.TokenStream) analysis.TokenStream {
	out := make(analysis.TokenStream, 0, len(stream))
	pos := 0
	emit := func(term string) {
		term = strings.Trim(term, "'")
		if term == "" {
			return
		}
		pos++
		out = append(out, &analysis.Token{
			Term:     []byte(term),
			Position: pos,
			Type:     analysis.AlphaNumeric,
		})
	}

	for _, tok := range stream {
		term := string(tok.Term)
		lower := strings.ToLower(term)

		if strings.HasSuffix(lower, "n't") && len(term) > 3 {
			emit(term[:len(term)-3])
			emit("n't")
			continue
		}
		if suffix := cliticSuffix(lower); suffix > 0 {
			emit(term[:len(term)-suffix])
			emit(term[len(term)-suffix:])
			continue
		}
		emit(term)
	}
	return out
}

func cliticSuffix(lower string) int {
	for _, c := range clitics {
		if strings.HasSuffix(lower, c) && len(lower) > len(c) {
			return len(c)
		}
	}
	return 0
}
