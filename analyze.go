package latimes

import (
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════════
// TEXT ANALYSIS: Tokenize then Stem
// ═══════════════════════════════════════════════════════════════════════════════
// The analysis pipeline has exactly two stages, applied in order:
//
//  1. Tokenize  — lowercase, extract maximal runs of [A-Za-z0-9_]
//  2. Stem      — classical Porter stemming, one token in, one token out
//
// Unlike an AnalyzeWithConfig-style pipeline with stopwords, a length
// filter, and Porter2/Snowball stemming, this analyzer performs no stopword
// removal and no minimum-length filtering: spec §4.1 calls for tokenization
// with "no de-duplication, no stopword removal," and the Indexer/
// BM25Retriever/BooleanAndRetriever must all observe the same terms for the
// length- and intersection-invariants in spec §3/§8 to hold.
// ═══════════════════════════════════════════════════════════════════════════════

// Analyze runs the full pipeline: Tokenize then Stem on every token.
func Analyze(text string) []string {
	tokens := Tokenize(text)
	stemmed := make([]string, len(tokens))
	for i, tok := range tokens {
		stemmed[i] = Stem(tok)
	}
	return stemmed
}

// Tokenize lowercases text and extracts maximal runs of word characters
// ([A-Za-z0-9_]+), in order, with no de-duplication. This follows
// original_source/PorterStemmerIndexEngine.py's tokenize()
// (re.findall(r'\w+', text.lower())) but is ASCII-only: non-ASCII letters,
// which Python's \w would keep, end a token here.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)

	var tokens []string
	start := -1
	for i, r := range lower {
		if isWordChar(r) {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			tokens = append(tokens, lower[start:i])
			start = -1
		}
	}
	if start != -1 {
		tokens = append(tokens, lower[start:])
	}
	return tokens
}

func isWordChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	}
	return false
}
