// Package snippet extracts a best-matching sentence from a document's raw
// text for display alongside a query's results (spec §1, §9: "derived from
// the raw document text by choosing a best-scoring sentence overlapping
// with the query's token set... exact heuristic is implementation-defined").
//
// Grounded on original_source/InteractiveRetrival.py's
// generate_snippet_from_text: skip the leading metadata block (the raw
// captured corpus text starts with a few lines of wire-service boilerplate
// ending in a line containing "words"), skip all-caps heading lines and
// very short sentences, then score every remaining sentence by the size of
// its overlap with the query's token set minus 0.1 per sentence position, so
// earlier sentences win ties and a later sentence needs a larger overlap to
// beat one ten or more positions before it.
package snippet

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

const noRelevantSnippet = "No relevant snippet found."

// SplitSentences breaks text into naive sentences on '.', '!', or '?'
// followed by whitespace or end of string. No third-party sentence
// tokenizer was available anywhere in the retrieved pack (the source's
// nltk.sent_tokenize has no Go equivalent in scope here), so this is a
// deliberately simple stdlib split — good enough for the wire-service
// prose this corpus contains, not a general-purpose sentence boundary
// detector.
func SplitSentences(text string) []string {
	var sentences []string
	start := 0
	for i, r := range text {
		switch r {
		case '.', '!', '?':
			if next, _ := utf8.DecodeRuneInString(text[i+1:]); i+1 < len(text) && !unicode.IsSpace(next) {
				continue
			}
			sentences = append(sentences, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}

	trimmed := sentences[:0]
	for _, s := range sentences {
		if t := strings.TrimSpace(s); t != "" {
			trimmed = append(trimmed, t)
		}
	}
	return trimmed
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '_'
	})
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range tokenize(text) {
		set[tok] = true
	}
	return set
}

// BestSnippet picks the sentence in text with the highest score, where the
// score is its overlap with query's tokens minus 0.1 times its sentence
// index, skipping the leading wire-service metadata block and any all-caps
// heading lines or sentences shorter than 4 words. Returns a fixed "no
// relevant snippet" message if no sentence shares a token with the query.
func BestSnippet(text, query string) string {
	queryTerms := tokenSet(query)
	sentences := SplitSentences(text)

	mainTextStarted := false
	bestSnippet := ""
	bestScore := math.Inf(-1)

	for i, sentence := range sentences {
		if strings.Contains(strings.ToLower(sentence), "words") {
			mainTextStarted = true
			continue
		}
		if !mainTextStarted || isAllUpper(sentence) || len(strings.Fields(sentence)) < 4 {
			continue
		}

		common := 0
		for tok := range tokenSet(sentence) {
			if queryTerms[tok] {
				common++
			}
		}
		if common == 0 {
			continue
		}
		score := float64(common) - 0.1*float64(i)
		if score > bestScore {
			bestScore = score
			bestSnippet = sentence
		}
	}

	if bestSnippet == "" {
		return noRelevantSnippet
	}
	return bestSnippet
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}
