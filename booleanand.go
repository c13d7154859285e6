package latimes

import (
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// BooleanAndRetriever intersects postings doc-id sets for every query term
// via roaring bitmaps (§4.9). Unlike the source's front-end, the query
// pipeline here always stems — the same Analyze used at index time — so a
// given index is never queried with a mismatched pipeline (§9's resolved
// open question).
type BooleanAndRetriever struct {
	Lexicon *Lexicon
	Index   *InvertedIndex
}

// NewBooleanAndRetriever returns a retriever over the given index
// artifacts.
func NewBooleanAndRetriever(lex *Lexicon, idx *InvertedIndex) *BooleanAndRetriever {
	return &BooleanAndRetriever{Lexicon: lex, Index: idx}
}

// Search returns the doc-ids containing every (stemmed) query term, each
// assigned a descending pseudo-score len(matches)-rank so a TREC-style
// writer has something monotonic to emit (§4.9). If any query term is
// absent from the lexicon, the result is empty and diag explains why.
func (r *BooleanAndRetriever) Search(query string) (results []ScoredDoc, diag error) {
	terms := Analyze(query)
	if len(terms) == 0 {
		return nil, nil
	}

	var acc *roaring.Bitmap
	for _, term := range terms {
		termID, err := r.Lexicon.Lookup(term)
		if err != nil {
			return nil, fmt.Errorf("term not found in lexicon: %q: %w", term, ErrTermNotFound)
		}
		bm := r.Index.Bitmap(termID)
		if bm == nil || bm.IsEmpty() {
			return nil, nil
		}
		if acc == nil {
			acc = bm.Clone()
			continue
		}
		acc.And(bm)
	}
	if acc == nil || acc.IsEmpty() {
		return nil, nil
	}

	matches := acc.ToArray()
	sort.Slice(matches, func(i, j int) bool { return matches[i] < matches[j] })

	results = make([]ScoredDoc, len(matches))
	total := len(matches)
	for i, docID := range matches {
		results[i] = ScoredDoc{
			DocID: int(docID),
			Score: float64(total - i),
		}
	}
	return results, nil
}
