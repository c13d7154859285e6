package latimes

import (
	"math"
	"sort"
)

// Default BM25 parameters (§4.8).
const (
	DefaultK1   = 1.2
	DefaultB    = 0.75
	DefaultKTop = 1000
)

// ScoredDoc is one ranked result: an InternalDocId with its accumulated
// score.
type ScoredDoc struct {
	DocID int
	Score float64
}

// BM25Retriever scores queries against a loaded index using the
// unsmoothed formula in §4.8 — note this deliberately omits the common
// "+1.0" IDF smoothing term some BM25 variants add; original_source/
// BM25Retrieval.py and this formula both leave it out, so idf is allowed to
// go negative for very common terms.
type BM25Retriever struct {
	Lexicon *Lexicon
	Index   *InvertedIndex
	Store   *DocStore
	K1      float64
	B       float64
	KTop    int
}

// NewBM25Retriever returns a retriever over the given index artifacts with
// the default k1/b/K_top.
func NewBM25Retriever(lex *Lexicon, idx *InvertedIndex, store *DocStore) *BM25Retriever {
	return &BM25Retriever{
		Lexicon: lex,
		Index:   idx,
		Store:   store,
		K1:      DefaultK1,
		B:       DefaultB,
		KTop:    DefaultKTop,
	}
}

// Search tokenizes and stems query, scores every document that shares at
// least one query term, and returns the top KTop by score descending, with
// ties broken by ascending DocID (§4.8, §9: "ascending doc_id is
// recommended").
func (r *BM25Retriever) Search(query string) []ScoredDoc {
	terms := Analyze(query)

	n := r.Store.N()
	if n == 0 {
		return nil
	}
	avgdl := r.averageDocLength(n)

	scores := make(map[int]float64)
	for _, term := range terms {
		termID, err := r.Lexicon.Lookup(term)
		if err != nil {
			continue // absent query term: silently skipped (§7)
		}
		postings := r.Index.Postings(termID)
		ni := len(postings)
		if ni == 0 {
			continue
		}
		idf := math.Log((float64(n) - float64(ni) + 0.5) / (float64(ni) + 0.5))

		for _, p := range postings {
			dl := 0.0
			if p.DocID >= 1 && p.DocID <= n {
				dl = float64(r.Store.Length(p.DocID))
			}
			k := r.K1 * ((1 - r.B) + r.B*dl/avgdl)
			tf := float64(p.TF)
			contribution := (tf / (k + tf)) * idf
			scores[p.DocID] += contribution
		}
	}

	results := make([]ScoredDoc, 0, len(scores))
	for docID, score := range scores {
		results = append(results, ScoredDoc{DocID: docID, Score: score})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].DocID < results[j].DocID
	})
	if len(results) > r.KTop {
		results = results[:r.KTop]
	}
	return results
}

func (r *BM25Retriever) averageDocLength(n int) float64 {
	total := 0
	for id := 1; id <= n; id++ {
		total += r.Store.Length(id)
	}
	return float64(total) / float64(n)
}
