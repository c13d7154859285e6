package latimes

import (
	"path/filepath"
	"strings"
	"testing"
)

func buildRetrievers(t *testing.T) (*BM25Retriever, *BooleanAndRetriever) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "out")
	ix, err := NewIndexer(dir)
	if err != nil {
		t.Fatalf("NewIndexer: %v", err)
	}
	if err := ix.Build(NewParser(strings.NewReader(twoDocCorpus))); err != nil {
		t.Fatalf("Build: %v", err)
	}
	return NewBM25Retriever(ix.Lexicon, ix.Index, ix.Store),
		NewBooleanAndRetriever(ix.Lexicon, ix.Index)
}

func TestBM25RanksD1AboveD2ForQuickBrown(t *testing.T) {
	bm25, _ := buildRetrievers(t)
	results := bm25.Search("quick brown")
	if len(results) < 2 {
		t.Fatalf("expected at least 2 results, got %v", results)
	}
	if results[0].DocID != 1 {
		t.Fatalf("top result DocID = %d, want 1 (doc with both 'quick' and 'brown')", results[0].DocID)
	}
}

func TestBM25OutOfLexiconQueryIsEmpty(t *testing.T) {
	bm25, _ := buildRetrievers(t)
	results := bm25.Search("xylophone zzzqqq")
	if len(results) != 0 {
		t.Fatalf("Search of out-of-lexicon terms = %v, want empty", results)
	}
}

func TestBM25RepeatedTermDoublesScore(t *testing.T) {
	bm25, _ := buildRetrievers(t)
	once := bm25.Search("quick")
	twice := bm25.Search("quick quick")

	scoreOnce := make(map[int]float64)
	for _, r := range once {
		scoreOnce[r.DocID] = r.Score
	}
	for _, r := range twice {
		want := 2 * scoreOnce[r.DocID]
		if diff := want - r.Score; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("doc %d: score(quick quick) = %v, want 2*score(quick) = %v", r.DocID, r.Score, want)
		}
	}
}

func TestBM25MonotonicInTF(t *testing.T) {
	// Three docs without "fox" keep its idf positive (N=5, ni=2 gives
	// ln(3.5/2.5) > 0); with only the two fox docs idf would be ln(0.5/2.5) < 0
	// and a higher tf would lower the score.
	corpus := `<DOC><DOCNO>LA010190-0001</DOCNO><TEXT>fox fox fox fox</TEXT></DOC>
<DOC><DOCNO>LA010290-0001</DOCNO><TEXT>fox</TEXT></DOC>
<DOC><DOCNO>LA010390-0001</DOCNO><TEXT>cat</TEXT></DOC>
<DOC><DOCNO>LA010490-0001</DOCNO><TEXT>dog</TEXT></DOC>
<DOC><DOCNO>LA010590-0001</DOCNO><TEXT>owl</TEXT></DOC>`
	dir := filepath.Join(t.TempDir(), "out")
	ix, err := NewIndexer(dir)
	if err != nil {
		t.Fatalf("NewIndexer: %v", err)
	}
	if err := ix.Build(NewParser(strings.NewReader(corpus))); err != nil {
		t.Fatalf("Build: %v", err)
	}
	bm25 := NewBM25Retriever(ix.Lexicon, ix.Index, ix.Store)
	results := bm25.Search("fox")
	scores := make(map[int]float64)
	for _, r := range results {
		scores[r.DocID] = r.Score
	}
	if scores[1] < scores[2] {
		t.Fatalf("doc with higher tf scored lower: scores = %v", scores)
	}
}

func TestBooleanAndIntersection(t *testing.T) {
	_, boolRet := buildRetrievers(t)

	results, diag := boolRet.Search("quick fox")
	if diag != nil {
		t.Fatalf("Search(quick fox) diag = %v, want nil", diag)
	}
	got := map[int]bool{}
	for _, r := range results {
		got[r.DocID] = true
	}
	if !got[1] || !got[2] || len(got) != 2 {
		t.Fatalf("Search(quick fox) = %v, want {1,2}", results)
	}
}

func TestBooleanAndEmptyIntersection(t *testing.T) {
	_, boolRet := buildRetrievers(t)
	results, diag := boolRet.Search("brown jump")
	if diag != nil {
		t.Fatalf("diag = %v, want nil", diag)
	}
	if len(results) != 0 {
		t.Fatalf("Search(brown jump) = %v, want empty", results)
	}
}

func TestBooleanAndTermNotFoundDiagnostic(t *testing.T) {
	_, boolRet := buildRetrievers(t)
	results, diag := boolRet.Search("quick zzzqqq")
	if diag == nil {
		t.Fatal("expected a diagnostic for an out-of-lexicon term")
	}
	if len(results) != 0 {
		t.Fatalf("Search with absent term = %v, want empty", results)
	}
}
