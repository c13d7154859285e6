package latimes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const twoDocCorpus = `<DOC>
<DOCNO>LA010190-0001</DOCNO>
<TEXT>The quick brown fox</TEXT>
</DOC>
<DOC>
<DOCNO>LA010290-0001</DOCNO>
<TEXT>quick foxes jump</TEXT>
</DOC>`

func buildTwoDocIndex(t *testing.T) *Indexer {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "out")
	ix, err := NewIndexer(dir)
	if err != nil {
		t.Fatalf("NewIndexer: %v", err)
	}
	p := NewParser(strings.NewReader(twoDocCorpus))
	if err := ix.Build(p); err != nil {
		t.Fatalf("Build: %v", err)
	}
	return ix
}

func TestIndexerScenarioFromSpec(t *testing.T) {
	ix := buildTwoDocIndex(t)

	quickID, err := ix.Lexicon.Lookup("quick")
	if err != nil {
		t.Fatalf("lookup quick: %v", err)
	}
	foxID, err := ix.Lexicon.Lookup(Stem("fox"))
	if err != nil {
		t.Fatalf("lookup fox: %v", err)
	}
	brownID, err := ix.Lexicon.Lookup("brown")
	if err != nil {
		t.Fatalf("lookup brown: %v", err)
	}

	quickPostings := ix.Index.Postings(quickID)
	if len(quickPostings) != 2 || quickPostings[0] != (Posting{1, 1}) || quickPostings[1] != (Posting{2, 1}) {
		t.Fatalf(`postings for "quick" = %v, want [(1,1) (2,1)]`, quickPostings)
	}

	foxPostings := ix.Index.Postings(foxID)
	if len(foxPostings) != 2 {
		t.Fatalf(`postings for stem(fox) = %v, want 2 entries (fox, foxes both stem to "fox")`, foxPostings)
	}

	brownPostings := ix.Index.Postings(brownID)
	if len(brownPostings) != 1 || brownPostings[0] != (Posting{1, 1}) {
		t.Fatalf(`postings for "brown" = %v, want [(1,1)]`, brownPostings)
	}
}

func TestIndexerLengthConservation(t *testing.T) {
	ix := buildTwoDocIndex(t)

	sumLengths := 0
	for id := 1; id <= ix.Store.N(); id++ {
		sumLengths += ix.Store.Length(id)
	}

	sumTF := 0
	for termID := 0; termID < ix.Lexicon.Len(); termID++ {
		for _, p := range ix.Index.Postings(termID) {
			sumTF += p.TF
		}
	}

	if sumLengths != sumTF {
		t.Fatalf("Σdoc_lengths = %d, Σpostings tf = %d, want equal", sumLengths, sumTF)
	}
	if sumLengths != ix.TotalTokens {
		t.Fatalf("Σdoc_lengths = %d, TotalTokens = %d, want equal", sumLengths, ix.TotalTokens)
	}
}

func TestIndexerRejectsExistingOutputDir(t *testing.T) {
	dir := t.TempDir()
	if _, err := NewIndexer(dir); err != ErrOutputExists {
		t.Fatalf("NewIndexer on existing dir: err = %v, want ErrOutputExists", err)
	}
}

func TestIndexerPersistsDatePartitionedDocs(t *testing.T) {
	ix := buildTwoDocIndex(t)
	path := filepath.Join(ix.OutputDir, "1990", "01", "01", "0001.txt")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected persisted doc at %s: %v", path, err)
	}
}
