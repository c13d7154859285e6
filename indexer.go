package latimes

import (
	"errors"
	"html"
	"io"
	"log/slog"
	"os"
)

// Indexer drives the pipeline described in §4.6: parse -> stem -> assign
// ids -> update postings -> persist. It owns the Lexicon, InvertedIndex,
// and DocStore for the duration of a single build and is the sole mutator
// of all three (§5: single-threaded, sequential, to preserve the
// monotonic-id and ascending-postings invariants).
type Indexer struct {
	Lexicon     *Lexicon
	Index       *InvertedIndex
	Store       *DocStore
	OutputDir   string
	TotalTokens int // running total, checked against Σ doc_lengths post-build
}

// NewIndexer prepares a build into outputDir. outputDir must not already
// exist (§5: indexing fails if it does, to prevent a partial overwrite).
func NewIndexer(outputDir string) (*Indexer, error) {
	if _, err := os.Stat(outputDir); err == nil {
		return nil, ErrOutputExists
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, err
	}
	return &Indexer{
		Lexicon:   NewLexicon(),
		Index:     NewInvertedIndex(0),
		Store:     NewDocStore(outputDir),
		OutputDir: outputDir,
	}, nil
}

// Build consumes every record the parser produces, indexes it, and
// persists the artifacts at end-of-corpus.
func (ix *Indexer) Build(p *Parser) error {
	for {
		rec, err := p.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if err := ix.indexRecord(rec); err != nil {
			return err
		}
	}
	return PersistIndex(ix.OutputDir, ix.Lexicon, ix.Index, ix.Store)
}

// indexRecord performs steps 1-7 of §4.6 for a single parsed document.
func (ix *Indexer) indexRecord(rec *DocRecord) error {
	internalID := ix.Store.Assign(rec.Docno)

	indexable := html.UnescapeString(rec.Text + " " + rec.Headline + " " + rec.Graphic)
	tokens := Tokenize(indexable)

	termFreq := make(map[int]int, len(tokens))
	order := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		stemmed := Stem(tok)
		id := ix.Lexicon.GetOrAssign(stemmed)
		if termFreq[id] == 0 {
			order = append(order, id)
		}
		termFreq[id]++
	}

	ix.Store.RecordLength(internalID, len(tokens))
	ix.TotalTokens += len(tokens)

	for _, termID := range order {
		ix.Index.Append(termID, internalID, termFreq[termID])
	}

	if err := ix.Store.PersistRaw(internalID, rec.RawContent, rec.Headline); err != nil {
		slog.Warn("failed to persist raw document", "docno", rec.Docno, "error", err)
	}
	return nil
}
