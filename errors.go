package latimes

import "errors"

// Package-level sentinel errors, compared with errors.Is.
var (
	// ErrTermNotFound is returned by Lexicon.Lookup and by
	// BooleanAndRetriever when a query term never appeared at index time.
	ErrTermNotFound = errors.New("term not found in lexicon")

	// ErrOutputExists is returned by NewIndexer when the requested output
	// directory already exists, to prevent a partial overwrite.
	ErrOutputExists = errors.New("output directory already exists")

	// ErrMissingDocno is logged by the Parser for a DOC record with no DOCNO
	// tag; the record is skipped rather than aborting the whole build, and
	// the error is not returned.
	ErrMissingDocno = errors.New("document record missing DOCNO")

	// ErrDocNotFound is returned by DocStore lookups for an unknown docno
	// or internal id.
	ErrDocNotFound = errors.New("document not found")

	// ErrUnclosedDoc is logged by the Parser when the corpus stream ends
	// while a <DOC> is still open; Parser.Next then returns io.EOF, not this
	// error.
	ErrUnclosedDoc = errors.New("corpus ended with an unclosed DOC record")
)
