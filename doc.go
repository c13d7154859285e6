// ═══════════════════════════════════════════════════════════════════════════════
// PACKAGE LATIMES: A SMALL SEARCH ENGINE OVER A STATIC NEWSWIRE CORPUS
// ═══════════════════════════════════════════════════════════════════════════════
// This package builds and serves a persistent inverted index over a gzipped,
// SGML-tagged corpus of newswire articles (the LA Times collection).
//
// PIPELINE:
// ---------
//
//	corpus.gz → Parser → Indexer → {Lexicon, DocStore, InvertedIndex, doc-lengths}
//
// At query time:
//
//	query text → Tokenize → Stem → Lexicon lookup → postings lookup → scorer → top-K
//
// Two retrieval paths are provided: BM25Retriever (ranked) and
// BooleanAndRetriever (set intersection). Both share the same analysis
// pipeline as the Indexer, so a query always matches against the terms that
// were actually indexed.
// ═══════════════════════════════════════════════════════════════════════════════
package latimes
