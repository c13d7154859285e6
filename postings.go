package latimes

import "github.com/RoaringBitmap/roaring"

// Posting records that a term occurs TF times in DocID.
type Posting struct {
	DocID int
	TF    int
}

// InvertedIndex maps term_id to an ordered postings list (§4.7). Builds
// append in parse order, which is already ascending by DocID (§3), so no
// sort is needed at append time — only a doubling-slice append, O(1)
// amortized, against a plain slice since there is no phrase/proximity
// operation in this engine to justify a positional structure such as a
// skip list (see DESIGN.md).
//
// docBitmaps mirrors the same postings as a roaring.Bitmap per term,
// maintained alongside the slice so BooleanAndRetriever can intersect many
// terms' doc-id sets without re-deriving a bitmap from the slice on every
// query.
type InvertedIndex struct {
	postings   [][]Posting
	docBitmaps []*roaring.Bitmap
}

// NewInvertedIndex returns an empty index sized for termCount terms. Extra
// terms discovered later still grow it via Append.
func NewInvertedIndex(termCount int) *InvertedIndex {
	return &InvertedIndex{
		postings:   make([][]Posting, termCount),
		docBitmaps: make([]*roaring.Bitmap, termCount),
	}
}

// Append records that term termID occurred tf times in docID. Must be
// called with strictly increasing docID for a given termID across a build
// (the Indexer guarantees this by construction: each document contributes
// at most one posting per term, in parse order).
func (idx *InvertedIndex) Append(termID, docID, tf int) {
	idx.growTo(termID)
	idx.postings[termID] = append(idx.postings[termID], Posting{DocID: docID, TF: tf})
	idx.docBitmaps[termID].Add(uint32(docID))
}

func (idx *InvertedIndex) growTo(termID int) {
	for termID >= len(idx.postings) {
		idx.postings = append(idx.postings, nil)
		idx.docBitmaps = append(idx.docBitmaps, nil)
	}
	if idx.docBitmaps[termID] == nil {
		idx.docBitmaps[termID] = roaring.New()
	}
}

// Postings returns the postings list for termID, or nil if termID is out
// of range (never been appended to).
func (idx *InvertedIndex) Postings(termID int) []Posting {
	if termID < 0 || termID >= len(idx.postings) {
		return nil
	}
	return idx.postings[termID]
}

// Bitmap returns the roaring bitmap of doc-ids containing termID, or nil if
// termID is out of range.
func (idx *InvertedIndex) Bitmap(termID int) *roaring.Bitmap {
	if termID < 0 || termID >= len(idx.docBitmaps) {
		return nil
	}
	return idx.docBitmaps[termID]
}

// TermCount returns the number of term slots in the index (equal to the
// lexicon size at the time the index was built or loaded).
func (idx *InvertedIndex) TermCount() int {
	return len(idx.postings)
}
