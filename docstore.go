package latimes

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DocMetadata is the per-document JSON sidecar written next to a document's
// raw text, matching the fields listed in §6: docno, date, headline.
type DocMetadata struct {
	Docno    string `json:"docno"`
	Date     string `json:"date"`
	Headline string `json:"headline"`
}

// DocStore is the bidirectional docno<->InternalDocId map plus per-doc
// length accounting and raw-content persistence. Ids are 1-based, assigned
// in parse order, dense and contiguous over [1..N] — see §3.
type DocStore struct {
	outputDir string
	docnoToID map[string]int
	idToDocno []string // index 0 unused; idToDocno[id] is the docno
	lengths   []int    // index 0 unused; lengths[id] is the stemmed-token count
}

// NewDocStore returns a DocStore that will persist per-document artifacts
// under outputDir. outputDir is assumed to already exist (the Indexer
// creates it once, up front, enforcing ErrOutputExists).
func NewDocStore(outputDir string) *DocStore {
	return &DocStore{
		outputDir: outputDir,
		docnoToID: make(map[string]int),
		idToDocno: []string{""},
		lengths:   []int{0},
	}
}

// Assign allocates the next InternalDocId for docno and records both
// directions. Called exactly once per document, in parse order.
func (s *DocStore) Assign(docno string) int {
	id := len(s.idToDocno)
	s.docnoToID[docno] = id
	s.idToDocno = append(s.idToDocno, docno)
	s.lengths = append(s.lengths, 0)
	return id
}

// DocnoOf returns the docno for an internal id.
func (s *DocStore) DocnoOf(id int) (string, error) {
	if id <= 0 || id >= len(s.idToDocno) {
		return "", ErrDocNotFound
	}
	return s.idToDocno[id], nil
}

// IDOf returns the internal id for a docno.
func (s *DocStore) IDOf(docno string) (int, error) {
	id, ok := s.docnoToID[docno]
	if !ok {
		return 0, ErrDocNotFound
	}
	return id, nil
}

// RecordLength stores the stemmed-token count for a document. Spec §3: this
// must never be 0 for an indexed document.
func (s *DocStore) RecordLength(id, length int) {
	s.lengths[id] = length
}

// Length returns the recorded stemmed-token count for id.
func (s *DocStore) Length(id int) int {
	if id <= 0 || id >= len(s.lengths) {
		return 0
	}
	return s.lengths[id]
}

// Lengths returns the doc-lengths vector indexed by InternalDocId-1, i.e.
// Lengths()[i] is the length of document i+1. This is the shape persisted
// to doc-lengths.txt (§6).
func (s *DocStore) Lengths() []int {
	return append([]int(nil), s.lengths[1:]...)
}

// N returns the number of documents assigned so far.
func (s *DocStore) N() int {
	return len(s.idToDocno) - 1
}

// docDate derives (year, MM, DD) from the front of docno (§3): docno[2:4]=MM,
// docno[4:6]=DD, docno[6:8]=YY, with YY prefixed "19" to form the full year.
// Returns an error if docno is too short to contain the date fields.
func docDate(docno string) (year, mm, dd string, err error) {
	if len(docno) < 8 {
		return "", "", "", fmt.Errorf("docno %q too short to contain a date", docno)
	}
	mm = docno[2:4]
	dd = docno[4:6]
	yy := docno[6:8]
	if _, err := strconv.Atoi(mm); err != nil {
		return "", "", "", fmt.Errorf("docno %q: non-numeric month %q", docno, mm)
	}
	if _, err := strconv.Atoi(dd); err != nil {
		return "", "", "", fmt.Errorf("docno %q: non-numeric day %q", docno, dd)
	}
	if _, err := strconv.Atoi(yy); err != nil {
		return "", "", "", fmt.Errorf("docno %q: non-numeric year %q", docno, yy)
	}
	return "19" + yy, mm, dd, nil
}

// PersistRaw writes the document's raw captured content and metadata under
// the date partition <output_dir>/<year>/<MM>/<DD>/<NNNN>{.txt,_metadata.json},
// where NNNN is id zero-padded to 4 digits (§6).
func (s *DocStore) PersistRaw(id int, rawContent, headline string) error {
	docno, err := s.DocnoOf(id)
	if err != nil {
		return err
	}
	year, mm, dd, err := docDate(docno)
	if err != nil {
		return err
	}
	dir := filepath.Join(s.outputDir, year, mm, dd)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	stem := fmt.Sprintf("%04d", id)
	txtPath := filepath.Join(dir, stem+".txt")
	if err := os.WriteFile(txtPath, []byte(rawContent), 0o644); err != nil {
		return err
	}

	meta := DocMetadata{
		Docno:    docno,
		Date:     fmt.Sprintf("%s/%s/%s", mm, dd, year),
		Headline: headline,
	}
	metaPath := filepath.Join(dir, stem+"_metadata.json")
	return writeJSONFile(metaPath, meta)
}
