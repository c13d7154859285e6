package latimes

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ═══════════════════════════════════════════════════════════════════════════════
// ON-DISK INDEX LAYOUT (§6)
// ═══════════════════════════════════════════════════════════════════════════════
// A prior iteration of this package persisted a custom binary skip-list-
// tower format; this engine instead persists the JSON layout §6 specifies
// directly, one file per artifact, with encoding/json doing the heavy
// lifting rather than a hand-rolled binary encoder.
// ═══════════════════════════════════════════════════════════════════════════════

func writeJSONFile(path string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func readJSONFile(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// PersistIndex writes every build-time artifact named in §6 under
// outputDir: docno_to_id.json, id_to_docno.json, doc-lengths.txt,
// inverted_index.json, and Lexicon/lexicon_{term_to_id,id_to_term}.json.
// Per-document raw text and metadata are written separately, once per
// document, by DocStore.PersistRaw during the build.
func PersistIndex(outputDir string, lex *Lexicon, idx *InvertedIndex, store *DocStore) error {
	docnoToID := make(map[string]int, store.N())
	idToDocno := make(map[string]string, store.N())
	for id := 1; id <= store.N(); id++ {
		docno, err := store.DocnoOf(id)
		if err != nil {
			return err
		}
		docnoToID[docno] = id
		idToDocno[strconv.Itoa(id)] = docno
	}
	if err := writeJSONFile(filepath.Join(outputDir, "docno_to_id.json"), docnoToID); err != nil {
		return err
	}
	if err := writeJSONFile(filepath.Join(outputDir, "id_to_docno.json"), idToDocno); err != nil {
		return err
	}

	if err := writeDocLengths(filepath.Join(outputDir, "doc-lengths.txt"), store.Lengths()); err != nil {
		return err
	}

	if err := writeInvertedIndex(filepath.Join(outputDir, "inverted_index.json"), idx); err != nil {
		return err
	}

	lexDir := filepath.Join(outputDir, "Lexicon")
	if err := os.MkdirAll(lexDir, 0o755); err != nil {
		return err
	}
	termToID := make(map[string]int, lex.Len())
	idToTerm := make(map[string]string, lex.Len())
	for id := 0; id < lex.Len(); id++ {
		term, _ := lex.TermOf(id)
		termToID[term] = id
		idToTerm[strconv.Itoa(id)] = term
	}
	if err := writeJSONFile(filepath.Join(lexDir, "lexicon_term_to_id.json"), termToID); err != nil {
		return err
	}
	return writeJSONFile(filepath.Join(lexDir, "lexicon_id_to_term.json"), idToTerm)
}

func writeDocLengths(path string, lengths []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, l := range lengths {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return w.Flush()
}

func writeInvertedIndex(path string, idx *InvertedIndex) error {
	out := make([][][2]int, idx.TermCount())
	for termID := 0; termID < idx.TermCount(); termID++ {
		postings := idx.Postings(termID)
		row := make([][2]int, len(postings))
		for i, p := range postings {
			row[i] = [2]int{p.DocID, p.TF}
		}
		out[termID] = row
	}
	return writeJSONFile(path, out)
}

// LoadIndex reads back the artifacts PersistIndex writes, reconstructing
// the Lexicon, InvertedIndex, and a read-only DocStore. The DocStore
// returned supports DocnoOf/IDOf/Length lookups; Assign/RecordLength are
// not meaningful on a loaded store and are not called by retrievers.
func LoadIndex(outputDir string) (*Lexicon, *InvertedIndex, *DocStore, error) {
	var termToID map[string]int
	if err := readJSONFile(filepath.Join(outputDir, "Lexicon", "lexicon_term_to_id.json"), &termToID); err != nil {
		return nil, nil, nil, err
	}
	var idToTermRaw map[string]string
	if err := readJSONFile(filepath.Join(outputDir, "Lexicon", "lexicon_id_to_term.json"), &idToTermRaw); err != nil {
		return nil, nil, nil, err
	}
	lex := NewLexicon()
	lex.idToTerm = make([]string, len(idToTermRaw))
	for k, term := range idToTermRaw {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, nil, nil, err
		}
		lex.idToTerm[id] = term
	}
	lex.termToID = termToID

	var rawIndex [][][2]int
	if err := readJSONFile(filepath.Join(outputDir, "inverted_index.json"), &rawIndex); err != nil {
		return nil, nil, nil, err
	}
	idx := NewInvertedIndex(len(rawIndex))
	for termID, row := range rawIndex {
		for _, pair := range row {
			idx.Append(termID, pair[0], pair[1])
		}
	}

	var idToDocno map[string]string
	if err := readJSONFile(filepath.Join(outputDir, "id_to_docno.json"), &idToDocno); err != nil {
		return nil, nil, nil, err
	}
	var docnoToID map[string]int
	if err := readJSONFile(filepath.Join(outputDir, "docno_to_id.json"), &docnoToID); err != nil {
		return nil, nil, nil, err
	}
	lengths, err := readDocLengths(filepath.Join(outputDir, "doc-lengths.txt"))
	if err != nil {
		return nil, nil, nil, err
	}

	store := NewDocStore(outputDir)
	store.docnoToID = docnoToID
	store.idToDocno = make([]string, len(idToDocno)+1)
	for k, docno := range idToDocno {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, nil, nil, err
		}
		store.idToDocno[id] = docno
	}
	store.lengths = make([]int, len(lengths)+1)
	for i, l := range lengths {
		store.lengths[i+1] = l
	}

	return lex, idx, store, nil
}

func readDocLengths(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lengths []int
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		n, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("doc-lengths.txt: %w", err)
		}
		lengths = append(lengths, n)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lengths, nil
}
