// Command getdoc dumps a single document's metadata and raw text by
// internal id or docno (§6: "a document-dump utility taking (index_dir,
// 'id'|'docno', value)").
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/wizenheimer/latimes-search"
)

func readJSON(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <index_dir> <id|docno> <value>\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}
	indexDir, searchType, value := flag.Arg(0), flag.Arg(1), flag.Arg(2)
	if searchType != "id" && searchType != "docno" {
		fmt.Fprintln(os.Stderr, "error: the second argument must be 'id' or 'docno'")
		os.Exit(1)
	}

	_, _, store, err := latimes.LoadIndex(indexDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading index:", err)
		os.Exit(1)
	}

	var internalID int
	var docno string
	if searchType == "id" {
		internalID, err = strconv.Atoi(value)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error: when searching by 'id', the value must be an integer")
			os.Exit(1)
		}
		docno, err = store.DocnoOf(internalID)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error: document with the given id not found")
			os.Exit(1)
		}
	} else {
		docno = value
		internalID, err = store.IDOf(docno)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error: document with the given docno not found")
			os.Exit(1)
		}
	}

	var meta latimes.DocMetadata
	dir, err := datePartitionDir(indexDir, docno)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	stem := fmt.Sprintf("%04d", internalID)

	metaPath := filepath.Join(dir, stem+"_metadata.json")
	if err := readJSON(metaPath, &meta); err != nil {
		fmt.Fprintln(os.Stderr, "error: document or metadata not found")
		os.Exit(1)
	}

	docPath := filepath.Join(dir, stem+".txt")
	raw, err := os.ReadFile(docPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: document or metadata not found")
		os.Exit(1)
	}

	fmt.Printf("docno: %s\n", meta.Docno)
	fmt.Printf("internal id: %d\n", internalID)
	fmt.Printf("date: %s\n", meta.Date)
	fmt.Printf("headline: %s\n", meta.Headline)
	fmt.Println()
	fmt.Println("raw document:")
	fmt.Println(string(raw))
}

// datePartitionDir derives <index_dir>/<year>/<MM>/<DD> from docno the same
// way DocStore.PersistRaw did at index time (§3, §6).
func datePartitionDir(indexDir, docno string) (string, error) {
	if len(docno) < 8 {
		return "", fmt.Errorf("docno %q too short to contain a date", docno)
	}
	mm, dd, yy := docno[2:4], docno[4:6], docno[6:8]
	return filepath.Join(indexDir, "19"+yy, mm, dd), nil
}
