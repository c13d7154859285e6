// Command shell is an interactive query loop over a built index: prompt
// for a query, run BM25, show the top 10 with generated snippets, then let
// the user pick a rank to view the full document (§1, §9: "the interactive
// shell is an external collaborator").
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wizenheimer/latimes-search"
	"github.com/wizenheimer/latimes-search/internal/snippet"
)

func readJSONFile(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <index_dir>\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	indexDir := flag.Arg(0)

	lex, idx, store, err := latimes.LoadIndex(indexDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading index:", err)
		os.Exit(1)
	}
	retriever := latimes.NewBM25Retriever(lex, idx, store)

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter your query (or type 'Q' to quit): ")
		if !in.Scan() {
			return
		}
		query := strings.TrimSpace(in.Text())
		if strings.EqualFold(query, "q") {
			return
		}

		results := retriever.Search(query)
		shown := results
		if len(shown) > 10 {
			shown = shown[:10]
		}
		rawDocs := make(map[int]string, len(shown))
		for rank, r := range shown {
			docno, err := store.DocnoOf(r.DocID)
			if err != nil {
				continue
			}
			raw, headline, date := loadDocForDisplay(indexDir, docno, r.DocID)
			rawDocs[rank+1] = raw

			snip := snippet.BestSnippet(raw, query)
			if headline == "" {
				headline = snip
				if len(headline) > 50 {
					headline = headline[:50] + "..."
				}
			}
			fmt.Printf("%d. %s (%s)\n", rank+1, headline, date)
			fmt.Printf("%s (%s)\n\n", snip, docno)
		}

		promptForDocView(in, rawDocs, len(shown))
	}
}

func loadDocForDisplay(indexDir, docno string, internalID int) (raw, headline, date string) {
	if len(docno) < 8 {
		return "", "", ""
	}
	mm, dd, yy := docno[2:4], docno[4:6], docno[6:8]
	dir := filepath.Join(indexDir, "19"+yy, mm, dd)
	stem := fmt.Sprintf("%04d", internalID)

	rawBytes, err := os.ReadFile(filepath.Join(dir, stem+".txt"))
	if err == nil {
		raw = string(rawBytes)
	}

	var meta latimes.DocMetadata
	if err := readJSONFile(filepath.Join(dir, stem+"_metadata.json"), &meta); err == nil {
		headline = meta.Headline
		date = meta.Date
	}
	return raw, headline, date
}

func promptForDocView(in *bufio.Scanner, rawDocs map[int]string, count int) {
	for {
		fmt.Print("Enter rank to view document, 'N' for new query, or 'Q' to quit: ")
		if !in.Scan() {
			os.Exit(0)
		}
		input := strings.ToLower(strings.TrimSpace(in.Text()))
		switch {
		case input == "q":
			os.Exit(0)
		case input == "n":
			return
		default:
			rank, err := strconv.Atoi(input)
			if err != nil || rank < 1 || rank > count {
				fmt.Println("Invalid input. Please try again.")
				continue
			}
			fmt.Println(rawDocs[rank])
		}
	}
}
