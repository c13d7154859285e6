// Command boolquery runs Boolean-AND retrieval over a built index for
// every query in a queries file, writing TREC-format results (§6: "a
// Boolean-AND retriever with the same triple").
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wizenheimer/latimes-search"
	"github.com/wizenheimer/latimes-search/internal/queries"
)

const runTag = "latimesBoolAND"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <index_dir> <queries_path> <results_dir>\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}
	indexDir, queriesPath, resultsDir := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	lex, idx, store, err := latimes.LoadIndex(indexDir)
	if err != nil {
		slog.Error("loading index", "error", err)
		os.Exit(1)
	}
	qs, err := queries.Parse(queriesPath)
	if err != nil {
		slog.Error("parsing queries", "error", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		slog.Error("creating results dir", "error", err)
		os.Exit(1)
	}

	out, err := os.Create(filepath.Join(resultsDir, "boolean-and-results.txt"))
	if err != nil {
		slog.Error("creating results file", "error", err)
		os.Exit(1)
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	defer w.Flush()

	retriever := latimes.NewBooleanAndRetriever(lex, idx)
	for _, q := range qs {
		results, diag := retriever.Search(q.Text)
		if diag != nil {
			slog.Warn("query term not found in lexicon", "topic", q.TopicID, "query", q.Text, "error", diag)
			continue
		}
		for rank, r := range results {
			docno, err := store.DocnoOf(r.DocID)
			if err != nil {
				slog.Warn("result doc-id not in docstore", "doc_id", r.DocID, "error", err)
				continue
			}
			fmt.Fprintf(w, "%d Q0 %s %d %f %s\n", q.TopicID, docno, rank+1, r.Score, runTag)
		}
	}
}
