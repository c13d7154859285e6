// Command indexer builds a persistent index from a gzipped SGML corpus
// (§6: "an indexer taking (corpus.gz, output_dir)").
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/wizenheimer/latimes-search"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <corpus.gz> <output_dir>\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	corpusPath := flag.Arg(0)
	outputDir := flag.Arg(1)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	parser, closeCorpus, err := latimes.OpenCorpus(corpusPath)
	if err != nil {
		slog.Error("opening corpus", "path", corpusPath, "error", err)
		os.Exit(1)
	}
	defer closeCorpus()

	ix, err := latimes.NewIndexer(outputDir)
	if err != nil {
		slog.Error("preparing output directory", "path", outputDir, "error", err)
		os.Exit(1)
	}

	start := time.Now()
	if err := ix.Build(parser); err != nil {
		slog.Error("building index", "error", err)
		os.Exit(1)
	}

	slog.Info("index built",
		"documents", ix.Store.N(),
		"terms", ix.Lexicon.Len(),
		"tokens", ix.TotalTokens,
		"elapsed", time.Since(start),
	)
}
