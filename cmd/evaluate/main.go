// Command evaluate computes AP, P@k, NDCG@k (k from the -k flag, default
// 10), and NDCG@1000 over a results file against a qrels file, for every topic in [401,450] minus
// the excluded set (§6: "an evaluator taking (qrels, results, output, k)").
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/wizenheimer/latimes-search/internal/eval"
)

func main() {
	qrelPath := flag.String("qrel", "", "path to qrels file")
	resultsPath := flag.String("results", "", "path to results file")
	outputPath := flag.String("output", "", "path to output file")
	k := flag.Int("k", 10, "k for Precision@k and NDCG@k")
	flag.Parse()

	if *qrelPath == "" || *resultsPath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: evaluate --qrel PATH --results PATH --output PATH --k N")
		os.Exit(1)
	}

	qrels, err := eval.ParseQrels(*qrelPath)
	if err != nil {
		slog.Error("parsing qrels", "error", err)
		os.Exit(1)
	}
	results, err := eval.ParseResults(*resultsPath)
	if err != nil {
		slog.Error("parsing results", "error", err)
		os.Exit(1)
	}

	out, err := os.Create(*outputPath)
	if err != nil {
		slog.Error("creating output file", "error", err)
		os.Exit(1)
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	defer w.Flush()

	for _, metric := range []string{"ap", "p_at_k", "ndcg_at_k", "ndcg_at_1000"} {
		for _, topicID := range eval.Topics() {
			relevant := qrels.RelevantDocs(topicID)
			entries := results[topicID]
			retrieved := eval.RetrievedDocnos(entries)
			if len(retrieved) == 0 {
				slog.Warn("no results for topic", "topic", topicID)
			}

			var score float64
			switch metric {
			case "ap":
				score = eval.AveragePrecision(relevant, retrieved)
			case "p_at_k":
				score = eval.PrecisionAtK(relevant, retrieved, *k)
			case "ndcg_at_k":
				score = eval.NDCGAtK(relevant, retrieved, *k)
			case "ndcg_at_1000":
				score = eval.NDCGAtK(relevant, retrieved, 1000)
			}
			fmt.Fprintf(w, "%s\t%d\t%.4f\n", metric, topicID, score)
		}
	}
}
