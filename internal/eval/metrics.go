package eval

import (
	"math"
	"sort"
)

func sortResultEntries(entries []ResultEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Docno > entries[j].Docno
	})
}

func contains(docs []string, target string) bool {
	for _, d := range docs {
		if d == target {
			return true
		}
	}
	return false
}

// AveragePrecision is mean precision at each rank a relevant document was
// retrieved, divided by the total count of known relevant docs (§9;
// compute_average_precision). Zero relevant docs retrieved yields 0.0, not
// a division error.
func AveragePrecision(relevant, retrieved []string) float64 {
	if len(relevant) == 0 {
		return 0.0
	}
	var precisionSum float64
	relevantSoFar := 0
	for i, doc := range retrieved {
		if contains(relevant, doc) {
			relevantSoFar++
			precisionSum += float64(relevantSoFar) / float64(i+1)
		}
	}
	return precisionSum / float64(len(relevant))
}

// PrecisionAtK is |relevant ∩ top-k| / k (§9; compute_precision_at_k).
func PrecisionAtK(relevant, retrieved []string, k int) float64 {
	if len(retrieved) == 0 || k == 0 {
		return 0.0
	}
	top := retrieved
	if len(top) > k {
		top = top[:k]
	}
	hits := 0
	for _, doc := range top {
		if contains(relevant, doc) {
			hits++
		}
	}
	return float64(hits) / float64(k)
}

// NDCGAtK uses binary gains and a log2(i+2) discount, with ideal DCG
// summing the discount over min(k, |relevant|) positions (§9;
// compute_ndcg).
func NDCGAtK(relevant, retrieved []string, k int) float64 {
	idealPositions := k
	if len(relevant) < idealPositions {
		idealPositions = len(relevant)
	}
	var idealDCG float64
	for i := 0; i < idealPositions; i++ {
		idealDCG += 1 / math.Log2(float64(i+2))
	}
	if idealDCG == 0 {
		return 0.0
	}

	top := retrieved
	if len(top) > k {
		top = top[:k]
	}
	var dcg float64
	for i, doc := range top {
		if contains(relevant, doc) {
			dcg += 1 / math.Log2(float64(i+2))
		}
	}
	return dcg / idealDCG
}

// TopicRangeStart and TopicRangeEnd bound the topic ids the evaluator
// iterates over (§6: "[401, 450]").
const (
	TopicRangeStart = 401
	TopicRangeEnd   = 450
)

// ExcludedTopics are topic ids skipped per the source's test configuration
// (§6).
var ExcludedTopics = map[int]bool{416: true, 423: true, 437: true, 444: true, 447: true}

// Topics returns the topic ids the evaluator should process: the closed
// range [TopicRangeStart, TopicRangeEnd] minus ExcludedTopics.
func Topics() []int {
	var topics []int
	for t := TopicRangeStart; t <= TopicRangeEnd; t++ {
		if !ExcludedTopics[t] {
			topics = append(topics, t)
		}
	}
	return topics
}
