// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package accuracy

import "math"

// Precision returns the fraction of the first n list positions that
// are relevant. The divisor is n even when the list is shorter, so an
// algorithm that recommends fewer items than requested is penalized
// for the missing positions.
func Precision(recommended []string, relevant map[string]bool, n int) float64 {
	if n <= 0 {
		return 0
	}
	hits := countHits(truncate(recommended, n), relevant)
	return float64(hits) / float64(n)
}

// ReciprocalRank returns 1/rank of the first relevant item in the
// full list, or zero when no recommended item is relevant.
func ReciprocalRank(recommended []string, relevant map[string]bool) float64 {
	for i, item := range recommended {
		if relevant[item] {
			return 1 / float64(i+1)
		}
	}
	return 0
}

// NDCG returns the normalized discounted cumulative gain of the first
// n list positions with binary gains and a log2(rank+1) discount. The
// ideal list places one relevant item on each of the first positions,
// up to the number of relevant items. Zero when the user has no
// relevant items.
func NDCG(recommended []string, relevant map[string]bool, n int) float64 {
	if n <= 0 || len(relevant) == 0 {
		return 0
	}

	var dcg float64
	for i, item := range truncate(recommended, n) {
		if relevant[item] {
			dcg += 1 / math.Log2(float64(i+2))
		}
	}

	ideal := len(relevant)
	if ideal > n {
		ideal = n
	}
	var idcg float64
	for i := 0; i < ideal; i++ {
		idcg += 1 / math.Log2(float64(i+2))
	}

	return dcg / idcg
}

// Recall returns the fraction of the user's relevant items that appear
// in the first n list positions. Zero when the user has no relevant
// items.
func Recall(recommended []string, relevant map[string]bool, n int) float64 {
	if n <= 0 || len(relevant) == 0 {
		return 0
	}
	hits := countHits(truncate(recommended, n), relevant)
	return float64(hits) / float64(len(relevant))
}

func truncate(recommended []string, n int) []string {
	if len(recommended) > n {
		return recommended[:n]
	}
	return recommended
}

func countHits(recommended []string, relevant map[string]bool) int {
	hits := 0
	for _, item := range recommended {
		if relevant[item] {
			hits++
		}
	}
	return hits
}
