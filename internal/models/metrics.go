// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package models

import "sort"

// Canonical metric names. Run files, config, and reports all refer to
// metrics by these identifiers.
const (
	// MetricPrecision is precision at N over a ranked list.
	MetricPrecision = "precision"

	// MetricRecipRank is the reciprocal rank of the first relevant item.
	MetricRecipRank = "recip_rank"

	// MetricNDCG is normalized discounted cumulative gain at N.
	MetricNDCG = "ndcg"

	// MetricRecall is recall at N over a ranked list.
	MetricRecall = "recall"

	// MetricRMSE is root-mean-square rating prediction error.
	MetricRMSE = "rmse"

	// MetricMAE is mean absolute rating prediction error.
	MetricMAE = "mae"
)

// RankingMetrics lists the list-based metrics in their canonical
// presentation order.
func RankingMetrics() []string {
	return []string{MetricPrecision, MetricRecipRank, MetricNDCG, MetricRecall}
}

// PredictionMetrics lists the rating-error metrics in their canonical
// presentation order.
func PredictionMetrics() []string {
	return []string{MetricRMSE, MetricMAE}
}

// KnownMetric reports whether name is one of the canonical metrics.
func KnownMetric(name string) bool {
	switch name {
	case MetricPrecision, MetricRecipRank, MetricNDCG, MetricRecall, MetricRMSE, MetricMAE:
		return true
	default:
		return false
	}
}

// SortedMetrics returns the distinct metric names of the given rows in
// lexicographic order.
func SortedMetrics(rows []UserMetricRow) []string {
	seen := make(map[string]struct{})
	for _, r := range rows {
		seen[r.Metric] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// SortedAlgorithms returns the distinct algorithm identifiers of the
// given rows in lexicographic order. Pair enumeration and report layout
// both depend on this ordering being stable.
func SortedAlgorithms(rows []UserMetricRow) []string {
	seen := make(map[string]struct{})
	for _, r := range rows {
		seen[r.Algorithm] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}
