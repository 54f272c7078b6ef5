// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/models"
)

// MetricFrame is one metric's aligned sample frame: every algorithm's
// per-user values over the same sorted user sequence. Users an
// algorithm has no row for score zero, so all vectors stay matched.
type MetricFrame struct {
	// Metric is the canonical metric name the frame covers.
	Metric string

	// Users is the sorted union of users with at least one row for the
	// metric. Position i of every sample vector belongs to Users[i].
	Users []string

	// Samples maps algorithm identifier to its aligned value vector.
	Samples map[string][]float64
}

// BuildFrame pivots the metric's rows of the long-form table into an
// aligned frame. Duplicate (algorithm, user) cells keep the last value
// seen, matching the table's row order.
func BuildFrame(metric string, rows []models.UserMetricRow) *MetricFrame {
	values := make(map[string]map[string]float64)
	userSet := make(map[string]struct{})

	for _, r := range rows {
		if r.Metric != metric {
			continue
		}
		if values[r.Algorithm] == nil {
			values[r.Algorithm] = make(map[string]float64)
		}
		values[r.Algorithm][r.User] = r.Value
		userSet[r.User] = struct{}{}
	}

	users := make([]string, 0, len(userSet))
	for u := range userSet {
		users = append(users, u)
	}
	sort.Strings(users)

	samples := make(map[string][]float64, len(values))
	for algo, byUser := range values {
		v := make([]float64, len(users))
		for i, u := range users {
			// Missing cells stay zero: a user the algorithm never
			// scored contributes a zero observation.
			v[i] = byUser[u]
		}
		samples[algo] = v
	}

	return &MetricFrame{Metric: metric, Users: users, Samples: samples}
}

// Summaries aggregates the long-form table into one per-algorithm mean
// per metric. Metrics come back in the order given; algorithms within a
// metric in lexicographic order. Metrics without rows are omitted.
func Summaries(rows []models.UserMetricRow, metricOrder []string) []models.MetricSummary {
	type key struct{ metric, algorithm string }
	grouped := make(map[key][]float64)
	for _, r := range rows {
		k := key{r.Metric, r.Algorithm}
		grouped[k] = append(grouped[k], r.Value)
	}

	algorithms := models.SortedAlgorithms(rows)

	var out []models.MetricSummary
	for _, metric := range metricOrder {
		for _, algo := range algorithms {
			values, ok := grouped[key{metric, algo}]
			if !ok {
				continue
			}
			out = append(out, models.MetricSummary{
				Algorithm: algo,
				Metric:    metric,
				Mean:      stat.Mean(values, nil),
				Users:     len(values),
			})
		}
	}
	return out
}
