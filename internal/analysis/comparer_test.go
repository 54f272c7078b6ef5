// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package analysis

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/config"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/models"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/significance"
)

func newTestComparer(t *testing.T, parallelism int) *Comparer {
	t.Helper()
	c, err := NewComparer(config.AnalysisConfig{
		Alpha:       0.05,
		Metrics:     []string{"precision"},
		Parallelism: parallelism,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewComparer() error = %v", err)
	}
	return c
}

// separatedTable builds a table where four algorithms are separated by
// constant offsets on every user, so the omnibus is significant and
// every pair differs.
func separatedTable(metrics ...string) []models.UserMetricRow {
	base := []float64{31, 24, 47, 12, 38, 29, 41, 33, 22, 45}
	offsets := map[string]float64{"ALS": 0, "IALS": 1, "II": 2, "UU": 3}
	users := []string{"u0", "u1", "u2", "u3", "u4", "u5", "u6", "u7", "u8", "u9"}

	var rows []models.UserMetricRow
	for _, metric := range metrics {
		for algo, offset := range offsets {
			for i, u := range users {
				rows = append(rows, models.UserMetricRow{
					Algorithm: algo,
					User:      u,
					Metric:    metric,
					Value:     base[i] + offset,
				})
			}
		}
	}
	return rows
}

func TestCompareSignificantMetric(t *testing.T) {
	c := newTestComparer(t, 1)

	results, err := c.Compare(context.Background(), separatedTable("precision"), []string{"precision"})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}

	r := results[0]
	if r.Metric != "precision" {
		t.Errorf("Metric = %q, want %q", r.Metric, "precision")
	}
	if r.Failure != "" {
		t.Fatalf("Failure = %q, want empty", r.Failure)
	}
	if r.Outcome.Omnibus.Decision != significance.OmnibusSignificant {
		t.Fatalf("Omnibus.Decision = %v, want significant", r.Outcome.Omnibus.Decision)
	}
	if got, want := len(r.Outcome.Pairs), 6; got != want {
		t.Errorf("len(Pairs) = %d, want %d", got, want)
	}
}

func TestCompareEmptyMetricList(t *testing.T) {
	c := newTestComparer(t, 1)

	_, err := c.Compare(context.Background(), separatedTable("precision"), nil)
	if !errors.Is(err, ErrNoMetrics) {
		t.Errorf("Compare() error = %v, want ErrNoMetrics", err)
	}
}

func TestCompareEmptyTable(t *testing.T) {
	c := newTestComparer(t, 1)

	_, err := c.Compare(context.Background(), nil, []string{"precision"})
	if !errors.Is(err, ErrEmptyTable) {
		t.Errorf("Compare() error = %v, want ErrEmptyTable", err)
	}
}

func TestCompareMetricWithoutRowsRecordsFailure(t *testing.T) {
	c := newTestComparer(t, 1)

	results, err := c.Compare(context.Background(), separatedTable("precision"), []string{"precision", "ndcg"})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}

	// The metric without rows fails on its own; the other still
	// evaluates.
	if results[0].Failure != "" {
		t.Errorf("results[0].Failure = %q, want empty", results[0].Failure)
	}
	if results[1].Metric != "ndcg" || results[1].Failure == "" {
		t.Errorf("results[1] = %+v, want a failure entry for ndcg", results[1])
	}
	if results[1].Outcome != nil {
		t.Errorf("results[1].Outcome = %+v, want nil", results[1].Outcome)
	}
}

func TestCompareDegenerateMetricRecordsFailure(t *testing.T) {
	c := newTestComparer(t, 1)

	// Every algorithm scores every user identically, so all ranks tie
	// and the omnibus statistic is undefined.
	var rows []models.UserMetricRow
	for _, algo := range []string{"ALS", "II", "UU"} {
		for _, user := range []string{"u1", "u2", "u3"} {
			rows = append(rows, models.UserMetricRow{
				Algorithm: algo, User: user, Metric: "precision", Value: 0.5,
			})
		}
	}

	results, err := c.Compare(context.Background(), rows, []string{"precision"})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if results[0].Failure == "" {
		t.Fatalf("Failure = empty, want a degenerate-sample entry")
	}
	if results[0].Outcome != nil {
		t.Errorf("Outcome = %+v, want nil", results[0].Outcome)
	}
}

func TestCompareParallelMatchesSerial(t *testing.T) {
	table := separatedTable("precision", "recip_rank", "ndcg", "recall")
	metrics := []string{"precision", "recip_rank", "ndcg", "recall"}

	serial, err := newTestComparer(t, 1).Compare(context.Background(), table, metrics)
	if err != nil {
		t.Fatalf("serial Compare() error = %v", err)
	}
	parallel, err := newTestComparer(t, 4).Compare(context.Background(), table, metrics)
	if err != nil {
		t.Fatalf("parallel Compare() error = %v", err)
	}

	if !reflect.DeepEqual(serial, parallel) {
		t.Errorf("parallel results differ from serial:\n%+v\n%+v", parallel, serial)
	}
}

func TestCompareIdempotent(t *testing.T) {
	c := newTestComparer(t, 1)
	table := separatedTable("precision")

	first, err := c.Compare(context.Background(), table, []string{"precision"})
	if err != nil {
		t.Fatalf("first Compare() error = %v", err)
	}
	second, err := c.Compare(context.Background(), table, []string{"precision"})
	if err != nil {
		t.Fatalf("second Compare() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Compare() results differ:\n%+v\n%+v", second, first)
	}
}

func TestCompareCancelledContext(t *testing.T) {
	c := newTestComparer(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Compare(ctx, separatedTable("precision"), []string{"precision"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Compare() error = %v, want context.Canceled", err)
	}
}
