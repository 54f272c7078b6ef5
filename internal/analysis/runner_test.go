// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package analysis

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/config"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/models"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/store"
)

func newStagedRunner(t *testing.T) *Runner {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Metrics.ListSize = 2

	st, err := store.New(&cfg.Store, zerolog.Nop())
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})

	ctx := context.Background()

	recs := []models.RecRow{
		{Algorithm: "ALS", User: "u1", Item: "101", Score: 4.9, Rank: 1},
		{Algorithm: "ALS", User: "u1", Item: "102", Score: 4.1, Rank: 2},
		{Algorithm: "ALS", User: "u2", Item: "103", Score: 3.9, Rank: 1},
		{Algorithm: "UU", User: "u1", Item: "102", Score: 4.5, Rank: 1},
		{Algorithm: "UU", User: "u1", Item: "104", Score: 4.0, Rank: 2},
	}
	if err := st.InsertRecs(ctx, recs); err != nil {
		t.Fatalf("InsertRecs() error = %v", err)
	}

	preds := []models.PredRow{
		{Algorithm: "ALS", User: "u1", Item: "101", Rating: 4, Prediction: 3},
		{Algorithm: "ALS", User: "u2", Item: "103", Rating: 2, Prediction: 4},
	}
	if err := st.InsertPreds(ctx, preds); err != nil {
		t.Fatalf("InsertPreds() error = %v", err)
	}

	truth := []models.TruthRow{
		{User: "u1", Item: "101", Rating: 5},
		{User: "u1", Item: "104", Rating: 2},
		{User: "u2", Item: "103", Rating: 4},
		{User: "u3", Item: "105", Rating: 5},
	}
	if err := st.InsertTruth(ctx, truth); err != nil {
		t.Fatalf("InsertTruth() error = %v", err)
	}

	r, err := NewRunner(cfg, st, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}
	return r
}

func tableIndex(rows []models.UserMetricRow) map[[3]string]float64 {
	idx := make(map[[3]string]float64, len(rows))
	for _, r := range rows {
		idx[[3]string{r.Algorithm, r.User, r.Metric}] = r.Value
	}
	return idx
}

func TestBuildMetricTable(t *testing.T) {
	r := newStagedRunner(t)

	rows, err := r.BuildMetricTable(context.Background())
	if err != nil {
		t.Fatalf("BuildMetricTable() error = %v", err)
	}

	idx := tableIndex(rows)

	// Relevant items at the default 3.5 threshold: u1 -> {101}, u2 ->
	// {103}, u3 -> {105}. List size is 2.
	tests := []struct {
		name      string
		algorithm string
		user      string
		metric    string
		want      float64
	}{
		{"als u1 hit at rank one", "ALS", "u1", models.MetricPrecision, 0.5},
		{"als u1 reciprocal rank", "ALS", "u1", models.MetricRecipRank, 1},
		{"als u1 ndcg", "ALS", "u1", models.MetricNDCG, 1},
		{"als u2 hit at rank one", "ALS", "u2", models.MetricPrecision, 0.5},
		{"uu u1 no relevant overlap", "UU", "u1", models.MetricPrecision, 0},
		{"uu u1 reciprocal rank zero", "UU", "u1", models.MetricRecipRank, 0},
		// UU never scored u2; the row exists and is zero.
		{"uu u2 zero filled", "UU", "u2", models.MetricPrecision, 0},
		// u3 appears only in truth; both algorithms score it zero.
		{"als u3 zero filled", "ALS", "u3", models.MetricNDCG, 0},
		{"uu u3 zero filled", "UU", "u3", models.MetricNDCG, 0},
		// Prediction errors: ALS missed u1's rating by 1, u2's by 2.
		{"als u1 rmse", "ALS", "u1", models.MetricRMSE, 1},
		{"als u1 mae", "ALS", "u1", models.MetricMAE, 1},
		{"als u2 rmse", "ALS", "u2", models.MetricRMSE, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := idx[[3]string{tt.algorithm, tt.user, tt.metric}]
			if !ok {
				t.Fatalf("no row for (%s, %s, %s)", tt.algorithm, tt.user, tt.metric)
			}
			if got != tt.want {
				t.Errorf("value = %v, want %v", got, tt.want)
			}
		})
	}

	// Ranking rows cover the full universe: 2 algorithms x 3 users x 4
	// metrics. Prediction rows cover only predicted users: 2 users x 2
	// metrics for ALS.
	if want := 2*3*4 + 2*2; len(rows) != want {
		t.Errorf("len(rows) = %d, want %d", len(rows), want)
	}
}

func TestEvaluateEndToEnd(t *testing.T) {
	r := newStagedRunner(t)

	eval, err := r.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if eval.RunID == "" {
		t.Error("RunID is empty")
	}
	if want := []string{"ALS", "UU"}; len(eval.Algorithms) != 2 || eval.Algorithms[0] != want[0] || eval.Algorithms[1] != want[1] {
		t.Errorf("Algorithms = %v, want %v", eval.Algorithms, want)
	}
	if eval.Users != 3 {
		t.Errorf("Users = %d, want 3", eval.Users)
	}
	if len(eval.Summaries) == 0 {
		t.Error("Summaries is empty")
	}

	// One result per configured analysis metric, in configured order.
	wantMetrics := r.cfg.Analysis.Metrics
	if len(eval.Results) != len(wantMetrics) {
		t.Fatalf("len(Results) = %d, want %d", len(eval.Results), len(wantMetrics))
	}
	for i, res := range eval.Results {
		if res.Metric != wantMetrics[i] {
			t.Errorf("Results[%d].Metric = %q, want %q", i, res.Metric, wantMetrics[i])
		}
		// Two algorithms: the omnibus is not applicable, which is a
		// result, not a failure.
		if res.Failure != "" {
			t.Errorf("Results[%d].Failure = %q, want empty", i, res.Failure)
		}
		if res.Outcome == nil {
			t.Fatalf("Results[%d].Outcome = nil", i)
		}
		if got := res.Outcome.Omnibus.Decision.String(); got != "not applicable" {
			t.Errorf("Results[%d] omnibus decision = %q, want %q", i, got, "not applicable")
		}
		if len(res.Outcome.Pairs) != 0 {
			t.Errorf("Results[%d] has %d pairs, want 0", i, len(res.Outcome.Pairs))
		}
	}
}
