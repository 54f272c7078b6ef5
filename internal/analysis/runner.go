// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package analysis

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/accuracy"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/config"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/models"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/store"
)

// Evaluation is the complete result of one run: the per-algorithm
// metric summaries plus one significance result per configured metric.
type Evaluation struct {
	// RunID identifies the evaluation run in logs and reports.
	RunID string `json:"run_id"`

	// StartedAt is the wall-clock start of the run.
	StartedAt time.Time `json:"started_at"`

	// DurationSeconds is the elapsed wall-clock time of the run.
	DurationSeconds float64 `json:"duration_seconds"`

	// Algorithms are the compared identifiers in sorted order.
	Algorithms []string `json:"algorithms"`

	// Users is the size of the observation universe.
	Users int `json:"users"`

	// Summaries hold one per-algorithm mean per computed metric.
	Summaries []models.MetricSummary `json:"summaries"`

	// Results hold one significance outcome per configured analysis
	// metric, in the configured order.
	Results []MetricResult `json:"results"`
}

// Runner drives a full evaluation over the staged data: it scores
// every algorithm for every user, aggregates the summaries, and runs
// the significance stage.
type Runner struct {
	cfg      *config.Config
	store    *store.Store
	comparer *Comparer
	logger   zerolog.Logger
}

// NewRunner creates a runner over an already-staged store.
func NewRunner(cfg *config.Config, st *store.Store, logger zerolog.Logger) (*Runner, error) {
	comparer, err := NewComparer(cfg.Analysis, logger)
	if err != nil {
		return nil, fmt.Errorf("create comparer: %w", err)
	}
	return &Runner{
		cfg:      cfg,
		store:    st,
		comparer: comparer,
		logger:   logger.With().Str("component", "analysis").Logger(),
	}, nil
}

// BuildMetricTable scores every algorithm for every user of the
// observation universe and returns the long-form per-user metric
// table. List metrics cover the full universe, scoring zero wherever
// an algorithm has no list or no overlap with the user's relevant
// items; prediction metrics cover the users the algorithm predicted
// for, with frame alignment zero-filling the rest.
func (r *Runner) BuildMetricTable(ctx context.Context) ([]models.UserMetricRow, error) {
	users, err := r.store.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("load observation universe: %w", err)
	}

	var rows []models.UserMetricRow

	listRows, err := r.buildListRows(ctx, users)
	if err != nil {
		return nil, err
	}
	rows = append(rows, listRows...)

	predRows, err := r.buildPredictionRows(ctx)
	if err != nil {
		return nil, err
	}
	rows = append(rows, predRows...)

	r.logger.Info().
		Int("rows", len(rows)).
		Int("users", len(users)).
		Msg("Built per-user metric table")

	return rows, nil
}

// buildListRows scores the ranking metrics for every recommendation
// algorithm over every user of the universe.
func (r *Runner) buildListRows(ctx context.Context, users []string) ([]models.UserMetricRow, error) {
	metrics := r.cfg.Metrics.Ranking
	if len(metrics) == 0 {
		return nil, nil
	}

	algorithms, err := r.store.RecAlgorithms(ctx)
	if err != nil {
		return nil, fmt.Errorf("load recommendation algorithms: %w", err)
	}
	if len(algorithms) == 0 {
		return nil, nil
	}

	relevant, err := r.store.RelevantItems(ctx, r.cfg.Metrics.RelevanceThreshold)
	if err != nil {
		return nil, fmt.Errorf("load relevant items: %w", err)
	}

	n := r.cfg.Metrics.ListSize

	var rows []models.UserMetricRow
	for _, algo := range algorithms {
		lists, err := r.store.UserLists(ctx, algo)
		if err != nil {
			return nil, fmt.Errorf("load lists for %s: %w", algo, err)
		}
		for _, user := range users {
			recommended := lists[user]
			rel := relevant[user]
			for _, metric := range metrics {
				rows = append(rows, models.UserMetricRow{
					Algorithm: algo,
					User:      user,
					Metric:    metric,
					Value:     listMetricValue(metric, recommended, rel, n),
				})
			}
		}
	}
	return rows, nil
}

// buildPredictionRows scores the rating-error metrics per user for
// every prediction algorithm.
func (r *Runner) buildPredictionRows(ctx context.Context) ([]models.UserMetricRow, error) {
	metrics := r.cfg.Metrics.Prediction
	if len(metrics) == 0 {
		return nil, nil
	}

	algorithms, err := r.store.PredAlgorithms(ctx)
	if err != nil {
		return nil, fmt.Errorf("load prediction algorithms: %w", err)
	}

	var rows []models.UserMetricRow
	for _, algo := range algorithms {
		pairs, err := r.store.PredictionPairs(ctx, algo)
		if err != nil {
			return nil, fmt.Errorf("load prediction pairs for %s: %w", algo, err)
		}

		predUsers := make([]string, 0, len(pairs))
		for user := range pairs {
			predUsers = append(predUsers, user)
		}
		sort.Strings(predUsers)

		for _, user := range predUsers {
			series := pairs[user]
			for _, metric := range metrics {
				value, err := predictionMetricValue(metric, series)
				if err != nil {
					return nil, fmt.Errorf("score %s for %s/%s: %w", metric, algo, user, err)
				}
				rows = append(rows, models.UserMetricRow{
					Algorithm: algo,
					User:      user,
					Metric:    metric,
					Value:     value,
				})
			}
		}
	}
	return rows, nil
}

// Evaluate runs the full pipeline over the staged data: metric table,
// summaries, and the per-metric significance stage.
func (r *Runner) Evaluate(ctx context.Context) (*Evaluation, error) {
	start := time.Now()

	eval := &Evaluation{
		RunID:     uuid.NewString(),
		StartedAt: start.UTC(),
	}

	rows, err := r.BuildMetricTable(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	users, err := r.store.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("load observation universe: %w", err)
	}

	metricOrder := append(append([]string(nil), r.cfg.Metrics.Ranking...), r.cfg.Metrics.Prediction...)

	eval.Algorithms = models.SortedAlgorithms(rows)
	eval.Users = len(users)
	eval.Summaries = Summaries(rows, metricOrder)

	results, err := r.comparer.Compare(ctx, rows, r.cfg.Analysis.Metrics)
	if err != nil {
		return nil, err
	}
	eval.Results = results
	eval.DurationSeconds = time.Since(start).Seconds()

	r.logger.Info().
		Str("run_id", eval.RunID).
		Int("algorithms", len(eval.Algorithms)).
		Int("metrics", len(results)).
		Float64("duration_seconds", eval.DurationSeconds).
		Msg("Evaluation complete")

	return eval, nil
}

// listMetricValue dispatches one ranking metric. Unknown names cannot
// reach here; config validation pins the metric set.
func listMetricValue(metric string, recommended []string, relevant map[string]bool, n int) float64 {
	switch metric {
	case models.MetricPrecision:
		return accuracy.Precision(recommended, relevant, n)
	case models.MetricRecipRank:
		return accuracy.ReciprocalRank(recommended, relevant)
	case models.MetricNDCG:
		return accuracy.NDCG(recommended, relevant, n)
	case models.MetricRecall:
		return accuracy.Recall(recommended, relevant, n)
	default:
		return 0
	}
}

// predictionMetricValue dispatches one rating-error metric over a
// user's aligned rating and prediction vectors.
func predictionMetricValue(metric string, series store.PairSeries) (float64, error) {
	switch metric {
	case models.MetricRMSE:
		return accuracy.RMSE(series.Ratings, series.Predictions)
	case models.MetricMAE:
		return accuracy.MAE(series.Ratings, series.Predictions)
	default:
		return 0, fmt.Errorf("unknown prediction metric %q", metric)
	}
}
