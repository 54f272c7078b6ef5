// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package analysis

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/config"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/models"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/significance"
)

var (
	// ErrNoMetrics indicates an empty metric list. Asking for an
	// evaluation over no metrics is a programmer error.
	ErrNoMetrics = errors.New("no metrics to evaluate")

	// ErrEmptyTable indicates a metric table without any rows.
	ErrEmptyTable = errors.New("metric table is empty")
)

// MetricResult is one metric's significance outcome. Exactly one of
// Outcome and Failure is set: a data condition that prevented the
// evaluation (no rows for the metric, fully tied observations) is
// recorded here instead of aborting the remaining metrics.
type MetricResult struct {
	Metric  string               `json:"metric"`
	Outcome *significance.Outcome `json:"outcome,omitempty"`
	Failure string               `json:"failure,omitempty"`
}

// Comparer runs the significance evaluator over the configured metrics
// of a long-form metric table.
type Comparer struct {
	evaluator   *significance.Evaluator
	parallelism int
	logger      zerolog.Logger
}

// NewComparer creates a comparer from the analysis configuration.
func NewComparer(cfg config.AnalysisConfig, logger zerolog.Logger) (*Comparer, error) {
	evaluator, err := significance.NewEvaluator(significance.Config{Alpha: cfg.Alpha}, logger)
	if err != nil {
		return nil, err
	}

	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	return &Comparer{
		evaluator:   evaluator,
		parallelism: parallelism,
		logger:      logger.With().Str("component", "analysis").Logger(),
	}, nil
}

// Compare evaluates every named metric over the table and returns one
// result per metric in the given order. Each metric pivots its own
// aligned frame and evaluates independently; metrics may run
// concurrently up to the configured parallelism, and the result order
// never depends on scheduling.
func (c *Comparer) Compare(ctx context.Context, rows []models.UserMetricRow, metrics []string) ([]MetricResult, error) {
	if len(metrics) == 0 {
		return nil, ErrNoMetrics
	}
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	results := make([]MetricResult, len(metrics))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallelism)

	for i, metric := range metrics {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = c.compareMetric(rows, metric)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compare metrics: %w", err)
	}

	return results, nil
}

// compareMetric evaluates one metric, converting data conditions into
// failure entries so the remaining metrics still evaluate. An empty
// frame is a data condition here, not a programmer error: the table
// itself was already checked for rows.
func (c *Comparer) compareMetric(rows []models.UserMetricRow, metric string) MetricResult {
	result := MetricResult{Metric: metric}

	frame := BuildFrame(metric, rows)
	if len(frame.Samples) == 0 {
		result.Failure = "no samples for metric"
		c.logger.Warn().Str("metric", metric).Msg("No samples for metric")
		return result
	}

	outcome, err := c.evaluator.Evaluate(frame.Samples)
	switch {
	case err == nil:
		result.Outcome = outcome
	case errors.Is(err, significance.ErrDegenerateSample),
		errors.Is(err, significance.ErrInputShape):
		result.Failure = err.Error()
		c.logger.Warn().Str("metric", metric).Err(err).Msg("Metric evaluation failed")
	default:
		// ErrNoSamples cannot occur past the frame check; anything
		// else is unexpected and still recorded rather than dropped.
		result.Failure = err.Error()
		c.logger.Error().Str("metric", metric).Err(err).Msg("Unexpected evaluation error")
	}

	return result
}
