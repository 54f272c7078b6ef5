// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/analysis"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/dataset"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/logging"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/models"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/report"
)

var (
	compareTablePath string
	compareMetrics   []string
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run significance tests over an existing per-user metric table",
		Long: `Run the omnibus and post-hoc significance tests over a long-form
metric table CSV (columns: algorithm, user, metric, value), for
example one produced by an external evaluation tool.`,
		RunE: runCompare,
	}

	cmd.Flags().StringVar(&compareTablePath, "table", "", "long-form metric table CSV")
	cmd.Flags().StringSliceVar(&compareMetrics, "metrics", nil, "metrics to test (default: every metric in the table)")
	cmd.Flags().Float64Var(&evalAlpha, "alpha", 0, "significance level for the omnibus test")
	cmd.Flags().IntVar(&evalParallelism, "parallelism", 0, "concurrent per-metric evaluations (0 = all CPUs)")
	cmd.Flags().StringVar(&evalOutPath, "out", "", "write the comparison results as JSON to this file")

	return cmd
}

func runCompare(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("alpha") {
		cfg.Analysis.Alpha = evalAlpha
	}
	if cmd.Flags().Changed("parallelism") {
		cfg.Analysis.Parallelism = evalParallelism
	}
	if cmd.Flags().Changed("out") {
		cfg.Report.JSONPath = evalOutPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if compareTablePath == "" {
		return errors.New("metric table is required (--table)")
	}

	ctx, stop := signalContext()
	defer stop()

	logger := logging.Logger()

	loader := dataset.NewLoader(logger)
	rows, err := loader.LoadMetricTable(compareTablePath)
	if err != nil {
		return err
	}

	metrics := compareMetrics
	if len(metrics) == 0 {
		metrics = models.SortedMetrics(rows)
	}

	comparer, err := analysis.NewComparer(cfg.Analysis, logger)
	if err != nil {
		return err
	}
	results, err := comparer.Compare(ctx, rows, metrics)
	if err != nil {
		return err
	}

	summaries := analysis.Summaries(rows, metrics)

	reporter := report.New(cfg.Report, os.Stdout, logger)
	if err := reporter.WriteSummaries(summaries); err != nil {
		return err
	}
	if err := reporter.WriteComparisons(results); err != nil {
		return err
	}

	if cfg.Report.JSONPath != "" {
		doc := struct {
			Metrics   []string               `json:"metrics"`
			Summaries []models.MetricSummary `json:"summaries"`
			Results   []analysis.MetricResult `json:"results"`
		}{Metrics: metrics, Summaries: summaries, Results: results}
		if err := reporter.WriteJSONFile(cfg.Report.JSONPath, doc); err != nil {
			return err
		}
	}

	return nil
}
