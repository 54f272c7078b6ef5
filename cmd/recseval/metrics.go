// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/analysis"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/logging"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/report"
)

func newMetricsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Compute accuracy metrics only, without significance tests",
		RunE:  runMetrics,
	}

	addDataFlags(cmd)
	cmd.Flags().IntVar(&evalListSize, "list-size", 0, "N of the top-N metrics")
	cmd.Flags().Float64Var(&evalThreshold, "relevance-threshold", 0, "minimum truth rating counted as relevant")
	cmd.Flags().BoolVar(&evalNoCharts, "no-charts", false, "skip terminal bar charts")
	cmd.Flags().StringVar(&evalOutPath, "out", "", "write the metric summaries as JSON to this file")

	return cmd
}

func runMetrics(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyEvaluateFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	logger := logging.Logger()

	st, err := stageRuns(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("Error closing store")
		}
	}()

	runner, err := analysis.NewRunner(cfg, st, logger)
	if err != nil {
		return err
	}
	rows, err := runner.BuildMetricTable(ctx)
	if err != nil {
		return err
	}

	metricOrder := append(append([]string(nil), cfg.Metrics.Ranking...), cfg.Metrics.Prediction...)
	summaries := analysis.Summaries(rows, metricOrder)

	reporter := report.New(cfg.Report, os.Stdout, logger)
	if err := reporter.WriteSummaries(summaries); err != nil {
		return err
	}
	if cfg.Report.Charts {
		if err := reporter.WriteCharts(summaries); err != nil {
			return err
		}
	}

	if cfg.Report.JSONPath != "" {
		if err := reporter.WriteJSONFile(cfg.Report.JSONPath, summaries); err != nil {
			return err
		}
	}

	return nil
}
