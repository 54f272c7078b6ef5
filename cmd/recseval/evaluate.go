// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/analysis"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/config"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/dataset"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/logging"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/report"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/store"
)

var (
	evalRunsDir     string
	evalTruthPath   string
	evalOutPath     string
	evalListSize    int
	evalThreshold   float64
	evalAlpha       float64
	evalParallelism int
	evalNoCharts    bool
)

func newEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Run the full pipeline: load, score, test, report",
		RunE:  runEvaluate,
	}

	addDataFlags(cmd)
	cmd.Flags().IntVar(&evalListSize, "list-size", 0, "N of the top-N metrics")
	cmd.Flags().Float64Var(&evalThreshold, "relevance-threshold", 0, "minimum truth rating counted as relevant")
	cmd.Flags().Float64Var(&evalAlpha, "alpha", 0, "significance level for the omnibus test")
	cmd.Flags().IntVar(&evalParallelism, "parallelism", 0, "concurrent per-metric evaluations (0 = all CPUs)")
	cmd.Flags().BoolVar(&evalNoCharts, "no-charts", false, "skip terminal bar charts")
	cmd.Flags().StringVar(&evalOutPath, "out", "", "write the full evaluation as JSON to this file")

	return cmd
}

func addDataFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&evalRunsDir, "runs", "", "directory of recs-*/pred-* run files")
	cmd.Flags().StringVar(&evalTruthPath, "truth", "", "held-out ratings CSV")
}

// applyEvaluateFlags overrides configuration with explicitly set
// flags. Flags take the highest precedence of all config layers.
func applyEvaluateFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("runs") {
		cfg.Data.RunsDir = evalRunsDir
	}
	if cmd.Flags().Changed("truth") {
		cfg.Data.TruthPath = evalTruthPath
	}
	if cmd.Flags().Changed("list-size") {
		cfg.Metrics.ListSize = evalListSize
	}
	if cmd.Flags().Changed("relevance-threshold") {
		cfg.Metrics.RelevanceThreshold = evalThreshold
	}
	if cmd.Flags().Changed("alpha") {
		cfg.Analysis.Alpha = evalAlpha
	}
	if cmd.Flags().Changed("parallelism") {
		cfg.Analysis.Parallelism = evalParallelism
	}
	if cmd.Flags().Changed("no-charts") {
		cfg.Report.Charts = !evalNoCharts
	}
	if cmd.Flags().Changed("out") {
		cfg.Report.JSONPath = evalOutPath
	}
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
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
	eval, err := runner.Evaluate(ctx)
	if err != nil {
		return err
	}

	reporter := report.New(cfg.Report, os.Stdout, logger)
	if err := reporter.WriteSummaries(eval.Summaries); err != nil {
		return err
	}
	if cfg.Report.Charts {
		if err := reporter.WriteCharts(eval.Summaries); err != nil {
			return err
		}
	}
	if err := reporter.WriteComparisons(eval.Results); err != nil {
		return err
	}

	if cfg.Report.JSONPath != "" {
		if err := reporter.WriteJSONFile(cfg.Report.JSONPath, eval); err != nil {
			return err
		}
	}

	return nil
}

// stageRuns discovers and loads the run and truth files, then stages
// every row in a fresh in-memory store.
func stageRuns(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*store.Store, error) {
	if cfg.Data.RunsDir == "" {
		return nil, errors.New("runs directory is required (--runs, RUNS_DIR, or data.runs_dir)")
	}
	if cfg.Data.TruthPath == "" {
		return nil, errors.New("truth file is required (--truth, TRUTH_PATH, or data.truth_path)")
	}

	loader := dataset.NewLoader(logger)

	set, err := loader.Discover(cfg.Data.RunsDir)
	if err != nil {
		return nil, err
	}
	recs, err := loader.LoadRecs(set)
	if err != nil {
		return nil, err
	}
	preds, err := loader.LoadPreds(set)
	if err != nil {
		return nil, err
	}
	truth, err := loader.LoadTruth(cfg.Data.TruthPath)
	if err != nil {
		return nil, err
	}

	st, err := store.New(&cfg.Store, logger)
	if err != nil {
		return nil, err
	}

	if err := st.InsertRecs(ctx, recs); err != nil {
		return nil, closeOnError(st, err, logger)
	}
	if err := st.InsertPreds(ctx, preds); err != nil {
		return nil, closeOnError(st, err, logger)
	}
	if err := st.InsertTruth(ctx, truth); err != nil {
		return nil, closeOnError(st, err, logger)
	}

	counts, err := st.RowCounts(ctx)
	if err != nil {
		return nil, closeOnError(st, err, logger)
	}
	logger.Info().
		Int64("recs", counts.Recs).
		Int64("preds", counts.Preds).
		Int64("truth", counts.Truth).
		Msg("Staged evaluation data")

	return st, nil
}

func closeOnError(st *store.Store, err error, logger zerolog.Logger) error {
	if cerr := st.Close(); cerr != nil {
		logger.Warn().Err(cerr).Msg("Error closing store")
	}
	return fmt.Errorf("stage data: %w", err)
}
