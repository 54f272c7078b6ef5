// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package main

import (
	"testing"

	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/config"
)

func TestApplyEvaluateFlagsOverrides(t *testing.T) {
	cmd := newEvaluateCmd()
	for name, value := range map[string]string{
		"runs":      "/data/runs",
		"truth":     "/data/truth.csv",
		"alpha":     "0.01",
		"list-size": "20",
		"no-charts": "true",
		"out":       "report.json",
	} {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("Set(%s) error = %v", name, err)
		}
	}

	cfg := config.DefaultConfig()
	applyEvaluateFlags(cmd, cfg)

	if cfg.Data.RunsDir != "/data/runs" {
		t.Errorf("RunsDir = %q, want %q", cfg.Data.RunsDir, "/data/runs")
	}
	if cfg.Data.TruthPath != "/data/truth.csv" {
		t.Errorf("TruthPath = %q, want %q", cfg.Data.TruthPath, "/data/truth.csv")
	}
	if cfg.Analysis.Alpha != 0.01 {
		t.Errorf("Alpha = %v, want 0.01", cfg.Analysis.Alpha)
	}
	if cfg.Metrics.ListSize != 20 {
		t.Errorf("ListSize = %d, want 20", cfg.Metrics.ListSize)
	}
	if cfg.Report.Charts {
		t.Error("Charts = true, want false after --no-charts")
	}
	if cfg.Report.JSONPath != "report.json" {
		t.Errorf("JSONPath = %q, want %q", cfg.Report.JSONPath, "report.json")
	}
}

func TestApplyEvaluateFlagsKeepsDefaults(t *testing.T) {
	cmd := newEvaluateCmd()

	cfg := config.DefaultConfig()
	want := cfg.Clone()
	applyEvaluateFlags(cmd, cfg)

	if cfg.Analysis.Alpha != want.Analysis.Alpha {
		t.Errorf("Alpha changed without a flag: %v", cfg.Analysis.Alpha)
	}
	if cfg.Metrics.ListSize != want.Metrics.ListSize {
		t.Errorf("ListSize changed without a flag: %d", cfg.Metrics.ListSize)
	}
	if !cfg.Report.Charts {
		t.Error("Charts disabled without a flag")
	}
}
