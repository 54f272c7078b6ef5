// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero list size",
			mutate:  func(c *Config) { c.Metrics.ListSize = 0 },
			wantErr: "ListSize",
		},
		{
			name:    "alpha too large",
			mutate:  func(c *Config) { c.Analysis.Alpha = 1.5 },
			wantErr: "Alpha",
		},
		{
			name:    "alpha zero",
			mutate:  func(c *Config) { c.Analysis.Alpha = 0 },
			wantErr: "Alpha",
		},
		{
			name:    "unknown ranking metric",
			mutate:  func(c *Config) { c.Metrics.Ranking = []string{"hit_rate"} },
			wantErr: "must be one of",
		},
		{
			name:    "empty analysis metrics",
			mutate:  func(c *Config) { c.Analysis.Metrics = nil },
			wantErr: "Metrics",
		},
		{
			name: "no metrics enabled",
			mutate: func(c *Config) {
				c.Metrics.Ranking = nil
				c.Metrics.Prediction = nil
				c.Analysis.Metrics = []string{"ndcg"}
			},
			wantErr: "at least one metric",
		},
		{
			name: "analysis metric not computed",
			mutate: func(c *Config) {
				c.Metrics.Ranking = []string{"precision"}
				c.Metrics.Prediction = nil
				c.Analysis.Metrics = []string{"ndcg"}
			},
			wantErr: `analysis metric "ndcg"`,
		},
		{
			name:    "negative parallelism",
			mutate:  func(c *Config) { c.Analysis.Parallelism = -1 },
			wantErr: "Parallelism",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "Level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want substring %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()

	if !reflect.DeepEqual(cfg, clone) {
		t.Fatal("Clone() is not equal to original")
	}

	clone.Analysis.Metrics[0] = "recall"
	clone.Metrics.Ranking[0] = "recall"
	if cfg.Analysis.Metrics[0] == "recall" {
		t.Error("Clone() shares Analysis.Metrics backing array with original")
	}
	if cfg.Metrics.Ranking[0] == "recall" {
		t.Error("Clone() shares Metrics.Ranking backing array with original")
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Load() without file = %+v, want defaults", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "recseval.yaml")
	content := []byte(`
data:
  runs_dir: /data/runs
  truth_path: /data/truth.csv
analysis:
  alpha: 0.01
  metrics:
    - ndcg
report:
  digits: 6
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Data.RunsDir != "/data/runs" {
		t.Errorf("Data.RunsDir = %q, want %q", cfg.Data.RunsDir, "/data/runs")
	}
	if cfg.Analysis.Alpha != 0.01 {
		t.Errorf("Analysis.Alpha = %v, want 0.01", cfg.Analysis.Alpha)
	}
	if !reflect.DeepEqual(cfg.Analysis.Metrics, []string{"ndcg"}) {
		t.Errorf("Analysis.Metrics = %v, want [ndcg]", cfg.Analysis.Metrics)
	}
	if cfg.Report.Digits != 6 {
		t.Errorf("Report.Digits = %d, want 6", cfg.Report.Digits)
	}
	// Untouched sections keep their defaults.
	if cfg.Metrics.ListSize != 10 {
		t.Errorf("Metrics.ListSize = %d, want 10", cfg.Metrics.ListSize)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("Load() with missing explicit path = nil, want error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Load() error = %q, want substring %q", err.Error(), "not found")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	t.Setenv("ALPHA", "0.1")
	t.Setenv("ANALYSIS_METRICS", "precision, ndcg")
	t.Setenv("RUNS_DIR", "/runs")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Analysis.Alpha != 0.1 {
		t.Errorf("Analysis.Alpha = %v, want 0.1", cfg.Analysis.Alpha)
	}
	if !reflect.DeepEqual(cfg.Analysis.Metrics, []string{"precision", "ndcg"}) {
		t.Errorf("Analysis.Metrics = %v, want [precision ndcg]", cfg.Analysis.Metrics)
	}
	if cfg.Data.RunsDir != "/runs" {
		t.Errorf("Data.RunsDir = %q, want %q", cfg.Data.RunsDir, "/runs")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "runs dir", key: "RUNS_DIR", want: "data.runs_dir"},
		{name: "alpha", key: "ALPHA", want: "analysis.alpha"},
		{name: "store memory", key: "STORE_MAX_MEMORY", want: "store.max_memory"},
		{name: "log format", key: "LOG_FORMAT", want: "logging.format"},
		{name: "unmapped skipped", key: "HOME", want: ""},
		{name: "unmapped path-like skipped", key: "PATH", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := envTransformFunc(tt.key); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

// chdir switches the working directory for the test and restores it
// afterwards, so default config-path probing stays hermetic.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	})
}
