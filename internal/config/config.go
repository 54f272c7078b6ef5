// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package config

import (
	"fmt"

	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/models"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/validation"
)

// Config holds all workbench configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (recseval.yaml)
//  3. Environment Variables: Override any setting
//
// CLI flags are applied on top by the command layer and take the
// highest precedence.
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Data     DataConfig     `koanf:"data"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	Analysis AnalysisConfig `koanf:"analysis"`
	Store    StoreConfig    `koanf:"store"`
	Report   ReportConfig   `koanf:"report"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DataConfig locates the input files of an evaluation run.
//
// Environment Variables:
//   - RUNS_DIR: directory holding recs-*/pred-* CSV files
//   - TRUTH_PATH: held-out ratings CSV
type DataConfig struct {
	// RunsDir is the directory scanned for algorithm run files.
	// Default: "" (must be supplied by flag or config for evaluate/metrics)
	RunsDir string `koanf:"runs_dir"`

	// TruthPath is the held-out ratings CSV.
	// Default: "" (must be supplied by flag or config for evaluate/metrics)
	TruthPath string `koanf:"truth_path"`
}

// MetricsConfig controls accuracy metric computation.
type MetricsConfig struct {
	// ListSize is the N of the top-N metrics.
	// Default: 10
	ListSize int `koanf:"list_size" validate:"gte=1"`

	// RelevanceThreshold is the minimum truth rating for an item to
	// count as relevant in list metrics.
	// Default: 3.5
	RelevanceThreshold float64 `koanf:"relevance_threshold"`

	// Ranking lists the list metrics to compute.
	// Default: precision, recip_rank, ndcg, recall
	Ranking []string `koanf:"ranking" validate:"dive,oneof=precision recip_rank ndcg recall"`

	// Prediction lists the rating-error metrics to compute.
	// Default: rmse, mae
	Prediction []string `koanf:"prediction" validate:"dive,oneof=rmse mae"`
}

// AnalysisConfig controls the significance stage.
type AnalysisConfig struct {
	// Alpha is the nominal significance level for the omnibus test and
	// the numerator of the Bonferroni-adjusted pairwise threshold.
	// Default: 0.05
	Alpha float64 `koanf:"alpha" validate:"gt=0,lt=1"`

	// Metrics lists the metrics whose per-user samples are tested for
	// significant differences between algorithms.
	// Default: precision, recip_rank, ndcg
	Metrics []string `koanf:"metrics" validate:"min=1,dive,oneof=precision recip_rank ndcg recall rmse mae"`

	// Parallelism bounds concurrent per-metric evaluations.
	// Default: 1 (serial); 0 = use runtime.NumCPU()
	Parallelism int `koanf:"parallelism" validate:"gte=0"`
}

// StoreConfig tunes the in-memory staging database.
type StoreConfig struct {
	// Threads is the DuckDB thread count.
	// Default: 0 (0 = use runtime.NumCPU())
	Threads int `koanf:"threads" validate:"gte=0"`

	// MaxMemory is the DuckDB memory limit.
	// Default: "2GB"
	MaxMemory string `koanf:"max_memory" validate:"required"`

	// PreserveInsertionOrder keeps DuckDB result order stable.
	// Default: true (DuckDB default)
	PreserveInsertionOrder bool `koanf:"preserve_insertion_order"`
}

// ReportConfig controls output rendering.
type ReportConfig struct {
	// Charts enables terminal bar charts under the summary tables.
	// Default: true
	Charts bool `koanf:"charts"`

	// ChartWidth fixes the chart width in columns.
	// Default: 0 (0 = detect from terminal, fall back to 80)
	ChartWidth int `koanf:"chart_width" validate:"gte=0"`

	// JSONPath, when set, writes the full evaluation as an indented
	// JSON document to this path.
	// Default: "" (no JSON output)
	JSONPath string `koanf:"json_path"`

	// Digits is the number of decimal places in rendered values.
	// Default: 4
	Digits int `koanf:"digits" validate:"gte=1,lte=10"`
}

// LoggingConfig mirrors the logging package configuration.
type LoggingConfig struct {
	// Level is the minimum log level.
	// Default: info
	Level string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal panic disabled"`

	// Format is the log output format.
	// Default: console
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// DefaultConfig returns a fully-populated configuration with defaults.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			RunsDir:   "",
			TruthPath: "",
		},
		Metrics: MetricsConfig{
			ListSize:           10,
			RelevanceThreshold: 3.5,
			Ranking:            models.RankingMetrics(),
			Prediction:         models.PredictionMetrics(),
		},
		Analysis: AnalysisConfig{
			Alpha:       0.05,
			Metrics:     []string{models.MetricPrecision, models.MetricRecipRank, models.MetricNDCG},
			Parallelism: 1,
		},
		Store: StoreConfig{
			Threads:                0, // 0 = use runtime.NumCPU()
			MaxMemory:              "2GB",
			PreserveInsertionOrder: true,
		},
		Report: ReportConfig{
			Charts:     true,
			ChartWidth: 0, // 0 = detect from terminal
			JSONPath:   "",
			Digits:     4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
	}
}

// Validate checks the configuration for structural and semantic errors.
// It combines tag-based validation with cross-field checks the tags
// cannot express.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if len(c.Metrics.Ranking) == 0 && len(c.Metrics.Prediction) == 0 {
		return fmt.Errorf("config validation failed: at least one metric must be enabled")
	}

	// Significance metrics must also be computed by the metrics stage,
	// otherwise the analysis would test empty samples.
	computed := make(map[string]struct{})
	for _, m := range c.Metrics.Ranking {
		computed[m] = struct{}{}
	}
	for _, m := range c.Metrics.Prediction {
		computed[m] = struct{}{}
	}
	for _, m := range c.Analysis.Metrics {
		if _, ok := computed[m]; !ok {
			return fmt.Errorf("config validation failed: analysis metric %q is not in metrics.ranking or metrics.prediction", m)
		}
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Metrics.Ranking = append([]string(nil), c.Metrics.Ranking...)
	clone.Metrics.Prediction = append([]string(nil), c.Metrics.Prediction...)
	clone.Analysis.Metrics = append([]string(nil), c.Analysis.Metrics...)
	return &clone
}
