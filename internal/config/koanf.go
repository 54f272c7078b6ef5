// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"recseval.yaml",
	"recseval.yml",
	"/etc/recseval/config.yaml",
	"/etc/recseval/config.yml",
}

// ConfigPathEnvVar is the environment variable that overrides the config
// file path.
const ConfigPathEnvVar = "RECSEVAL_CONFIG_PATH"

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// configPath, when non-empty, bypasses the default search paths; a
// missing explicit path is an error, while missing default paths are
// silently skipped.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: optional config file
	path, explicit := resolveConfigFile(configPath)
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file %s not found", configPath)
	}

	// Layer 3: environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Env vars arrive as strings; split the known slice fields.
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigFile picks the config file to load. The second return
// value reports whether the caller named a path explicitly (via argument
// or environment variable), which turns a missing file into an error.
func resolveConfigFile(configPath string) (string, bool) {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath, true
		}
		return "", true
	}

	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, true
		}
		return "", true
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path, false
		}
	}

	return "", false
}

// sliceConfigPaths defines which config paths are parsed as
// comma-separated slices when supplied through the environment.
var sliceConfigPaths = []string{
	"metrics.ranking",
	"metrics.prediction",
	"analysis.metrics",
}

// processSliceFields converts comma-separated string values to slices
// for known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// Already a slice (from YAML file or defaults)
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envTransformFunc maps environment variable names to koanf config paths.
// Unmapped variables are skipped so unrelated environment noise cannot
// pollute the configuration.
//
// Examples:
//   - RUNS_DIR -> data.runs_dir
//   - ALPHA -> analysis.alpha
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Data mappings
		"runs_dir":   "data.runs_dir",
		"truth_path": "data.truth_path",

		// Metric mappings
		"list_size":           "metrics.list_size",
		"relevance_threshold": "metrics.relevance_threshold",
		"ranking_metrics":     "metrics.ranking",
		"prediction_metrics":  "metrics.prediction",

		// Analysis mappings
		"alpha":                "analysis.alpha",
		"analysis_metrics":     "analysis.metrics",
		"analysis_parallelism": "analysis.parallelism",

		// Store mappings
		"store_threads":        "store.threads",
		"store_max_memory":     "store.max_memory",
		"store_preserve_order": "store.preserve_insertion_order",

		// Report mappings
		"report_charts":      "report.charts",
		"report_chart_width": "report.chart_width",
		"report_json_path":   "report.json_path",
		"report_digits":      "report.digits",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	return ""
}
