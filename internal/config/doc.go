// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

// Package config loads and validates workbench configuration.
//
// # Layered Loading
//
// Configuration is assembled with Koanf v2 from three layers, later
// layers overriding earlier ones:
//
//  1. Built-in defaults (DefaultConfig)
//  2. An optional YAML file (recseval.yaml, or RECSEVAL_CONFIG_PATH)
//  3. Environment variables (RUNS_DIR, ALPHA, LOG_LEVEL, ...)
//
// The command layer applies CLI flags on top of the loaded Config, so
// flags always win.
//
// # Validation
//
// Config.Validate combines validator/v10 struct tags (ranges,
// membership) with cross-field checks, such as requiring every
// significance metric to also be a computed metric.
package config
