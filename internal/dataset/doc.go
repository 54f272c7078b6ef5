// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

// Package dataset discovers and loads recommender run output and
// ground-truth ratings from CSV files.
//
// # Naming Convention
//
// A runs directory holds one or more files per algorithm:
//
//	recs-<ALGO>.csv        top-N recommendation lists
//	recs-<ALGO>-<PART>.csv additional parts, concatenated in name order
//	pred-<ALGO>.csv        rating predictions
//	pred-<ALGO>-<PART>.csv additional parts
//
// <ALGO> becomes the algorithm identifier in every downstream table.
// Files that do not match the convention are skipped with a debug log.
//
// # File Formats
//
// All files are headered CSV. Recommendation files require the columns
// user, item, score, and rank; prediction files require user, item,
// rating, and prediction; the truth file requires user, item, and
// rating. Extra columns are ignored. Column order is free. Numeric
// fields must parse as finite numbers; a failure reports the file,
// line, and column.
package dataset
