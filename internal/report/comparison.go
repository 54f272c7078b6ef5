// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package report

import (
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/analysis"
	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/significance"
)

// WriteComparisons renders one section per metric result: the omnibus
// line, then one line per pairwise comparison naming the pair, the
// test statistic, the raw p-value, and the decision.
func (r *Reporter) WriteComparisons(results []analysis.MetricResult) error {
	for _, result := range results {
		if err := r.printf("%s\n", result.Metric); err != nil {
			return err
		}

		if result.Failure != "" {
			if err := r.printf("  evaluation failed: %s\n\n", result.Failure); err != nil {
				return err
			}
			continue
		}

		outcome := result.Outcome
		omnibus := outcome.Omnibus

		switch omnibus.Decision {
		case significance.OmnibusNotApplicable:
			if err := r.printf("  friedman: %s (%d algorithms)\n", omnibus.Decision, len(omnibus.Algorithms)); err != nil {
				return err
			}
		default:
			if err := r.printf("  friedman: statistic=%s p=%s decision=%s\n",
				r.formatStat(omnibus.Statistic), r.formatStat(omnibus.PValue), omnibus.Decision); err != nil {
				return err
			}
		}

		if omnibus.Decision == significance.OmnibusSignificant {
			if err := r.printf("  bonferroni: adjusted threshold=%s (%d pairs)\n",
				r.formatStat(outcome.AdjustedAlpha), len(outcome.Pairs)); err != nil {
				return err
			}
			for _, pair := range outcome.Pairs {
				if err := r.printf("  %s vs %s: statistic=%s p=%s decision=%s\n",
					pair.First, pair.Second,
					r.formatStat(pair.Statistic), r.formatStat(pair.PValue), pair.Decision); err != nil {
					return err
				}
			}
		}

		if err := r.printf("\n"); err != nil {
			return err
		}
	}
	return nil
}
