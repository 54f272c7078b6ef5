// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package significance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// wilcoxonTest runs the two-sided Wilcoxon signed-rank test on matched
// sample vectors x and y of equal length.
//
// Zero differences are discarded before ranking. The statistic is the
// smaller of the positive and negative rank sums over the absolute
// differences (midranks for ties), and the p-value comes from the
// normal approximation with tie-corrected variance.
//
// Returns ErrDegenerateSample when every paired difference is zero, as
// the test has no defined statistic in that case.
func wilcoxonTest(x, y []float64) (statistic, pvalue float64, err error) {
	if len(x) != len(y) {
		return 0, 0, fmt.Errorf("%w: got %d and %d observations", ErrInputShape, len(x), len(y))
	}
	if len(x) == 0 {
		return 0, 0, fmt.Errorf("%w: samples are empty", ErrInputShape)
	}

	diffs := make([]float64, 0, len(x))
	for i := range x {
		if d := x[i] - y[i]; d != 0 {
			diffs = append(diffs, d)
		}
	}

	n := len(diffs)
	if n == 0 {
		return 0, 0, fmt.Errorf("%w: all paired differences are zero", ErrDegenerateSample)
	}

	abs := make([]float64, n)
	for i, d := range diffs {
		abs[i] = math.Abs(d)
	}
	ranks, ties := rankWithTies(abs)

	var positive float64
	for i, d := range diffs {
		if d > 0 {
			positive += ranks[i]
		}
	}
	nf := float64(n)
	total := nf * (nf + 1) / 2
	negative := total - positive

	statistic = math.Min(positive, negative)

	mean := total / 2
	variance := nf*(nf+1)*(2*nf+1)/24 - ties/48
	z := (statistic - mean) / math.Sqrt(variance)

	norm := distuv.Normal{Mu: 0, Sigma: 1}
	pvalue = 2 * norm.Survival(math.Abs(z))
	if pvalue > 1 {
		pvalue = 1
	}

	return statistic, pvalue, nil
}
