// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package significance

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat/combin"
)

// Config holds evaluator configuration.
type Config struct {
	// Alpha is the nominal significance level for the omnibus test and
	// the numerator of the Bonferroni-adjusted pairwise threshold.
	// Default: 0.05
	Alpha float64
}

// DefaultConfig returns the default evaluator configuration.
func DefaultConfig() Config {
	return Config{Alpha: 0.05}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return fmt.Errorf("alpha must be in (0, 1), got %v", c.Alpha)
	}
	return nil
}

// Evaluator runs the two-stage omnibus plus post-hoc comparison
// procedure over one metric's per-algorithm sample vectors.
type Evaluator struct {
	alpha  float64
	logger zerolog.Logger
}

// NewEvaluator creates an evaluator with the given configuration.
func NewEvaluator(cfg Config, logger zerolog.Logger) (*Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid significance config: %w", err)
	}
	return &Evaluator{
		alpha:  cfg.Alpha,
		logger: logger.With().Str("component", "significance").Logger(),
	}, nil
}

// Evaluate compares the algorithms' sample vectors and returns the
// omnibus record plus, when the omnibus is significant, one pairwise
// record per unordered pair in lexicographic combination order.
//
// samples maps algorithm identifier to that algorithm's per-user
// values; all vectors must be non-empty, of equal length, and aligned
// on the same users in the same order. An empty mapping or misaligned
// vectors fail the evaluation with an error; data conditions such as
// fully tied observations surface as ErrDegenerateSample.
func (e *Evaluator) Evaluate(samples map[string][]float64) (*Outcome, error) {
	algorithms, groups, err := alignSamples(samples)
	if err != nil {
		return nil, err
	}
	observations := len(groups[0])
	k := len(algorithms)

	outcome := &Outcome{
		Omnibus: OmnibusResult{
			Algorithms:   algorithms,
			Observations: observations,
		},
	}

	if k < 3 {
		outcome.Omnibus.Decision = OmnibusNotApplicable
		e.logger.Debug().
			Int("algorithms", k).
			Msg("omnibus not applicable, need at least three algorithms")
		return outcome, nil
	}

	statistic, pvalue, err := friedmanTest(groups)
	if err != nil {
		return nil, fmt.Errorf("omnibus test: %w", err)
	}
	outcome.Omnibus.Statistic = statistic
	outcome.Omnibus.PValue = pvalue

	if pvalue >= e.alpha {
		outcome.Omnibus.Decision = OmnibusNotSignificant
		e.logger.Debug().
			Float64("p_value", pvalue).
			Float64("alpha", e.alpha).
			Msg("omnibus not significant, skipping pairwise tests")
		return outcome, nil
	}
	outcome.Omnibus.Decision = OmnibusSignificant

	// All C(k,2) unordered pairs in lexicographic index order over the
	// sorted identifiers. The adjusted threshold is computed once for
	// the whole evaluation.
	pairs := combin.Combinations(k, 2)
	outcome.AdjustedAlpha = e.alpha / float64(len(pairs))
	outcome.Pairs = make([]PairResult, 0, len(pairs))

	for _, pair := range pairs {
		first, second := algorithms[pair[0]], algorithms[pair[1]]
		result := PairResult{First: first, Second: second}

		statistic, pvalue, err := wilcoxonTest(groups[pair[0]], groups[pair[1]])
		switch {
		case err == nil:
			result.Statistic = statistic
			result.PValue = pvalue
			result.Decision = decidePair(pvalue, outcome.AdjustedAlpha)
		case errors.Is(err, ErrDegenerateSample):
			result.Statistic = 0
			result.PValue = 1
			result.Decision = PairUndefined
		default:
			return nil, fmt.Errorf("pairwise test %s vs %s: %w", first, second, err)
		}

		outcome.Pairs = append(outcome.Pairs, result)
	}

	e.logger.Debug().
		Int("pairs", len(outcome.Pairs)).
		Float64("adjusted_alpha", outcome.AdjustedAlpha).
		Msg("pairwise tests complete")

	return outcome, nil
}

// alignSamples validates the sample mapping and returns the sorted
// algorithm identifiers with their vectors in matching order.
func alignSamples(samples map[string][]float64) ([]string, [][]float64, error) {
	if len(samples) == 0 {
		return nil, nil, ErrNoSamples
	}

	algorithms := make([]string, 0, len(samples))
	for name := range samples {
		algorithms = append(algorithms, name)
	}
	sort.Strings(algorithms)

	n := len(samples[algorithms[0]])
	groups := make([][]float64, len(algorithms))
	for i, name := range algorithms {
		v := samples[name]
		if len(v) == 0 {
			return nil, nil, fmt.Errorf("%w: algorithm %q has no observations", ErrInputShape, name)
		}
		if len(v) != n {
			return nil, nil, fmt.Errorf("%w: algorithm %q has %d observations, want %d", ErrInputShape, name, len(v), n)
		}
		groups[i] = v
	}

	return algorithms, groups, nil
}

// decidePair applies the Bonferroni decision rule: equality is rejected
// when the raw p-value is at or below the adjusted threshold. The
// boundary case p == threshold rejects.
func decidePair(pvalue, adjusted float64) PairDecision {
	if pvalue <= adjusted {
		return PairDifferent
	}
	return PairSame
}
