// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package significance

import "errors"

// Sentinel errors returned by the evaluator and its tests.
var (
	// ErrNoSamples indicates an empty sample mapping. Supplying no
	// algorithms at all is a programmer error, not a data condition.
	ErrNoSamples = errors.New("no sample vectors supplied")

	// ErrInputShape indicates sample vectors that are empty or of
	// unequal lengths, violating the matched-observations contract.
	ErrInputShape = errors.New("sample vectors are misaligned")

	// ErrDegenerateSample indicates data on which a rank test is
	// undefined, such as paired differences that are all zero.
	ErrDegenerateSample = errors.New("rank test undefined for degenerate sample")

	// ErrInsufficientGroups indicates fewer than three groups for the
	// Friedman test.
	ErrInsufficientGroups = errors.New("omnibus test requires at least three groups")
)

// OmnibusDecision classifies the outcome of the omnibus stage.
type OmnibusDecision int

const (
	// OmnibusNotApplicable means fewer than three algorithms were
	// supplied, so the repeated-measures test is not defined and the
	// post-hoc stage is skipped as well.
	OmnibusNotApplicable OmnibusDecision = iota

	// OmnibusNotSignificant means the omnibus found no evidence of any
	// difference; no pairwise tests are run.
	OmnibusNotSignificant

	// OmnibusSignificant means at least one algorithm differs and the
	// pairwise stage localizes the differences.
	OmnibusSignificant
)

// String returns the human-readable decision text.
func (d OmnibusDecision) String() string {
	switch d {
	case OmnibusNotApplicable:
		return "not applicable"
	case OmnibusNotSignificant:
		return "no significant difference"
	case OmnibusSignificant:
		return "significant"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so decisions serialize
// as their text form in JSON reports.
func (d OmnibusDecision) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// PairDecision classifies one pairwise comparison.
type PairDecision int

const (
	// PairSame means the raw p-value exceeded the adjusted threshold;
	// equality is not rejected.
	PairSame PairDecision = iota

	// PairDifferent means the raw p-value was at or below the adjusted
	// threshold; equality is rejected.
	PairDifferent

	// PairUndefined means every paired difference was zero, leaving the
	// signed-rank test undefined for the pair.
	PairUndefined
)

// String returns the human-readable decision text.
func (d PairDecision) String() string {
	switch d {
	case PairSame:
		return "same"
	case PairDifferent:
		return "different"
	case PairUndefined:
		return "undefined"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so decisions serialize
// as their text form in JSON reports.
func (d PairDecision) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// OmnibusResult is the outcome of the Friedman stage.
type OmnibusResult struct {
	// Algorithms are the compared identifiers in sorted order.
	Algorithms []string `json:"algorithms"`

	// Observations is the per-algorithm sample length.
	Observations int `json:"observations"`

	// Statistic is the Friedman chi-squared statistic. Zero when the
	// decision is "not applicable".
	Statistic float64 `json:"statistic"`

	// PValue is the omnibus p-value. Zero when the decision is "not
	// applicable".
	PValue float64 `json:"p_value"`

	// Decision classifies the omnibus outcome.
	Decision OmnibusDecision `json:"decision"`
}

// PairResult is the outcome of one pairwise signed-rank test.
type PairResult struct {
	// First and Second identify the unordered pair; First sorts before
	// Second lexicographically.
	First  string `json:"first"`
	Second string `json:"second"`

	// Statistic is the signed-rank statistic (the smaller of the
	// positive and negative rank sums). Zero for undefined pairs.
	Statistic float64 `json:"statistic"`

	// PValue is the raw two-sided p-value. One for undefined pairs.
	PValue float64 `json:"p_value"`

	// Decision classifies the pair against the adjusted threshold.
	Decision PairDecision `json:"decision"`
}

// Outcome is the full result of one evaluation: the omnibus record
// plus, when the omnibus is significant, one record per unordered pair
// in lexicographic combination order.
type Outcome struct {
	Omnibus OmnibusResult `json:"omnibus"`

	// AdjustedAlpha is the Bonferroni-corrected pairwise threshold,
	// computed once per evaluation. Zero when no pairwise stage ran.
	AdjustedAlpha float64 `json:"adjusted_alpha,omitempty"`

	Pairs []PairResult `json:"pairs,omitempty"`
}
