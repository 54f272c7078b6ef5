// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package accuracy

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrMismatchedPairs indicates rating and prediction vectors that are
// empty or of unequal length.
var ErrMismatchedPairs = errors.New("ratings and predictions are misaligned")

// RMSE returns the root-mean-square error between held-out ratings and
// predictions over the same (user, item) pairs.
func RMSE(ratings, predictions []float64) (float64, error) {
	if err := checkPairs(ratings, predictions); err != nil {
		return 0, err
	}
	squared := make([]float64, len(ratings))
	for i := range ratings {
		d := ratings[i] - predictions[i]
		squared[i] = d * d
	}
	return math.Sqrt(stat.Mean(squared, nil)), nil
}

// MAE returns the mean absolute error between held-out ratings and
// predictions over the same (user, item) pairs.
func MAE(ratings, predictions []float64) (float64, error) {
	if err := checkPairs(ratings, predictions); err != nil {
		return 0, err
	}
	abs := make([]float64, len(ratings))
	for i := range ratings {
		abs[i] = math.Abs(ratings[i] - predictions[i])
	}
	return stat.Mean(abs, nil), nil
}

func checkPairs(ratings, predictions []float64) error {
	if len(ratings) != len(predictions) {
		return fmt.Errorf("%w: got %d ratings and %d predictions", ErrMismatchedPairs, len(ratings), len(predictions))
	}
	if len(ratings) == 0 {
		return fmt.Errorf("%w: no pairs", ErrMismatchedPairs)
	}
	return nil
}
