// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/models"
	"github.com/rs/zerolog"
)

var (
	// ErrMissingColumn indicates a CSV header without a required column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrEmptyFile indicates a CSV file without a header row.
	ErrEmptyFile = errors.New("file has no header row")
)

// Loader reads run and truth CSV files into row slices.
type Loader struct {
	logger zerolog.Logger
}

// NewLoader creates a loader.
func NewLoader(logger zerolog.Logger) *Loader {
	return &Loader{
		logger: logger.With().Str("component", "dataset").Logger(),
	}
}

// LoadRecs reads every recommendation file of the set, concatenating
// part files in name order. Rows come back grouped by algorithm in
// sorted order, preserving file row order within each algorithm.
func (l *Loader) LoadRecs(set *RunSet) ([]models.RecRow, error) {
	algorithms := sortedKeys(set.Recs)

	var rows []models.RecRow
	for _, algo := range algorithms {
		for _, file := range set.Recs[algo] {
			fileRows, err := l.readRecsFile(file)
			if err != nil {
				return nil, err
			}
			rows = append(rows, fileRows...)
		}
	}

	l.logger.Info().
		Int("rows", len(rows)).
		Int("algorithms", len(algorithms)).
		Msg("Loaded recommendation lists")

	return rows, nil
}

// LoadPreds reads every prediction file of the set, concatenating part
// files in name order.
func (l *Loader) LoadPreds(set *RunSet) ([]models.PredRow, error) {
	algorithms := sortedKeys(set.Preds)

	var rows []models.PredRow
	for _, algo := range algorithms {
		for _, file := range set.Preds[algo] {
			fileRows, err := l.readPredsFile(file)
			if err != nil {
				return nil, err
			}
			rows = append(rows, fileRows...)
		}
	}

	l.logger.Info().
		Int("rows", len(rows)).
		Int("algorithms", len(algorithms)).
		Msg("Loaded rating predictions")

	return rows, nil
}

// LoadTruth reads the held-out ground-truth ratings.
func (l *Loader) LoadTruth(path string) ([]models.TruthRow, error) {
	var rows []models.TruthRow

	err := l.readCSV(path, []string{"user", "item", "rating"}, func(r *csv.Reader, record []string, cols map[string]int) error {
		user, item, err := requireKeys(r, record, cols, path)
		if err != nil {
			return err
		}
		rating, err := parseFloatField(r, record, cols, "rating", path)
		if err != nil {
			return err
		}
		rows = append(rows, models.TruthRow{User: user, Item: item, Rating: rating})
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info().Int("rows", len(rows)).Str("file", path).Msg("Loaded ground truth")

	return rows, nil
}

func (l *Loader) readRecsFile(file RunFile) ([]models.RecRow, error) {
	var rows []models.RecRow

	err := l.readCSV(file.Path, []string{"user", "item", "score", "rank"}, func(r *csv.Reader, record []string, cols map[string]int) error {
		user, item, err := requireKeys(r, record, cols, file.Path)
		if err != nil {
			return err
		}
		score, err := parseFloatField(r, record, cols, "score", file.Path)
		if err != nil {
			return err
		}
		rank, err := parseIntField(r, record, cols, "rank", file.Path)
		if err != nil {
			return err
		}
		if rank < 1 {
			line, _ := r.FieldPos(cols["rank"])
			return fmt.Errorf("%s:%d: column %q: rank must be positive, got %d", file.Path, line, "rank", rank)
		}
		rows = append(rows, models.RecRow{
			Algorithm: file.Algorithm,
			User:      user,
			Item:      item,
			Score:     score,
			Rank:      rank,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (l *Loader) readPredsFile(file RunFile) ([]models.PredRow, error) {
	var rows []models.PredRow

	err := l.readCSV(file.Path, []string{"user", "item", "rating", "prediction"}, func(r *csv.Reader, record []string, cols map[string]int) error {
		user, item, err := requireKeys(r, record, cols, file.Path)
		if err != nil {
			return err
		}
		rating, err := parseFloatField(r, record, cols, "rating", file.Path)
		if err != nil {
			return err
		}
		prediction, err := parseFloatField(r, record, cols, "prediction", file.Path)
		if err != nil {
			return err
		}
		rows = append(rows, models.PredRow{
			Algorithm:  file.Algorithm,
			User:       user,
			Item:       item,
			Rating:     rating,
			Prediction: prediction,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// readCSV opens path, validates that the header carries the required
// columns, and invokes row for every data record.
func (l *Loader) readCSV(path string, required []string, row func(r *csv.Reader, record []string, cols map[string]int) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			l.logger.Warn().Err(cerr).Str("file", path).Msg("Error closing file")
		}
	}()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	if err != nil {
		return fmt.Errorf("read %s header: %w", path, err)
	}

	cols, err := headerIndex(header, required)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := row(r, record, cols); err != nil {
			return err
		}
	}
}

// headerIndex maps normalized column names to their positions and
// checks that every required column is present.
func headerIndex(header []string, required []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	return cols, nil
}

// requireKeys extracts the user and item fields, rejecting empty keys.
func requireKeys(r *csv.Reader, record []string, cols map[string]int, path string) (user, item string, err error) {
	user = strings.TrimSpace(record[cols["user"]])
	if user == "" {
		line, _ := r.FieldPos(cols["user"])
		return "", "", fmt.Errorf("%s:%d: column %q: empty key", path, line, "user")
	}
	item = strings.TrimSpace(record[cols["item"]])
	if item == "" {
		line, _ := r.FieldPos(cols["item"])
		return "", "", fmt.Errorf("%s:%d: column %q: empty key", path, line, "item")
	}
	return user, item, nil
}

func parseFloatField(r *csv.Reader, record []string, cols map[string]int, column, path string) (float64, error) {
	raw := strings.TrimSpace(record[cols[column]])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		line, _ := r.FieldPos(cols[column])
		return 0, fmt.Errorf("%s:%d: column %q: invalid number %q", path, line, column, raw)
	}
	return v, nil
}

func parseIntField(r *csv.Reader, record []string, cols map[string]int, column, path string) (int, error) {
	raw := strings.TrimSpace(record[cols[column]])
	v, err := strconv.Atoi(raw)
	if err != nil {
		line, _ := r.FieldPos(cols[column])
		return 0, fmt.Errorf("%s:%d: column %q: invalid integer %q", path, line, column, raw)
	}
	return v, nil
}

func sortedKeys(m map[string][]RunFile) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
