// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package dataset

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/Ngozi-Ihemelandu/lk-demo-experiment/internal/models"
)

// LoadMetricTable reads a long-form per-user metric table with the
// columns algorithm, user, metric, and value. Tables in this shape are
// what the accuracy stage produces; loading one directly allows
// significance testing over scores computed elsewhere.
func (l *Loader) LoadMetricTable(path string) ([]models.UserMetricRow, error) {
	var rows []models.UserMetricRow

	err := l.readCSV(path, []string{"algorithm", "user", "metric", "value"}, func(r *csv.Reader, record []string, cols map[string]int) error {
		algorithm := strings.TrimSpace(record[cols["algorithm"]])
		if algorithm == "" {
			line, _ := r.FieldPos(cols["algorithm"])
			return fmt.Errorf("%s:%d: column %q: empty key", path, line, "algorithm")
		}
		user := strings.TrimSpace(record[cols["user"]])
		if user == "" {
			line, _ := r.FieldPos(cols["user"])
			return fmt.Errorf("%s:%d: column %q: empty key", path, line, "user")
		}
		metric := strings.TrimSpace(record[cols["metric"]])
		if metric == "" {
			line, _ := r.FieldPos(cols["metric"])
			return fmt.Errorf("%s:%d: column %q: empty key", path, line, "metric")
		}
		value, err := parseFloatField(r, record, cols, "value", path)
		if err != nil {
			return err
		}
		rows = append(rows, models.UserMetricRow{
			Algorithm: algorithm,
			User:      user,
			Metric:    metric,
			Value:     value,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info().Int("rows", len(rows)).Str("file", path).Msg("Loaded metric table")

	return rows, nil
}
