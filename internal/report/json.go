// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package report

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
)

// WriteJSON encodes doc as an indented JSON document to w.
func WriteJSON(w io.Writer, doc interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// WriteJSONFile writes the indented JSON document to path. This is the
// only file the workbench writes.
func (r *Reporter) WriteJSONFile(path string, doc interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}

	if err := WriteJSON(f, doc); err != nil {
		if cerr := f.Close(); cerr != nil {
			r.logger.Warn().Err(cerr).Str("file", path).Msg("Error closing report file")
		}
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report file: %w", err)
	}

	r.logger.Info().Str("file", path).Msg("Wrote JSON report")
	return nil
}
