// LK Demo Experiment - Recommender Accuracy and Significance Analysis
// Copyright 2026 Ngozi Ihemelandu
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Ngozi-Ihemelandu/lk-demo-experiment

package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// ErrNoRuns indicates a runs directory containing no files that match
// the naming convention.
var ErrNoRuns = errors.New("no run files found")

// runFilePattern captures the kind prefix, the algorithm identifier,
// and the optional part number of a run file name.
var runFilePattern = regexp.MustCompile(`^(recs|pred)-([A-Za-z0-9_]+)(?:-([0-9]+))?\.csv$`)

// RunKind distinguishes recommendation-list files from prediction
// files.
type RunKind string

const (
	// KindRecs marks a top-N recommendation list file.
	KindRecs RunKind = "recs"

	// KindPred marks a rating prediction file.
	KindPred RunKind = "pred"
)

// RunFile is one discovered run file.
type RunFile struct {
	// Path is the absolute or directory-relative file path.
	Path string

	// Kind is the file's prefix: recommendations or predictions.
	Kind RunKind

	// Algorithm is the identifier parsed from the file name.
	Algorithm string

	// Part is the optional part number, zero for single-part files.
	// Ordering follows file names, not this value.
	Part int
}

// RunSet groups the discovered files of one runs directory by kind and
// algorithm. Part files appear in file name order.
type RunSet struct {
	Recs  map[string][]RunFile
	Preds map[string][]RunFile
}

// Algorithms returns the sorted union of algorithm identifiers across
// both kinds.
func (s *RunSet) Algorithms() []string {
	seen := make(map[string]bool)
	for a := range s.Recs {
		seen[a] = true
	}
	for a := range s.Preds {
		seen[a] = true
	}
	out := make([]string, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// Empty reports whether no run files were discovered.
func (s *RunSet) Empty() bool {
	return len(s.Recs) == 0 && len(s.Preds) == 0
}

// Discover scans dir for files matching the run naming convention and
// groups them by kind and algorithm. Non-matching entries are skipped
// with a debug log. Returns ErrNoRuns when nothing matches.
func (l *Loader) Discover(dir string) (*RunSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read runs directory: %w", err)
	}

	set := &RunSet{
		Recs:  make(map[string][]RunFile),
		Preds: make(map[string][]RunFile),
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()

		m := runFilePattern.FindStringSubmatch(name)
		if m == nil {
			l.logger.Debug().Str("file", name).Msg("skipping file outside naming convention")
			continue
		}

		part := 0
		if m[3] != "" {
			// The pattern only admits digits here.
			part, _ = strconv.Atoi(m[3])
		}

		file := RunFile{
			Path:      filepath.Join(dir, name),
			Kind:      RunKind(m[1]),
			Algorithm: m[2],
			Part:      part,
		}
		switch file.Kind {
		case KindRecs:
			set.Recs[file.Algorithm] = append(set.Recs[file.Algorithm], file)
		case KindPred:
			set.Preds[file.Algorithm] = append(set.Preds[file.Algorithm], file)
		}
	}

	if set.Empty() {
		return nil, fmt.Errorf("%w in %s", ErrNoRuns, dir)
	}

	// ReadDir already sorts by name; keep the guarantee explicit for
	// part concatenation order.
	for _, files := range set.Recs {
		sortByName(files)
	}
	for _, files := range set.Preds {
		sortByName(files)
	}

	l.logger.Info().
		Int("rec_algorithms", len(set.Recs)).
		Int("pred_algorithms", len(set.Preds)).
		Str("dir", dir).
		Msg("Discovered run files")

	return set, nil
}

func sortByName(files []RunFile) {
	sort.Slice(files, func(a, b int) bool {
		return filepath.Base(files[a].Path) < filepath.Base(files[b].Path)
	})
}
