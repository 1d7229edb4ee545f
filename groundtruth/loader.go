//
// Tencent is pleased to support the open source community by making trpc-planeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-planeval-go is licensed under the Apache License Version 2.0.
//
//

package groundtruth

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"trpc.group/trpc-go/trpc-planeval-go/log"
	"trpc.group/trpc-go/trpc-planeval-go/workload"
)

// Load reads the labeled table at gtPath into an index shaped for the named
// workload. refDir is a directory whose listing constrains which
// identifiers are considered real: flat rows for entities never
// materialized on disk are dropped.
//
// Load never fails: unknown workload tags, missing or unreadable files and
// malformed rows all degrade to an empty index or a default label, so a
// broken ground-truth file degrades the score rather than the run.
func Load(workloadName, gtPath, refDir string) Index {
	w, ok := workload.Lookup(workloadName)
	if !ok {
		log.Debugf("ground truth: unknown workload %q, returning empty index", workloadName)
		return FlatIndex{}
	}
	header, rows, ok := readTable(gtPath)
	if !ok {
		return emptyIndex(w)
	}
	switch w.Kind {
	case workload.KindNested:
		return loadNested(header, rows)
	default:
		return loadFlat(w, header, rows, refDir)
	}
}

// readTable reads a delimited file and splits it into a normalized header
// and data rows. The third return value is false when the file is missing,
// unreadable or malformed.
func readTable(path string) ([]string, [][]string, bool) {
	if path == "" {
		return nil, nil, false
	}
	f, err := os.Open(path)
	if err != nil {
		log.Debugf("ground truth: open %s: %v", path, err)
		return nil, nil, false
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		log.Debugf("ground truth: read %s: %v", path, err)
		return nil, nil, false
	}
	if len(records) == 0 {
		return nil, nil, false
	}
	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = Normalize(col)
	}
	return header, records[1:], true
}

func emptyIndex(w *workload.Workload) Index {
	if w.Kind == workload.KindNested {
		return NewNestedIndex()
	}
	return FlatIndex{}
}

// loadFlat builds an identifier-to-label index, keeping only identifiers
// present in the reference directory listing.
func loadFlat(w *workload.Workload, header []string, rows [][]string, refDir string) FlatIndex {
	ref := referenceSet(refDir)
	idCol := findColumn(header, w.IDAliases)
	labelCol := findColumn(header, w.LabelAliases)

	index := FlatIndex{}
	for _, row := range rows {
		id := ""
		if idCol >= 0 {
			id = strings.TrimSpace(cell(row, idCol))
		}
		if id == "" {
			if !w.FirstColumnFallback {
				continue
			}
			id = strings.TrimSpace(cell(row, 0))
		}
		if _, ok := ref[Normalize(id)]; !ok {
			continue
		}
		index.Set(id, parseLabel(cell(row, labelCol)))
	}
	return index
}

// loadNested builds a source-to-attribute index from a wide table: the
// first column names the attribute, every later column is a source.
func loadNested(header []string, rows [][]string) *NestedIndex {
	index := NewNestedIndex()
	if len(header) < 2 {
		return index
	}
	for col := 1; col < len(header); col++ {
		source := header[col]
		for _, row := range rows {
			attr := strings.TrimSpace(cell(row, 0))
			if attr == "" {
				continue
			}
			index.Add(source, attr, !isMissing(cell(row, col)))
		}
	}
	return index
}

// referenceSet lists refDir as a set of normalized entry names. A missing
// directory yields an empty set, which filters out every row.
func referenceSet(refDir string) map[string]struct{} {
	set := map[string]struct{}{}
	entries, err := os.ReadDir(refDir)
	if err != nil {
		log.Debugf("ground truth: list %s: %v", refDir, err)
		return set
	}
	for _, entry := range entries {
		set[Normalize(entry.Name())] = struct{}{}
	}
	return set
}

// findColumn returns the index of the first alias present in the header,
// or -1 when none matches.
func findColumn(header, aliases []string) int {
	for _, alias := range aliases {
		for i, col := range header {
			if col == alias {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// parseLabel parses a binary label, defaulting to 1 when the column is
// absent or the value does not parse.
func parseLabel(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 1
	}
	if label, err := strconv.Atoi(s); err == nil {
		return label
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 1
}

// isMissing reports whether a nested-table cell marks an absent attribute.
// Upstream producers emit "missing" or a stringified NaN; an empty cell is
// the delimited-text form of the same thing.
func isMissing(raw string) bool {
	switch Normalize(raw) {
	case "missing", "nan", "":
		return true
	}
	return false
}
