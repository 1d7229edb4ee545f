//
// Tencent is pleased to support the open source community by making trpc-planeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-planeval-go is licensed under the Apache License Version 2.0.
//
//

// Package groundtruth loads labeled ground-truth tables into the in-memory
// indexes used as the scoring oracle. The index shape depends on the
// workload kind: flat workloads map entity identifiers to binary labels,
// the nested workload maps source keys to per-attribute presence flags.
package groundtruth

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Index is the read-only scoring oracle shared across all evaluations of a
// reporting session. An empty index means no evaluation is possible.
type Index interface {
	// Empty reports whether the index holds no entries.
	Empty() bool
}

// Normalize canonicalizes identifiers and source keys. Index construction
// and every lookup must go through the same normalization.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FlatIndex maps normalized entity identifiers to binary labels.
type FlatIndex map[string]int

// Empty reports whether the index holds no entries.
func (f FlatIndex) Empty() bool { return len(f) == 0 }

// Set stores the label for an identifier, normalizing the key.
func (f FlatIndex) Set(id string, label int) {
	f[Normalize(id)] = label
}

// Label returns the label recorded for an identifier.
func (f FlatIndex) Label(id string) (int, bool) {
	label, ok := f[Normalize(id)]
	return label, ok
}

// NestedIndex maps normalized source keys to per-attribute "should exist"
// flags. Sources iterate in insertion order, which the loader populates in
// ground-truth column order, so substring matching against a filename has a
// deterministic tie-break.
type NestedIndex struct {
	sources *orderedmap.OrderedMap[string, map[string]bool]
}

// NewNestedIndex creates an empty nested index.
func NewNestedIndex() *NestedIndex {
	return &NestedIndex{sources: orderedmap.New[string, map[string]bool]()}
}

// Empty reports whether the index holds no sources.
func (n *NestedIndex) Empty() bool {
	return n == nil || n.sources.Len() == 0
}

// Add records whether attr should be present for the given source. The
// source key is normalized, the attribute name is trimmed.
func (n *NestedIndex) Add(source, attr string, shouldExist bool) {
	key := Normalize(source)
	attrs, ok := n.sources.Get(key)
	if !ok {
		attrs = make(map[string]bool)
		n.sources.Set(key, attrs)
	}
	attrs[strings.TrimSpace(attr)] = shouldExist
}

// Attributes returns the attribute flags recorded for a source key.
func (n *NestedIndex) Attributes(source string) (map[string]bool, bool) {
	attrs, ok := n.sources.Get(Normalize(source))
	return attrs, ok
}

// MatchSource returns the attribute flags of the first source key, in
// column order, that is a substring of the given filename. The comparison
// is case-insensitive.
func (n *NestedIndex) MatchSource(filename string) (map[string]bool, bool) {
	lower := strings.ToLower(filename)
	for pair := n.sources.Oldest(); pair != nil; pair = pair.Next() {
		if strings.Contains(lower, pair.Key) {
			return pair.Value, true
		}
	}
	return nil, false
}
