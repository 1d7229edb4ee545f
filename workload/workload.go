//
// Tencent is pleased to support the open source community by making trpc-planeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-planeval-go is licensed under the Apache License Version 2.0.
//
//

// Package workload defines the closed set of evaluation workloads and the
// ground-truth shape and scoring discipline attached to each of them.
package workload

// Kind determines how a workload's ground truth is parsed and scored.
type Kind int

const (
	// KindFlat scores set membership: the ground truth maps entity
	// identifiers to binary labels and predictions are the identifiers the
	// pipeline emitted.
	KindFlat Kind = iota
	// KindNested scores attribute presence: the ground truth maps source
	// keys to per-attribute "should exist" flags and predictions are the
	// attributes a record carries a value for.
	KindNested
)

// Built-in workload names.
const (
	NameEnron                 = "enron"
	NameRealEstate            = "real-estate"
	NameMedicalSchemaMatching = "medical-schema-matching"
)

// Workload describes one evaluation scenario. The column alias lists are
// probed in order against the lower-cased, trimmed header of the labeled
// ground-truth table.
type Workload struct {
	// Name is the workload tag used by callers.
	Name string
	// Kind selects the parsing and scoring strategy.
	Kind Kind
	// KeyAttribute is the record field read off each result record: the
	// entity identifier for flat workloads, the filename matched against
	// source keys for nested workloads.
	KeyAttribute string
	// IDAliases are candidate identifier column names, most specific first.
	IDAliases []string
	// LabelAliases are candidate label column names, most specific first.
	LabelAliases []string
	// FirstColumnFallback reads the identifier from the first column when
	// none of IDAliases matches. Workloads without it skip such rows.
	FirstColumnFallback bool
}

var registry = map[string]*Workload{
	NameEnron: {
		Name:                NameEnron,
		Kind:                KindFlat,
		KeyAttribute:        "filename",
		IDAliases:           []string{"filename", "file", "name"},
		LabelAliases:        []string{"label", "y", "target"},
		FirstColumnFallback: true,
	},
	NameRealEstate: {
		Name:         NameRealEstate,
		Kind:         KindFlat,
		KeyAttribute: "listing",
		IDAliases:    []string{"listing", "filename", "id", "name"},
		LabelAliases: []string{"label"},
	},
	NameMedicalSchemaMatching: {
		Name:         NameMedicalSchemaMatching,
		Kind:         KindNested,
		KeyAttribute: "filename",
	},
}

// Lookup returns the workload registered under name.
func Lookup(name string) (*Workload, bool) {
	w, ok := registry[name]
	return w, ok
}

// Register adds a workload to the registry, replacing any existing entry
// with the same name. It allows callers to extend the built-in set.
func Register(w *Workload) {
	if w == nil || w.Name == "" {
		return
	}
	registry[w.Name] = w
}

// Names returns the registered workload names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
