//
// Tencent is pleased to support the open source community by making trpc-planeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-planeval-go is licensed under the Apache License Version 2.0.
//
//

// Package run holds the output of one strategy execution as handed over by
// the extraction pipeline: the produced records, the per-plan telemetry and
// the textual plan description.
//
// Telemetry field names have drifted across producer versions, so the
// cost, time and plan-text accessors probe an ordered list of legacy
// aliases and stop at the first present value.
package run

import (
	"fmt"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Alias tables probed against PlanStats, most recent producer name first.
var (
	// CostAliases are candidate plan cost field names.
	CostAliases = []string{"total_plan_cost", "total_cost", "cost", "plan_cost"}
	// TimeAliases are candidate plan elapsed-time field names.
	TimeAliases = []string{"total_plan_time", "total_time", "time", "plan_time"}
	// PlanTextAliases are candidate plan description field names.
	PlanTextAliases = []string{"plan_str", "plan_text", "plan"}
)

// Record is one result record produced by a plan execution, exposing named
// fields.
type Record map[string]any

// Field returns the record's value for the named field rendered as a
// string. It reports false when the field is absent or nil.
func (r Record) Field(name string) (string, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return "", false
	}
	return fmt.Sprint(v), true
}

// HasValue reports whether the record carries a non-empty value for the
// named field.
func (r Record) HasValue(name string) bool {
	v, ok := r.Field(name)
	return ok && strings.TrimSpace(v) != ""
}

// PlanStats is the per-plan telemetry mapping of one executed plan.
type PlanStats map[string]any

// FirstFloat probes the alias names in order and returns the first present
// value coerced to a float64. Non-numeric values are skipped.
func (ps PlanStats) FirstFloat(aliases []string) (float64, bool) {
	for _, alias := range aliases {
		v, ok := ps[alias]
		if !ok || v == nil {
			continue
		}
		if f, ok := toFloat(v); ok {
			return f, true
		}
	}
	return 0, false
}

// FirstString probes the alias names in order and returns the first present
// non-nil value rendered as a string.
func (ps PlanStats) FirstString(aliases []string) (string, bool) {
	for _, alias := range aliases {
		v, ok := ps[alias]
		if !ok || v == nil {
			continue
		}
		return fmt.Sprint(v), true
	}
	return "", false
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	}
	return 0, false
}

// ExecutionStats maps plan identifiers to their telemetry. The mapping
// keeps insertion order so that "the first plan's stats" is well defined.
type ExecutionStats struct {
	planStats *orderedmap.OrderedMap[string, PlanStats]
}

// NewExecutionStats creates an empty ExecutionStats.
func NewExecutionStats() *ExecutionStats {
	return &ExecutionStats{planStats: orderedmap.New[string, PlanStats]()}
}

// SetPlanStats records telemetry for a plan identifier.
func (es *ExecutionStats) SetPlanStats(planID string, stats PlanStats) {
	es.planStats.Set(planID, stats)
}

// PlanStats returns the telemetry recorded for a plan identifier.
func (es *ExecutionStats) PlanStats(planID string) (PlanStats, bool) {
	return es.planStats.Get(planID)
}

// First returns the first per-plan stats entry in insertion order.
func (es *ExecutionStats) First() (PlanStats, bool) {
	if es == nil || es.planStats == nil {
		return nil, false
	}
	pair := es.planStats.Oldest()
	if pair == nil {
		return nil, false
	}
	return pair.Value, true
}

// Output is one execution of a strategy: the ordered result records,
// optional execution statistics and the textual plan representation.
type Output struct {
	// Records are the result records in production order.
	Records []Record
	// ExecutionStats carries per-plan telemetry. May be nil; cost and time
	// extraction tolerates that, plan-text extraction does not.
	ExecutionStats *ExecutionStats
	// PlanText is the textual plan representation the pipeline attached to
	// this run.
	PlanText string
}
