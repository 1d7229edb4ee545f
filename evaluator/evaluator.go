//
// Tencent is pleased to support the open source community by making trpc-planeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-planeval-go is licensed under the Apache License Version 2.0.
//
//

// Package evaluator scores the result records of one run against a
// ground-truth index.
package evaluator

import (
	"trpc.group/trpc-go/trpc-planeval-go/groundtruth"
	"trpc.group/trpc-go/trpc-planeval-go/metric"
	"trpc.group/trpc-go/trpc-planeval-go/run"
	"trpc.group/trpc-go/trpc-planeval-go/workload"
)

// Evaluator computes an F1 score for a run's result records. The matching
// discipline follows the workload kind: flat workloads score set
// membership with binary averaging, the nested workload scores attribute
// presence with micro averaging.
type Evaluator struct{}

// New creates a new F1 evaluator.
func New() *Evaluator { return &Evaluator{} }

// Score builds parallel true/predicted label vectors for the records under
// the given workload and returns their F1 in [0, 1].
//
// An empty or mismatched index, an unknown workload or vectors with no
// entries all yield 0.0: every evaluation-side fault is score-neutral,
// never an error.
func (e *Evaluator) Score(records []run.Record, index groundtruth.Index, w *workload.Workload) float64 {
	if w == nil || index == nil || index.Empty() {
		return 0.0
	}
	var yTrue, yPred []int
	avg := metric.AverageBinary
	switch w.Kind {
	case workload.KindNested:
		nested, ok := index.(*groundtruth.NestedIndex)
		if !ok {
			return 0.0
		}
		yTrue, yPred = attributePresenceVectors(records, nested, w.KeyAttribute)
		avg = metric.AverageMicro
	default:
		flat, ok := index.(groundtruth.FlatIndex)
		if !ok {
			return 0.0
		}
		yTrue, yPred = setMembershipVectors(records, flat, w.KeyAttribute)
	}
	if len(yTrue) == 0 {
		return 0.0
	}
	return metric.F1(yTrue, yPred, avg)
}

// Name returns the canonical metric name computed by this evaluator.
func (e *Evaluator) Name() string { return "f1_score" }

// Description explains what the evaluator measures.
func (e *Evaluator) Description() string {
	return "Computes F1 between ground-truth labels and the labels predicted by a run's result records"
}

// setMembershipVectors scores flat workloads: the predicted set is every
// identifier the records expose under the key attribute, and each
// ground-truth identifier contributes one vector entry.
func setMembershipVectors(records []run.Record, index groundtruth.FlatIndex, keyAttr string) (yTrue, yPred []int) {
	predicted := make(map[string]struct{}, len(records))
	for _, record := range records {
		id, ok := record.Field(keyAttr)
		if !ok {
			continue
		}
		predicted[groundtruth.Normalize(id)] = struct{}{}
	}
	for id, label := range index {
		yTrue = append(yTrue, label)
		if _, ok := predicted[id]; ok {
			yPred = append(yPred, 1)
		} else {
			yPred = append(yPred, 0)
		}
	}
	return yTrue, yPred
}

// attributePresenceVectors scores the nested workload: each record is
// matched to the first ground-truth source key contained in its filename,
// and every attribute of that source contributes one vector entry. Records
// matching no source are skipped entirely.
func attributePresenceVectors(records []run.Record, index *groundtruth.NestedIndex, keyAttr string) (yTrue, yPred []int) {
	for _, record := range records {
		filename, _ := record.Field(keyAttr)
		attrs, ok := index.MatchSource(filename)
		if !ok {
			continue
		}
		for attr, shouldExist := range attrs {
			yTrue = append(yTrue, boolLabel(shouldExist))
			yPred = append(yPred, boolLabel(record.HasValue(attr)))
		}
	}
	return yTrue, yPred
}

func boolLabel(b bool) int {
	if b {
		return 1
	}
	return 0
}
