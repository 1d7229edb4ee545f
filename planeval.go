//
// Tencent is pleased to support the open source community by making trpc-planeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-planeval-go is licensed under the Apache License Version 2.0.
//
//

// Package planeval evaluates the outputs of an extraction/matching
// pipeline against labeled ground truth and writes a per-run comparison
// report: a summary table pairing each run's telemetry with its F1 score,
// and one plan-description text file per run.
package planeval

import (
	"fmt"

	"trpc.group/trpc-go/trpc-planeval-go/groundtruth"
	"trpc.group/trpc-go/trpc-planeval-go/report"
	"trpc.group/trpc-go/trpc-planeval-go/run"
)

// Harness wires the ground-truth loader, the evaluator and the reporter
// for one workload.
type Harness struct {
	workloadName    string
	groundTruthPath string
	referenceDir    string
	reporter        *report.Reporter
}

// New creates a Harness for the named workload.
func New(workloadName string, opt ...Option) (*Harness, error) {
	opts := newOptions(opt...)
	reporter, err := report.New(workloadName, opts.reporterOptions...)
	if err != nil {
		return nil, fmt.Errorf("create reporter: %w", err)
	}
	return &Harness{
		workloadName:    workloadName,
		groundTruthPath: opts.groundTruthPath,
		referenceDir:    opts.referenceDir,
		reporter:        reporter,
	}, nil
}

// Report loads the ground truth once, scores every run against it in
// arrival order and writes the summary table and plan-text files.
func (h *Harness) Report(runs []*run.Output, csvPath, planDir string) error {
	index := groundtruth.Load(h.workloadName, h.groundTruthPath, h.referenceDir)
	return h.reporter.Report(runs, index, csvPath, planDir)
}
