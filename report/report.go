//
// Tencent is pleased to support the open source community by making trpc-planeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-planeval-go is licensed under the Apache License Version 2.0.
//
//

// Package report turns a sequence of run outputs into a per-run summary
// table and one plan-description text file per run.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"trpc.group/trpc-go/trpc-planeval-go/evaluator"
	"trpc.group/trpc-go/trpc-planeval-go/groundtruth"
	"trpc.group/trpc-go/trpc-planeval-go/log"
	"trpc.group/trpc-go/trpc-planeval-go/run"
	"trpc.group/trpc-go/trpc-planeval-go/workload"
)

// summaryHeader is the column order of the summary table.
var summaryHeader = []string{"Workload", "Strategy", "Time (s)", "Cost ($)", "F1 Score", "Plan_File"}

// SummaryRow is one row of the summary table. Rows are created once per
// run output and never mutated afterwards.
type SummaryRow struct {
	// Workload is the workload tag the runs were evaluated under.
	Workload string
	// Strategy is the synthetic per-run label, "Plan-<n>" with a 1-based n.
	Strategy string
	// TimeSeconds is the elapsed time probed from the run's telemetry.
	TimeSeconds float64
	// Cost is the plan cost probed from the run's telemetry.
	Cost float64
	// F1 is the run's score against the ground-truth index.
	F1 float64
	// PlanFile is the plan text file name relative to the plan directory.
	PlanFile string
}

// Reporter writes evaluation reports for a workload. It processes runs one
// at a time, in arrival order, on the calling goroutine.
type Reporter struct {
	workload  *workload.Workload
	evaluator *evaluator.Evaluator
}

// New creates a Reporter for the named workload.
func New(workloadName string, opt ...Option) (*Reporter, error) {
	w, ok := workload.Lookup(workloadName)
	if !ok {
		return nil, fmt.Errorf("unknown workload %q", workloadName)
	}
	r := &Reporter{workload: w, evaluator: evaluator.New()}
	for _, o := range opt {
		o(r)
	}
	return r, nil
}

// Report scores every run output against the index and writes two
// artifacts: the plan description of run n to <planDir>/<n>.txt and, after
// all runs were processed, the summary table to csvPath (overwriting any
// previous table).
//
// Telemetry probing and plan-text writes are best-effort: their faults are
// swallowed, kept as diagnostics and logged once at the end. Missing
// execution statistics or a missing plan description are hard failures
// that abort the report; no summary table is written then, though plan
// files already written remain on disk.
func (r *Reporter) Report(runs []*run.Output, index groundtruth.Index, csvPath, planDir string) error {
	if csvPath == "" {
		return errors.New("summary table path is empty")
	}
	if parent := filepath.Dir(csvPath); parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("create summary table directory: %w", err)
		}
	}
	if err := os.MkdirAll(planDir, 0o755); err != nil {
		return fmt.Errorf("create plan text directory: %w", err)
	}

	sessionID := uuid.NewString()
	log.Infof("report session %s: %d runs, workload %s", sessionID, len(runs), r.workload.Name)

	var diagnostics error
	rows := make([]*SummaryRow, 0, len(runs))
	for i, out := range runs {
		idx := i + 1

		cost, elapsed, err := probeTelemetry(out)
		if err != nil {
			// best-effort: keep the zero defaults
			diagnostics = multierror.Append(diagnostics, fmt.Errorf("run %d telemetry: %w", idx, err))
		}

		var records []run.Record
		if out != nil {
			records = out.Records
		}
		f1 := r.evaluator.Score(records, index, r.workload)

		planText, err := extractPlanText(out)
		if err != nil {
			return fmt.Errorf("run %d: %w", idx, err)
		}

		planFile := fmt.Sprintf("%d.txt", idx)
		if err := os.WriteFile(filepath.Join(planDir, planFile), []byte(planText), 0o644); err != nil {
			diagnostics = multierror.Append(diagnostics, fmt.Errorf("run %d plan text: %w", idx, err))
		}

		rows = append(rows, &SummaryRow{
			Workload:    r.workload.Name,
			Strategy:    fmt.Sprintf("Plan-%d", idx),
			TimeSeconds: elapsed,
			Cost:        cost,
			F1:          f1,
			PlanFile:    planFile,
		})
	}

	if err := writeSummary(csvPath, rows); err != nil {
		return fmt.Errorf("write summary table: %w", err)
	}
	if diagnostics != nil {
		log.Warnf("report session %s: non-fatal faults: %v", sessionID, diagnostics)
	}
	log.Infof("saved results to %s", csvPath)
	log.Infof("plan details saved in %s", planDir)
	return nil
}

// probeTelemetry extracts cost and elapsed time from the first per-plan
// stats entry, trying each legacy alias in priority order. It never
// escalates: absent statistics or unmatched aliases keep the 0.0 defaults
// and are only reported back as a diagnostic.
func probeTelemetry(out *run.Output) (cost, elapsed float64, err error) {
	if out == nil || out.ExecutionStats == nil {
		return 0, 0, errors.New("no execution statistics")
	}
	first, ok := out.ExecutionStats.First()
	if !ok {
		return 0, 0, errors.New("execution statistics hold no plan stats")
	}
	if cost, ok = first.FirstFloat(run.CostAliases); !ok {
		err = multierror.Append(err, errors.New("no cost field matched"))
	}
	if elapsed, ok = first.FirstFloat(run.TimeAliases); !ok {
		err = multierror.Append(err, errors.New("no time field matched"))
	}
	return cost, elapsed, err
}

// extractPlanText reads the plan description from the first per-plan stats
// entry. Unlike telemetry probing this is not defensive: a run without
// execution statistics or plan text cannot be reported.
func extractPlanText(out *run.Output) (string, error) {
	if out == nil || out.ExecutionStats == nil {
		return "", errors.New("missing execution statistics")
	}
	first, ok := out.ExecutionStats.First()
	if !ok {
		return "", errors.New("execution statistics hold no plan stats")
	}
	text, ok := first.FirstString(run.PlanTextAliases)
	if !ok {
		return "", errors.New("missing plan description text")
	}
	return text, nil
}

// writeSummary serializes the rows to csvPath with overwrite semantics.
func writeSummary(csvPath string, rows []*SummaryRow) error {
	f, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(summaryHeader); err != nil {
		f.Close()
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Workload,
			row.Strategy,
			formatFloat(row.TimeSeconds),
			formatFloat(row.Cost),
			formatFloat(row.F1),
			row.PlanFile,
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
