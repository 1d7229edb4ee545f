//
// Tencent is pleased to support the open source community by making trpc-planeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-planeval-go is licensed under the Apache License Version 2.0.
//
//

package planeval

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-planeval-go/run"
	"trpc.group/trpc-go/trpc-planeval-go/workload"
)

func TestNewUnknownWorkload(t *testing.T) {
	_, err := New("unknown-workload")
	assert.Error(t, err)
}

func TestHarnessReport(t *testing.T) {
	dir := t.TempDir()
	gtPath := filepath.Join(dir, "gt.csv")
	require.NoError(t, os.WriteFile(gtPath, []byte("filename,label\na.txt,1\nb.txt,0\n"), 0o644))
	refDir := filepath.Join(dir, "dataset")
	require.NoError(t, os.Mkdir(refDir, 0o755))
	for _, name := range []string{"a.txt", "b.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(refDir, name), []byte("x"), 0o644))
	}

	h, err := New(workload.NameEnron,
		WithGroundTruthPath(gtPath),
		WithReferenceDir(refDir),
	)
	require.NoError(t, err)

	runs := []*run.Output{{
		Records:        []run.Record{{"filename": "a.txt"}},
		ExecutionStats: planStats(run.PlanStats{"total_cost": 0.5, "total_time": 2.0, "plan_str": "scan -> filter"}),
	}}

	csvPath := filepath.Join(dir, "results", "summary.csv")
	planDir := filepath.Join(dir, "plans")
	require.NoError(t, h.Report(runs, csvPath, planDir))

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "enron,Plan-1,2,0.5,1,1.txt", lines[1])

	plan, err := os.ReadFile(filepath.Join(planDir, "1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "scan -> filter", string(plan))
}

func TestHarnessReportWithoutGroundTruth(t *testing.T) {
	dir := t.TempDir()

	h, err := New(workload.NameEnron)
	require.NoError(t, err)

	runs := []*run.Output{{
		Records:        []run.Record{{"filename": "a.txt"}},
		ExecutionStats: planStats(run.PlanStats{"plan_str": "scan"}),
	}}

	csvPath := filepath.Join(dir, "summary.csv")
	require.NoError(t, h.Report(runs, csvPath, filepath.Join(dir, "plans")))

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "enron,Plan-1,0,0,0,1.txt")
}

func planStats(fields run.PlanStats) *run.ExecutionStats {
	es := run.NewExecutionStats()
	es.SetPlanStats("plan-0", fields)
	return es
}
