//
// Tencent is pleased to support the open source community by making trpc-planeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-planeval-go is licensed under the Apache License Version 2.0.
//
//

package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-planeval-go/groundtruth"
	"trpc.group/trpc-go/trpc-planeval-go/run"
	"trpc.group/trpc-go/trpc-planeval-go/workload"
)

func statsWith(fields run.PlanStats) *run.ExecutionStats {
	es := run.NewExecutionStats()
	es.SetPlanStats("plan-0", fields)
	return es
}

func enronIndex() groundtruth.FlatIndex {
	index := groundtruth.FlatIndex{}
	index.Set("a.txt", 1)
	index.Set("b.txt", 0)
	return index
}

func TestNewUnknownWorkload(t *testing.T) {
	_, err := New("unknown-workload")
	assert.Error(t, err)
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "out", "summary.csv")
	planDir := filepath.Join(dir, "plans")

	runs := []*run.Output{
		{
			Records: []run.Record{{"filename": "a.txt"}},
			ExecutionStats: statsWith(run.PlanStats{
				"total_plan_cost": 1.25,
				"total_plan_time": 3.5,
				"plan_str":        "scan A",
			}),
		},
		{
			// no telemetry aliases: cost and time default to 0
			ExecutionStats: statsWith(run.PlanStats{"plan_str": "scan B"}),
		},
	}

	r, err := New(workload.NameEnron)
	require.NoError(t, err)
	require.NoError(t, r.Report(runs, enronIndex(), csvPath, planDir))

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t,
		"Workload,Strategy,Time (s),Cost ($),F1 Score,Plan_File\n"+
			"enron,Plan-1,3.5,1.25,1,1.txt\n"+
			"enron,Plan-2,0,0,0,2.txt\n",
		string(data))

	// round-trip: each Plan_File exists and holds the extracted plan text
	plan, err := os.ReadFile(filepath.Join(planDir, "1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "scan A", string(plan))
	plan, err = os.ReadFile(filepath.Join(planDir, "2.txt"))
	require.NoError(t, err)
	assert.Equal(t, "scan B", string(plan))
}

func TestReportIdempotent(t *testing.T) {
	runs := []*run.Output{{
		Records:        []run.Record{{"filename": "a.txt"}},
		ExecutionStats: statsWith(run.PlanStats{"cost": 2.0, "time": 1.0, "plan_str": "scan"}),
	}}

	r, err := New(workload.NameEnron)
	require.NoError(t, err)

	var tables, plans [2][]byte
	for i := 0; i < 2; i++ {
		dir := t.TempDir()
		csvPath := filepath.Join(dir, "summary.csv")
		planDir := filepath.Join(dir, "plans")
		require.NoError(t, r.Report(runs, enronIndex(), csvPath, planDir))
		tables[i], err = os.ReadFile(csvPath)
		require.NoError(t, err)
		plans[i], err = os.ReadFile(filepath.Join(planDir, "1.txt"))
		require.NoError(t, err)
	}
	assert.Equal(t, tables[0], tables[1])
	assert.Equal(t, plans[0], plans[1])
}

func TestReportHardFailures(t *testing.T) {
	r, err := New(workload.NameEnron)
	require.NoError(t, err)

	cases := []struct {
		name string
		out  *run.Output
	}{
		{name: "nil run", out: nil},
		{name: "no execution stats", out: &run.Output{}},
		{name: "empty plan stats", out: &run.Output{ExecutionStats: run.NewExecutionStats()}},
		{name: "no plan text alias", out: &run.Output{ExecutionStats: statsWith(run.PlanStats{"cost": 1.0})}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir := t.TempDir()
			csvPath := filepath.Join(dir, "summary.csv")
			planDir := filepath.Join(dir, "plans")

			good := &run.Output{
				Records:        []run.Record{{"filename": "a.txt"}},
				ExecutionStats: statsWith(run.PlanStats{"plan_str": "scan"}),
			}
			err := r.Report([]*run.Output{good, c.out}, enronIndex(), csvPath, planDir)
			require.Error(t, err)

			// the failing run aborts the pass: no summary table, but the
			// plan file of the preceding run stays on disk
			assert.NoFileExists(t, csvPath)
			assert.FileExists(t, filepath.Join(planDir, "1.txt"))
		})
	}
}

func TestReportEmptyTablePath(t *testing.T) {
	r, err := New(workload.NameEnron)
	require.NoError(t, err)
	assert.Error(t, r.Report(nil, enronIndex(), "", t.TempDir()))
}

func TestReportNoRuns(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "summary.csv")
	planDir := filepath.Join(dir, "plans")

	r, err := New(workload.NameEnron)
	require.NoError(t, err)
	require.NoError(t, r.Report(nil, enronIndex(), csvPath, planDir))

	// header-only table, overwrite semantics on a second pass
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, "Workload,Strategy,Time (s),Cost ($),F1 Score,Plan_File\n", string(data))
	assert.DirExists(t, planDir)
}
