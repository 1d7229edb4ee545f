//
// Tencent is pleased to support the open source community by making trpc-planeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-planeval-go is licensed under the Apache License Version 2.0.
//
//

package planeval

import "trpc.group/trpc-go/trpc-planeval-go/report"

type options struct {
	groundTruthPath string
	referenceDir    string
	reporterOptions []report.Option
}

func newOptions(opt ...Option) *options {
	opts := &options{}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures the harness.
type Option func(*options)

// WithGroundTruthPath sets the labeled ground-truth file. Leaving it unset
// yields an empty index and a zero score for every run.
func WithGroundTruthPath(path string) Option {
	return func(o *options) {
		o.groundTruthPath = path
	}
}

// WithReferenceDir sets the directory whose listing constrains which
// identifiers are considered real.
func WithReferenceDir(dir string) Option {
	return func(o *options) {
		o.referenceDir = dir
	}
}

// WithReporterOptions forwards options to the underlying reporter.
func WithReporterOptions(opt ...report.Option) Option {
	return func(o *options) {
		o.reporterOptions = append(o.reporterOptions, opt...)
	}
}
