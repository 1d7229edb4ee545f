//
// Tencent is pleased to support the open source community by making trpc-planeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-planeval-go is licensed under the Apache License Version 2.0.
//
//

package report

import "trpc.group/trpc-go/trpc-planeval-go/evaluator"

// Option configures the reporter.
type Option func(*Reporter)

// WithEvaluator overrides the default F1 evaluator.
func WithEvaluator(e *evaluator.Evaluator) Option {
	return func(r *Reporter) {
		if e != nil {
			r.evaluator = e
		}
	}
}
