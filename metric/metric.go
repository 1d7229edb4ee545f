//
// Tencent is pleased to support the open source community by making trpc-planeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-planeval-go is licensed under the Apache License Version 2.0.
//
//

// Package metric computes precision, recall and F1 over parallel binary
// label vectors.
package metric

// Average selects the averaging discipline.
type Average int

const (
	// AverageBinary scores only the positive class (label 1).
	AverageBinary Average = iota
	// AverageMicro aggregates counts over every entry before computing the
	// metric, rather than per class.
	AverageMicro
)

// Precision computes the precision of yPred against yTrue. Zero division
// yields 0 rather than failing.
func Precision(yTrue, yPred []int, avg Average) float64 {
	if avg == AverageMicro {
		return microScore(yTrue, yPred)
	}
	tp, fp, _ := confusion(yTrue, yPred)
	return ratio(tp, tp+fp)
}

// Recall computes the recall of yPred against yTrue. Zero division yields
// 0 rather than failing.
func Recall(yTrue, yPred []int, avg Average) float64 {
	if avg == AverageMicro {
		return microScore(yTrue, yPred)
	}
	tp, _, fn := confusion(yTrue, yPred)
	return ratio(tp, tp+fn)
}

// F1 computes the harmonic mean of precision and recall. Zero division
// yields 0 rather than failing.
func F1(yTrue, yPred []int, avg Average) float64 {
	if avg == AverageMicro {
		return microScore(yTrue, yPred)
	}
	p := Precision(yTrue, yPred, avg)
	r := Recall(yTrue, yPred, avg)
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// confusion counts true positives, false positives and false negatives for
// the positive class.
func confusion(yTrue, yPred []int) (tp, fp, fn int) {
	for i := range yTrue {
		switch {
		case yPred[i] == 1 && yTrue[i] == 1:
			tp++
		case yPred[i] == 1:
			fp++
		case yTrue[i] == 1:
			fn++
		}
	}
	return tp, fp, fn
}

// microScore aggregates over all entries. Every entry carries exactly one
// label, so the micro-averaged true-positive count is the number of exact
// matches and precision, recall and F1 coincide.
func microScore(yTrue, yPred []int) float64 {
	matches := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			matches++
		}
	}
	return ratio(matches, len(yTrue))
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
