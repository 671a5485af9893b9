// Package metrics provides classification scoring for the climate pipeline.
package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/shuozhangthu/SIF-water/pkg/errors"
)

// AccuracyScore computes the fraction of predictions matching the true
// labels.
func AccuracyScore(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("AccuracyScore", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("AccuracyScore", n, yPred.Len(), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}

	return float64(correct) / float64(n), nil
}

// ZeroOneLoss is the fraction of misclassified samples, 1 - accuracy.
func ZeroOneLoss(yTrue, yPred *mat.VecDense) (float64, error) {
	acc, err := AccuracyScore(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return 1 - acc, nil
}

// ConfusionCounts tallies binary classification outcomes with positive as
// the positive class label.
func ConfusionCounts(yTrue, yPred *mat.VecDense, positive float64) (tp, tn, fp, fn int, err error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, 0, 0, 0, errors.NewValueError("ConfusionCounts", "empty vector")
	}
	if yPred.Len() != n {
		return 0, 0, 0, 0, errors.NewDimensionError("ConfusionCounts", n, yPred.Len(), 0)
	}

	for i := 0; i < n; i++ {
		truePos := yTrue.AtVec(i) == positive
		predPos := yPred.AtVec(i) == positive
		switch {
		case truePos && predPos:
			tp++
		case !truePos && !predPos:
			tn++
		case !truePos && predPos:
			fp++
		default:
			fn++
		}
	}
	return tp, tn, fp, fn, nil
}
