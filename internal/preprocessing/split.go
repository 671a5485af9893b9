// Package preprocessing provides the train/test splitter and feature
// standardization for the climate pipeline.
package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/shuozhangthu/SIF-water/pkg/errors"
)

// TrainTestSplit partitions X and y into a contiguous train prefix and test
// suffix at splitIdx = floor(n * (1 - testSize)).
//
// The split is deterministic and order-preserving: no shuffling, no
// stratification. If the underlying data is ordered (e.g. by time) the
// caller is responsible for shuffling beforehand. An empty partition is
// returned as nil without error; fitting or scoring on it fails downstream.
func TrainTestSplit(X mat.Matrix, y *mat.VecDense, testSize float64) (XTrain, XTest *mat.Dense, yTrain, yTest *mat.VecDense, err error) {
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, nil, nil, errors.NewValueError("TrainTestSplit", "testSize must be in (0, 1)")
	}

	n, c := X.Dims()
	if y.Len() != n {
		return nil, nil, nil, nil, errors.NewDimensionError("TrainTestSplit", n, y.Len(), 0)
	}

	splitIdx := int(math.Floor(float64(n) * (1 - testSize)))

	XTrain, yTrain = copyRows(X, y, 0, splitIdx, c)
	XTest, yTest = copyRows(X, y, splitIdx, n, c)
	return XTrain, XTest, yTrain, yTest, nil
}

// isEmpty reports whether X is nil, including the typed-nil matrices an
// empty partition is returned as.
func isEmpty(X mat.Matrix) bool {
	if X == nil {
		return true
	}
	switch v := X.(type) {
	case *mat.Dense:
		return v == nil
	case *mat.VecDense:
		return v == nil
	}
	return false
}

// copyRows copies rows [from, to) of X and y into fresh matrices, keeping
// feature/label row alignment. An empty range yields nil.
func copyRows(X mat.Matrix, y *mat.VecDense, from, to, c int) (*mat.Dense, *mat.VecDense) {
	if to <= from {
		return nil, nil
	}

	rows := mat.NewDense(to-from, c, nil)
	labels := mat.NewVecDense(to-from, nil)
	for i := from; i < to; i++ {
		for j := 0; j < c; j++ {
			rows.Set(i-from, j, X.At(i, j))
		}
		labels.SetVec(i-from, y.AtVec(i))
	}
	return rows, labels
}
