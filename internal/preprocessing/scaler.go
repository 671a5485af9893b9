package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/shuozhangthu/SIF-water/core/model"
	"github.com/shuozhangthu/SIF-water/pkg/errors"
)

// StandardScaler standardizes features to zero mean and unit variance.
// Statistics are learned from the training partition only and applied to
// both partitions.
type StandardScaler struct {
	state *model.StateManager

	// Mean holds the per-feature mean learned by Fit.
	Mean []float64

	// Scale holds the per-feature standard deviation learned by Fit.
	Scale []float64

	// NFeatures is the number of feature columns seen by Fit.
	NFeatures int
}

// NewStandardScaler creates a StandardScaler.
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{
		state: model.NewStateManager(),
	}
}

// Fit learns the per-feature mean and standard deviation from X.
func (s *StandardScaler) Fit(X mat.Matrix) error {
	if isEmpty(X) {
		return errors.NewModelError("StandardScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("StandardScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	s.NFeatures = c
	s.Mean = make([]float64, c)
	s.Scale = make([]float64, c)

	for j := 0; j < c; j++ {
		sum := 0.0
		for i := 0; i < r; i++ {
			sum += X.At(i, j)
		}
		s.Mean[j] = sum / float64(r)
	}

	for j := 0; j < c; j++ {
		sumSquares := 0.0
		for i := 0; i < r; i++ {
			diff := X.At(i, j) - s.Mean[j]
			sumSquares += diff * diff
		}
		s.Scale[j] = math.Sqrt(sumSquares / float64(r))

		// A constant column would divide by zero; leave it unscaled.
		if s.Scale[j] < 1e-8 {
			s.Scale[j] = 1.0
		}
	}

	s.state.SetDimensions(c, r)
	s.state.SetFitted()
	return nil
}

// Transform standardizes X with the learned statistics.
func (s *StandardScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !s.state.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "Transform")
	}
	if isEmpty(X) {
		return nil, errors.NewModelError("StandardScaler.Transform", "empty data", errors.ErrEmptyData)
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.Transform", s.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			result.Set(i, j, (X.At(i, j)-s.Mean[j])/s.Scale[j])
		}
	}
	return result, nil
}

// FitTransform learns the statistics from X and standardizes it.
func (s *StandardScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// InverseTransform maps standardized data back to the original scale.
func (s *StandardScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if !s.state.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "InverseTransform")
	}
	if isEmpty(X) {
		return nil, errors.NewModelError("StandardScaler.InverseTransform", "empty data", errors.ErrEmptyData)
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.InverseTransform", s.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			result.Set(i, j, X.At(i, j)*s.Scale[j]+s.Mean[j])
		}
	}
	return result, nil
}
