// Package svm implements a linear-kernel support-vector classifier with the
// estimator surface the rest of the pipeline programs against.
package svm

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/shuozhangthu/SIF-water/core/model"
	"github.com/shuozhangthu/SIF-water/core/parallel"
	"github.com/shuozhangthu/SIF-water/metrics"
	"github.com/shuozhangthu/SIF-water/pkg/errors"
)

// LinearSVC is a binary linear support-vector classifier trained by
// subgradient descent on the L2-regularized hinge loss. The decision
// boundary is w·x + b = 0; regularization strength follows the sklearn
// convention where smaller C means stronger regularization.
type LinearSVC struct {
	state *model.StateManager

	// Hyperparameters
	c            float64 // Inverse regularization strength
	maxIter      int     // Maximum solver iterations
	tol          float64 // Stopping tolerance on the gradient norm
	learningRate float64 // Base learning rate, decayed per iteration
	fitIntercept bool    // Whether to fit the bias term

	// Model parameters
	coef_      []float64 // One weight per feature
	intercept_ float64   // Bias term
	classes_   []int     // Unique class labels, sorted ascending
	nFeatures_ int       // Number of features seen during Fit
	nIter_     int       // Iterations actually run
}

// LinearSVCOption is a functional option for LinearSVC.
type LinearSVCOption func(*LinearSVC)

// NewLinearSVC creates a LinearSVC with sklearn-compatible defaults
// (C=1.0, linear kernel).
func NewLinearSVC(opts ...LinearSVCOption) *LinearSVC {
	m := &LinearSVC{
		state:        model.NewStateManager(),
		c:            1.0,
		maxIter:      1000,
		tol:          1e-4,
		learningRate: 0.5,
		fitIntercept: true,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// WithC sets the inverse regularization strength.
func WithC(c float64) LinearSVCOption {
	return func(m *LinearSVC) {
		m.c = c
	}
}

// WithMaxIter sets the maximum number of solver iterations.
func WithMaxIter(maxIter int) LinearSVCOption {
	return func(m *LinearSVC) {
		m.maxIter = maxIter
	}
}

// WithTol sets the stopping tolerance.
func WithTol(tol float64) LinearSVCOption {
	return func(m *LinearSVC) {
		m.tol = tol
	}
}

// WithLearningRate sets the base learning rate.
func WithLearningRate(lr float64) LinearSVCOption {
	return func(m *LinearSVC) {
		m.learningRate = lr
	}
}

// WithFitIntercept sets whether the bias term is fitted.
func WithFitIntercept(fit bool) LinearSVCOption {
	return func(m *LinearSVC) {
		m.fitIntercept = fit
	}
}

// Fit trains the classifier on X and the label column vector y.
//
// y must contain exactly two distinct classes; fewer is degenerate training
// data and more is not supported by this binary estimator. Empty input is
// rejected with ErrEmptyData.
func (m *LinearSVC) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "LinearSVC.Fit")

	if isEmpty(X) || isEmpty(y) {
		return errors.NewModelError("LinearSVC.Fit", "empty data", errors.ErrEmptyData)
	}

	nSamples, nFeatures := X.Dims()
	yRows, yCols := y.Dims()

	if nSamples == 0 || nFeatures == 0 {
		return errors.NewModelError("LinearSVC.Fit", "empty data", errors.ErrEmptyData)
	}
	if yRows != nSamples {
		return errors.NewDimensionError("LinearSVC.Fit", nSamples, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError("LinearSVC.Fit", "y must be a column vector")
	}

	m.extractClasses(y)
	if len(m.classes_) < 2 {
		return errors.NewValueError("LinearSVC.Fit", "training labels contain a single class; need two")
	}
	if len(m.classes_) > 2 {
		return errors.NewValueError("LinearSVC.Fit", "more than two classes in training labels; LinearSVC is binary")
	}

	m.nFeatures_ = nFeatures
	m.coef_ = make([]float64, nFeatures)
	m.intercept_ = 0

	// Map labels onto the -1/+1 signs the hinge loss works with.
	signs := make([]float64, nSamples)
	for i := 0; i < nSamples; i++ {
		if int(y.At(i, 0)) == m.classes_[1] {
			signs[i] = 1
		} else {
			signs[i] = -1
		}
	}

	lambda := 1.0 / m.c
	converged := false

	for iter := 0; iter < m.maxIter; iter++ {
		gradW := make([]float64, nFeatures)
		gradB := 0.0

		// Subgradient of the mean hinge loss: rows inside the margin
		// (y·f(x) < 1) contribute -y·x.
		for i := 0; i < nSamples; i++ {
			z := m.intercept_
			for j := 0; j < nFeatures; j++ {
				z += X.At(i, j) * m.coef_[j]
			}
			if signs[i]*z < 1 {
				gradB -= signs[i]
				for j := 0; j < nFeatures; j++ {
					gradW[j] -= signs[i] * X.At(i, j)
				}
			}
		}

		for j := range gradW {
			gradW[j] = gradW[j]/float64(nSamples) + lambda*m.coef_[j]
		}
		gradB /= float64(nSamples)

		learningRate := m.learningRate / (1.0 + 0.1*float64(iter))

		for j := range m.coef_ {
			m.coef_[j] -= learningRate * gradW[j]
		}
		if m.fitIntercept {
			m.intercept_ -= learningRate * gradB
		}

		m.nIter_ = iter + 1

		maxGrad := math.Abs(gradB)
		for _, g := range gradW {
			if math.Abs(g) > maxGrad {
				maxGrad = math.Abs(g)
			}
		}
		if maxGrad < m.tol {
			converged = true
			break
		}
	}

	if !converged {
		errors.Warn(errors.NewConvergenceWarning("LinearSVC", m.nIter_, ""))
	}

	m.state.SetDimensions(nFeatures, nSamples)
	m.state.SetFitted()
	return nil
}

// isEmpty reports whether X is nil, including the typed-nil matrices the
// splitter returns for an empty partition.
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

// extractClasses collects the unique labels of y in ascending order.
func (m *LinearSVC) extractClasses(y mat.Matrix) {
	rows, _ := y.Dims()
	classMap := make(map[int]bool)
	for i := 0; i < rows; i++ {
		classMap[int(y.At(i, 0))] = true
	}

	m.classes_ = make([]int, 0, len(classMap))
	for class := range classMap {
		m.classes_ = append(m.classes_, class)
	}
	sort.Ints(m.classes_)
}

// DecisionFunction returns the signed distance w·x + b for each row of X as
// an (n, 1) matrix. Positive values map to the larger class label.
func (m *LinearSVC) DecisionFunction(X mat.Matrix) (out mat.Matrix, err error) {
	defer errors.Recover(&err, "LinearSVC.DecisionFunction")

	if !m.state.IsFitted() {
		return nil, errors.NewNotFittedError("LinearSVC", "DecisionFunction")
	}
	if isEmpty(X) {
		return nil, errors.NewModelError("LinearSVC.DecisionFunction", "empty data", errors.ErrEmptyData)
	}

	nSamples, nFeatures := X.Dims()
	if nFeatures != m.nFeatures_ {
		return nil, errors.NewDimensionError("LinearSVC.DecisionFunction", m.nFeatures_, nFeatures, 1)
	}

	const parallelThreshold = 1000

	scores := mat.NewDense(nSamples, 1, nil)
	parallel.ParallelizeWithThreshold(nSamples, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			z := m.intercept_
			for j := 0; j < nFeatures; j++ {
				z += X.At(i, j) * m.coef_[j]
			}
			scores.Set(i, 0, z)
		}
	})

	return scores, nil
}

// Predict returns the predicted class label for each row of X as an (n, 1)
// matrix.
func (m *LinearSVC) Predict(X mat.Matrix) (mat.Matrix, error) {
	scores, err := m.DecisionFunction(X)
	if err != nil {
		return nil, err
	}

	nSamples, _ := scores.Dims()
	predictions := mat.NewDense(nSamples, 1, nil)
	for i := 0; i < nSamples; i++ {
		if scores.At(i, 0) >= 0 {
			predictions.Set(i, 0, float64(m.classes_[1]))
		} else {
			predictions.Set(i, 0, float64(m.classes_[0]))
		}
	}

	return predictions, nil
}

// Score returns the mean accuracy of the classifier on X against y.
func (m *LinearSVC) Score(X, y mat.Matrix) (float64, error) {
	if !m.state.IsFitted() {
		return 0, errors.NewNotFittedError("LinearSVC", "Score")
	}
	if isEmpty(X) || isEmpty(y) {
		return 0, errors.NewModelError("LinearSVC.Score", "empty data", errors.ErrEmptyData)
	}

	predictions, err := m.Predict(X)
	if err != nil {
		return 0, err
	}

	nSamples, _ := y.Dims()
	yTrue := mat.NewVecDense(nSamples, nil)
	yPred := mat.NewVecDense(nSamples, nil)
	for i := 0; i < nSamples; i++ {
		yTrue.SetVec(i, y.At(i, 0))
		yPred.SetVec(i, predictions.At(i, 0))
	}

	return metrics.AccuracyScore(yTrue, yPred)
}

// Coef returns the learned weight per feature.
func (m *LinearSVC) Coef() []float64 {
	if m.coef_ == nil {
		return nil
	}
	coef := make([]float64, len(m.coef_))
	copy(coef, m.coef_)
	return coef
}

// Intercept returns the learned bias term.
func (m *LinearSVC) Intercept() float64 {
	return m.intercept_
}

// Classes returns the unique classes seen during fitting.
func (m *LinearSVC) Classes() []int {
	classes := make([]int, len(m.classes_))
	copy(classes, m.classes_)
	return classes
}

// NIter returns the number of solver iterations actually run.
func (m *LinearSVC) NIter() int {
	return m.nIter_
}

// GetParams returns the model hyperparameters.
func (m *LinearSVC) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"C":             m.c,
		"kernel":        "linear",
		"max_iter":      m.maxIter,
		"tol":           m.tol,
		"learning_rate": m.learningRate,
		"fit_intercept": m.fitIntercept,
	}
}

// SetParams sets the model hyperparameters.
func (m *LinearSVC) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "C":
			m.c = value.(float64)
		case "kernel":
			if value.(string) != "linear" {
				return errors.NewValueError("LinearSVC.SetParams", "only the linear kernel is supported")
			}
		case "max_iter":
			m.maxIter = value.(int)
		case "tol":
			m.tol = value.(float64)
		case "learning_rate":
			m.learningRate = value.(float64)
		case "fit_intercept":
			m.fitIntercept = value.(bool)
		default:
			return errors.Newf("unknown parameter: %s", key)
		}
	}
	return nil
}
