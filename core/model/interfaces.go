package model

import (
	"gonum.org/v1/gonum/mat"
)

// Fitter is the interface for models that can be trained.
type Fitter interface {
	// Fit trains the model on X and the label column vector y.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that can predict.
type Predictor interface {
	// Predict returns a column vector of predictions for X.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is the interface for models that can compute a score.
type Scorer interface {
	// Score returns the model's score on the given data; for classifiers
	// this is the mean accuracy.
	Score(X mat.Matrix, y mat.Matrix) (float64, error)
}

// Classifier combines the interfaces a classification estimator implements.
// The pipeline binary depends on this boundary, not on a concrete model, so
// the fitting backend stays swappable.
type Classifier interface {
	Fitter
	Predictor
	Scorer

	// Classes returns the unique classes seen during fitting.
	Classes() []int
}

// LinearModel is implemented by estimators with a linear decision function.
type LinearModel interface {
	// Coef returns the learned weight per feature.
	Coef() []float64
	// Intercept returns the learned bias term.
	Intercept() float64
}

// Transformer is the interface for feature transformations.
type Transformer interface {
	// Fit learns the transformation parameters from X.
	Fit(X mat.Matrix) error

	// Transform applies the learned transformation to X.
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform runs Fit and Transform in one step.
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

// ParameterGetter is the interface for models that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}

// ParameterSetter is the interface for models that allow parameter modification.
type ParameterSetter interface {
	// SetParams sets the model's hyperparameters.
	SetParams(params map[string]interface{}) error
}
