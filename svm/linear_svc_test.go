package svm

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/shuozhangthu/SIF-water/pkg/errors"
)

// Two well-separated clusters: class 0 around (1, 1), class 1 around (3, 3).
func separableData() (*mat.Dense, *mat.Dense) {
	X := mat.NewDense(6, 2, []float64{
		0.5, 0.5,
		1.0, 1.5,
		1.5, 1.0,
		3.0, 2.5,
		2.5, 3.0,
		3.5, 3.5,
	})
	y := mat.NewDense(6, 1, []float64{0, 0, 0, 1, 1, 1})
	return X, y
}

func TestLinearSVC_FitPredict(t *testing.T) {
	X, y := separableData()

	clf := NewLinearSVC()
	if err := clf.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	predictions, err := clf.Predict(X)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	for i := 0; i < 6; i++ {
		if got, want := predictions.At(i, 0), y.At(i, 0); got != want {
			t.Errorf("sample %d: predicted %v, want %v", i, got, want)
		}
	}

	XTest := mat.NewDense(2, 2, []float64{
		1.0, 1.0, // deep inside class 0
		3.0, 3.0, // deep inside class 1
	})
	testPreds, err := clf.Predict(XTest)
	if err != nil {
		t.Fatalf("Predict on test data failed: %v", err)
	}
	if testPreds.At(0, 0) != 0 {
		t.Errorf("point (1,1) should be class 0, got %v", testPreds.At(0, 0))
	}
	if testPreds.At(1, 0) != 1 {
		t.Errorf("point (3,3) should be class 1, got %v", testPreds.At(1, 0))
	}
}

func TestLinearSVC_CoefAndIntercept(t *testing.T) {
	X, y := separableData()

	clf := NewLinearSVC()
	if err := clf.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	coef := clf.Coef()
	if len(coef) != 2 {
		t.Fatalf("expected 2 coefficients, got %d", len(coef))
	}
	// The boundary separates low (class 0) from high (class 1) values, so
	// both weights should point toward the positive class.
	if coef[0] <= 0 || coef[1] <= 0 {
		t.Errorf("expected positive coefficients for increasing features, got %v", coef)
	}

	// The midpoint of the clusters lies near the boundary, so the decision
	// values should straddle zero between (1,1) and (3,3).
	scores, err := clf.DecisionFunction(mat.NewDense(2, 2, []float64{1, 1, 3, 3}))
	if err != nil {
		t.Fatalf("DecisionFunction failed: %v", err)
	}
	if scores.At(0, 0) >= 0 {
		t.Errorf("decision value at (1,1) should be negative, got %v", scores.At(0, 0))
	}
	if scores.At(1, 0) <= 0 {
		t.Errorf("decision value at (3,3) should be positive, got %v", scores.At(1, 0))
	}

	// Coef must return a copy, not the internal slice.
	coef[0] = 1234
	if clf.Coef()[0] == 1234 {
		t.Error("Coef returned the internal slice")
	}
}

func TestLinearSVC_Score(t *testing.T) {
	X, y := separableData()

	clf := NewLinearSVC()
	if err := clf.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	acc, err := clf.Score(X, y)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if math.Abs(acc-1.0) > 1e-12 {
		t.Errorf("accuracy on separable training data = %v, want 1.0", acc)
	}
}

func TestLinearSVC_Deterministic(t *testing.T) {
	X, y := separableData()

	a := NewLinearSVC()
	b := NewLinearSVC()
	if err := a.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if err := b.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	ca, cb := a.Coef(), b.Coef()
	for j := range ca {
		if ca[j] != cb[j] {
			t.Errorf("coefficient %d differs between identical fits: %v vs %v", j, ca[j], cb[j])
		}
	}
	if a.Intercept() != b.Intercept() {
		t.Errorf("intercepts differ between identical fits: %v vs %v", a.Intercept(), b.Intercept())
	}
}

func TestLinearSVC_SingleClass(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{1, 1, 2, 2, 3, 3})
	y := mat.NewDense(3, 1, []float64{1, 1, 1})

	clf := NewLinearSVC()
	err := clf.Fit(X, y)
	if err == nil {
		t.Fatal("expected degenerate-class error, got nil")
	}

	var ve *errors.ValueError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValueError, got %T: %v", err, err)
	}
}

func TestLinearSVC_MoreThanTwoClasses(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{1, 1, 2, 2, 3, 3})
	y := mat.NewDense(3, 1, []float64{0, 1, 2})

	clf := NewLinearSVC()
	if err := clf.Fit(X, y); err == nil {
		t.Fatal("expected error for three classes, got nil")
	}
}

func TestLinearSVC_EmptyData(t *testing.T) {
	clf := NewLinearSVC()

	err := clf.Fit(nil, nil)
	if err == nil {
		t.Fatal("expected error for nil input, got nil")
	}
	if !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("expected ErrEmptyData in chain, got: %v", err)
	}

	// An empty train partition from the splitter arrives as typed nils.
	var X *mat.Dense
	var y *mat.VecDense
	err = clf.Fit(X, y)
	if !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("expected ErrEmptyData for typed-nil input, got: %v", err)
	}
}

func TestLinearSVC_NotFitted(t *testing.T) {
	clf := NewLinearSVC()
	X := mat.NewDense(1, 2, []float64{1, 2})

	if _, err := clf.Predict(X); err == nil {
		t.Fatal("expected not-fitted error from Predict, got nil")
	}
	if _, err := clf.Score(X, mat.NewDense(1, 1, []float64{0})); err == nil {
		t.Fatal("expected not-fitted error from Score, got nil")
	}
}

func TestLinearSVC_DimensionMismatch(t *testing.T) {
	X, y := separableData()

	clf := NewLinearSVC()
	if err := clf.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	// Three feature columns against a model fitted on two.
	bad := mat.NewDense(1, 3, []float64{1, 2, 3})
	_, err := clf.Predict(bad)
	if err == nil {
		t.Fatal("expected dimension error, got nil")
	}
	var de *errors.DimensionError
	if !errors.As(err, &de) {
		t.Errorf("expected DimensionError, got %T: %v", err, err)
	}
}

func TestLinearSVC_ClassesSorted(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{1, 1, 2, 2, 8, 8, 9, 9})
	y := mat.NewDense(4, 1, []float64{200, 200, 100, 100})

	clf := NewLinearSVC()
	if err := clf.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	classes := clf.Classes()
	if len(classes) != 2 || classes[0] != 100 || classes[1] != 200 {
		t.Errorf("expected sorted classes [100 200], got %v", classes)
	}
}

func TestLinearSVC_GetSetParams(t *testing.T) {
	clf := NewLinearSVC(WithC(10), WithMaxIter(50))

	params := clf.GetParams()
	if params["C"].(float64) != 10 {
		t.Errorf("expected C=10, got %v", params["C"])
	}
	if params["kernel"].(string) != "linear" {
		t.Errorf("expected linear kernel, got %v", params["kernel"])
	}

	if err := clf.SetParams(map[string]interface{}{"C": 2.0, "max_iter": 100}); err != nil {
		t.Fatalf("SetParams failed: %v", err)
	}
	if clf.GetParams()["C"].(float64) != 2.0 {
		t.Error("SetParams did not update C")
	}

	if err := clf.SetParams(map[string]interface{}{"kernel": "rbf"}); err == nil {
		t.Error("expected error for non-linear kernel")
	}
	if err := clf.SetParams(map[string]interface{}{"bogus": 1}); err == nil {
		t.Error("expected error for unknown parameter")
	}
}
