package errors

import (
	"strings"
	"testing"
)

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("LinearSVC", "Predict")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var nfe *NotFittedError
	if !As(err, &nfe) {
		t.Fatalf("expected NotFittedError in chain, got %T", err)
	}
	if nfe.ModelName != "LinearSVC" || nfe.Method != "Predict" {
		t.Errorf("unexpected fields: %+v", nfe)
	}
	if !strings.Contains(err.Error(), "not fitted yet") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestDimensionError(t *testing.T) {
	err := NewDimensionError("TrainTestSplit", 10, 8, 0)

	var de *DimensionError
	if !As(err, &de) {
		t.Fatalf("expected DimensionError in chain, got %T", err)
	}
	if de.Expected != 10 || de.Got != 8 || de.Axis != 0 {
		t.Errorf("unexpected fields: %+v", de)
	}
	if !strings.Contains(err.Error(), "rows") {
		t.Errorf("axis 0 should report rows: %v", err)
	}

	err = NewDimensionError("LinearSVC.Predict", 2, 3, 1)
	if !strings.Contains(err.Error(), "features") {
		t.Errorf("axis 1 should report features: %v", err)
	}
}

func TestDataFormatError(t *testing.T) {
	err := NewDataFormatError("climate_data.json", "var", "field not found")

	var dfe *DataFormatError
	if !As(err, &dfe) {
		t.Fatalf("expected DataFormatError in chain, got %T", err)
	}
	if dfe.Path != "climate_data.json" || dfe.Field != "var" {
		t.Errorf("unexpected fields: %+v", dfe)
	}
	if !strings.Contains(err.Error(), `field "var"`) {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestModelErrorUnwrap(t *testing.T) {
	err := NewModelError("LinearSVC.Fit", "empty data", ErrEmptyData)
	if !Is(err, ErrEmptyData) {
		t.Errorf("expected ErrEmptyData in chain: %v", err)
	}
}

func TestWarnHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(nil)

	w := NewConvergenceWarning("LinearSVC", 1000, "")
	Warn(w)

	if captured == nil {
		t.Fatal("warning handler not invoked")
	}
	if !strings.Contains(captured.Error(), "failed to converge after 1000 iterations") {
		t.Errorf("unexpected warning: %v", captured)
	}
}

func TestRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "test.fn")
		panic("matrix dimension mismatch")
	}

	err := fn()
	if err == nil {
		t.Fatal("expected recovered error, got nil")
	}

	var pe *PanicError
	if !As(err, &pe) {
		t.Fatalf("expected PanicError in chain, got %T", err)
	}
	if pe.Operation != "test.fn" {
		t.Errorf("unexpected operation: %q", pe.Operation)
	}
	if pe.StackTrace == "" {
		t.Error("expected non-empty stack trace")
	}
}
