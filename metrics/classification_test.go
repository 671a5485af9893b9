package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestAccuracyScore(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{
			name:  "perfect predictions",
			yTrue: []float64{0, 1, 0, 1},
			yPred: []float64{0, 1, 0, 1},
			want:  1.0,
		},
		{
			name:  "all wrong",
			yTrue: []float64{0, 0, 1, 1},
			yPred: []float64{1, 1, 0, 0},
			want:  0.0,
		},
		{
			name:  "three of four",
			yTrue: []float64{0, 1, 1, 1},
			yPred: []float64{0, 1, 1, 0},
			want:  0.75,
		},
		{
			name:  "non-binary labels",
			yTrue: []float64{100, 150, 200},
			yPred: []float64{100, 200, 200},
			want:  2.0 / 3.0,
		},
		{
			name:    "empty input",
			yTrue:   []float64{},
			yPred:   []float64{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var yTrue, yPred *mat.VecDense
			if len(tt.yTrue) > 0 {
				yTrue = mat.NewVecDense(len(tt.yTrue), tt.yTrue)
				yPred = mat.NewVecDense(len(tt.yPred), tt.yPred)
			} else {
				yTrue = &mat.VecDense{}
				yPred = &mat.VecDense{}
			}

			got, err := AccuracyScore(yTrue, yPred)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("AccuracyScore failed: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("accuracy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccuracyScore_LengthMismatch(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{0, 1, 0})
	yPred := mat.NewVecDense(2, []float64{0, 1})

	if _, err := AccuracyScore(yTrue, yPred); err == nil {
		t.Fatal("expected dimension error, got nil")
	}
}

func TestZeroOneLoss(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{0, 1, 1, 1})
	yPred := mat.NewVecDense(4, []float64{0, 1, 1, 0})

	loss, err := ZeroOneLoss(yTrue, yPred)
	if err != nil {
		t.Fatalf("ZeroOneLoss failed: %v", err)
	}
	if math.Abs(loss-0.25) > 1e-12 {
		t.Errorf("loss = %v, want 0.25", loss)
	}
}

func TestConfusionCounts(t *testing.T) {
	yTrue := mat.NewVecDense(6, []float64{1, 1, 1, 0, 0, 0})
	yPred := mat.NewVecDense(6, []float64{1, 1, 0, 0, 1, 0})

	tp, tn, fp, fn, err := ConfusionCounts(yTrue, yPred, 1)
	if err != nil {
		t.Fatalf("ConfusionCounts failed: %v", err)
	}
	if tp != 2 || tn != 2 || fp != 1 || fn != 1 {
		t.Errorf("got tp=%d tn=%d fp=%d fn=%d, want 2/2/1/1", tp, tn, fp, fn)
	}
}
