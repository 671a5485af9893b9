// Package sifwater implements a small climate classification pipeline built
// around precipitation and temperature observations and a derived
// phenological label (DOY_SIF_PAR).
//
// The pipeline is strictly sequential: a JSON climate dataset is loaded into
// gonum matrices, partitioned into train/test splits at a fixed boundary
// without shuffling, fitted with a linear support-vector classifier, and the
// learned coefficients together with the held-out accuracy are reported on
// standard output.
//
// # Layout
//
//   - cmd/sifwater: the pipeline binary
//   - internal/dataset: climate data loading
//   - internal/preprocessing: train/test splitting and standardization
//   - svm: the LinearSVC estimator
//   - metrics: classification scoring
//   - core/model, pkg/errors, pkg/log: shared estimator plumbing
//
// # Quick start
//
//	features, labels, err := dataset.LoadClimateData("./climate_data.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	XTrain, XTest, yTrain, yTest, err := preprocessing.TrainTestSplit(features, labels, 0.2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	clf := svm.NewLinearSVC(svm.WithC(1.0))
//	if err := clf.Fit(XTrain, yTrain); err != nil {
//	    log.Fatal(err)
//	}
//	acc, err := clf.Score(XTest, yTest)
package sifwater
