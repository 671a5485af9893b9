// Standard attribute keys for pipeline logging. Using these keys keeps the
// stage logs (load, split, fit, score) filterable by shape and model fields.

package log

const (
	// ModelNameKey identifies the estimator type, e.g. "LinearSVC".
	ModelNameKey = "model.name"

	// OperationKey identifies the pipeline stage: "load", "split", "fit",
	// "score", "plot".
	OperationKey = "operation"

	// DataPathKey is the source file of the dataset.
	DataPathKey = "data.path"

	// SamplesKey is the number of rows in a matrix.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of feature columns.
	FeaturesKey = "data.features"

	// TrainSamplesKey and TestSamplesKey are the partition sizes after the
	// train/test split.
	TrainSamplesKey = "data.train_samples"
	TestSamplesKey  = "data.test_samples"

	// TestSizeKey is the fractional size of the held-out partition.
	TestSizeKey = "split.test_size"

	// AccuracyKey is the held-out classification accuracy.
	AccuracyKey = "metric.accuracy"

	// IterationsKey is the number of solver iterations actually run.
	IterationsKey = "model.iterations"
)
