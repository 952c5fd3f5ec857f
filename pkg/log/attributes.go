package log

// Standard attribute keys for estimator operations. Using these keys keeps
// log records consistent across packages and easy to filter downstream.
const (
	// EstimatorKey identifies the estimator type emitting the record.
	EstimatorKey = "estimator"

	// OperationKey names the operation being performed.
	// Standard values: "fit", "predict", "transform", "save", "load".
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	ComponentKey = "ml.component"

	// CasesKey is the number of cases in the collection being processed.
	CasesKey = "data.n_cases"

	// ChannelsKey is the number of channels per series.
	ChannelsKey = "data.n_channels"

	// TimepointsKey is the number of timepoints in the first series.
	TimepointsKey = "data.n_timepoints"

	// DurationMSKey is the wall-clock duration of an operation in
	// milliseconds.
	DurationMSKey = "duration_ms"

	// PathKey is the filesystem path used by save/load operations.
	PathKey = "path"
)
