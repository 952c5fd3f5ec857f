package estimator

// Params holds hyper-parameters keyed by name. Reconstructing an estimator
// from its introspected parameters yields an equivalent unfitted object.
type Params map[string]any

// Clone returns a shallow copy of the parameter mapping.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Estimator is the contract every kairos estimator satisfies. The lifecycle
// methods are provided by the embedded BaseEstimator; GetParams and
// SetParams are implemented by each concrete type over its own fields.
type Estimator interface {
	// EstimatorName returns the concrete type name.
	EstimatorName() string

	// GetParams returns the constructor hyper-parameters. Reconstructing via
	// SetParams on a fresh instance yields an equivalent unfitted estimator.
	GetParams() Params

	// SetParams reconfigures the hyper-parameters from a parameter mapping.
	SetParams(Params) error

	// Lifecycle state, provided by BaseEstimator.
	IsFitted() bool
	CheckIsFitted() error
	Reset(keep ...string)
	GetFittedParams(deep bool) (Params, error)
	Components() map[string]Estimator

	// Tag resolution, provided by BaseEstimator.
	GetClassTags() Tags
	GetClassTag(name string, def any) any
	LookupClassTag(name string) (any, error)
	GetTags() Tags
	GetTag(name string, def any) any
	LookupTag(name string) (any, error)
	SetTags(Tags) *BaseEstimator
}

// FittedReporter is implemented by external model objects that expose fitted
// parameters under the trailing-underscore convention without being kairos
// estimators themselves (wrappers around third-party model libraries, for
// example). GetFittedParams flattens such values when it finds them among
// already collected fitted parameters.
type FittedReporter interface {
	FittedParams() Params
}

// IsComposite reports whether any top-level hyper-parameter value of e is
// itself an estimator.
func IsComposite(e Estimator) bool {
	for _, v := range e.GetParams() {
		if _, ok := v.(Estimator); ok {
			return true
		}
	}
	return false
}

// ComponentsAs returns the owned components of e that satisfy type T,
// keyed by attribute name. Like Components, the values are live references.
func ComponentsAs[T any](e Estimator) map[string]T {
	out := make(map[string]T)
	for name, c := range e.Components() {
		if t, ok := c.(T); ok {
			out[name] = t
		}
	}
	return out
}
