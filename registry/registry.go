// Package registry holds the process-wide enumeration of recognized tag
// names and the catalog of registered estimator types.
//
// Estimator packages register their types in init functions. Registration
// serves three purposes: construction by name (used by the CLI), gob type
// registration (required to decode interface-typed estimators during
// load), and declaration of test-parameter sets for generic contract tests.
package registry

import (
	"encoding/gob"
	"sort"
	"strconv"
	"sync"

	"github.com/kairoslib/kairos/core/estimator"
	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

// Category identifies the learning task an estimator addresses.
type Category string

const (
	CategoryTransformer Category = "transformer"
	CategoryRegressor   Category = "regressor"
	CategoryClassifier  Category = "classifier"
	CategoryClusterer   Category = "clusterer"
	CategoryComposite   Category = "composite"
)

// EstimatorEntry describes one registered estimator type.
type EstimatorEntry struct {
	// Name is the concrete type name, matching EstimatorName.
	Name string

	// Category is the learning task of the estimator.
	Category Category

	// New constructs an instance with default hyper-parameters.
	New func() estimator.Estimator

	// TestParams declares parameter sets for constructing test instances.
	// It must hold either an estimator.Params or a []estimator.Params; any
	// other shape is rejected at instance-creation time.
	TestParams any
}

var (
	mu         sync.RWMutex
	estimators = make(map[string]EstimatorEntry)
)

// RegisterEstimator adds an estimator type to the catalog and gob-registers
// its concrete type for persistence. Registering the same name twice is an
// error.
func RegisterEstimator(entry EstimatorEntry) error {
	if entry.Name == "" || entry.New == nil {
		return kerrors.NewValueError("registry.RegisterEstimator",
			"entry must have a name and a constructor")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := estimators[entry.Name]; dup {
		return kerrors.NewValueError("registry.RegisterEstimator",
			"estimator "+entry.Name+" is already registered")
	}
	estimators[entry.Name] = entry
	gob.Register(entry.New())
	return nil
}

// MustRegisterEstimator is RegisterEstimator for init functions; it panics
// on error.
func MustRegisterEstimator(entry EstimatorEntry) {
	if err := RegisterEstimator(entry); err != nil {
		panic(err)
	}
}

// NewEstimator constructs a registered estimator by name with default
// hyper-parameters.
func NewEstimator(name string) (estimator.Estimator, error) {
	mu.RLock()
	entry, ok := estimators[name]
	mu.RUnlock()
	if !ok {
		return nil, kerrors.NewValueError("registry.NewEstimator",
			"no estimator registered with name "+name)
	}
	return entry.New(), nil
}

// EstimatorNames returns the sorted names of all registered estimators,
// optionally filtered by category.
func EstimatorNames(categories ...Category) []string {
	mu.RLock()
	defer mu.RUnlock()

	wanted := make(map[Category]struct{}, len(categories))
	for _, c := range categories {
		wanted[c] = struct{}{}
	}

	names := make([]string, 0, len(estimators))
	for name, entry := range estimators {
		if len(wanted) > 0 {
			if _, ok := wanted[entry.Category]; !ok {
				continue
			}
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// testParamSets normalizes an entry's TestParams declaration to a list of
// parameter sets. A nil declaration yields one default (empty) set.
func testParamSets(entry EstimatorEntry) ([]estimator.Params, error) {
	switch tp := entry.TestParams.(type) {
	case nil:
		return []estimator.Params{{}}, nil
	case estimator.Params:
		return []estimator.Params{tp}, nil
	case []estimator.Params:
		if len(tp) == 0 {
			return []estimator.Params{{}}, nil
		}
		return tp, nil
	default:
		return nil, kerrors.Newf(
			"error in %s test parameters: declaration must be a parameter mapping or a list thereof",
			entry.Name)
	}
}

// CreateTestInstance constructs one instance of the named estimator using
// its first declared test-parameter set.
func CreateTestInstance(name string) (estimator.Estimator, error) {
	instances, _, err := CreateTestInstancesAndNames(name)
	if err != nil {
		return nil, err
	}
	return instances[0], nil
}

// CreateTestInstancesAndNames constructs one instance per declared
// test-parameter set, plus a name for each: "Type-i" when there is more
// than one set, the plain type name otherwise.
func CreateTestInstancesAndNames(name string) ([]estimator.Estimator, []string, error) {
	mu.RLock()
	entry, ok := estimators[name]
	mu.RUnlock()
	if !ok {
		return nil, nil, kerrors.NewValueError("registry.CreateTestInstancesAndNames",
			"no estimator registered with name "+name)
	}

	sets, err := testParamSets(entry)
	if err != nil {
		return nil, nil, err
	}

	instances := make([]estimator.Estimator, 0, len(sets))
	names := make([]string, 0, len(sets))
	for i, params := range sets {
		inst := entry.New()
		if len(params) > 0 {
			if err := inst.SetParams(params); err != nil {
				return nil, nil, kerrors.Wrapf(err, "error in %s test parameters, set %d", name, i)
			}
		}
		instances = append(instances, inst)
		if len(sets) > 1 {
			names = append(names, entry.Name+"-"+strconv.Itoa(i))
		} else {
			names = append(names, entry.Name)
		}
	}
	return instances, names, nil
}
