// Package estimator implements the estimator lifecycle shared by every
// model, transformer and composite in kairos: tag resolution, parameter
// introspection, fitted-state tracking, reset, cloning and serialization.
//
// Concrete estimators embed BaseEstimator and keep their hyper-parameters as
// ordinary struct fields. All state computed during Fit is written to the
// base's attribute store under the trailing-underscore naming convention
// (for example "coef_"), which is what makes generic reset, fitted-parameter
// aggregation and persistence possible without reflection.
package estimator

import (
	"encoding/gob"
	"strings"

	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

// reservedMarker is the substring reserving an attribute name for internal
// use. Attributes whose names contain it survive Reset and are excluded from
// component and fitted-parameter enumeration.
const reservedMarker = "__"

// fittedSuffix is the trailing marker distinguishing fitted attributes from
// everything else in the attribute store.
const fittedSuffix = "_"

func init() {
	// Attribute-store values are gob-encoded as interface values during
	// save/load, so the common concrete types must be registered.
	gob.Register(Params{})
	gob.Register(Tags{})
	gob.Register([]float64(nil))
	gob.Register([][]float64(nil))
	gob.Register([]int(nil))
	gob.Register([]string(nil))
	gob.Register(map[string]float64(nil))
}

// BaseEstimator holds the lifecycle state of an estimator. Fields are
// exported for gob encoding; user code interacts with them through methods.
type BaseEstimator struct {
	// Name is the concrete estimator type name, used in error messages and
	// persistence metadata.
	Name string

	// StaticTags are the class-level tag layers, ordered from the
	// least-specific (root defaults) to the most-specific (concrete type).
	StaticTags []Tags

	// DynamicTags are instance-level overrides applied on top of the merged
	// static tags. Nil until SetTags is first called.
	DynamicTags Tags

	// Attrs is the instance attribute store: fitted attributes (keys ending
	// in "_") and owned components (Estimator-valued entries).
	Attrs map[string]any

	// Fitted reports whether Fit has completed successfully.
	Fitted bool
}

// NewBase constructs the lifecycle state for a concrete estimator. The tag
// layers are stacked on top of DefaultTags, from least to most specific.
func NewBase(name string, layers ...Tags) BaseEstimator {
	static := make([]Tags, 0, len(layers)+1)
	static = append(static, DefaultTags)
	static = append(static, layers...)
	return BaseEstimator{
		Name:       name,
		StaticTags: static,
		Attrs:      make(map[string]any),
	}
}

// EstimatorName returns the concrete estimator type name.
func (b *BaseEstimator) EstimatorName() string {
	return b.Name
}

// IsFitted reports whether Fit has completed successfully.
func (b *BaseEstimator) IsFitted() bool {
	return b.Fitted
}

// SetFitted marks the estimator as fitted. Concrete estimators call this at
// the end of a successful Fit; a Fit that returns early with an error leaves
// the flag unset.
func (b *BaseEstimator) SetFitted() {
	b.Fitted = true
}

// CheckIsFitted returns a NotFittedError naming the concrete type if the
// estimator has not been fitted.
func (b *BaseEstimator) CheckIsFitted() error {
	if !b.Fitted {
		return kerrors.NewNotFittedError(b.Name, "this method")
	}
	return nil
}

// SetFittedAttr stores a fitted attribute. By convention the name carries a
// trailing underscore ("mean_"); the suffix is appended when missing.
func (b *BaseEstimator) SetFittedAttr(name string, value any) {
	if b.Attrs == nil {
		b.Attrs = make(map[string]any)
	}
	if !strings.HasSuffix(name, fittedSuffix) {
		name += fittedSuffix
	}
	b.Attrs[name] = value
}

// FittedAttr returns a fitted attribute by name. The trailing underscore may
// be omitted.
func (b *BaseEstimator) FittedAttr(name string) (any, bool) {
	if b.Attrs == nil {
		return nil, false
	}
	if !strings.HasSuffix(name, fittedSuffix) {
		name += fittedSuffix
	}
	v, ok := b.Attrs[name]
	return v, ok
}

// SetComponent stores an owned, state-bearing sub-estimator. Components are
// fitted attributes whose values are estimators; SetComponent exists to make
// call sites explicit about ownership.
func (b *BaseEstimator) SetComponent(name string, c Estimator) {
	b.SetFittedAttr(name, c)
}

// Components returns all owned sub-estimators keyed by attribute name.
//
// The returned values are references, not copies: mutating a component
// mutates the owning estimator's internal state. This aliasing is part of
// the contract. Blueprint estimators held as hyper-parameters are not
// included; reserved (double-underscore) attributes are skipped.
func (b *BaseEstimator) Components() map[string]Estimator {
	out := make(map[string]Estimator)
	for name, v := range b.Attrs {
		if strings.Contains(name, reservedMarker) {
			continue
		}
		if c, ok := v.(Estimator); ok {
			out[name] = c
		}
	}
	return out
}

// Reset returns the estimator to its post-construction state: all fitted
// attributes and owned components are dropped, the fitted flag is cleared
// and dynamic tag overrides are discarded. Hyper-parameters are struct
// fields and are preserved exactly. Attributes whose names contain the
// reserved double-underscore marker survive, as do any names listed in keep.
func (b *BaseEstimator) Reset(keep ...string) {
	keepSet := make(map[string]struct{}, len(keep))
	for _, k := range keep {
		keepSet[k] = struct{}{}
	}
	for name := range b.Attrs {
		if strings.Contains(name, reservedMarker) {
			continue
		}
		if _, ok := keepSet[name]; ok {
			continue
		}
		delete(b.Attrs, name)
	}
	b.Fitted = false
	b.DynamicTags = nil
}
