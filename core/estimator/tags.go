package estimator

import (
	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

// Tags is a mapping from tag names to values. Tags describe estimator
// capabilities and metadata; they are distinct from hyper-parameters and are
// never learned from data.
type Tags map[string]any

// Clone returns a shallow copy of the tag mapping. Tag values are expected
// to be immutable scalars or small slices owned by the caller.
func (t Tags) Clone() Tags {
	out := make(Tags, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// DefaultTags is the root tag layer shared by every estimator. Category
// and concrete tag layers are stacked on top at construction time.
var DefaultTags = Tags{
	"algorithm_type":            "",
	"capability:missing_values": false,
	"capability:multithreading": false,
	"capability:multivariate":   false,
	"capability:unequal_length": false,
	"non_deterministic":         false,
	"cant_serialize":            false,
	"fit_is_empty":              false,
}

// GetClassTags returns the merged static tags of the estimator: tag layers
// are applied from the least-specific (root defaults) to the most-specific
// (concrete type), later layers overriding earlier ones. Dynamic overrides
// set with SetTags are not included. The returned mapping is a copy.
func (b *BaseEstimator) GetClassTags() Tags {
	merged := make(Tags)
	for _, layer := range b.StaticTags {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}

// GetClassTag returns the value of one static tag, or def if the tag is not
// present in the merged static tags.
func (b *BaseEstimator) GetClassTag(name string, def any) any {
	tags := b.GetClassTags()
	if v, ok := tags[name]; ok {
		return v
	}
	return def
}

// LookupClassTag returns the value of one static tag, or a TagError naming
// the missing key.
func (b *BaseEstimator) LookupClassTag(name string) (any, error) {
	tags := b.GetClassTags()
	v, ok := tags[name]
	if !ok {
		return nil, kerrors.NewTagError(b.Name, name)
	}
	return v, nil
}

// GetTags returns the merged tags of the instance: static tags overlaid with
// the dynamic overrides set via SetTags. The returned mapping is a copy.
func (b *BaseEstimator) GetTags() Tags {
	merged := b.GetClassTags()
	for k, v := range b.DynamicTags {
		merged[k] = v
	}
	return merged
}

// GetTag returns the value of one tag including dynamic overrides, or def if
// the tag is not present.
func (b *BaseEstimator) GetTag(name string, def any) any {
	tags := b.GetTags()
	if v, ok := tags[name]; ok {
		return v
	}
	return def
}

// LookupTag returns the value of one tag including dynamic overrides, or a
// TagError naming the missing key.
func (b *BaseEstimator) LookupTag(name string) (any, error) {
	tags := b.GetTags()
	v, ok := tags[name]
	if !ok {
		return nil, kerrors.NewTagError(b.Name, name)
	}
	return v, nil
}

// SetTags merges the given overrides into the instance's dynamic tag store,
// creating it if absent. Static tags are not modified. Returns the base to
// allow chaining.
func (b *BaseEstimator) SetTags(overrides Tags) *BaseEstimator {
	if b.DynamicTags == nil {
		b.DynamicTags = make(Tags, len(overrides))
	}
	for k, v := range overrides {
		b.DynamicTags[k] = v
	}
	return b
}
