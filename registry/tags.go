package registry

import (
	"sort"

	"github.com/kairoslib/kairos/core/estimator"
	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

// TagDef describes one recognized tag name.
type TagDef struct {
	// Name is the tag key, e.g. "capability:missing_values".
	Name string

	// Description explains what the tag asserts about an estimator.
	Description string

	// Kind is the expected value kind: "bool", "string", "int" or "float".
	Kind string

	// Categories lists the estimator categories the tag applies to; empty
	// means all.
	Categories []Category
}

var tagDefs = map[string]TagDef{
	"algorithm_type": {
		Name:        "algorithm_type",
		Description: "family of the underlying algorithm, e.g. \"smoothing\" or \"feature\"",
		Kind:        "string",
	},
	"capability:missing_values": {
		Name:        "capability:missing_values",
		Description: "estimator handles NaN values in the input",
		Kind:        "bool",
	},
	"capability:multithreading": {
		Name:        "capability:multithreading",
		Description: "estimator exploits multiple goroutines during fit or predict",
		Kind:        "bool",
	},
	"capability:multivariate": {
		Name:        "capability:multivariate",
		Description: "estimator accepts series with more than one channel",
		Kind:        "bool",
	},
	"capability:unequal_length": {
		Name:        "capability:unequal_length",
		Description: "estimator accepts ragged collections",
		Kind:        "bool",
	},
	"non_deterministic": {
		Name:        "non_deterministic",
		Description: "results may differ between runs with identical inputs and seeds",
		Kind:        "bool",
	},
	"cant_serialize": {
		Name:        "cant_serialize",
		Description: "estimator state cannot round-trip through Save/Load",
		Kind:        "bool",
	},
	"fit_is_empty": {
		Name:        "fit_is_empty",
		Description: "fit performs no computation beyond setting the fitted flag",
		Kind:        "bool",
		Categories:  []Category{CategoryTransformer},
	},
	"X_inner_type": {
		Name:        "X_inner_type",
		Description: "internal collection layout the estimator operates on",
		Kind:        "string",
	},
}

// AllTags returns the recognized tag definitions sorted by name.
func AllTags() []TagDef {
	out := make([]TagDef, 0, len(tagDefs))
	for _, def := range tagDefs {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupTagDef returns the definition of a recognized tag name.
func LookupTagDef(name string) (TagDef, bool) {
	def, ok := tagDefs[name]
	return def, ok
}

// ValidateTags checks that every tag name in t is recognized. Unknown names
// usually indicate a typo in an estimator's tag declaration.
func ValidateTags(t estimator.Tags) error {
	for name := range t {
		if _, ok := tagDefs[name]; !ok {
			return kerrors.NewValidationError("tags", "unrecognized tag name", name)
		}
	}
	return nil
}
