package estimator

import (
	"strings"

	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

// maxFlattenRounds bounds the fixed-point flattening of nested fitted
// reporters. Nesting deeper than this is almost certainly a cycle.
const maxFlattenRounds = 16

// stripTrailing removes all trailing underscores from an attribute name,
// turning "coef_" into the fitted-parameter key "coef".
func stripTrailing(name string) string {
	return strings.TrimRight(name, fittedSuffix)
}

// GetFittedParams returns the parameters computed during Fit, keyed by
// attribute name with the trailing underscore stripped. It fails with a
// NotFittedError if the estimator is unfitted.
//
// With deep=true the result additionally contains the fitted parameters of
// every fitted owned component, namespaced as "componentname__paramname",
// recursively to arbitrary depth. Fitted-parameter values that implement
// FittedReporter (external model objects) are flattened the same way,
// iterated until no new keys appear, with an explicit round cap.
func (b *BaseEstimator) GetFittedParams(deep bool) (Params, error) {
	if !b.Fitted {
		return nil, kerrors.NewNotFittedError(b.Name, "GetFittedParams")
	}

	fitted := b.ownFittedParams()
	if !deep {
		return fitted, nil
	}

	for name, comp := range b.Components() {
		if !comp.IsFitted() {
			continue
		}
		sub, err := comp.GetFittedParams(true)
		if err != nil {
			return nil, err
		}
		prefix := stripTrailing(name) + reservedMarker
		for k, v := range sub {
			fitted[prefix+k] = v
		}
	}

	// Flatten nested external reporters found among collected values.
	frontier := fitted
	for round := 0; round < maxFlattenRounds; round++ {
		discovered := make(Params)
		for key, v := range frontier {
			reporter, ok := v.(FittedReporter)
			if !ok {
				continue
			}
			prefix := stripTrailing(key) + reservedMarker
			for k, sub := range reporter.FittedParams() {
				nested := prefix + stripTrailing(k)
				if _, seen := fitted[nested]; !seen {
					discovered[nested] = sub
				}
			}
		}
		if len(discovered) == 0 {
			break
		}
		for k, v := range discovered {
			fitted[k] = v
		}
		frontier = discovered
	}

	return fitted, nil
}

// ownFittedParams collects this estimator's own fitted attributes: every
// store entry whose name ends with the trailing marker, does not start with
// an underscore, and is not reserved.
func (b *BaseEstimator) ownFittedParams() Params {
	out := make(Params)
	for name, v := range b.Attrs {
		if !strings.HasSuffix(name, fittedSuffix) {
			continue
		}
		if strings.HasPrefix(name, fittedSuffix) {
			continue
		}
		if strings.Contains(name, reservedMarker) {
			continue
		}
		out[stripTrailing(name)] = v
	}
	return out
}
