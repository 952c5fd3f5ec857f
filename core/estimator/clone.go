package estimator

import (
	"math/rand"
	"sort"
)

// RandomStateParam is the conventional hyper-parameter name for a random
// seed. CloneWithRandomState rewrites this parameter on every nested
// estimator that declares it.
const RandomStateParam = "random_state"

// Clone produces an independent unfitted copy of e with identical
// hyper-parameters. The copy shares no mutable state with the original: it
// is produced by a serialization round-trip followed by Reset, so the result
// is equal in value to a freshly constructed instance with the same
// parameters.
func Clone(e Estimator) (Estimator, error) {
	c, err := roundTrip(e)
	if err != nil {
		return nil, err
	}
	c.Reset()
	return c, nil
}

// CloneWithRandomState clones e and deterministically derives seed values
// for e and every nested randomizable sub-estimator, walking the parameter
// tree in sorted key order so repeated calls with the same seed produce the
// same assignment.
func CloneWithRandomState(e Estimator, seed int64) (Estimator, error) {
	c, err := Clone(e)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	if err := setRandomStates(c, rng); err != nil {
		return nil, err
	}
	return c, nil
}

func setRandomStates(e Estimator, rng *rand.Rand) error {
	params := e.GetParams()
	if _, ok := params[RandomStateParam]; ok {
		params[RandomStateParam] = rng.Int63()
		if err := e.SetParams(params); err != nil {
			return err
		}
		params = e.GetParams()
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if sub, ok := params[name].(Estimator); ok {
			if err := setRandomStates(sub, rng); err != nil {
				return err
			}
		}
	}
	return nil
}
