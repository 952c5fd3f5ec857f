package smoothing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairoslib/kairos/series"

	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

// sineWave builds a smooth low-frequency signal with an added
// high-frequency component.
func sineWave(n int) []float64 {
	vals := make([]float64, n)
	for t := 0; t < n; t++ {
		vals[t] = math.Sin(2*math.Pi*float64(t)/float64(n)) +
			0.2*math.Sin(2*math.Pi*float64(t)*10/float64(n))
	}
	return vals
}

func TestDFATransform(t *testing.T) {
	t.Run("FullRatioIsIdentity", func(t *testing.T) {
		X := series.Collection{series.NewUnivariate(sineWave(32))}
		d := NewDiscreteFourierApproximation(1.0, false)

		Xt, err := d.FitTransform(X)
		require.NoError(t, err)

		for j := 0; j < 32; j++ {
			assert.InDelta(t, X[0].At(0, j), Xt[0].At(0, j), 1e-9)
		}
	})

	t.Run("ConstantSeriesInvariant", func(t *testing.T) {
		X := series.NewCollectionFrom2D([][]float64{{3, 3, 3, 3, 3, 3, 3, 3}})

		for _, sorted := range []bool{false, true} {
			d := NewDiscreteFourierApproximation(0.25, sorted)
			Xt, err := d.FitTransform(X)
			require.NoError(t, err)
			for j := 0; j < 8; j++ {
				assert.InDelta(t, 3.0, Xt[0].At(0, j), 1e-9, "sort=%v", sorted)
			}
		}
	})

	t.Run("LowRatioRemovesHighFrequency", func(t *testing.T) {
		raw := sineWave(64)
		X := series.Collection{series.NewUnivariate(raw)}
		d := NewDiscreteFourierApproximation(0.1, false)

		Xt, err := d.FitTransform(X)
		require.NoError(t, err)

		// keep = int(0.1*64) = 6 two-sided terms, so only the bin-1
		// component survives, without its conjugate: the low-frequency
		// sine comes back at half amplitude and the bin-10 component is
		// gone.
		for t2 := 0; t2 < 64; t2++ {
			want := 0.5 * math.Sin(2*math.Pi*float64(t2)/64)
			assert.InDelta(t, want, Xt[0].At(0, t2), 1e-9, "t=%d", t2)
		}
	})

	t.Run("UnmirroredTermHalvesAmplitude", func(t *testing.T) {
		// A frequency-30 cosine over 100 points has conjugate bins 30 and
		// 70. r=0.5 masks terms 0..49, keeping only bin 30, so the real
		// reconstruction halves the component instead of dropping it.
		raw := make([]float64, 100)
		for t2 := range raw {
			raw[t2] = math.Cos(2 * math.Pi * 30 * float64(t2) / 100)
		}
		X := series.Collection{series.NewUnivariate(raw)}
		d := NewDiscreteFourierApproximation(0.5, false)

		Xt, err := d.FitTransform(X)
		require.NoError(t, err)
		for t2 := range raw {
			assert.InDelta(t, 0.5*raw[t2], Xt[0].At(0, t2), 1e-9, "t=%d", t2)
		}
	})

	t.Run("SortKeepsConjugatePair", func(t *testing.T) {
		// With amplitude sorting both halves of the dominant pair rank
		// first, so the same cosine survives at full amplitude.
		raw := make([]float64, 100)
		for t2 := range raw {
			raw[t2] = math.Cos(2 * math.Pi * 30 * float64(t2) / 100)
		}
		X := series.Collection{series.NewUnivariate(raw)}
		d := NewDiscreteFourierApproximation(0.5, true)

		Xt, err := d.FitTransform(X)
		require.NoError(t, err)
		for t2 := range raw {
			assert.InDelta(t, raw[t2], Xt[0].At(0, t2), 1e-9, "t=%d", t2)
		}
	})

	t.Run("InputUntouched", func(t *testing.T) {
		X := series.NewCollectionFrom2D([][]float64{{1, 5, 2, 8, 3, 9, 4, 7}})
		before := X[0].At(0, 1)

		d := NewDiscreteFourierApproximationDefault()
		_, err := d.FitTransform(X)
		require.NoError(t, err)
		assert.Equal(t, before, X[0].At(0, 1))
	})

	t.Run("RaggedCollection", func(t *testing.T) {
		X := series.Collection{
			series.NewUnivariate(sineWave(16)),
			series.NewUnivariate(sineWave(32)),
		}
		d := NewDiscreteFourierApproximationDefault()
		Xt, err := d.FitTransform(X)
		require.NoError(t, err)
		_, n0 := Xt[0].Dims()
		_, n1 := Xt[1].Dims()
		assert.Equal(t, 16, n0)
		assert.Equal(t, 32, n1)
	})

	t.Run("TransformBeforeFitFails", func(t *testing.T) {
		d := NewDiscreteFourierApproximationDefault()
		_, err := d.Transform(series.NewCollectionFrom2D([][]float64{{1, 2, 3}}))
		require.Error(t, err)
		var nfErr *kerrors.NotFittedError
		assert.True(t, kerrors.As(err, &nfErr))
	})
}

func TestDFAParams(t *testing.T) {
	d := NewDiscreteFourierApproximationDefault()

	t.Run("RoundTrip", func(t *testing.T) {
		require.NoError(t, d.SetParams(d.GetParams()))
		assert.Equal(t, 0.5, d.R)
	})

	t.Run("RejectsOutOfRange", func(t *testing.T) {
		err := d.SetParams(map[string]any{"r": 1.5})
		require.Error(t, err)
		var vErr *kerrors.ValidationError
		assert.True(t, kerrors.As(err, &vErr))
	})

	t.Run("RejectsWrongType", func(t *testing.T) {
		assert.Error(t, d.SetParams(map[string]any{"sort": "yes"}))
	})
}

func TestDFATags(t *testing.T) {
	d := NewDiscreteFourierApproximationDefault()
	tags := d.GetTags()
	assert.Equal(t, "smoothing", tags["algorithm_type"])
	assert.Equal(t, true, tags["fit_is_empty"])
	assert.Equal(t, true, tags["capability:unequal_length"])
}
