package estimator

import (
	"archive/zip"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kerrors "github.com/kairoslib/kairos/pkg/errors"
)

func TestSaveLoadFromSerial(t *testing.T) {
	e := newStub(0.7)
	e.fit()

	serial, err := Save(e)
	require.NoError(t, err)
	assert.Equal(t, "StubEstimator", serial.TypeName)
	assert.NotEmpty(t, serial.Blob)

	loaded, err := LoadFromSerial(serial.Blob)
	require.NoError(t, err)

	restored := loaded.(*stubEstimator)
	assert.Equal(t, 0.7, restored.Alpha)
	assert.True(t, restored.IsFitted())
	coef, ok := restored.FittedAttr("coef_")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, coef)
}

func TestSaveToPath(t *testing.T) {
	t.Run("AppendsZipExtension", func(t *testing.T) {
		e := newStub(0.1)
		e.fit()

		path, err := SaveToPath(e, filepath.Join(t.TempDir(), "model"))
		require.NoError(t, err)
		assert.Equal(t, ".zip", filepath.Ext(path))
	})

	t.Run("ArchiveHasMetadataAndObjectEntries", func(t *testing.T) {
		e := newStub(0.1)
		e.fit()

		path, err := SaveToPath(e, filepath.Join(t.TempDir(), "model.zip"))
		require.NoError(t, err)

		zr, err := zip.OpenReader(path)
		require.NoError(t, err)
		defer zr.Close()

		names := make([]string, 0, len(zr.File))
		for _, f := range zr.File {
			names = append(names, f.Name)
		}
		assert.ElementsMatch(t, []string{"_metadata", "_obj"}, names)
	})

	t.Run("RoundTripPreservesFittedState", func(t *testing.T) {
		e := newStub(0.9)
		e.fit()

		path, err := SaveToPath(e, filepath.Join(t.TempDir(), "model"))
		require.NoError(t, err)

		loaded, err := LoadFromPath(path)
		require.NoError(t, err)

		restored := loaded.(*stubEstimator)
		assert.Equal(t, 0.9, restored.Alpha)
		assert.True(t, restored.IsFitted())
		intercept, ok := restored.FittedAttr("intercept_")
		require.True(t, ok)
		assert.Equal(t, 0.5, intercept)
	})

	t.Run("CompositeRoundTrip", func(t *testing.T) {
		c := newStubComposite(newStub(0.2))
		c.fit()

		path, err := SaveToPath(c, filepath.Join(t.TempDir(), "pipeline"))
		require.NoError(t, err)

		loaded, err := LoadFromPath(path)
		require.NoError(t, err)

		deep, err := loaded.GetFittedParams(true)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2, 3}, deep["inner__coef"])
	})
}

func TestLoadFromPathErrors(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.zip"))
		require.Error(t, err)
		var serr *kerrors.SerializationError
		assert.True(t, kerrors.As(err, &serr))
	})
}
