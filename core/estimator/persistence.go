package estimator

import (
	"archive/zip"
	"bytes"
	"encoding/gob"
	"io"
	"os"
	"strings"
	"time"

	kerrors "github.com/kairoslib/kairos/pkg/errors"
	"github.com/kairoslib/kairos/pkg/log"
)

// Archive entry names. A saved estimator is a zip file with exactly these
// two entries, both gob-encoded.
const (
	metadataEntry = "_metadata"
	objectEntry   = "_obj"
)

// SerializedEstimator is the in-memory serialization of an estimator:
// the concrete type name plus the full gob-encoded object state.
type SerializedEstimator struct {
	TypeName string
	Blob     []byte
}

// payload wraps the estimator in an interface-typed field so gob records the
// concrete type. Concrete estimator types must be gob-registered, which
// registry.RegisterEstimator does as part of registration.
type payload struct {
	E Estimator
}

// Save serializes e to an in-memory blob. The result round-trips through
// LoadFromSerial to an object indistinguishable by value and fitted state.
func Save(e Estimator) (*SerializedEstimator, error) {
	blob, err := encode(e)
	if err != nil {
		return nil, err
	}
	return &SerializedEstimator{TypeName: e.EstimatorName(), Blob: blob}, nil
}

// LoadFromSerial reconstructs an estimator from the blob produced by Save.
func LoadFromSerial(blob []byte) (Estimator, error) {
	return decode(blob)
}

// SaveToPath writes e as a zip archive at path, appending the ".zip"
// extension when absent. The archive holds a type-metadata record and the
// full serialized state. Returns the path of the written file.
func SaveToPath(e Estimator, path string) (string, error) {
	if !strings.HasSuffix(path, ".zip") {
		path += ".zip"
	}

	blob, err := encode(e)
	if err != nil {
		return "", err
	}

	start := time.Now()
	f, err := os.Create(path)
	if err != nil {
		return "", kerrors.NewSerializationError("SaveToPath", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	if err := writeEntry(zw, metadataEntry, mustGob(e.EstimatorName())); err != nil {
		return "", err
	}
	if err := writeEntry(zw, objectEntry, blob); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", kerrors.NewSerializationError("SaveToPath", err)
	}

	log.GetLogger().Info("estimator saved",
		log.EstimatorKey, e.EstimatorName(),
		log.OperationKey, "save",
		log.PathKey, path,
		log.DurationMSKey, time.Since(start).Milliseconds(),
	)
	return path, nil
}

// LoadFromPath opens the archive written by SaveToPath and reconstructs the
// estimator from its serialized-state record, fitted state included.
func LoadFromPath(path string) (Estimator, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, kerrors.NewSerializationError("LoadFromPath", err)
	}
	defer zr.Close()

	var blob []byte
	for _, entry := range zr.File {
		if entry.Name != objectEntry {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, kerrors.NewSerializationError("LoadFromPath", err)
		}
		blob, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, kerrors.NewSerializationError("LoadFromPath", err)
		}
	}
	if blob == nil {
		return nil, kerrors.NewSerializationError("LoadFromPath",
			kerrors.Newf("archive %s has no %s entry", path, objectEntry))
	}

	e, err := decode(blob)
	if err != nil {
		return nil, err
	}

	log.GetLogger().Info("estimator loaded",
		log.EstimatorKey, e.EstimatorName(),
		log.OperationKey, "load",
		log.PathKey, path,
	)
	return e, nil
}

// roundTrip deep-copies an estimator through gob. Used by Clone.
func roundTrip(e Estimator) (Estimator, error) {
	blob, err := encode(e)
	if err != nil {
		return nil, err
	}
	return decode(blob)
}

func encode(e Estimator) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&payload{E: e}); err != nil {
		return nil, kerrors.NewSerializationError("encode", err)
	}
	return buf.Bytes(), nil
}

func decode(blob []byte) (Estimator, error) {
	var p payload
	if err := gob.NewDecoder(bytes.NewReader(blob)).Decode(&p); err != nil {
		return nil, kerrors.NewSerializationError("decode", err)
	}
	return p.E, nil
}

func writeEntry(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return kerrors.NewSerializationError("SaveToPath", err)
	}
	if _, err := w.Write(data); err != nil {
		return kerrors.NewSerializationError("SaveToPath", err)
	}
	return nil
}

func mustGob(v any) []byte {
	var buf bytes.Buffer
	// Encoding a string cannot fail.
	_ = gob.NewEncoder(&buf).Encode(v)
	return buf.Bytes()
}
