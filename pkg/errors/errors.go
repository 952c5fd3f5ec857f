// Package errors provides the error and warning types used across kairos.
//
// Error construction goes through cockroachdb/errors so every error carries a
// stack trace. The typed errors implement zerolog's ObjectMarshaler, which lets
// handlers log them as structured events instead of flat strings.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("kairos warning: %v\n", w)
	}
)

// SetWarningHandler replaces the process-wide warning handler. Passing a
// handler that does nothing silences all warnings.
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// Warn reports a non-fatal condition through the registered warning handler.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	if warningHandler != nil {
		warningHandler(w)
	}
}

// DataConversionWarning is raised when input data is implicitly converted
// between representations.
type DataConversionWarning struct {
	FromType string
	ToType   string
	Reason   string
}

func (w *DataConversionWarning) Error() string {
	return fmt.Sprintf("data converted from %s to %s: %s", w.FromType, w.ToType, w.Reason)
}

// MarshalZerologObject adds the warning fields to a zerolog event.
func (w *DataConversionWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("from_type", w.FromType).
		Str("to_type", w.ToType).
		Str("reason", w.Reason).
		Str("type", "DataConversionWarning")
}

// NewDataConversionWarning creates a new DataConversionWarning.
func NewDataConversionWarning(from, to, reason string) *DataConversionWarning {
	return &DataConversionWarning{FromType: from, ToType: to, Reason: reason}
}

// UnequalLengthWarning is raised when an operation receives a ragged
// collection and falls back to per-series handling.
type UnequalLengthWarning struct {
	Op        string
	MinLength int
	MaxLength int
}

func (w *UnequalLengthWarning) Error() string {
	return fmt.Sprintf("%s: collection contains unequal length series (min=%d, max=%d)",
		w.Op, w.MinLength, w.MaxLength)
}

// MarshalZerologObject adds the warning fields to a zerolog event.
func (w *UnequalLengthWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Int("min_length", w.MinLength).
		Int("max_length", w.MaxLength).
		Str("type", "UnequalLengthWarning")
}

// NewUnequalLengthWarning creates a new UnequalLengthWarning.
func NewUnequalLengthWarning(op string, minLen, maxLen int) *UnequalLengthWarning {
	return &UnequalLengthWarning{Op: op, MinLength: minLen, MaxLength: maxLen}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// NotFittedError is returned when a fitted-only operation is called on an
// estimator that has not been fitted.
type NotFittedError struct {
	EstimatorName string
	Method        string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("kairos: %s: this estimator is not fitted yet; call Fit before using %s",
		e.EstimatorName, e.Method)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("estimator", e.EstimatorName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace attached.
func NewNotFittedError(estimatorName, method string) error {
	err := &NotFittedError{EstimatorName: estimatorName, Method: method}
	return errors.WithStack(err)
}

// TagError is returned by tag lookups in raise-on-missing mode when the
// requested tag name is not present.
type TagError struct {
	EstimatorName string
	Tag           string
}

func (e *TagError) Error() string {
	return fmt.Sprintf("kairos: %s: tag with name %q could not be found", e.EstimatorName, e.Tag)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *TagError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("estimator", e.EstimatorName).
		Str("tag", e.Tag).
		Str("type", "TagError")
}

// NewTagError creates a TagError with a stack trace attached.
func NewTagError(estimatorName, tag string) error {
	err := &TagError{EstimatorName: estimatorName, Tag: tag}
	return errors.WithStack(err)
}

// DimensionError is returned when input data has a shape the operation
// cannot accept.
type DimensionError struct {
	Op       string
	Expected []int
	Got      []int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("kairos: %s: shape mismatch, expected %v, got %v", e.Op, e.Expected, e.Got)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Ints("expected", e.Expected).
		Ints("got", e.Got).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got []int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// ValidationError is returned when a hyper-parameter or input argument fails
// validation.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("kairos: validation failed for parameter %q: %s (got: %v)",
		e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace attached.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError is returned when an argument value is out of range or otherwise
// unusable for the operation.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("kairos: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// SerializationError is returned when saving or loading an estimator fails.
type SerializationError struct {
	Op  string
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("kairos: %s: serialization failed: %v", e.Op, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *SerializationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		AnErr("cause", e.Err).
		Str("type", "SerializationError")
}

// NewSerializationError creates a SerializationError with a stack trace
// attached.
func NewSerializationError(op string, err error) error {
	serr := &SerializationError{Op: op, Err: err}
	return errors.WithStack(serr)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates an error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an operation receives no data.
	ErrEmptyData = New("empty data")

	// ErrNotImplemented is returned by optional operations an estimator does
	// not support.
	ErrNotImplemented = New("not implemented")
)
