package tracker

import (
	"errors"
	"fmt"
)

var (
	// ErrTrackingFieldCollision signals the configured tracking field name is
	// already taken by a control in the container.
	ErrTrackingFieldCollision = errors.New("tracker: tracking field name already present in container")
	// ErrMissingTrackingFieldName signals tracking is enabled without a name.
	ErrMissingTrackingFieldName = errors.New("tracker: tracking field name is required")
	// ErrInvalidSelector signals a configured selector failed to compile.
	ErrInvalidSelector = errors.New("tracker: invalid selector")
	// ErrInvalidFilter signals the field filter expression failed to compile.
	ErrInvalidFilter = errors.New("tracker: invalid field filter")
	// ErrNilDocument signals Attach was called without a parsed document.
	ErrNilDocument = errors.New("tracker: document is required")
	// ErrUnknownOperation signals a dispatch call named no registered operation.
	ErrUnknownOperation = errors.New("tracker: unknown operation")
	// ErrBadArguments signals a dispatch call with the wrong argument shape.
	ErrBadArguments = errors.New("tracker: bad operation arguments")
)

// ConfigurationError reports a fatal problem with the supplied configuration.
// Attach returns it before any state is mutated.
type ConfigurationError struct {
	Option string
	Detail string
	err    error
}

func (e *ConfigurationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("tracker: configuration %s: %v", e.Option, e.err)
	}
	return fmt.Sprintf("tracker: configuration %s: %s: %v", e.Option, e.Detail, e.err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.err
}

func configErr(option, detail string, err error) *ConfigurationError {
	return &ConfigurationError{Option: option, Detail: detail, err: err}
}

// UsageError reports a malformed call through the named-operation entry
// point. It never reflects document or tracker state.
type UsageError struct {
	Op     string
	Detail string
	err    error
}

func (e *UsageError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("tracker: operation %q: %v", e.Op, e.err)
	}
	return fmt.Sprintf("tracker: operation %q: %s: %v", e.Op, e.Detail, e.err)
}

func (e *UsageError) Unwrap() error {
	return e.err
}

func usageErr(op, detail string, err error) *UsageError {
	return &UsageError{Op: op, Detail: detail, err: err}
}
