package router

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no route matches a request, or when the
	// table has no entry for a controller/action pair. Callers usually map
	// it to 404 Not Found.
	ErrNotFound = errors.New("router: no matching route")

	// ErrMissingParam is returned when reverse routing finds no pattern
	// whose placeholders are exactly the supplied parameters.
	ErrMissingParam = errors.New("router: parameters do not fit any route pattern")

	// ErrConfiguration is returned for invalid route tables and language
	// settings.
	ErrConfiguration = errors.New("router: invalid configuration")
)

// NotFoundError is returned by Route and Reverse when nothing matches.
// Route sets Path and Method; Reverse sets Controller and Action.
type NotFoundError struct {
	Path   string
	Method string

	Controller string
	Action     string
}

func (e *NotFoundError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("router: no route for %s/%s", e.Controller, e.Action)
	}
	return fmt.Sprintf("router: no route matches %s %s", e.Method, e.Path)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// MissingParamError is returned by Reverse when every pattern of the
// controller/action pair was rejected.
type MissingParamError struct {
	Controller string
	Action     string
	// Params holds the supplied parameter names, sorted.
	Params []string
	// Candidates holds the placeholder names of each rejected pattern.
	Candidates [][]string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("router: no pattern for %s/%s accepts parameters %v (candidates: %v)",
		e.Controller, e.Action, e.Params, e.Candidates)
}

// Is reports whether target is ErrMissingParam.
func (e *MissingParamError) Is(target error) bool {
	return target == ErrMissingParam
}

// ConfigurationError describes an invalid route table or language setup.
type ConfigurationError struct {
	// Key is the configuration key or route key at fault.
	Key    string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("router: invalid configuration %q: %s", e.Key, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// Unwrap returns the underlying error, if any.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func configError(key, reason string, err error) *ConfigurationError {
	return &ConfigurationError{Key: key, Reason: reason, Err: err}
}
