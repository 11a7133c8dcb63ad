package pattern

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateParamName is returned when a parameter name appears twice
	// in one pattern.
	ErrDuplicateParamName = errors.New("pattern: duplicated parameter name")

	// ErrUnknownParamType is returned for a token type other than num, alpha,
	// alnum, enum or regex.
	ErrUnknownParamType = errors.New("pattern: unknown parameter type")

	// ErrMissingOptions is returned when an enum or regex token has no options.
	ErrMissingOptions = errors.New("pattern: missing parameter options")

	// ErrUnexpectedOptions is returned when a num, alpha or alnum token
	// carries options.
	ErrUnexpectedOptions = errors.New("pattern: unexpected parameter options")

	// ErrMalformedToken is returned for unbalanced braces, tokens without a
	// type, invalid parameter names and unterminated method prefixes.
	ErrMalformedToken = errors.New("pattern: malformed token")

	// ErrInvalidRegexp is returned when options produce an invalid regexp.
	ErrInvalidRegexp = errors.New("pattern: invalid regexp")
)

// CompileError describes why a route pattern could not be compiled.
// It wraps one of the package sentinel errors.
type CompileError struct {
	// Pattern is the raw route pattern.
	Pattern string
	// Token is the offending token text, if any.
	Token string
	// Err is the underlying sentinel, possibly wrapping a regexp error.
	Err error
}

func (e *CompileError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%v: %q in %q", e.Err, e.Token, e.Pattern)
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Pattern)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

func compileError(raw, token string, err error) *CompileError {
	return &CompileError{Pattern: raw, Token: token, Err: err}
}
