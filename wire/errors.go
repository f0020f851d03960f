package wire

import (
	"errors"
	"fmt"
	"strings"
)

// Codec errors. Each aborts the current message only.
var (
	ErrTruncatedInput       = errors.New("truncated input")
	ErrVarintOverflow       = errors.New("varint overflow")
	ErrInvalidWireType      = errors.New("invalid wire type")
	ErrWireTypeMismatch     = errors.New("wire type does not match field type")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrEnumValueOutOfDomain = errors.New("enum value out of domain")
	ErrInvalidValue         = errors.New("invalid value")
)

// FieldError represents an encoding/decoding error with a field path.
type FieldError struct {
	FieldPath []string // e.g., ["tx", "inputs", "prev_hash"]
	Err       error    // underlying error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if len(e.FieldPath) == 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("error at proto path %s: %v", strings.Join(e.FieldPath, "."), e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for compatibility.
func (e *FieldError) Is(target error) bool {
	_, ok := target.(*FieldError)
	return ok
}

// Field returns the dotted path of the offending field.
func (e *FieldError) Field() string {
	return strings.Join(e.FieldPath, ".")
}

// wrapWithField wraps an error with a field name
func wrapWithField(err error, fieldName string) error {
	if err == nil {
		return nil
	}

	var fe *FieldError
	if errors.As(err, &fe) {
		return &FieldError{
			FieldPath: append([]string{fieldName}, fe.FieldPath...),
			Err:       fe.Err,
		}
	}

	return &FieldError{
		FieldPath: []string{fieldName},
		Err:       err,
	}
}

// newFieldError builds a path-less error around ErrInvalidValue; callers
// wrap it with the field name.
func newFieldError(format string, args ...interface{}) error {
	return &FieldError{Err: fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidValue}, args...)...)}
}
