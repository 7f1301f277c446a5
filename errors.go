package admission

import (
	"errors"
	"fmt"
)

// Sentinel errors for the client-input failures reported during admission.
// None of them is transient; callers surface them to the client as-is.
var (
	// ErrUnknownModel is returned when a model ID has no registry entry.
	ErrUnknownModel = errors.New("unknown model")

	// ErrInvalidField is returned when a request field fails a structural check.
	ErrInvalidField = errors.New("invalid field")

	// ErrIncompatibleStreamFormat is returned when a streamed request to a
	// channel-only model asks for a URL response.
	ErrIncompatibleStreamFormat = errors.New("response format incompatible with streaming")
)

// UnknownModelError echoes the identifier that failed to resolve.
type UnknownModelError struct {
	Model string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("model %q: %v", e.Model, ErrUnknownModel)
}

func (e *UnknownModelError) Is(target error) bool { return target == ErrUnknownModel }

// InvalidFieldError names the offending request field.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%v %s: %s", ErrInvalidField, e.Field, e.Reason)
}

func (e *InvalidFieldError) Is(target error) bool { return target == ErrInvalidField }

// IncompatibleStreamFormatError reports a stream/response_format conflict.
type IncompatibleStreamFormatError struct {
	Model  string
	Format ResponseFormat
}

func (e *IncompatibleStreamFormatError) Error() string {
	return fmt.Sprintf("model %q: %v: stream=true requires response_format=%s, got %s",
		e.Model, ErrIncompatibleStreamFormat, FormatB64JSON, e.Format)
}

func (e *IncompatibleStreamFormatError) Is(target error) bool {
	return target == ErrIncompatibleStreamFormat
}

// IsValidationError reports whether err is one of the client-input errors
// produced by this package.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUnknownModel) ||
		errors.Is(err, ErrInvalidField) ||
		errors.Is(err, ErrIncompatibleStreamFormat)
}
