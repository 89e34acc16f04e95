package providers

import (
	"errors"
	"fmt"

	"github.com/abheesh-03/Flight-Tracker/internal/constants"
)

// ProviderError is the tagged error every adapter normalizes upstream
// failures into. The Code is one of the constants.ErrCode* values, so
// callers branch on the taxonomy instead of provider-specific payloads.
type ProviderError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError builds a tagged error with the default message for code.
func NewProviderError(code string, err error) *ProviderError {
	return &ProviderError{
		Code:    code,
		Message: constants.GetErrorMessage(code),
		Err:     err,
	}
}

// NewProviderErrorWithMessage builds a tagged error carrying provider-
// supplied text, used when the upstream payload includes a human-readable
// explanation worth surfacing.
func NewProviderErrorWithMessage(code, message string) *ProviderError {
	return &ProviderError{Code: code, Message: message}
}

func codeOf(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// IsNotFound reports whether err is the expected-absence outcome.
func IsNotFound(err error) bool {
	return codeOf(err) == constants.ErrCodeNotFound
}

// IsUnavailable reports whether err means "adapter works, no current data".
func IsUnavailable(err error) bool {
	return codeOf(err) == constants.ErrCodeUnavailable
}

// IsConfigError reports whether err is caused by missing credentials.
func IsConfigError(err error) bool {
	return codeOf(err) == constants.ErrCodeConfigError
}
