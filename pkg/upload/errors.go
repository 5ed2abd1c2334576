package upload

import "net/http"

// ValidationError represents a generic file validation failure: size, MIME
// type, or extension mismatch. It maps to a standard bad-request outcome.
type ValidationError struct {
	Details map[string]any // Error-specific data
	Code    string         // Error code (e.g., "file_too_large", "invalid_mime")
	Message string         // Human-readable message
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Error codes for ValidationError.
const (
	ErrCodeFileTooLarge     = "file_too_large"
	ErrCodeInvalidMIME      = "invalid_mime"
	ErrCodeInvalidExtension = "invalid_extension"
	ErrCodeTypeUndetermined = "type_undetermined"
)

// SecurityRejectionCode is the fixed application error code for security
// rejections, distinct from generic validation errors.
const SecurityRejectionCode = 4002

// SecurityError represents a security rejection: PDF active-content
// detection or content that could not be safely inspected. The message is
// intentionally generic; the internal detail is logged server-side only.
type SecurityError struct {
	Message    string
	Code       int
	HTTPStatus int
}

// Error implements the error interface.
func (e *SecurityError) Error() string {
	return e.Message
}

// newSecurityError creates a SecurityError with the fixed code, status,
// and safe user-facing message.
func newSecurityError() *SecurityError {
	return &SecurityError{
		Code:       SecurityRejectionCode,
		HTTPStatus: http.StatusBadRequest,
		Message:    "file does not meet security requirements",
	}
}
