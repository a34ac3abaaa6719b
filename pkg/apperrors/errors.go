package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application failure
type Kind string

const (
	// Document processing failures
	KindUnsupportedFormat Kind = "unsupported_format"
	KindEmptyExtraction   Kind = "empty_extraction"
	KindUndecodableText   Kind = "undecodable_text"
	KindExtractionFailed  Kind = "extraction_failed"
	KindFileTooLarge      Kind = "file_too_large"

	// Remote analysis failures
	KindRemoteUnavailable Kind = "remote_unavailable"

	// Authentication failures
	KindInvalidCredentials Kind = "invalid_credentials"
	KindTokenExpired       Kind = "token_expired"
	KindInvalidToken       Kind = "invalid_token"
	KindAuthFailed         Kind = "auth_failed"

	KindInternal Kind = "internal"
)

// Error is a typed application error carrying an HTTP status classification
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func New(kind Kind, status int, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Status:  status,
	}
}

// Wrap attaches a cause to a typed error; the cause message is preserved
// for server-side logging but not necessarily exposed to the client.
func Wrap(kind Kind, status int, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Status:  status,
		Cause:   cause,
	}
}

func UnsupportedFormat(ext string) *Error {
	return New(KindUnsupportedFormat, http.StatusBadRequest, "Unsupported file format: %s", ext)
}

func EmptyExtraction(detail string) *Error {
	return New(KindEmptyExtraction, http.StatusBadRequest, "%s", detail)
}

func UndecodableText() *Error {
	return New(KindUndecodableText, http.StatusBadRequest, "Could not decode text file with any supported encoding")
}

func ExtractionFailed(cause error, format string) *Error {
	return Wrap(KindExtractionFailed, http.StatusInternalServerError, cause, "Failed to extract text from %s", format)
}

func FileTooLarge(size, max int64) *Error {
	return New(KindFileTooLarge, http.StatusRequestEntityTooLarge, "File too large: %d bytes. Maximum size: %d bytes", size, max)
}

func RemoteUnavailable(cause error, message string) *Error {
	return Wrap(KindRemoteUnavailable, http.StatusServiceUnavailable, cause, "%s", message)
}

func InvalidCredentials() *Error {
	return New(KindInvalidCredentials, http.StatusUnauthorized, "Invalid credentials")
}

func TokenExpired() *Error {
	return New(KindTokenExpired, http.StatusUnauthorized, "Token expired")
}

func InvalidToken() *Error {
	return New(KindInvalidToken, http.StatusUnauthorized, "Invalid token")
}

func AuthFailed(cause error) *Error {
	return Wrap(KindAuthFailed, http.StatusUnauthorized, cause, "Authentication failed")
}

func Internal(cause error) *Error {
	return Wrap(KindInternal, http.StatusInternalServerError, cause, "Internal server error")
}

// StatusOf returns the HTTP status for err, defaulting to 500 for
// unanticipated errors.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// KindOf returns the Kind of err, or KindInternal if it is not typed.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
