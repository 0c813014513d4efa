// ABOUTME: Error taxonomy for remote operations.
// ABOUTME: Maps HTTP failures onto auth, validation, not-found, and remote errors.
package api

import "fmt"

// AuthError means no credential was available, or the server rejected the
// one presented (missing, invalid, or expired).
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// ValidationError means the server rejected the request body as malformed
// or missing required fields.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError means the target entity does not exist or is not owned by
// the authenticated user.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// RemoteError covers every other failure: transport errors, unexpected
// statuses, and malformed success payloads.
type RemoteError struct {
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *RemoteError) Unwrap() error { return e.Err }

// classifyStatus turns a non-2xx status and its server-supplied message
// into the matching error type.
func classifyStatus(status int, message string) error {
	switch status {
	case 400:
		return &ValidationError{Message: message}
	case 401:
		return &AuthError{Message: message}
	case 404:
		return &NotFoundError{Message: message}
	default:
		return &RemoteError{Message: message}
	}
}
