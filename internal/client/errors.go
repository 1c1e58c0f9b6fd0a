package client

import "errors"

var (
	// ErrAuthRejected means the backend refused the credential exchange.
	// The user-facing message for it is "Invalid Credentials"; there is
	// no automatic retry.
	ErrAuthRejected = errors.New("invalid credentials")

	// ErrOperationFailed covers any resource call that did not succeed:
	// transport errors, timeouts and non-2xx responses. The caller's
	// in-memory list is left exactly as it was.
	ErrOperationFailed = errors.New("operation failed")

	// ErrInvalidInput means local validation stopped the operation
	// before anything was sent.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRequestResolved means the locally-held status of a request is
	// terminal, so the lifecycle guard refused the operation without
	// contacting the backend.
	ErrRequestResolved = errors.New("request already resolved")
)
