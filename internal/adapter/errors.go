package adapter

import "errors"

var (
	// ErrTransport marks requests that never produced an HTTP response.
	ErrTransport = errors.New("transport failure")
	// ErrTimeout marks requests that exceeded the configured request
	// timeout. Distinct from server-returned errors on purpose: the caller
	// cannot know whether the operation took effect.
	ErrTimeout = errors.New("request timed out")
	// ErrUnauthorized maps HTTP 401. Triggers the global unauthorized hook.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden maps HTTP 403.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound maps HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrValidation maps HTTP 400/422; the wrapped message comes from the
	// server's error envelope and is shown to the user verbatim.
	ErrValidation = errors.New("validation failed")
	// ErrConflict maps HTTP 409.
	ErrConflict = errors.New("conflict")
	// ErrServer maps HTTP 5xx and malformed success envelopes.
	ErrServer = errors.New("server error")
)
