// Package adapter is the single network chokepoint of the societyhub client.
//
// The primary abstraction is [Gateway]: every backend call in the application
// goes through Gateway.Do, which attaches the bearer credential, unwraps the
// API envelope, normalizes inbound identifiers, and maps transport failures
// to the sentinel errors in errors.go so callers can use [errors.Is].
//
// An HTTP 401 from any endpoint triggers the registered unauthorized hook in
// addition to being returned to the caller; the hook is how the session store
// learns that the credential is dead, regardless of which call tripped it.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// Call describes one backend request. Body (when non-nil) is serialized as
// JSON. Headers and Query are optional extras merged into the request.
type Call struct {
	Method  string
	Path    string
	Body    any
	Headers map[string]string
	Query   map[string]string
}

// Gateway is the sole component permitted to perform network I/O. All other
// components issue requests through it.
type Gateway interface {
	// Do executes the call and returns the envelope's data payload on
	// success. On failure the returned error wraps one of this package's
	// sentinels (ErrTimeout, ErrUnauthorized, ErrValidation, ...) and, for
	// server-reported failures, carries the server's message verbatim.
	Do(ctx context.Context, call Call) (json.RawMessage, error)

	// SetToken stores the bearer token attached to all subsequent requests.
	// An empty token removes the Authorization header entirely rather than
	// sending an empty one. Only the session store may call this.
	SetToken(token string)

	// Token returns the bearer token currently held by the gateway, or an
	// empty string if none has been set.
	Token() string

	// OnUnauthorized registers the hook invoked whenever any call comes back
	// with HTTP 401. The gateway clears its own token first, then runs the
	// hook; the session store uses it to clear the stored credential and
	// send the view layer back to the login screen.
	OnUnauthorized(hook func())
}

// DoJSON executes call through gw and decodes the data payload into T.
// An empty payload yields T's zero value without error.
func DoJSON[T any](ctx context.Context, gw Gateway, call Call) (T, error) {
	var out T

	raw, err := gw.Do(ctx, call)
	if err != nil {
		return out, err
	}
	if len(raw) == 0 {
		return out, nil
	}

	if err = json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s %s response: %w", call.Method, call.Path, err)
	}

	return out, nil
}
