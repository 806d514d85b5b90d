package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/societyhub/societyhub/internal/config"
	"github.com/societyhub/societyhub/internal/logger"
	"github.com/societyhub/societyhub/models"
)

type restGateway struct {
	client *resty.Client
	logger *logger.Logger

	mu             sync.RWMutex
	token          string
	onUnauthorized func()
}

// NewRESTGateway constructs the HTTP implementation of [Gateway]. The base
// URL and request timeout come from cfg; cfg is assumed validated (see
// internal/config). Every outgoing request carries a client-generated
// X-Request-ID so backend logs can be correlated with client logs.
func NewRESTGateway(cfg config.Adapter, log *logger.Logger) Gateway {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &restGateway{client: cli, logger: log}
}

// SetToken implements [Gateway]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (g *restGateway) SetToken(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = strings.TrimSpace(token)
}

// Token implements [Gateway].
func (g *restGateway) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// OnUnauthorized implements [Gateway].
func (g *restGateway) OnUnauthorized(hook func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onUnauthorized = hook
}

// Do implements [Gateway].
func (g *restGateway) Do(ctx context.Context, call Call) (json.RawMessage, error) {
	requestID := uuid.NewString()

	req := g.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID)

	if token := g.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if len(call.Headers) > 0 {
		req.SetHeaders(call.Headers)
	}
	if len(call.Query) > 0 {
		req.SetQueryParams(call.Query)
	}
	if call.Body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(call.Body)
	}

	resp, err := req.Execute(call.Method, call.Path)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %s %s", ErrTimeout, call.Method, call.Path)
		}
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, call.Method, call.Path, err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			g.handleUnauthorized(requestID)
		}
		g.logger.Debug().
			Str("request_id", requestID).
			Str("method", call.Method).
			Str("path", call.Path).
			Int("status", resp.StatusCode()).
			Msg("backend call failed")
		return nil, err
	}

	data, err := unwrapEnvelope(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", call.Method, call.Path, err)
	}

	return canonicalizeIDs(data), nil
}

// handleUnauthorized applies the global 401 effect: the gateway drops its own
// token, then runs the registered hook (session clear + navigation to login).
// The specific caller still receives ErrUnauthorized for its local error UI.
func (g *restGateway) handleUnauthorized(requestID string) {
	g.mu.Lock()
	g.token = ""
	hook := g.onUnauthorized
	g.mu.Unlock()

	g.logger.Warn().Str("request_id", requestID).Msg("session rejected by backend")

	if hook != nil {
		hook()
	}
}

// unwrapEnvelope extracts the data payload from a 2xx response body. The
// backend is not fully consistent: most endpoints wrap payloads in
// {"success":true,"data":...}, a few return the payload bare. A body that
// does not look like an envelope is therefore passed through as-is.
func unwrapEnvelope(body []byte) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil, nil
	}

	var env models.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		// Not a JSON object (e.g. a bare array); pass through.
		return json.RawMessage(body), nil
	}

	if env.Success {
		return env.Data, nil
	}
	if env.Message != "" {
		return nil, fmt.Errorf("%w: %s", ErrServer, env.Message)
	}
	if len(env.Data) > 0 {
		return env.Data, nil
	}

	return json.RawMessage(body), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
