package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/societyhub/societyhub/internal/config"
	"github.com/societyhub/societyhub/internal/logger"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc, timeout time.Duration) Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return NewRESTGateway(config.Adapter{BaseURL: srv.URL, RequestTimeout: timeout}, logger.Nop())
}

func TestDo_UnwrapsSuccessEnvelope(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/notice", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"_id":"n1","title":"water cut"}]}`))
	}, 0)

	type notice struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}

	notices, err := DoJSON[[]notice](context.Background(), gw, Call{Method: http.MethodGet, Path: "/notice"})
	require.NoError(t, err)
	require.Len(t, notices, 1)
	assert.Equal(t, "n1", notices[0].ID)
	assert.Equal(t, "water cut", notices[0].Title)
}

func TestDo_BearerHeaderAttachedOnlyWithToken(t *testing.T) {
	var gotAuth string
	var authPresent bool
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, authPresent = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"success":true,"data":{}}`))
	}, 0)

	_, err := gw.Do(context.Background(), Call{Method: http.MethodGet, Path: "/flat"})
	require.NoError(t, err)
	assert.False(t, authPresent, "no credential must mean no Authorization header at all")

	gw.SetToken("  tok-123  ")
	_, err = gw.Do(context.Background(), Call{Method: http.MethodGet, Path: "/flat"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestDo_ServerMessageSurfacedVerbatim(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"flat number already taken"}`))
	}, 0)

	_, err := gw.Do(context.Background(), Call{Method: http.MethodPost, Path: "/flat"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "flat number already taken")
}

func TestDo_UnauthorizedTriggersGlobalHook(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	}, 0)

	hookCalls := 0
	gw.SetToken("stale-token")
	gw.OnUnauthorized(func() { hookCalls++ })

	_, err := gw.Do(context.Background(), Call{Method: http.MethodGet, Path: "/complaints"})
	require.ErrorIs(t, err, ErrUnauthorized, "the caller still sees the failure locally")
	assert.Equal(t, 1, hookCalls, "global hook must run regardless of endpoint")
	assert.Empty(t, gw.Token(), "gateway must drop its token on 401")
}

func TestDo_Timeout(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}, 20*time.Millisecond)

	_, err := gw.Do(context.Background(), Call{Method: http.MethodGet, Path: "/maintenance"})
	require.ErrorIs(t, err, ErrTimeout)
	assert.NotErrorIs(t, err, ErrServer)
}

func TestDo_TransportError(t *testing.T) {
	gw := NewRESTGateway(config.Adapter{
		BaseURL:        "http://127.0.0.1:1", // nothing listens here
		RequestTimeout: time.Second,
	}, logger.Nop())

	_, err := gw.Do(context.Background(), Call{Method: http.MethodGet, Path: "/flat"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestDo_QueryParamsForwarded(t *testing.T) {
	var gotQuery string
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("status")
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}, 0)

	_, err := gw.Do(context.Background(), Call{
		Method: http.MethodGet,
		Path:   "/complaints",
		Query:  map[string]string{"status": "OPEN"},
	})
	require.NoError(t, err)
	assert.Equal(t, "OPEN", gotQuery)
}

func TestUnwrapEnvelope_BarePayloadPassedThrough(t *testing.T) {
	data, err := unwrapEnvelope([]byte(`[{"id":"1"}]`))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(data))
}

func TestUnwrapEnvelope_FailureEnvelopeWithMessage(t *testing.T) {
	_, err := unwrapEnvelope([]byte(`{"success":false,"message":"backend unhappy"}`))
	require.ErrorIs(t, err, ErrServer)
	assert.Contains(t, err.Error(), "backend unhappy")
}

func TestUnwrapEnvelope_EmptyBody(t *testing.T) {
	data, err := unwrapEnvelope(nil)
	require.NoError(t, err)
	assert.Nil(t, data)
}
