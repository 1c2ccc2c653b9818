package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"menfes/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, handler http.Handler) *httpGateway {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Push: &config.PushConfig{GatewayURL: server.URL, VAPIDKey: "vapid-1"}}

	gw, ok := NewGateway(cfg).(*httpGateway)
	require.True(t, ok)

	return gw
}

func TestGateway_TokenPassesVAPIDKey(t *testing.T) {
	gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/token", r.URL.Path)

		var req tokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "vapid-1", req.VAPIDKey)

		_ = json.NewEncoder(w).Encode(tokenResponse{Token: "tok-abc"})
	}))

	token, err := gw.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}

func TestGateway_TokenRejectsEmptyResponse(t *testing.T) {
	gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(tokenResponse{})
	}))

	_, err := gw.Token(context.Background())
	assert.Error(t, err)
}

func TestGateway_DeleteTokenToleratesNotFound(t *testing.T) {
	gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/token/tok-gone", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))

	assert.NoError(t, gw.DeleteToken(context.Background(), "tok-gone"))
}

func TestNewGateway_NilWithoutPushConfig(t *testing.T) {
	assert.Nil(t, NewGateway(&config.Config{}))
}
