package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"menfes/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnonymousSignIn_ReturnsUID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "key-1", r.URL.Query().Get("key"))

		var req signUpRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.ReturnSecureToken)

		_ = json.NewEncoder(w).Encode(signUpResponse{LocalID: "uid-777"})
	}))
	t.Cleanup(server.Close)

	a := &anonymousAuthenticator{
		endpoint:   server.URL,
		apiKey:     "key-1",
		httpClient: &http.Client{Timeout: time.Second},
	}

	uid, err := a.SignIn(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "uid-777", uid)
}

func TestAnonymousSignIn_EmptyUIDIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(signUpResponse{})
	}))
	t.Cleanup(server.Close)

	a := &anonymousAuthenticator{endpoint: server.URL, apiKey: "key-1", httpClient: server.Client()}

	_, err := a.SignIn(context.Background())
	assert.Error(t, err)
}

func TestNewAnonymousAuthenticator_DisabledWithoutAPIKey(t *testing.T) {
	assert.Nil(t, NewAnonymousAuthenticator(&config.Config{}))

	cfg := &config.Config{Firebase: &config.FirebaseConfig{ProjectID: "p"}}
	assert.Nil(t, NewAnonymousAuthenticator(cfg))
}
