// Package auth performs the provider's anonymous sign-in.
package auth

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"encoding/json"

	"menfes/config"
	"menfes/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	signUpEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signUp"
	signInTimeout  = 15 * time.Second
)

type anonymousAuthenticator struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewAnonymousAuthenticator creates the Identity Toolkit anonymous sign-in
// client. Nil Firebase config or a missing web API key disables sign-in and
// leaves only the generated local identity.
func NewAnonymousAuthenticator(cfg *config.Config) service.AnonymousAuthenticator {
	if cfg.Firebase == nil || cfg.Firebase.APIKey == "" {
		return nil
	}

	return &anonymousAuthenticator{
		endpoint:   signUpEndpoint,
		apiKey:     cfg.Firebase.APIKey,
		httpClient: &http.Client{Timeout: signInTimeout},
	}
}

type signUpRequest struct {
	ReturnSecureToken bool `json:"returnSecureToken"`
}

type signUpResponse struct {
	LocalID string `json:"localId"`
}

// SignIn creates an anonymous account and returns its UID.
func (a *anonymousAuthenticator) SignIn(ctx context.Context) (string, error) {
	body, err := json.Marshal(signUpRequest{ReturnSecureToken: true})
	if err != nil {
		return "", errors.Wrap(err, "marshal sign-in request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint+"?key="+a.apiKey, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "build sign-in request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "anonymous sign-in")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("anonymous sign-in failed: %s", resp.Status)
	}

	var out signUpResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "decode sign-in response")
	}
	if out.LocalID == "" {
		return "", errors.New("sign-in response carried no uid")
	}

	return out.LocalID, nil
}
