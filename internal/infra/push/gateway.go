package push

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"menfes/config"
	"menfes/internal/domain/service"

	"github.com/pkg/errors"
)

const gatewayTimeout = 15 * time.Second

type httpGateway struct {
	baseURL    string
	vapidKey   string
	httpClient *http.Client
}

// NewGateway creates the HTTP token gateway against the push provider's
// registration endpoint. Nil push config disables registration entirely.
func NewGateway(cfg *config.Config) service.PushGateway {
	if cfg.Push == nil {
		return nil
	}

	return &httpGateway{
		baseURL:    cfg.Push.GatewayURL,
		vapidKey:   cfg.Push.VAPIDKey,
		httpClient: &http.Client{Timeout: gatewayTimeout},
	}
}

type tokenRequest struct {
	VAPIDKey string `json:"vapid_key,omitempty"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Token obtains a push token for this installation, passing the configured
// VAPID key through when one is set.
func (g *httpGateway) Token(ctx context.Context) (string, error) {
	body, err := json.Marshal(tokenRequest{VAPIDKey: g.vapidKey})
	if err != nil {
		return "", errors.Wrap(err, "marshal token request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/token", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "build token request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "request token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("token request failed: %s", resp.Status)
	}

	var out tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "decode token response")
	}
	if out.Token == "" {
		return "", errors.New("token response carried no token")
	}

	return out.Token, nil
}

// DeleteToken invalidates a token with the provider. An unknown token is
// treated as already deleted.
func (g *httpGateway) DeleteToken(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, g.baseURL+"/token/"+url.PathEscape(token), nil)
	if err != nil {
		return errors.Wrap(err, "build delete request")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "delete token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return errors.Errorf("delete token failed: %s", resp.Status)
	}

	return nil
}
