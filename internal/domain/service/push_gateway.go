package service

import (
	"context"
)

// PushGateway is the messaging provider's token surface: obtaining a push
// token for this installation and invalidating one on opt-out. Delivery
// guarantees behind the token are the provider's business.
type PushGateway interface {
	// Token obtains (or refreshes) the push token for this installation.
	Token(ctx context.Context) (string, error)

	// DeleteToken invalidates the token with the provider. Best-effort:
	// callers proceed with local cleanup regardless of the outcome.
	DeleteToken(ctx context.Context, token string) error
}

// PushSender delivers a push message to a single registered token. Used to
// verify a fresh registration end to end.
type PushSender interface {
	SendToToken(ctx context.Context, token, title, body string, data map[string]string) error
}
