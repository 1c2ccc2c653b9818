package service

import (
	"context"
)

// AnonymousAuthenticator performs the provider's anonymous sign-in and
// returns the authenticated identity. Sign-in failure is not fatal; the
// generated local identity keeps being used.
type AnonymousAuthenticator interface {
	SignIn(ctx context.Context) (uid string, err error)
}
