package repository

import (
	"context"

	"menfes/internal/errors"
)

// ErrKeyNotFound is returned when a key has no stored value.
var ErrKeyNotFound = errors.New("localstore: key not found")

// Keys of the browser-local key-value store. All values are strings and all
// access is best-effort; callers swallow failures and fall back to defaults.
const (
	KeyIdentity   = "mf_uid"
	KeyPushToken  = "mf_fcm_token"
	KeyName       = "mf_name"
	KeyTheme      = "mf_theme"
	KeyDraft      = "mf_draft"
	KeyPermission = "mf_notif_permission"
)

// LocalStore is the durable per-browser key-value store.
type LocalStore interface {
	// Get returns the stored value, or ErrKeyNotFound when absent.
	Get(ctx context.Context, key string) (string, error)

	// Set writes the value for the key.
	Set(ctx context.Context, key, value string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
