// Package repository defines the persistence interfaces of the domain layer.
package repository

import (
	"context"

	"menfes/internal/domain/entity"
)

// RegistrationRepository stores push registrations in the remote token
// registry. Documents are keyed by the token itself, so Save has upsert
// semantics and repeated registration of the same token is idempotent.
type RegistrationRepository interface {
	// Save upserts the registration record for reg.Token (merge semantics).
	Save(ctx context.Context, reg *entity.PushRegistration) error

	// Delete removes the registration record for the token. Deleting an
	// unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
