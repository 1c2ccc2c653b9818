package repository

import (
	"context"
)

// RoleRepository resolves which identities carry the admin (BEM) role, used
// to decorate their posts and comments with a role badge.
type RoleRepository interface {
	// AdminUIDs returns the identities flagged as admins. An empty slice is
	// a valid answer; callers must treat it as "no badges", not an error.
	AdminUIDs(ctx context.Context) ([]string, error)
}
