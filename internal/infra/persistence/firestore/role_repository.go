package firestore

import (
	"context"

	"menfes/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type roleRepository struct {
	client *fs.Client
}

// NewRoleRepository creates the Firestore-backed role directory used for
// admin badges.
func NewRoleRepository(client *fs.Client) repository.RoleRepository {
	if client == nil {
		return nil
	}

	return &roleRepository{client: client}
}

// AdminUIDs prefers the publicly readable roles collection and falls back to
// the users collection when it yields nothing.
func (r *roleRepository) AdminUIDs(ctx context.Context) ([]string, error) {
	docs, err := r.client.Collection("roles").Where("bem", "==", true).Documents(ctx).GetAll()
	if err == nil && len(docs) > 0 {
		uids := make([]string, 0, len(docs))
		for _, doc := range docs {
			if uid, ok := doc.Data()["uid"].(string); ok && uid != "" {
				uids = append(uids, uid)
				continue
			}
			uids = append(uids, doc.Ref.ID)
		}

		return uids, nil
	}

	docs, fallbackErr := r.client.Collection("users").Where("role", "==", "admin").Documents(ctx).GetAll()
	if fallbackErr != nil {
		if err != nil {
			return nil, errors.Wrap(err, "query roles")
		}

		return nil, errors.Wrap(fallbackErr, "query users by role")
	}

	uids := make([]string, 0, len(docs))
	for _, doc := range docs {
		uids = append(uids, doc.Ref.ID)
	}

	return uids, nil
}
