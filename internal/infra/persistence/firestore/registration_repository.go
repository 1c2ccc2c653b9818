package firestore

import (
	"context"

	"menfes/internal/domain/entity"
	"menfes/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

const tokenCollection = "fcm_tokens"

type registrationRepository struct {
	client *fs.Client
}

// NewRegistrationRepository creates the Firestore-backed push token
// registry. Documents are keyed by the token string itself.
func NewRegistrationRepository(client *fs.Client) repository.RegistrationRepository {
	if client == nil {
		return nil
	}

	return &registrationRepository{client: client}
}

func (r *registrationRepository) Save(ctx context.Context, reg *entity.PushRegistration) error {
	_, err := r.client.Collection(tokenCollection).Doc(reg.Token).Set(ctx, map[string]any{
		"uid":        reg.UID,
		"token":      reg.Token,
		"updated_at": reg.UpdatedAt,
		"user_agent": reg.UserAgent,
	}, fs.MergeAll)

	return errors.Wrap(err, "save push registration")
}

func (r *registrationRepository) Delete(ctx context.Context, token string) error {
	_, err := r.client.Collection(tokenCollection).Doc(token).Delete(ctx)

	return errors.Wrap(err, "delete push registration")
}
