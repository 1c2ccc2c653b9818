// Package firestore adapts the document database: change feeds, the push
// token registry and the role directory.
package firestore

import (
	"context"

	"menfes/config"

	fs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// NewClient initializes the Firestore client for the configured Firebase
// project. A nil Firebase config disables the primary real-time channel;
// callers fall back to the SSE stream.
func NewClient(ctx context.Context, cfg *config.Config) (*fs.Client, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firestore is optional
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize Firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get Firestore client")
	}

	return client, nil
}
