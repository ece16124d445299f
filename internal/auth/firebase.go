package auth

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/portfolio-7b282/portfolio-backend/config"
)

// Clients bundles the Firebase-backed clients the app needs: identity,
// document store and the storage bucket.
type Clients struct {
	Auth      *auth.Client
	Firestore *firestore.Client
	Bucket    *gcs.BucketHandle
}

// InitializeFirebase initializes the Firebase Admin SDK and returns the
// Auth, Firestore and Storage clients.
func InitializeFirebase(ctx context.Context, cfg *config.FirebaseConfig) (*Clients, error) {
	if cfg.CredentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Storage client: %w", err)
	}
	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to get default bucket: %w", err)
	}

	return &Clients{
		Auth:      authClient,
		Firestore: fsClient,
		Bucket:    bucket,
	}, nil
}
