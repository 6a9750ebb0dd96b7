package firebase

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"omniplex-backend/config"
)

// Clients bundles the Firebase collaborators. Both may be consumed
// independently: Firestore backs the remote subscription store, Auth backs
// ID-token verification in the auth middleware.
type Clients struct {
	Firestore *firestore.Client
	Auth      *auth.Client
}

// Init resolves the Firebase collaborator once at startup. Returns (nil, nil)
// when no project or credentials are configured — the reconciler then fails
// open to the free plan and the auth middleware falls back to app JWTs.
func Init(ctx context.Context) (*Clients, error) {
	if config.FIREBASE_PROJECT_ID == "" &&
		config.FIREBASE_SERVICE_ACCOUNT == "" &&
		config.GOOGLE_APPLICATION_CREDENTIALS == "" {
		log.Println("⚠️ Firebase not configured — remote subscription store disabled")
		return nil, nil
	}

	var opts []option.ClientOption
	if config.GOOGLE_APPLICATION_CREDENTIALS != "" {
		opts = append(opts, option.WithCredentialsFile(config.GOOGLE_APPLICATION_CREDENTIALS))
	} else if config.FIREBASE_SERVICE_ACCOUNT != "" {
		decoded, err := base64.StdEncoding.DecodeString(config.FIREBASE_SERVICE_ACCOUNT)
		if err != nil {
			return nil, fmt.Errorf("failed to decode FIREBASE_SERVICE_ACCOUNT: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(decoded))
	}
	// Neither set: Application Default Credentials with the explicit project id.

	var fbConfig *fb.Config
	if config.FIREBASE_PROJECT_ID != "" {
		fbConfig = &fb.Config{ProjectID: config.FIREBASE_PROJECT_ID}
	}

	app, err := fb.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Firestore: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("app.Auth: %w", err)
	}

	fmt.Println("✅ Firebase initialized")
	return &Clients{Firestore: fsClient, Auth: authClient}, nil
}
