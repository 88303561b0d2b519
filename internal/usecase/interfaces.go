package usecase

import (
	"context"

	"voltmarket/internal/domain/entity"
)

// SignInResult is a successful credential exchange with the session provider.
type SignInResult struct {
	UID          string
	Email        string
	IDToken      string
	RefreshToken string
	IsNewUser    bool
}

// ProviderUser is the provider's own record of an identity, distinct from
// the profile document. Its EmailVerified flag is authoritative; the profile
// flag is synced one-way from it.
type ProviderUser struct {
	UID           string
	Email         string
	DisplayName   string
	EmailVerified bool
	Disabled      bool
}

type SessionClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	SignInWithEmailPassword(ctx context.Context, email, password string) (*SignInResult, error)
	SignInWithGoogleCredential(ctx context.Context, googleIDToken string) (*SignInResult, error)
	VerifyToken(ctx context.Context, idToken string) (string, map[string]interface{}, error)
	GetUser(ctx context.Context, uid string) (*ProviderUser, error)
	SendEmailVerification(ctx context.Context, idToken string) error
	SendPasswordReset(ctx context.Context, email string) error
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
	SetAdminClaim(ctx context.Context, uid string, admin bool) error
	RevokeTokens(ctx context.Context, uid string) error
}

// Notifier pushes transient events to a connected account owner. Delivery is
// best effort; offline users simply miss the push and read the state from
// their profile instead.
type Notifier interface {
	Notify(userID string, notification entity.Notification)
}
