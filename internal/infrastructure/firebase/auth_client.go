package firebase

import (
	"context"
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"

	"voltmarket/internal/usecase"
	"voltmarket/pkg/errors"
)

type AuthClient struct {
	client     *auth.Client
	apiKey     string
	httpClient *http.Client
}

func NewAuthClient(client *auth.Client, apiKey string) *AuthClient {
	return &AuthClient{
		client: client,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (f *AuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", errors.EmailInUse(err)
		}
		return "", errors.Unknown(err)
	}

	return user.UID, nil
}

// VerifyToken verifies a provider-signed ID token and returns the subject
// together with the raw claims map. The claims are never persisted; callers
// pass them to the role resolver per request.
func (f *AuthClient) VerifyToken(ctx context.Context, idToken string) (string, map[string]interface{}, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", nil, errors.Unauthorized("Invalid or expired token", err)
	}

	return token.UID, token.Claims, nil
}

func (f *AuthClient) GetUser(ctx context.Context, uid string) (*usecase.ProviderUser, error) {
	user, err := f.client.GetUser(ctx, uid)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, errors.UserNotFound(err)
		}
		return nil, errors.Unknown(err)
	}

	return &usecase.ProviderUser{
		UID:           user.UID,
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		EmailVerified: user.EmailVerified,
		Disabled:      user.Disabled,
	}, nil
}

func (f *AuthClient) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	params := (&auth.UserToUpdate{}).
		Password(newPassword)

	if _, err := f.client.UpdateUser(ctx, uid, params); err != nil {
		return errors.Unknown(err)
	}

	return nil
}

// SetAdminClaim writes the provider-signed admin claim. Existing custom
// claims are preserved; only `admin` is replaced.
func (f *AuthClient) SetAdminClaim(ctx context.Context, uid string, admin bool) error {
	user, err := f.client.GetUser(ctx, uid)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return errors.UserNotFound(err)
		}
		return errors.Unknown(err)
	}

	claims := user.CustomClaims
	if claims == nil {
		claims = map[string]interface{}{}
	}
	claims["admin"] = admin

	if err := f.client.SetCustomUserClaims(ctx, uid, claims); err != nil {
		return errors.Unknown(err)
	}

	return nil
}

func (f *AuthClient) RevokeTokens(ctx context.Context, uid string) error {
	if err := f.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return errors.Unknown(err)
	}
	return nil
}
