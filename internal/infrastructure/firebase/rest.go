package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"voltmarket/internal/usecase"
	"voltmarket/pkg/errors"
)

// The admin SDK cannot exchange an email/password pair or a federated
// credential for an ID token; those flows go through the identitytoolkit
// REST API keyed by the project's Web API key, the same way a first-party
// client would.

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

type restError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type signInResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	IsNewUser    bool   `json:"isNewUser"`
}

func (f *AuthClient) SignInWithEmailPassword(ctx context.Context, email, password string) (*usecase.SignInResult, error) {
	payload := map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	var resp signInResponse
	if err := f.post(ctx, "accounts:signInWithPassword", payload, &resp); err != nil {
		return nil, err
	}

	return &usecase.SignInResult{
		UID:          resp.LocalID,
		Email:        resp.Email,
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// SignInWithGoogleCredential exchanges a Google-issued ID token for a
// provider session.
func (f *AuthClient) SignInWithGoogleCredential(ctx context.Context, googleIDToken string) (*usecase.SignInResult, error) {
	payload := map[string]interface{}{
		"postBody":            fmt.Sprintf("id_token=%s&providerId=google.com", googleIDToken),
		"requestUri":          "http://localhost",
		"returnSecureToken":   true,
		"returnIdpCredential": true,
	}

	var resp signInResponse
	if err := f.post(ctx, "accounts:signInWithIdp", payload, &resp); err != nil {
		return nil, err
	}

	return &usecase.SignInResult{
		UID:          resp.LocalID,
		Email:        resp.Email,
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
		IsNewUser:    resp.IsNewUser,
	}, nil
}

func (f *AuthClient) SendEmailVerification(ctx context.Context, idToken string) error {
	payload := map[string]interface{}{
		"requestType": "VERIFY_EMAIL",
		"idToken":     idToken,
	}
	return f.post(ctx, "accounts:sendOobCode", payload, nil)
}

func (f *AuthClient) SendPasswordReset(ctx context.Context, email string) error {
	payload := map[string]interface{}{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}
	return f.post(ctx, "accounts:sendOobCode", payload, nil)
}

func (f *AuthClient) post(ctx context.Context, endpoint string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Unknown(err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", identityToolkitURL, endpoint, f.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Unknown(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return errors.NetworkUnavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var restErr restError
		if err := json.NewDecoder(resp.Body).Decode(&restErr); err != nil {
			return errors.Unknown(fmt.Errorf("provider returned status %d", resp.StatusCode))
		}
		return mapProviderError(restErr.Error.Message)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Unknown(err)
		}
	}

	return nil
}

// mapProviderError is the one place raw identitytoolkit codes turn into the
// gateway taxonomy. Codes sometimes arrive suffixed with details
// ("WEAK_PASSWORD : Password should be ..."), so matching is by prefix.
func mapProviderError(code string) error {
	base := fmt.Errorf("provider error: %s", code)
	switch {
	case strings.HasPrefix(code, "EMAIL_NOT_FOUND"):
		return errors.UserNotFound(base)
	case strings.HasPrefix(code, "INVALID_PASSWORD"),
		strings.HasPrefix(code, "INVALID_LOGIN_CREDENTIALS"),
		strings.HasPrefix(code, "INVALID_IDP_RESPONSE"):
		return errors.InvalidCredentials(base)
	case strings.HasPrefix(code, "EMAIL_EXISTS"):
		return errors.EmailInUse(base)
	case strings.HasPrefix(code, "WEAK_PASSWORD"):
		return errors.WeakPassword(base)
	case strings.HasPrefix(code, "USER_DISABLED"):
		return errors.AccountDisabled(base)
	case strings.HasPrefix(code, "TOO_MANY_ATTEMPTS_TRY_LATER"):
		return errors.RateLimited(base)
	case strings.HasPrefix(code, "USER_CANCELLED"):
		return errors.UserCancelled(base)
	default:
		return errors.Unknown(base)
	}
}
