package usecase

import (
	"context"
	"time"

	"voltmarket/internal/domain/entity"
	"voltmarket/internal/domain/repository"
	"voltmarket/pkg/errors"
	"voltmarket/pkg/logger"
)

// AuthUseCase is the single choke point for session-provider actions. Every
// operation returns either a result or an AppError from the gateway
// taxonomy; raw provider errors never escape it. No operation retries on its
// own; callers decide whether to try again.
type AuthUseCase struct {
	accountRepo repository.AccountRepository
	session     SessionClient
	intents     *intentStore
}

func NewAuthUseCase(accountRepo repository.AccountRepository, session SessionClient) *AuthUseCase {
	return &AuthUseCase{
		accountRepo: accountRepo,
		session:     session,
		intents:     newIntentStore(),
	}
}

type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Phone       string
	AccountType entity.AccountType
	CompanyName string
}

type AuthResult struct {
	Account      *entity.Account
	Token        string
	RefreshToken string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if existing, err := uc.accountRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, errors.EmailInUse(nil)
	}

	// Stage the profile seed before touching the provider. Identity creation
	// and profile creation are separate backends; if the second write fails,
	// the staged intent lets the next login complete the profile.
	uc.intents.Put(input.Email, RegistrationIntent{
		AccountType: input.AccountType,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Phone:       input.Phone,
		CompanyName: input.CompanyName,
	})

	displayName := input.FirstName + " " + input.LastName
	uid, err := uc.session.CreateUser(ctx, input.Email, input.Password, displayName)
	if err != nil {
		return nil, err
	}

	signIn, err := uc.session.SignInWithEmailPassword(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	account, err := uc.ensureProfile(ctx, uid, input.Email)
	if err != nil {
		return nil, err
	}

	// Best effort; the user can request another one from the setup flow.
	if err := uc.session.SendEmailVerification(ctx, signIn.IDToken); err != nil {
		logger.Warn("Failed to send verification email for %s: %v", uid, err)
	}

	return &AuthResult{
		Account:      account,
		Token:        signIn.IDToken,
		RefreshToken: signIn.RefreshToken,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	signIn, err := uc.session.SignInWithEmailPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	account, err := uc.ensureProfile(ctx, signIn.UID, signIn.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Account:      account,
		Token:        signIn.IDToken,
		RefreshToken: signIn.RefreshToken,
	}, nil
}

func (uc *AuthUseCase) LoginWithGoogle(ctx context.Context, googleIDToken string) (*AuthResult, error) {
	signIn, err := uc.session.SignInWithGoogleCredential(ctx, googleIDToken)
	if err != nil {
		return nil, err
	}

	account, err := uc.ensureProfile(ctx, signIn.UID, signIn.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Account:      account,
		Token:        signIn.IDToken,
		RefreshToken: signIn.RefreshToken,
	}, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, uid string) error {
	return uc.session.RevokeTokens(ctx, uid)
}

func (uc *AuthUseCase) SendEmailVerification(ctx context.Context, idToken string) error {
	return uc.session.SendEmailVerification(ctx, idToken)
}

func (uc *AuthUseCase) ResetPassword(ctx context.Context, email string) error {
	return uc.session.SendPasswordReset(ctx, email)
}

// ChangePassword re-proves the current credential before the provider
// accepts a new one. If re-authentication fails the update call is never
// attempted.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, uid, currentPassword, newPassword string) error {
	account, err := uc.accountRepo.GetByID(ctx, uid)
	if err != nil {
		return errors.NotFound("Account", err)
	}

	if _, err := uc.session.SignInWithEmailPassword(ctx, account.Email, currentPassword); err != nil {
		return errors.InvalidCredentials(err)
	}

	return uc.session.UpdateUserPassword(ctx, uid, newPassword)
}

// ensureProfile loads the profile document, creating it from the staged
// registration intent when the identity exists but the document does not.
// Without an intent (federated first login, or an expired stash) the account
// defaults to individual; the setup flow collects the rest.
func (uc *AuthUseCase) ensureProfile(ctx context.Context, uid, email string) (*entity.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, uid)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	intent, _ := uc.intents.Take(email)
	if intent.AccountType == "" {
		intent.AccountType = entity.AccountTypeIndividual
	}

	now := time.Now()
	account = &entity.Account{
		ID:          uid,
		Email:       email,
		FirstName:   intent.FirstName,
		LastName:    intent.LastName,
		Phone:       intent.Phone,
		AccountType: intent.AccountType,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if intent.AccountType == entity.AccountTypeBusiness {
		account.BusinessInfo = &entity.BusinessInfo{
			CompanyName: intent.CompanyName,
			Status:      entity.ApprovalCreated,
		}
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		// Re-stage so the next login can retry profile creation.
		uc.intents.Put(email, intent)
		return nil, errors.Internal("Failed to create account record", err)
	}

	return account, nil
}
