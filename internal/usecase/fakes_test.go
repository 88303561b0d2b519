package usecase

import (
	"context"
	"fmt"

	"voltmarket/internal/domain/entity"
	"voltmarket/pkg/errors"
)

type fakeAccountRepo struct {
	accounts  map[string]*entity.Account
	createErr error
	updateErr error
	updates   int
}

func newFakeAccountRepo(accounts ...*entity.Account) *fakeAccountRepo {
	repo := &fakeAccountRepo{accounts: make(map[string]*entity.Account)}
	for _, a := range accounts {
		copied := *a
		repo.accounts[a.ID] = &copied
	}
	return repo
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	if r.createErr != nil {
		return r.createErr
	}
	copied := *account
	r.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, errors.NotFound("Account", nil)
	}
	copied := *account
	if account.BusinessInfo != nil {
		info := *account.BusinessInfo
		copied.BusinessInfo = &info
	}
	copied.Documents = append([]entity.Document(nil), account.Documents...)
	return &copied, nil
}

func (r *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	for _, account := range r.accounts {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Account", nil)
}

func (r *fakeAccountRepo) Update(ctx context.Context, account *entity.Account) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates++
	copied := *account
	if account.BusinessInfo != nil {
		info := *account.BusinessInfo
		copied.BusinessInfo = &info
	}
	r.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	account, ok := r.accounts[id]
	if !ok {
		return errors.NotFound("Account", nil)
	}
	if v, ok := fields["isEmailVerified"].(bool); ok {
		account.IsEmailVerified = v
	}
	if nested, ok := fields["businessInfo"].(map[string]interface{}); ok && account.BusinessInfo != nil {
		if status, ok := nested["status"].(entity.ApprovalStatus); ok {
			account.BusinessInfo.Status = status
		}
	}
	r.updates++
	return nil
}

func (r *fakeAccountRepo) Delete(ctx context.Context, id string) error {
	delete(r.accounts, id)
	return nil
}

func (r *fakeAccountRepo) FindByField(ctx context.Context, field string, value interface{}, limit, offset int) ([]*entity.Account, int64, error) {
	var out []*entity.Account
	for _, account := range r.accounts {
		out = append(out, account)
	}
	return out, int64(len(out)), nil
}

func (r *fakeAccountRepo) FindBusinessesByStatus(ctx context.Context, status entity.ApprovalStatus, limit, offset int) ([]*entity.Account, int64, error) {
	var out []*entity.Account
	for _, account := range r.accounts {
		if account.BusinessInfo != nil && account.BusinessInfo.Status == status {
			out = append(out, account)
		}
	}
	return out, int64(len(out)), nil
}

type fakeSession struct {
	users         map[string]*ProviderUser
	passwords     map[string]string
	nextUID       int
	createErr     error
	signInErr     error
	passwordSets  []string
	revoked       []string
	resetEmails   []string
	verifications []string
	adminClaims   map[string]bool
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		users:       make(map[string]*ProviderUser),
		passwords:   make(map[string]string),
		adminClaims: make(map[string]bool),
	}
}

func (s *fakeSession) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	for _, user := range s.users {
		if user.Email == email {
			return "", errors.EmailInUse(nil)
		}
	}
	s.nextUID++
	uid := fmt.Sprintf("uid-%d", s.nextUID)
	s.users[uid] = &ProviderUser{UID: uid, Email: email, DisplayName: displayName}
	s.passwords[email] = password
	return uid, nil
}

func (s *fakeSession) SignInWithEmailPassword(ctx context.Context, email, password string) (*SignInResult, error) {
	if s.signInErr != nil {
		return nil, s.signInErr
	}
	stored, ok := s.passwords[email]
	if !ok {
		return nil, errors.UserNotFound(nil)
	}
	if stored != password {
		return nil, errors.InvalidCredentials(nil)
	}
	for uid, user := range s.users {
		if user.Email == email {
			return &SignInResult{UID: uid, Email: email, IDToken: "token-" + uid, RefreshToken: "refresh-" + uid}, nil
		}
	}
	return nil, errors.UserNotFound(nil)
}

func (s *fakeSession) SignInWithGoogleCredential(ctx context.Context, googleIDToken string) (*SignInResult, error) {
	s.nextUID++
	uid := fmt.Sprintf("uid-%d", s.nextUID)
	email := fmt.Sprintf("google-%d@example.com", s.nextUID)
	s.users[uid] = &ProviderUser{UID: uid, Email: email, EmailVerified: true}
	return &SignInResult{UID: uid, Email: email, IDToken: "token-" + uid, IsNewUser: true}, nil
}

func (s *fakeSession) VerifyToken(ctx context.Context, idToken string) (string, map[string]interface{}, error) {
	return "", nil, errors.Unauthorized("not supported", nil)
}

func (s *fakeSession) GetUser(ctx context.Context, uid string) (*ProviderUser, error) {
	user, ok := s.users[uid]
	if !ok {
		return nil, errors.UserNotFound(nil)
	}
	copied := *user
	return &copied, nil
}

func (s *fakeSession) SendEmailVerification(ctx context.Context, idToken string) error {
	s.verifications = append(s.verifications, idToken)
	return nil
}

func (s *fakeSession) SendPasswordReset(ctx context.Context, email string) error {
	s.resetEmails = append(s.resetEmails, email)
	return nil
}

func (s *fakeSession) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	user, ok := s.users[uid]
	if !ok {
		return errors.UserNotFound(nil)
	}
	s.passwords[user.Email] = newPassword
	s.passwordSets = append(s.passwordSets, uid)
	return nil
}

func (s *fakeSession) SetAdminClaim(ctx context.Context, uid string, admin bool) error {
	s.adminClaims[uid] = admin
	return nil
}

func (s *fakeSession) RevokeTokens(ctx context.Context, uid string) error {
	s.revoked = append(s.revoked, uid)
	return nil
}

type fakeNotifier struct {
	sent map[string][]entity.Notification
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(map[string][]entity.Notification)}
}

func (n *fakeNotifier) Notify(userID string, notification entity.Notification) {
	n.sent[userID] = append(n.sent[userID], notification)
}
