package usecase

import (
	"context"
	"time"

	"voltmarket/internal/domain/entity"
	"voltmarket/internal/domain/repository"
	"voltmarket/pkg/errors"
	"voltmarket/pkg/logger"
)

type UserUseCase struct {
	accountRepo repository.AccountRepository
	session     SessionClient
}

func NewUserUseCase(accountRepo repository.AccountRepository, session SessionClient) *UserUseCase {
	return &UserUseCase{
		accountRepo: accountRepo,
		session:     session,
	}
}

type UpdateProfileInput struct {
	FirstName   string
	LastName    string
	Phone       string
	CompanyName string
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("Account", err)
	}
	return account, nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("Account", err)
	}

	if input.FirstName != "" {
		account.FirstName = input.FirstName
	}
	if input.LastName != "" {
		account.LastName = input.LastName
	}
	if input.Phone != "" {
		account.Phone = input.Phone
	}
	if input.CompanyName != "" {
		if !account.IsBusiness() || account.BusinessInfo == nil {
			return nil, errors.BadRequest("Company name is only valid for business accounts", nil)
		}
		account.BusinessInfo.CompanyName = input.CompanyName
	}

	// Setting the company name can be the last missing piece; a complete
	// business moves into review here, not only on upload.
	if account.IsBusiness() && account.BusinessInfo != nil {
		account.BusinessInfo.AdvanceToReviewIfComplete(account.IsProfileComplete())
	}

	account.UpdatedAt = time.Now()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Internal("Failed to update profile", err)
	}

	return account, nil
}

// SyncEmailVerification reconciles the profile's email-verified flag with
// the provider's. The sync is one-way: a provider-verified identity forces
// the profile flag to true, never the reverse. On a failed write the
// discrepancy is logged and the returned account still carries the
// provider's value, which is authoritative for the current request.
func (uc *UserUseCase) SyncEmailVerification(ctx context.Context, userID string) (*entity.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("Account", err)
	}

	providerUser, err := uc.session.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if providerUser.EmailVerified && !account.IsEmailVerified {
		account.IsEmailVerified = true

		fields := map[string]interface{}{
			"isEmailVerified": true,
		}
		// Verification can be the last missing piece of completeness; a
		// business waiting on it moves into review with the same write.
		if account.IsBusiness() && account.BusinessInfo != nil &&
			account.BusinessInfo.AdvanceToReviewIfComplete(account.IsProfileComplete()) {
			fields["businessInfo"] = map[string]interface{}{
				"status": account.BusinessInfo.Status,
			}
		}

		if err := uc.accountRepo.UpdateFields(ctx, userID, fields); err != nil {
			logger.LogSyncError(userID, "isEmailVerified", err)
		}
	}

	return account, nil
}

// AddDocument appends an uploaded-document descriptor and advances the
// business lifecycle: the move into review is implicit, triggered the moment
// the profile becomes complete. There is no separate submit action.
func (uc *UserUseCase) AddDocument(ctx context.Context, userID string, doc entity.Document) (*entity.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("Account", err)
	}
	if !account.IsBusiness() || account.BusinessInfo == nil {
		return nil, errors.BadRequest("Only business accounts upload verification documents", nil)
	}
	if account.BusinessInfo.Status == entity.ApprovalApproved {
		return nil, errors.BadRequest("This business is already approved", nil)
	}

	account.Documents = append(account.Documents, doc)
	account.BusinessInfo.MarkDocumentsSubmitted(account.IsProfileComplete(), time.Now())
	account.UpdatedAt = time.Now()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Internal("Failed to save document", err)
	}

	return account, nil
}

func (uc *UserUseCase) RemoveDocument(ctx context.Context, userID, documentID string) (*entity.Account, *entity.Document, error) {
	account, err := uc.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, errors.NotFound("Account", err)
	}

	var removed *entity.Document
	kept := account.Documents[:0]
	for i := range account.Documents {
		if account.Documents[i].ID == documentID {
			doc := account.Documents[i]
			removed = &doc
			continue
		}
		kept = append(kept, account.Documents[i])
	}
	if removed == nil {
		return nil, nil, errors.NotFound("Document", nil)
	}
	account.Documents = kept
	account.UpdatedAt = time.Now()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, nil, errors.Internal("Failed to remove document", err)
	}

	return account, removed, nil
}
