package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"voltmarket/internal/domain/entity"
	"voltmarket/internal/domain/repository"
	"voltmarket/pkg/errors"
)

// ApprovalUseCase drives the admin side of the business lifecycle. Approve
// and reject are never applied optimistically: the new state is written to
// the store first, and a failed write leaves the previously observed state
// in place.
type ApprovalUseCase struct {
	accountRepo repository.AccountRepository
	session     SessionClient
	notifier    Notifier
}

func NewApprovalUseCase(accountRepo repository.AccountRepository, session SessionClient, notifier Notifier) *ApprovalUseCase {
	return &ApprovalUseCase{
		accountRepo: accountRepo,
		session:     session,
		notifier:    notifier,
	}
}

func (uc *ApprovalUseCase) Approve(ctx context.Context, adminID, userID string) (*entity.Account, error) {
	account, err := uc.loadBusiness(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !account.BusinessInfo.Status.CanTransitionTo(entity.ApprovalApproved) {
		return nil, errors.BadRequest(
			fmt.Sprintf("A business in state %q cannot be approved", account.BusinessInfo.Status), nil)
	}

	account.BusinessInfo.MarkApproved(adminID, time.Now())

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Internal("Failed to record approval", err)
	}

	uc.notifier.Notify(userID, entity.Notification{
		ID:        uuid.New().String(),
		Type:      entity.NotificationBusinessApproved,
		Message:   "Your business account has been approved",
		CreatedAt: time.Now(),
	})

	return account, nil
}

func (uc *ApprovalUseCase) Reject(ctx context.Context, adminID, userID, reason string) (*entity.Account, error) {
	// The reason is surfaced to the end user; an empty one is rejected
	// before any remote call is made.
	if strings.TrimSpace(reason) == "" {
		return nil, errors.BadRequest("A rejection reason is required", nil)
	}

	account, err := uc.loadBusiness(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !account.BusinessInfo.Status.CanTransitionTo(entity.ApprovalRejected) {
		return nil, errors.BadRequest(
			fmt.Sprintf("A business in state %q cannot be rejected", account.BusinessInfo.Status), nil)
	}

	account.BusinessInfo.MarkRejected(adminID, reason, time.Now())

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Internal("Failed to record rejection", err)
	}

	uc.notifier.Notify(userID, entity.Notification{
		ID:        uuid.New().String(),
		Type:      entity.NotificationBusinessRejected,
		Message:   "Your business account was not approved",
		Reason:    reason,
		CreatedAt: time.Now(),
	})

	return account, nil
}

func (uc *ApprovalUseCase) ListUnderReview(ctx context.Context, limit, offset int) ([]*entity.Account, int64, error) {
	return uc.accountRepo.FindBusinessesByStatus(ctx, entity.ApprovalUnderReview, limit, offset)
}

func (uc *ApprovalUseCase) ListAccounts(ctx context.Context, accountType string, limit, offset int) ([]*entity.Account, int64, error) {
	if accountType != "" {
		return uc.accountRepo.FindByField(ctx, "accountType", accountType, limit, offset)
	}
	return uc.accountRepo.FindByField(ctx, "status", "active", limit, offset)
}

// GrantAdmin writes the provider-signed admin claim for a uid. The caller
// has already passed the admin gate; the claim takes effect when the target
// refreshes their token.
func (uc *ApprovalUseCase) GrantAdmin(ctx context.Context, uid string, admin bool) error {
	return uc.session.SetAdminClaim(ctx, uid, admin)
}

func (uc *ApprovalUseCase) loadBusiness(ctx context.Context, userID string) (*entity.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("Account", err)
	}
	if !account.IsBusiness() || account.BusinessInfo == nil {
		return nil, errors.BadRequest("Account is not a business account", nil)
	}
	return account, nil
}
