package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voltmarket/internal/domain/entity"
	"voltmarket/pkg/errors"
)

func pendingBusiness(id string) *entity.Account {
	return &entity.Account{
		ID:              id,
		Email:           id + "@example.com",
		FirstName:       "Volt",
		LastName:        "Dealer",
		AccountType:     entity.AccountTypeBusiness,
		IsEmailVerified: true,
		BusinessInfo: &entity.BusinessInfo{
			CompanyName: "Acme Electric",
			Status:      entity.ApprovalCreated,
		},
	}
}

func TestSyncEmailVerificationOneWay(t *testing.T) {
	repo := newFakeAccountRepo(&entity.Account{
		ID:    "u1",
		Email: "u1@example.com",
	})
	session := newFakeSession()
	session.users["u1"] = &ProviderUser{UID: "u1", Email: "u1@example.com", EmailVerified: true}
	uc := NewUserUseCase(repo, session)

	account, err := uc.SyncEmailVerification(context.Background(), "u1")
	require.NoError(t, err)

	assert.True(t, account.IsEmailVerified)
	stored, _ := repo.GetByID(context.Background(), "u1")
	assert.True(t, stored.IsEmailVerified)
}

func TestSyncEmailVerificationNeverUnverifies(t *testing.T) {
	repo := newFakeAccountRepo(&entity.Account{
		ID:              "u1",
		Email:           "u1@example.com",
		IsEmailVerified: true,
	})
	session := newFakeSession()
	session.users["u1"] = &ProviderUser{UID: "u1", Email: "u1@example.com", EmailVerified: false}
	uc := NewUserUseCase(repo, session)

	account, err := uc.SyncEmailVerification(context.Background(), "u1")
	require.NoError(t, err)

	assert.True(t, account.IsEmailVerified)
	assert.Zero(t, repo.updates)
}

func TestSyncEmailVerificationProceedsOnFailedWrite(t *testing.T) {
	repo := newFakeAccountRepo(&entity.Account{
		ID:    "u1",
		Email: "u1@example.com",
	})
	repo.updateErr = errors.Internal("store unavailable", nil)
	session := newFakeSession()
	session.users["u1"] = &ProviderUser{UID: "u1", Email: "u1@example.com", EmailVerified: true}
	uc := NewUserUseCase(repo, session)

	// The provider value is authoritative for this request even though the
	// repair write failed.
	account, err := uc.SyncEmailVerification(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, account.IsEmailVerified)
}

func TestSyncEmailVerificationCompletesBusinessIntoReview(t *testing.T) {
	// Documents went up while the email was still unverified, so the account
	// is waiting in documents_pending.
	account := pendingBusiness("b1")
	account.IsEmailVerified = false
	account.BusinessInfo.Status = entity.ApprovalDocumentsPending
	account.Documents = []entity.Document{{ID: "d1"}}
	repo := newFakeAccountRepo(account)
	session := newFakeSession()
	session.users["b1"] = &ProviderUser{UID: "b1", Email: "b1@example.com", EmailVerified: true}
	uc := NewUserUseCase(repo, session)

	got, err := uc.SyncEmailVerification(context.Background(), "b1")
	require.NoError(t, err)

	// Verification was the last missing piece; the same write moves the
	// business into review.
	assert.True(t, got.IsProfileComplete())
	assert.Equal(t, entity.ApprovalUnderReview, got.BusinessInfo.Status)

	stored, err := repo.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalUnderReview, stored.BusinessInfo.Status)
}

func TestUpdateProfileCompanyNameCompletesBusinessIntoReview(t *testing.T) {
	// Documents exist and the email is verified, but the company name was
	// never filled in.
	account := pendingBusiness("b1")
	account.BusinessInfo.CompanyName = ""
	account.BusinessInfo.Status = entity.ApprovalDocumentsPending
	account.Documents = []entity.Document{{ID: "d1"}}
	repo := newFakeAccountRepo(account)
	uc := NewUserUseCase(repo, newFakeSession())

	got, err := uc.UpdateProfile(context.Background(), "b1", UpdateProfileInput{CompanyName: "Acme Electric"})
	require.NoError(t, err)

	assert.Equal(t, entity.ApprovalUnderReview, got.BusinessInfo.Status)

	stored, err := repo.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalUnderReview, stored.BusinessInfo.Status)
}

func TestUpdateProfileDoesNotReviveRejectedBusiness(t *testing.T) {
	account := pendingBusiness("b1")
	account.BusinessInfo.Status = entity.ApprovalRejected
	account.BusinessInfo.RejectionReason = "blurry documents"
	account.Documents = []entity.Document{{ID: "d1"}}
	repo := newFakeAccountRepo(account)
	uc := NewUserUseCase(repo, newFakeSession())

	got, err := uc.UpdateProfile(context.Background(), "b1", UpdateProfileInput{FirstName: "New"})
	require.NoError(t, err)

	// Rejected accounts re-enter the pipeline only through a document
	// resubmission.
	assert.Equal(t, entity.ApprovalRejected, got.BusinessInfo.Status)
	assert.Equal(t, "blurry documents", got.BusinessInfo.RejectionReason)
}

func TestBusinessWithoutBusinessInfoIsRejected(t *testing.T) {
	// A malformed store document: business type without the nested info map.
	repo := newFakeAccountRepo(&entity.Account{
		ID:          "b1",
		AccountType: entity.AccountTypeBusiness,
	})
	uc := NewUserUseCase(repo, newFakeSession())

	_, err := uc.AddDocument(context.Background(), "b1", entity.Document{ID: "d1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.UpdateProfile(context.Background(), "b1", UpdateProfileInput{CompanyName: "Acme"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestAddDocumentTriggersReview(t *testing.T) {
	repo := newFakeAccountRepo(pendingBusiness("b1"))
	uc := NewUserUseCase(repo, newFakeSession())

	account, err := uc.AddDocument(context.Background(), "b1", entity.Document{
		ID:         "d1",
		Category:   "business_license",
		UploadedAt: time.Now(),
	})
	require.NoError(t, err)

	// Completeness is the trigger; there is no separate submit action.
	assert.Equal(t, entity.ApprovalUnderReview, account.BusinessInfo.Status)
	assert.NotNil(t, account.BusinessInfo.DocumentsUploadedAt)
}

func TestAddDocumentIncompleteAccountStaysPending(t *testing.T) {
	account := pendingBusiness("b1")
	account.IsEmailVerified = false
	repo := newFakeAccountRepo(account)
	uc := NewUserUseCase(repo, newFakeSession())

	got, err := uc.AddDocument(context.Background(), "b1", entity.Document{ID: "d1"})
	require.NoError(t, err)

	assert.Equal(t, entity.ApprovalDocumentsPending, got.BusinessInfo.Status)
}

func TestAddDocumentRejectedForIndividuals(t *testing.T) {
	repo := newFakeAccountRepo(&entity.Account{
		ID:          "u1",
		AccountType: entity.AccountTypeIndividual,
	})
	uc := NewUserUseCase(repo, newFakeSession())

	_, err := uc.AddDocument(context.Background(), "u1", entity.Document{ID: "d1"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestAddDocumentResubmissionAfterRejection(t *testing.T) {
	account := pendingBusiness("b1")
	rejectedAt := time.Now().Add(-time.Hour)
	account.BusinessInfo.Status = entity.ApprovalRejected
	account.BusinessInfo.RejectionReason = "blurry documents"
	account.BusinessInfo.RejectedAt = &rejectedAt
	repo := newFakeAccountRepo(account)
	uc := NewUserUseCase(repo, newFakeSession())

	got, err := uc.AddDocument(context.Background(), "b1", entity.Document{ID: "d2"})
	require.NoError(t, err)

	assert.Equal(t, entity.ApprovalUnderReview, got.BusinessInfo.Status)
	assert.Empty(t, got.BusinessInfo.RejectionReason)
	assert.Nil(t, got.BusinessInfo.RejectedAt)
}

func TestUpdateProfileCompanyNameOnlyForBusiness(t *testing.T) {
	repo := newFakeAccountRepo(&entity.Account{
		ID:          "u1",
		AccountType: entity.AccountTypeIndividual,
	})
	uc := NewUserUseCase(repo, newFakeSession())

	_, err := uc.UpdateProfile(context.Background(), "u1", UpdateProfileInput{CompanyName: "Acme"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestRemoveDocument(t *testing.T) {
	account := pendingBusiness("b1")
	account.Documents = []entity.Document{
		{ID: "d1", StoragePath: "documents/b1/a"},
		{ID: "d2", StoragePath: "documents/b1/b"},
	}
	repo := newFakeAccountRepo(account)
	uc := NewUserUseCase(repo, newFakeSession())

	got, removed, err := uc.RemoveDocument(context.Background(), "b1", "d1")
	require.NoError(t, err)

	assert.Equal(t, "documents/b1/a", removed.StoragePath)
	require.Len(t, got.Documents, 1)
	assert.Equal(t, "d2", got.Documents[0].ID)

	_, _, err = uc.RemoveDocument(context.Background(), "b1", "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
