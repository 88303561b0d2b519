package entity

import (
	"time"
)

type AccountType string

const (
	AccountTypeIndividual AccountType = "individual"
	AccountTypeBusiness   AccountType = "business"
)

type Account struct {
	ID              string      `json:"id" firestore:"id"`
	Email           string      `json:"email" firestore:"email"`
	FirstName       string      `json:"first_name" firestore:"firstName"`
	LastName        string      `json:"last_name" firestore:"lastName"`
	Phone           string      `json:"phone,omitempty" firestore:"phone,omitempty"`
	AccountType     AccountType `json:"account_type" firestore:"accountType"`
	IsEmailVerified bool        `json:"is_email_verified" firestore:"isEmailVerified"`
	RolesList       []string    `json:"roles_list,omitempty" firestore:"rolesList,omitempty"`
	Status          string      `json:"status" firestore:"status"`

	// Present only for business accounts. Individual accounts keep this nil.
	BusinessInfo *BusinessInfo `json:"business_info,omitempty" firestore:"businessInfo,omitempty"`

	Documents []Document `json:"documents,omitempty" firestore:"documents,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type Document struct {
	ID          string    `json:"id" firestore:"id"`
	Category    string    `json:"category" firestore:"category"`
	StoragePath string    `json:"storage_path" firestore:"storagePath"`
	URL         string    `json:"url" firestore:"url"`
	FileType    string    `json:"file_type" firestore:"fileType"`
	UploadedAt  time.Time `json:"uploaded_at" firestore:"uploadedAt"`
}

func (a *Account) IsBusiness() bool {
	return a != nil && a.AccountType == AccountTypeBusiness
}

// HasBasicInfo reports whether the identity fields every account needs are
// filled in. Email verification is part of basic info on purpose: an account
// with an unverified email is not usable yet, whatever its type.
func (a *Account) HasBasicInfo() bool {
	if a == nil {
		return false
	}
	return a.FirstName != "" && a.LastName != "" && a.Email != "" && a.IsEmailVerified
}

func (a *Account) HasDocuments() bool {
	return a.IsBusiness() && len(a.Documents) > 0
}

// IsProfileComplete derives whether the account may proceed past the setup
// flow. The result is never stored; callers recompute it from the current
// profile on every check.
func (a *Account) IsProfileComplete() bool {
	if a == nil {
		return false
	}
	if !a.HasBasicInfo() {
		return false
	}
	if a.AccountType == AccountTypeBusiness {
		return a.BusinessInfo != nil && a.BusinessInfo.CompanyName != "" && a.HasDocuments()
	}
	return true
}
