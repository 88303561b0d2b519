package entity

import (
	"time"
)

// ApprovalStatus is the explicit lifecycle state of a business account.
// It is stored on the profile document; the derived booleans and timestamps
// below exist for display and auditing, never for state inference.
type ApprovalStatus string

const (
	ApprovalCreated          ApprovalStatus = "created"
	ApprovalDocumentsPending ApprovalStatus = "documents_pending"
	ApprovalUnderReview      ApprovalStatus = "under_review"
	ApprovalApproved         ApprovalStatus = "approved"
	ApprovalRejected         ApprovalStatus = "rejected"
)

var approvalTransitions = map[ApprovalStatus][]ApprovalStatus{
	ApprovalCreated:          {ApprovalDocumentsPending, ApprovalUnderReview},
	ApprovalDocumentsPending: {ApprovalUnderReview},
	ApprovalUnderReview:      {ApprovalApproved, ApprovalRejected},
	ApprovalRejected:         {ApprovalDocumentsPending, ApprovalUnderReview},
	// Approved accounts have no outgoing transitions. Revoking an approval
	// is a product decision that has not been made; until it is, approval
	// is final.
	ApprovalApproved: {},
}

func (s ApprovalStatus) CanTransitionTo(next ApprovalStatus) bool {
	for _, allowed := range approvalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type BusinessInfo struct {
	CompanyName string         `json:"company_name" firestore:"companyName"`
	Status      ApprovalStatus `json:"status" firestore:"status"`
	IsApproved  bool           `json:"is_approved" firestore:"isApproved"`
	IsCertified bool           `json:"is_certified" firestore:"isCertified"`

	DocumentsUploadedAt *time.Time `json:"documents_uploaded_at,omitempty" firestore:"documentsUploadedAt,omitempty"`

	RejectionReason string     `json:"rejection_reason,omitempty" firestore:"rejectionReason,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty" firestore:"approvedAt,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty" firestore:"rejectedAt,omitempty"`
	ApprovedBy      string     `json:"approved_by,omitempty" firestore:"approvedBy,omitempty"`
	RejectedBy      string     `json:"rejected_by,omitempty" firestore:"rejectedBy,omitempty"`
}

// MarkDocumentsSubmitted records a document submission and, when the account
// is complete, moves it into review. A rejected account re-enters the
// pipeline here; the prior rejection residue is cleared in the same step so
// readers never observe a business that is both rejected and pending.
func (b *BusinessInfo) MarkDocumentsSubmitted(complete bool, now time.Time) {
	if b.Status == ApprovalRejected {
		b.RejectionReason = ""
		b.RejectedAt = nil
		b.RejectedBy = ""
		b.Status = ApprovalDocumentsPending
	}
	b.DocumentsUploadedAt = &now
	if !b.AdvanceToReviewIfComplete(complete) && b.Status == ApprovalCreated {
		b.Status = ApprovalDocumentsPending
	}
}

// AdvanceToReviewIfComplete moves a waiting business into review the moment
// the profile is complete. Completeness can flip true on any profile write,
// not just a document upload, so every such write path calls this. Rejected
// accounts are excluded: they re-enter only through a document resubmission,
// which also clears the rejection residue.
func (b *BusinessInfo) AdvanceToReviewIfComplete(complete bool) bool {
	if !complete {
		return false
	}
	switch b.Status {
	case ApprovalCreated, ApprovalDocumentsPending:
		b.Status = ApprovalUnderReview
		return true
	}
	return false
}

func (b *BusinessInfo) MarkApproved(adminID string, now time.Time) {
	b.Status = ApprovalApproved
	b.IsApproved = true
	b.ApprovedAt = &now
	b.ApprovedBy = adminID
}

func (b *BusinessInfo) MarkRejected(adminID, reason string, now time.Time) {
	b.Status = ApprovalRejected
	b.IsApproved = false
	b.RejectionReason = reason
	b.RejectedAt = &now
	b.RejectedBy = adminID
}
