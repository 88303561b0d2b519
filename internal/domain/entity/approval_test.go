package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApprovalTransitions(t *testing.T) {
	tests := []struct {
		from    ApprovalStatus
		to      ApprovalStatus
		allowed bool
	}{
		{ApprovalCreated, ApprovalDocumentsPending, true},
		{ApprovalCreated, ApprovalUnderReview, true},
		{ApprovalDocumentsPending, ApprovalUnderReview, true},
		{ApprovalDocumentsPending, ApprovalApproved, false},
		{ApprovalUnderReview, ApprovalApproved, true},
		{ApprovalUnderReview, ApprovalRejected, true},
		{ApprovalRejected, ApprovalDocumentsPending, true},
		{ApprovalRejected, ApprovalUnderReview, true},
		{ApprovalRejected, ApprovalApproved, false},
		// Approval is final until revocation becomes a product feature.
		{ApprovalApproved, ApprovalRejected, false},
		{ApprovalApproved, ApprovalUnderReview, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestMarkDocumentsSubmittedMovesToReviewWhenComplete(t *testing.T) {
	info := &BusinessInfo{CompanyName: "Acme", Status: ApprovalDocumentsPending}
	now := time.Now()

	info.MarkDocumentsSubmitted(true, now)

	assert.Equal(t, ApprovalUnderReview, info.Status)
	assert.NotNil(t, info.DocumentsUploadedAt)
	assert.Equal(t, now, *info.DocumentsUploadedAt)
}

func TestMarkDocumentsSubmittedStaysPendingWhenIncomplete(t *testing.T) {
	info := &BusinessInfo{Status: ApprovalCreated}

	info.MarkDocumentsSubmitted(false, time.Now())

	assert.Equal(t, ApprovalDocumentsPending, info.Status)
}

func TestResubmissionClearsRejectionResidue(t *testing.T) {
	rejectedAt := time.Now().Add(-time.Hour)
	info := &BusinessInfo{
		CompanyName:     "Acme",
		Status:          ApprovalRejected,
		RejectionReason: "blurry documents",
		RejectedAt:      &rejectedAt,
		RejectedBy:      "admin-1",
	}

	info.MarkDocumentsSubmitted(true, time.Now())

	// A reader must never observe a business that is both rejected and
	// pending; the residue goes away with the same write.
	assert.Empty(t, info.RejectionReason)
	assert.Nil(t, info.RejectedAt)
	assert.Empty(t, info.RejectedBy)
	assert.Equal(t, ApprovalUnderReview, info.Status)
}

func TestAdvanceToReviewIfComplete(t *testing.T) {
	tests := []struct {
		name     string
		status   ApprovalStatus
		complete bool
		advanced bool
		want     ApprovalStatus
	}{
		{"created and complete", ApprovalCreated, true, true, ApprovalUnderReview},
		{"pending and complete", ApprovalDocumentsPending, true, true, ApprovalUnderReview},
		{"pending but incomplete", ApprovalDocumentsPending, false, false, ApprovalDocumentsPending},
		{"rejected needs resubmission", ApprovalRejected, true, false, ApprovalRejected},
		{"already under review", ApprovalUnderReview, true, false, ApprovalUnderReview},
		{"approved is final", ApprovalApproved, true, false, ApprovalApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &BusinessInfo{CompanyName: "Acme", Status: tt.status}
			assert.Equal(t, tt.advanced, info.AdvanceToReviewIfComplete(tt.complete))
			assert.Equal(t, tt.want, info.Status)
		})
	}
}

func TestMarkApproved(t *testing.T) {
	info := &BusinessInfo{CompanyName: "Acme", Status: ApprovalUnderReview}
	now := time.Now()

	info.MarkApproved("admin-1", now)

	assert.Equal(t, ApprovalApproved, info.Status)
	assert.True(t, info.IsApproved)
	assert.Equal(t, "admin-1", info.ApprovedBy)
	assert.Equal(t, now, *info.ApprovedAt)
}

func TestMarkRejected(t *testing.T) {
	info := &BusinessInfo{CompanyName: "Acme", Status: ApprovalUnderReview, IsApproved: false}
	now := time.Now()

	info.MarkRejected("admin-1", "expired license", now)

	assert.Equal(t, ApprovalRejected, info.Status)
	assert.False(t, info.IsApproved)
	assert.Equal(t, "expired license", info.RejectionReason)
	assert.Equal(t, "admin-1", info.RejectedBy)
	assert.Equal(t, now, *info.RejectedAt)
}
