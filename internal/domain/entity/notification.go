package entity

import (
	"time"
)

type NotificationType string

const (
	NotificationBusinessApproved NotificationType = "business_approved"
	NotificationBusinessRejected NotificationType = "business_rejected"
)

// Notification is a transient event pushed to a connected account owner.
// Events are not persisted; the underlying state (approval status, rejection
// reason) lives on the profile document.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Reason    string           `json:"reason,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
