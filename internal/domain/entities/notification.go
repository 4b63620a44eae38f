package entities

import "time"

type NotificationType string

const (
	NotificationTypeLeaseActivated  NotificationType = "lease_activated"
	NotificationTypeLeaseTerminated NotificationType = "lease_terminated"
	NotificationTypeLeaseExpiring   NotificationType = "lease_expiring"
	NotificationTypeLeaseExpired    NotificationType = "lease_expired"
	NotificationTypePaymentDue      NotificationType = "payment_due"
	NotificationTypePaymentReceived NotificationType = "payment_received"
)

// Valid reports whether t is one of the known notification types.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTypeLeaseActivated, NotificationTypeLeaseTerminated, NotificationTypeLeaseExpiring,
		NotificationTypeLeaseExpired, NotificationTypePaymentDue, NotificationTypePaymentReceived:
		return true
	}
	return false
}

type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "low"
	NotificationPriorityMedium NotificationPriority = "medium"
	NotificationPriorityHigh   NotificationPriority = "high"
)

// Notification is an in-app message for one user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id
type Notification struct {
	ID        string               `json:"id"`
	UserID    string               `json:"user_id"`
	Type      NotificationType     `json:"type"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Link      string               `json:"link,omitempty"`
	Priority  NotificationPriority `json:"priority"`
	Read      bool                 `json:"read"`
	CreatedAt time.Time            `json:"created_at"`
}

// NotificationPreferences controls email delivery for one user.
// A user without a stored document gets DefaultNotificationPreferences.
type NotificationPreferences struct {
	UserID       string                    `json:"user_id"`
	EmailEnabled bool                      `json:"email_enabled"`
	Types        map[NotificationType]bool `json:"types,omitempty"`
	UpdatedAt    time.Time                 `json:"updated_at"`
}

func DefaultNotificationPreferences(userID string) NotificationPreferences {
	return NotificationPreferences{UserID: userID, EmailEnabled: true}
}

// AllowsEmail reports whether an email of type t may be sent.
// Types missing from the map are enabled.
func (p NotificationPreferences) AllowsEmail(t NotificationType) bool {
	if !p.EmailEnabled {
		return false
	}
	enabled, ok := p.Types[t]
	return !ok || enabled
}
