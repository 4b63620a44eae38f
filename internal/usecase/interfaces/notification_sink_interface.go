package interfaces

import (
	"context"
	"ikhaya/internal/domain/entities"
)

// INotificationSink receives the notifications emitted by the lease and
// billing workflows. Delivery is best-effort: callers log a returned error and
// carry on, the state change that produced the notification is never undone.
type INotificationSink interface {
	Notify(ctx context.Context, n entities.Notification) error
}

// EmailMessage is one outgoing email.
type EmailMessage struct {
	UserID  string                    `json:"user_id"`
	Type    entities.NotificationType `json:"type"`
	To      string                    `json:"to"`
	Subject string                    `json:"subject"`
	Text    string                    `json:"text,omitempty"`
	HTML    string                    `json:"html,omitempty"`
}

// IEmailSender hands an email to the delivery channel (queue or log stub).
type IEmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}
