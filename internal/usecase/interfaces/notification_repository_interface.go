package interfaces

import (
	"context"
	"ikhaya/internal/domain/entities"
	"time"
)

// INotificationRepository abstracts DynamoDB persistence for in-app notifications.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error)
	// MarkRead returns a zero Notification when id does not exist or belongs to another user.
	MarkRead(ctx context.Context, id, userID string) (entities.Notification, error)
	ListCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]entities.Notification, error)
	DeleteBatch(ctx context.Context, ids []string) error
}

// INotificationPreferencesRepository stores per-user email preferences.
// GetByUserID returns a zero value (UserID == "") when none were saved.
type INotificationPreferencesRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.NotificationPreferences, error)
	Upsert(ctx context.Context, p entities.NotificationPreferences) (entities.NotificationPreferences, error)
}

// IUserRepository resolves the email address of a user.
type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
}
