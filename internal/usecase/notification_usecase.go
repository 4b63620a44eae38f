package usecase

import (
	"context"
	"errors"
	"ikhaya/internal/domain/entities"
	"ikhaya/internal/usecase/interfaces"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated       = errors.New("authentication required")
	ErrNotificationUser      = errors.New("notification user is required")
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrEmailFieldsRequired   = errors.New("userId, type, subject and text or html are required")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserHasNoEmail        = errors.New("user has no email address")
	ErrEmailSenderNotEnabled = errors.New("email sender not configured")

	ErrUnknownNotificationType  = errors.New("unknown notification type")
	ErrPreferencesNotConfigured = errors.New("notification preferences store not configured")
)

// SendEmailInput is the payload of the sendEmailNotification callable.
type SendEmailInput struct {
	CallerID string
	UserID   string
	Type     entities.NotificationType
	Subject  string
	Text     string
	HTML     string
}

// EmailDispatchResult tells the caller whether the email was handed off and,
// when it was not, which preference blocked it.
type EmailDispatchResult struct {
	Sent   bool   `json:"sent"`
	Reason string `json:"reason,omitempty"`
}

// INotificationUseCase owns in-app notifications, email preferences and the
// email callable. It is also the INotificationSink used by the workflows.
type INotificationUseCase interface {
	Notify(ctx context.Context, n entities.Notification) error
	SendEmailNotification(ctx context.Context, in SendEmailInput) (EmailDispatchResult, error)
	ListNotifications(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, id string) (entities.Notification, error)
	GetPreferences(ctx context.Context, userID string) (entities.NotificationPreferences, error)
	UpdatePreferences(ctx context.Context, p entities.NotificationPreferences) (entities.NotificationPreferences, error)
	CleanupOldNotifications(ctx context.Context) (int, error)
}

type NotificationUseCase struct {
	repo   interfaces.INotificationRepository
	prefs  interfaces.INotificationPreferencesRepository
	users  interfaces.IUserRepository
	email  interfaces.IEmailSender
	policy BillingPolicy
	now    func() time.Time
}

var (
	_ INotificationUseCase         = (*NotificationUseCase)(nil)
	_ interfaces.INotificationSink = (*NotificationUseCase)(nil)
)

func NewNotificationUseCase(
	repo interfaces.INotificationRepository,
	prefs interfaces.INotificationPreferencesRepository,
	users interfaces.IUserRepository,
	email interfaces.IEmailSender,
	policy BillingPolicy,
) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, prefs: prefs, users: users, email: email, policy: policy, now: time.Now}
}

// Notify stores the in-app notification and, when the user's preferences
// allow it, queues the matching email. Only the in-app write can fail the call.
func (u *NotificationUseCase) Notify(ctx context.Context, n entities.Notification) error {
	n.UserID = strings.TrimSpace(n.UserID)
	if n.UserID == "" {
		return ErrNotificationUser
	}
	n.ID = uuid.NewString()
	n.Read = false
	n.CreatedAt = u.now().UTC()
	if n.Priority == "" {
		n.Priority = entities.NotificationPriorityMedium
	}

	created, err := u.repo.Create(ctx, n)
	if err != nil {
		log.Printf("[notification][usecase] create failed user_id=%s type=%s err=%v", n.UserID, n.Type, err)
		return err
	}
	log.Printf("[notification][usecase] created notification_id=%s user_id=%s type=%s", created.ID, created.UserID, created.Type)

	prefs, err := u.GetPreferences(ctx, created.UserID)
	if err != nil {
		log.Printf("[notification][usecase] preferences load failed user_id=%s err=%v", created.UserID, err)
		return nil
	}
	if !prefs.AllowsEmail(created.Type) {
		return nil
	}
	if err := u.dispatchEmail(ctx, created.UserID, created.Type, created.Title, created.Message, ""); err != nil {
		log.Printf("[notification][usecase] email dispatch failed user_id=%s type=%s err=%v", created.UserID, created.Type, err)
	}
	return nil
}

// SendEmailNotification validates the request, applies the target user's
// preferences and hands the email to the sender.
func (u *NotificationUseCase) SendEmailNotification(ctx context.Context, in SendEmailInput) (EmailDispatchResult, error) {
	if strings.TrimSpace(in.CallerID) == "" {
		return EmailDispatchResult{}, ErrUnauthenticated
	}
	in.UserID = strings.TrimSpace(in.UserID)
	in.Subject = strings.TrimSpace(in.Subject)
	if in.UserID == "" || in.Type == "" || in.Subject == "" || (strings.TrimSpace(in.Text) == "" && strings.TrimSpace(in.HTML) == "") {
		return EmailDispatchResult{}, ErrEmailFieldsRequired
	}
	if !in.Type.Valid() {
		return EmailDispatchResult{}, ErrUnknownNotificationType
	}

	prefs, err := u.GetPreferences(ctx, in.UserID)
	if err != nil {
		return EmailDispatchResult{}, err
	}
	if !prefs.EmailEnabled {
		log.Printf("[notification][email] skipped user_id=%s type=%s reason=email-disabled", in.UserID, in.Type)
		return EmailDispatchResult{Sent: false, Reason: "email notifications disabled"}, nil
	}
	if !prefs.AllowsEmail(in.Type) {
		log.Printf("[notification][email] skipped user_id=%s type=%s reason=type-disabled", in.UserID, in.Type)
		return EmailDispatchResult{Sent: false, Reason: "notification type disabled"}, nil
	}

	if err := u.dispatchEmail(ctx, in.UserID, in.Type, in.Subject, in.Text, in.HTML); err != nil {
		return EmailDispatchResult{}, err
	}
	return EmailDispatchResult{Sent: true}, nil
}

func (u *NotificationUseCase) dispatchEmail(ctx context.Context, userID string, t entities.NotificationType, subject, text, html string) error {
	if u.email == nil {
		return ErrEmailSenderNotEnabled
	}
	if u.users == nil {
		return ErrUserNotFound
	}
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.ID == "" {
		return ErrUserNotFound
	}
	if strings.TrimSpace(user.Email) == "" {
		return ErrUserHasNoEmail
	}
	msg := interfaces.EmailMessage{UserID: userID, Type: t, To: user.Email, Subject: subject, Text: text, HTML: html}
	if err := u.email.Send(ctx, msg); err != nil {
		return err
	}
	log.Printf("[notification][email] dispatched user_id=%s type=%s", userID, t)
	return nil
}

// ListNotifications returns the user's notifications, newest first.
func (u *NotificationUseCase) ListNotifications(ctx context.Context, userID string) ([]entities.Notification, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrNotificationUser
	}
	list, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (u *NotificationUseCase) MarkNotificationRead(ctx context.Context, userID, id string) (entities.Notification, error) {
	userID = strings.TrimSpace(userID)
	id = strings.TrimSpace(id)
	if userID == "" {
		return entities.Notification{}, ErrNotificationUser
	}
	if id == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	n, err := u.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}

// GetPreferences returns the stored preferences or the all-enabled default.
func (u *NotificationUseCase) GetPreferences(ctx context.Context, userID string) (entities.NotificationPreferences, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.NotificationPreferences{}, ErrNotificationUser
	}
	if u.prefs == nil {
		return entities.DefaultNotificationPreferences(userID), nil
	}
	p, err := u.prefs.GetByUserID(ctx, userID)
	if err != nil {
		return entities.NotificationPreferences{}, err
	}
	if p.UserID == "" {
		return entities.DefaultNotificationPreferences(userID), nil
	}
	return p, nil
}

func (u *NotificationUseCase) UpdatePreferences(ctx context.Context, p entities.NotificationPreferences) (entities.NotificationPreferences, error) {
	p.UserID = strings.TrimSpace(p.UserID)
	if p.UserID == "" {
		return entities.NotificationPreferences{}, ErrNotificationUser
	}
	if u.prefs == nil {
		return entities.NotificationPreferences{}, ErrPreferencesNotConfigured
	}
	p.UpdatedAt = u.now().UTC()
	saved, err := u.prefs.Upsert(ctx, p)
	if err != nil {
		log.Printf("[notification][usecase] preferences upsert failed user_id=%s err=%v", p.UserID, err)
		return entities.NotificationPreferences{}, err
	}
	return saved, nil
}

// CleanupOldNotifications deletes notifications older than the retention
// period in batches of at most CleanupBatchSize and returns how many were removed.
func (u *NotificationUseCase) CleanupOldNotifications(ctx context.Context) (int, error) {
	cutoff := u.now().UTC().Add(-u.policy.NotificationRetention)
	batchSize := u.policy.CleanupBatchSize
	if batchSize <= 0 {
		batchSize = 500
	}
	log.Printf("[notification][cleanup] start cutoff=%s batch_size=%d", cutoff.Format(time.RFC3339), batchSize)

	deleted := 0
	for {
		if err := ctx.Err(); err != nil {
			return deleted, err
		}
		batch, err := u.repo.ListCreatedBefore(ctx, cutoff, batchSize)
		if err != nil {
			log.Printf("[notification][cleanup] list failed deleted_so_far=%d err=%v", deleted, err)
			return deleted, err
		}
		if len(batch) == 0 {
			break
		}
		ids := make([]string, 0, len(batch))
		for _, n := range batch {
			ids = append(ids, n.ID)
		}
		if err := u.repo.DeleteBatch(ctx, ids); err != nil {
			log.Printf("[notification][cleanup] delete batch failed deleted_so_far=%d err=%v", deleted, err)
			return deleted, err
		}
		deleted += len(ids)
		log.Printf("[notification][cleanup] batch deleted count=%d total=%d", len(ids), deleted)
		if len(batch) < batchSize {
			break
		}
	}
	log.Printf("[notification][cleanup] done deleted=%d", deleted)
	return deleted, nil
}
