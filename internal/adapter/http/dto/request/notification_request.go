package request

import (
	"ikhaya/internal/domain/entities"
	"ikhaya/internal/usecase"
)

type UpdatePreferencesRequest struct {
	EmailEnabled bool                               `json:"email_enabled"`
	Types        map[entities.NotificationType]bool `json:"types"`
}

func (r UpdatePreferencesRequest) ToEntity(userID string) entities.NotificationPreferences {
	return entities.NotificationPreferences{UserID: userID, EmailEnabled: r.EmailEnabled, Types: r.Types}
}

// SendEmailRequest mirrors the sendEmailNotification callable payload.
type SendEmailRequest struct {
	UserID  string                    `json:"userId"`
	Type    entities.NotificationType `json:"type"`
	Subject string                    `json:"subject"`
	Text    string                    `json:"text"`
	HTML    string                    `json:"html"`
}

func (r SendEmailRequest) ToInput(callerID string) usecase.SendEmailInput {
	return usecase.SendEmailInput{
		CallerID: callerID,
		UserID:   r.UserID,
		Type:     r.Type,
		Subject:  r.Subject,
		Text:     r.Text,
		HTML:     r.HTML,
	}
}
