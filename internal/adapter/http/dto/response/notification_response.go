package response

import (
	"time"

	"ikhaya/internal/domain/entities"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	Priority  string    `json:"priority"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		Priority:  string(n.Priority),
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func FromNotifications(ns []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromNotification(n))
	}
	return out
}

type PreferencesResponse struct {
	UserID       string          `json:"user_id"`
	EmailEnabled bool            `json:"email_enabled"`
	Types        map[string]bool `json:"types"`
	UpdatedAt    *time.Time      `json:"updated_at,omitempty"`
}

func FromPreferences(p entities.NotificationPreferences) PreferencesResponse {
	types := make(map[string]bool, len(p.Types))
	for k, v := range p.Types {
		types[string(k)] = v
	}
	res := PreferencesResponse{UserID: p.UserID, EmailEnabled: p.EmailEnabled, Types: types}
	if !p.UpdatedAt.IsZero() {
		at := p.UpdatedAt
		res.UpdatedAt = &at
	}
	return res
}
