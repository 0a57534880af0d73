package notification

import (
	"time"
)

const TypeStatusChange = "status_change"

type Payload struct {
	ApplicationID string `json:"application_id,omitempty"`
	JobTitle      string `json:"job_title,omitempty"`
	OldStatus     string `json:"old_status,omitempty"`
	NewStatus     string `json:"new_status,omitempty"`
	Link          string `json:"link,omitempty"`
}

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Payload   Payload   `json:"payload"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
