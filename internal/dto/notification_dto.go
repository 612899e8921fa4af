package dto

import (
	"time"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID      `json:"id"`
	TypeCode  string         `json:"type_code"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	IsRead    bool           `json:"is_read"`
	ReadAt    *time.Time     `json:"read_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type MarkReadRequest struct {
	NotificationIds []uuid.UUID `json:"notification_ids" validate:"required,min=1"`
}

// WsMessage is the envelope pushed over the notification websocket.
type WsMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}
