package dto

import (
	"github.com/google/uuid"
)

type SendMessageRequest struct {
	FromID uuid.UUID `json:"from_id" validate:"required"`
	ToID   uuid.UUID `json:"to_id" validate:"required"`
	Text   string    `json:"text" validate:"required,max=5000"`
}

// ListMessagesRequest selects a user's messages, optionally only those exchanged with PeerID.
type ListMessagesRequest struct {
	UserID uuid.UUID  `json:"-" validate:"required"` // From query
	PeerID *uuid.UUID `json:"-"`                     // From query, optional
}

type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	FromID    uuid.UUID `json:"from_id"`
	ToID      uuid.UUID `json:"to_id"`
	Text      string    `json:"text"`
	Timestamp string    `json:"timestamp"`
}
