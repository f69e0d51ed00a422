package dto

import "github.com/google/uuid"

type AdminStatsRequest struct {
	AdminID uuid.UUID `json:"-" validate:"required"` // From query
}
