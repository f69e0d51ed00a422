package dto

import (
	"time"

	"naukri-api/internal/models"

	"github.com/google/uuid"
)

type ScheduleInterviewRequest struct {
	CandidateID uuid.UUID `json:"candidate_id" validate:"required"`
	JobID       uuid.UUID `json:"job_id" validate:"required"`
	DateTime    time.Time `json:"date_time" validate:"required"` // RFC 3339
}

// ListInterviewsRequest lists interviews as seen by UserID acting in Role.
type ListInterviewsRequest struct {
	UserID uuid.UUID   `json:"-" validate:"required"` // From query
	Role   models.Role `json:"-" validate:"required,oneof=candidate recruiter admin"`
}

type InterviewResponse struct {
	ID          uuid.UUID `json:"id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	JobID       uuid.UUID `json:"job_id"`
	DateTime    string    `json:"date_time"`
	Status      string    `json:"status"`
	CreatedAt   string    `json:"created_at"`
}
