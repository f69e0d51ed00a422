package dto

import (
	"time"

	"naukri-api/internal/models"

	"github.com/google/uuid"
)

type ApplyRequest struct {
	CandidateID uuid.UUID `json:"candidate_id" validate:"required"`
	JobID       uuid.UUID `json:"job_id" validate:"required"`
}

type GetApplicationByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"` // From path
}

type ListApplicationsByCandidateRequest struct {
	CandidateID uuid.UUID `json:"-" validate:"required"` // From path
}

type ListApplicationsByRecruiterRequest struct {
	RecruiterID uuid.UUID `json:"-" validate:"required"` // From path
}

type ListApplicationsByJobRequest struct {
	JobID uuid.UUID `json:"-" validate:"required"` // From path
}

// SetStatusRequest moves an application to any of the three statuses.
type SetStatusRequest struct {
	ID          uuid.UUID                `json:"-" validate:"required"` // From path
	RecruiterID uuid.UUID                `json:"recruiter_id" validate:"required"`
	Status      models.ApplicationStatus `json:"status" validate:"required,oneof=applied shortlisted rejected"`
}

// RecruiterActionRequest is the body of the shortlist and reject shortcuts.
type RecruiterActionRequest struct {
	RecruiterID uuid.UUID `json:"recruiter_id" validate:"required"`
}

// SetApprovalRequest approves or blocks a shortlisted application.
type SetApprovalRequest struct {
	ID      uuid.UUID `json:"-" validate:"required"` // From path
	ActorID uuid.UUID `json:"actor_id" validate:"required"`
	Approve *bool     `json:"approve" validate:"required"`
}

type ApplicationResponse struct {
	ID          uuid.UUID                `json:"id"`
	CandidateID uuid.UUID                `json:"candidate_id"`
	JobID       uuid.UUID                `json:"job_id"`
	JobTitle    string                   `json:"job_title"`
	Status      models.ApplicationStatus `json:"status"`
	Approval    models.ApprovalState     `json:"approval"`
	AppliedAt   string                   `json:"applied_at"`
	UpdatedAt   string                   `json:"updated_at"`
}

// FormatTime renders timestamps the way every response does.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
