package dto

import (
	"github.com/google/uuid"
)

// DateLayout is the wire format of a job's end date.
const DateLayout = "2006-01-02"

// CreateJobRequest defines the structure for posting a job.
type CreateJobRequest struct {
	RecruiterID uuid.UUID `json:"recruiter_id" validate:"required"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"omitempty,max=5000"`
	Role        string    `json:"role" validate:"omitempty,max=200"`
	Location    string    `json:"location" validate:"omitempty,max=200"`
	Skills      string    `json:"skills" validate:"omitempty,max=500"`
	Experience  int       `json:"experience" validate:"gte=0"` // In years
	Salary      string    `json:"salary" validate:"omitempty,max=100"`
	EndDate     string    `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// ListJobsRequest defines the filters for the active job listing.
type ListJobsRequest struct {
	Keyword       string `form:"keyword" validate:"omitempty,max=200"`
	Location      string `form:"location" validate:"omitempty,max=200"`
	MaxExperience *int   `form:"max_experience" validate:"omitempty,gte=0"`
	Limit         int    `form:"limit,default=0" validate:"omitempty,gte=0,lte=100"`
	Offset        int    `form:"offset,default=0" validate:"omitempty,gte=0"`
}

type GetJobByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"` // From path
}

type ListJobsByRecruiterRequest struct {
	RecruiterID uuid.UUID `json:"-" validate:"required"` // From path
}

// DeleteJobRequest names the job and the user asking for its removal.
type DeleteJobRequest struct {
	ID      uuid.UUID `json:"-" validate:"required"` // From path
	ActorID uuid.UUID `json:"-" validate:"required"` // From query
}

type JobResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Role        string    `json:"role"`
	Location    string    `json:"location"`
	Skills      string    `json:"skills"`
	Experience  int       `json:"experience"`
	Salary      string    `json:"salary"`
	EndDate     string    `json:"end_date"`
	RecruiterID uuid.UUID `json:"recruiter_id"`
	PostedAt    string    `json:"posted_at"`
}
