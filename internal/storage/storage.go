package storage

import (
	"context"
	"time"

	"naukri-api/internal/models"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error) // ErrConflict on duplicate (email, role)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	// DeleteByEmail removes every account with the email together with the jobs, applications
	// and interviews that reference them. Returns the removed accounts.
	DeleteByEmail(ctx context.Context, email string) ([]models.User, error)
	CountByRole(ctx context.Context) (map[models.Role]int, error)
}

// JobFilter narrows the active job listing. Zero values mean "no filter".
type JobFilter struct {
	Today         time.Time // Jobs with EndDate before this day are excluded
	Keyword       string
	Location      string
	MaxExperience *int
	Limit         int
	Offset        int
}

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	ListActive(ctx context.Context, filter JobFilter) ([]models.Job, error)
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Job, error)
	// Delete removes the job and, in the same step, its applications and interviews.
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, today time.Time) (total int, active int, err error)
}

// ApplicationRepository defines the interface for application data operations.
// Returned applications carry the title of their job.
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) (*models.Application, error) // ErrConflict on duplicate pair
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.Application, error)
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus, at time.Time) (*models.Application, error)
	UpdateApproval(ctx context.Context, id uuid.UUID, approval models.ApprovalState, at time.Time) (*models.Application, error)
	CountByStatus(ctx context.Context) (map[models.ApplicationStatus]int, map[models.ApprovalState]int, error)
}

// MessageRepository defines the interface for the append-only messaging log.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) (*models.Message, error)
	// CreateLinked stores msg only while an application of candidateID to a job owned by
	// recruiterID is shortlisted and approved. The check and the append are one atomic step;
	// it returns false without storing when no such application exists.
	CreateLinked(ctx context.Context, msg *models.Message, candidateID, recruiterID uuid.UUID) (*models.Message, bool, error)
	// ListForUser returns messages sent or received by userID, oldest first.
	// A non-nil peerID restricts the result to the conversation with that user.
	ListForUser(ctx context.Context, userID uuid.UUID, peerID *uuid.UUID) ([]models.Message, error)
	Count(ctx context.Context) (int, error)
}

// InterviewRepository defines the interface for the append-only interview records.
type InterviewRepository interface {
	Create(ctx context.Context, iv *models.Interview) (*models.Interview, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.Interview, error)
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Interview, error)
	ListAll(ctx context.Context) ([]models.Interview, error)
	Count(ctx context.Context) (int, error)
}
