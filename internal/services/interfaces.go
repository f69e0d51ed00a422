package services

import (
	"context"

	"naukri-api/internal/models"
	"naukri-api/internal/transport/dto"
)

// IdentityService defines the business logic around accounts.
type IdentityService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error)
	GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
	AdminUpdateProfile(ctx context.Context, req *dto.AdminUpdateUserRequest) (*models.User, error)
	Ban(ctx context.Context, req *dto.BanUserRequest) ([]models.User, error) // Returns the removed accounts
}

// JobService defines the business logic of the job catalog.
type JobService interface {
	Post(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	ListActive(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error)
	GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	ListByRecruiter(ctx context.Context, req *dto.ListJobsByRecruiterRequest) ([]models.Job, error)
	Delete(ctx context.Context, req *dto.DeleteJobRequest) error
}

// ApplicationService defines the business logic of the application ledger.
type ApplicationService interface {
	Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error)
	GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.Application, error)
	ListForCandidate(ctx context.Context, req *dto.ListApplicationsByCandidateRequest) ([]models.Application, error)
	ListForRecruiter(ctx context.Context, req *dto.ListApplicationsByRecruiterRequest) ([]models.Application, error)
	ListForJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]models.Application, error)
	SetStatus(ctx context.Context, req *dto.SetStatusRequest) (*models.Application, error)
	SetApproval(ctx context.Context, req *dto.SetApprovalRequest) (*models.Application, error)
}

// MessageService defines the business logic of the messaging log.
type MessageService interface {
	Send(ctx context.Context, req *dto.SendMessageRequest) (*models.Message, error)
	ListForUser(ctx context.Context, req *dto.ListMessagesRequest) ([]models.Message, error)
}

// InterviewService defines the business logic of the interview records.
type InterviewService interface {
	Schedule(ctx context.Context, req *dto.ScheduleInterviewRequest) (*models.Interview, error)
	ListForUser(ctx context.Context, req *dto.ListInterviewsRequest) ([]models.Interview, error)
}

// AdminService serves the admin dashboard.
type AdminService interface {
	Stats(ctx context.Context, req *dto.AdminStatsRequest) (*models.Stats, error)
}
