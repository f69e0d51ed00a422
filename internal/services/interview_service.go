package services

import (
	"context"
	"fmt"
	"log"

	"naukri-api/internal/metrics"
	"naukri-api/internal/models"
	"naukri-api/internal/storage"
	"naukri-api/internal/transport/dto"

	"github.com/google/uuid"
)

type interviewService struct {
	ivRepo   storage.InterviewRepository
	jobRepo  storage.JobRepository
	userRepo storage.UserRepository
	cal      Calendar
}

// NewInterviewService creates a new instance of InterviewService.
func NewInterviewService(ivRepo storage.InterviewRepository, jobRepo storage.JobRepository, userRepo storage.UserRepository, cal Calendar) InterviewService {
	return &interviewService{
		ivRepo:   ivRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		cal:      cal,
	}
}

// Schedule records an interview. Overlapping slots are not detected.
func (s *interviewService) Schedule(ctx context.Context, req *dto.ScheduleInterviewRequest) (*models.Interview, error) {
	if req.DateTime.IsZero() {
		return nil, fmt.Errorf("%w: date_time is required", ErrValidation)
	}
	if _, err := findUser(ctx, s.userRepo, req.CandidateID, "candidate"); err != nil {
		return nil, err
	}
	if _, err := s.jobRepo.GetByID(ctx, req.JobID); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for interview", req.JobID))
	}

	iv := &models.Interview{
		ID:          uuid.New(),
		CandidateID: req.CandidateID,
		JobID:       req.JobID,
		DateTime:    req.DateTime.UTC(),
		Status:      models.InterviewStatusScheduled,
		CreatedAt:   s.cal.Now(),
	}
	created, err := s.ivRepo.Create(ctx, iv)
	if err != nil {
		return nil, mapRepoError(err, "scheduling interview")
	}

	metrics.InterviewScheduled()
	log.Printf("Interview %s scheduled for candidate %s on job %s", created.ID, created.CandidateID, created.JobID)
	return created, nil
}

// ListForUser returns the interviews visible to the user in the given role: their own as a
// candidate, those on their jobs as a recruiter, all of them as an admin.
func (s *interviewService) ListForUser(ctx context.Context, req *dto.ListInterviewsRequest) ([]models.Interview, error) {
	if !req.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
	}
	user, err := findUser(ctx, s.userRepo, req.UserID, "user")
	if err != nil {
		return nil, err
	}
	if user.Role != req.Role {
		return nil, fmt.Errorf("%w: user %s is not a %s", ErrForbidden, user.ID, req.Role)
	}

	var ivs []models.Interview
	switch req.Role {
	case models.RoleCandidate:
		ivs, err = s.ivRepo.ListByCandidate(ctx, user.ID)
	case models.RoleRecruiter:
		ivs, err = s.ivRepo.ListByRecruiter(ctx, user.ID)
	case models.RoleAdmin:
		ivs, err = s.ivRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing interviews for %s", user.ID))
	}
	return ivs, nil
}
