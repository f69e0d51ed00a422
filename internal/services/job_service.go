package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"naukri-api/internal/models"
	"naukri-api/internal/storage"
	"naukri-api/internal/transport/dto"

	"github.com/google/uuid"
)

type jobService struct {
	jobRepo  storage.JobRepository
	userRepo storage.UserRepository
	cal      Calendar
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobRepo storage.JobRepository, userRepo storage.UserRepository, cal Calendar) JobService {
	return &jobService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		cal:      cal,
	}
}

// Post stores a job for an existing recruiter. A past end date is accepted; the job is simply
// never listed as active.
func (s *jobService) Post(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.Experience < 0 {
		return nil, fmt.Errorf("%w: experience cannot be negative", ErrValidation)
	}
	endDate, err := ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	recruiter, err := findUser(ctx, s.userRepo, req.RecruiterID, "recruiter")
	if err != nil {
		return nil, err
	}
	if recruiter.Role != models.RoleRecruiter {
		log.Printf("Post: user %s with role %s tried to post a job", recruiter.ID, recruiter.Role)
		return nil, fmt.Errorf("%w: only recruiters can post jobs", ErrForbidden)
	}

	job := &models.Job{
		ID:          uuid.New(),
		Title:       title,
		Description: req.Description,
		Role:        req.Role,
		Location:    req.Location,
		Skills:      req.Skills,
		Experience:  req.Experience,
		Salary:      req.Salary,
		EndDate:     endDate,
		RecruiterID: recruiter.ID,
		PostedAt:    s.cal.Now(),
	}

	created, err := s.jobRepo.Create(ctx, job)
	if err != nil {
		log.Printf("Post: Error creating job in repo: %v", err)
		return nil, mapRepoError(err, "creating job")
	}
	return created, nil
}

func (s *jobService) ListActive(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	if req.Limit < 0 || req.Offset < 0 {
		return nil, fmt.Errorf("%w: limit and offset cannot be negative", ErrValidation)
	}
	filter := storage.JobFilter{
		Today:         s.cal.Today(),
		Keyword:       req.Keyword,
		Location:      req.Location,
		MaxExperience: req.MaxExperience,
		Limit:         req.Limit,
		Offset:        req.Offset,
	}
	jobs, err := s.jobRepo.ListActive(ctx, filter)
	if err != nil {
		return nil, mapRepoError(err, "listing active jobs")
	}
	return jobs, nil
}

// GetByID returns the job whether or not it has expired.
func (s *jobService) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", req.ID))
	}
	return job, nil
}

func (s *jobService) ListByRecruiter(ctx context.Context, req *dto.ListJobsByRecruiterRequest) ([]models.Job, error) {
	if _, err := findUser(ctx, s.userRepo, req.RecruiterID, "recruiter"); err != nil {
		return nil, err
	}
	jobs, err := s.jobRepo.ListByRecruiter(ctx, req.RecruiterID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing jobs of recruiter %s", req.RecruiterID))
	}
	return jobs, nil
}

// Delete removes a job together with its applications and interviews. Only the owning recruiter
// or an admin may do so.
func (s *jobService) Delete(ctx context.Context, req *dto.DeleteJobRequest) error {
	job, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching job %s for deletion", req.ID))
	}

	if job.RecruiterID != req.ActorID {
		admin, err := isAdmin(ctx, s.userRepo, req.ActorID)
		if err != nil {
			return err
		}
		if !admin {
			log.Printf("Delete: Forbidden attempt by user %s on job %s owned by %s", req.ActorID, job.ID, job.RecruiterID)
			return fmt.Errorf("%w: only the owning recruiter or an admin can delete a job", ErrForbidden)
		}
	}

	if err := s.jobRepo.Delete(ctx, job.ID); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting job %s", job.ID))
	}
	return nil
}
