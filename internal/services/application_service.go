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

type applicationService struct {
	appRepo  storage.ApplicationRepository
	jobRepo  storage.JobRepository
	userRepo storage.UserRepository
	cal      Calendar
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(appRepo storage.ApplicationRepository, jobRepo storage.JobRepository, userRepo storage.UserRepository, cal Calendar) ApplicationService {
	return &applicationService{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		cal:      cal,
	}
}

// Apply creates a new application of a candidate to an active job.
func (s *applicationService) Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error) {
	candidate, err := findUser(ctx, s.userRepo, req.CandidateID, "candidate")
	if err != nil {
		return nil, err
	}
	if candidate.Role != models.RoleCandidate {
		log.Printf("Apply: user %s with role %s tried to apply", candidate.ID, candidate.Role)
		return nil, fmt.Errorf("%w: only candidates can apply to jobs", ErrForbidden)
	}

	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for application", req.JobID))
	}
	if !job.ActiveOn(s.cal.Today()) {
		log.Printf("Apply: Attempt to apply to expired job %s (end date %s)", job.ID, job.EndDate.Format(dto.DateLayout))
		return nil, fmt.Errorf("%w: job is no longer accepting applications", ErrInvalidState)
	}

	now := s.cal.Now()
	app := &models.Application{
		ID:          uuid.New(),
		CandidateID: candidate.ID,
		JobID:       job.ID,
		Status:      models.ApplicationStatusApplied,
		Approval:    models.ApprovalPending,
		AppliedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.appRepo.Create(ctx, app)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("applying to job %s", job.ID))
	}

	metrics.Applied()
	return created, nil
}

func (s *applicationService) GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.Application, error) {
	app, err := s.appRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ID))
	}
	return app, nil
}

func (s *applicationService) ListForCandidate(ctx context.Context, req *dto.ListApplicationsByCandidateRequest) ([]models.Application, error) {
	if _, err := findUser(ctx, s.userRepo, req.CandidateID, "candidate"); err != nil {
		return nil, err
	}
	apps, err := s.appRepo.ListByCandidate(ctx, req.CandidateID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for candidate %s", req.CandidateID))
	}
	return apps, nil
}

func (s *applicationService) ListForRecruiter(ctx context.Context, req *dto.ListApplicationsByRecruiterRequest) ([]models.Application, error) {
	if _, err := findUser(ctx, s.userRepo, req.RecruiterID, "recruiter"); err != nil {
		return nil, err
	}
	apps, err := s.appRepo.ListByRecruiter(ctx, req.RecruiterID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for recruiter %s", req.RecruiterID))
	}
	return apps, nil
}

func (s *applicationService) ListForJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]models.Application, error) {
	if _, err := s.jobRepo.GetByID(ctx, req.JobID); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", req.JobID))
	}
	apps, err := s.appRepo.ListByJob(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for job %s", req.JobID))
	}
	return apps, nil
}

// loadWithJob fetches the application and the job it belongs to.
func (s *applicationService) loadWithJob(ctx context.Context, id uuid.UUID) (*models.Application, *models.Job, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, mapRepoError(err, fmt.Sprintf("fetching application %s", id))
	}
	job, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		log.Printf("loadWithJob: Error fetching job %s of application %s: %v", app.JobID, id, err)
		return nil, nil, mapRepoError(err, fmt.Sprintf("fetching job %s", app.JobID))
	}
	return app, job, nil
}

// SetStatus moves the application to any status. The approval state is left as it is.
func (s *applicationService) SetStatus(ctx context.Context, req *dto.SetStatusRequest) (*models.Application, error) {
	if !req.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
	}

	app, job, err := s.loadWithJob(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if job.RecruiterID != req.RecruiterID {
		log.Printf("SetStatus: Forbidden attempt by user %s on application %s (job owner %s)", req.RecruiterID, app.ID, job.RecruiterID)
		return nil, fmt.Errorf("%w: only the job's recruiter can change the status", ErrForbidden)
	}

	updated, err := s.appRepo.UpdateStatus(ctx, app.ID, req.Status, s.cal.Now())
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating status of application %s", app.ID))
	}

	metrics.StatusChanged(string(req.Status))
	log.Printf("Application %s status %s -> %s", app.ID, app.Status, updated.Status)
	return updated, nil
}

// SetApproval approves or blocks a shortlisted application. The job's recruiter or an admin may do it.
func (s *applicationService) SetApproval(ctx context.Context, req *dto.SetApprovalRequest) (*models.Application, error) {
	if req.Approve == nil {
		return nil, fmt.Errorf("%w: approve is required", ErrValidation)
	}

	app, job, err := s.loadWithJob(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if job.RecruiterID != req.ActorID {
		admin, err := isAdmin(ctx, s.userRepo, req.ActorID)
		if err != nil {
			return nil, err
		}
		if !admin {
			log.Printf("SetApproval: Forbidden attempt by user %s on application %s", req.ActorID, app.ID)
			return nil, fmt.Errorf("%w: only the job's recruiter or an admin can set approval", ErrForbidden)
		}
	}
	if app.Status != models.ApplicationStatusShortlisted {
		return nil, fmt.Errorf("%w: application %s is %s, approval needs shortlisted", ErrInvalidState, app.ID, app.Status)
	}

	approval := models.ApprovalBlocked
	if *req.Approve {
		approval = models.ApprovalApproved
	}
	updated, err := s.appRepo.UpdateApproval(ctx, app.ID, approval, s.cal.Now())
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating approval of application %s", app.ID))
	}

	metrics.ApprovalChanged(string(approval))
	return updated, nil
}
