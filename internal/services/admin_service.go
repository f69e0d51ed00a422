package services

import (
	"context"
	"errors"
	"log"

	"naukri-api/internal/cache"
	"naukri-api/internal/metrics"
	"naukri-api/internal/models"
	"naukri-api/internal/storage"
	"naukri-api/internal/transport/dto"
)

type adminService struct {
	userRepo storage.UserRepository
	jobRepo  storage.JobRepository
	appRepo  storage.ApplicationRepository
	msgRepo  storage.MessageRepository
	ivRepo   storage.InterviewRepository
	stats    cache.StatsCache
	cal      Calendar
}

// NewAdminService creates a new instance of AdminService. A nil cache disables caching.
func NewAdminService(
	userRepo storage.UserRepository,
	jobRepo storage.JobRepository,
	appRepo storage.ApplicationRepository,
	msgRepo storage.MessageRepository,
	ivRepo storage.InterviewRepository,
	stats cache.StatsCache,
	cal Calendar,
) AdminService {
	if stats == nil {
		stats = cache.NopStatsCache{}
	}
	return &adminService{
		userRepo: userRepo,
		jobRepo:  jobRepo,
		appRepo:  appRepo,
		msgRepo:  msgRepo,
		ivRepo:   ivRepo,
		stats:    stats,
		cal:      cal,
	}
}

// Stats serves the cached snapshot when there is one and recomputes it otherwise. Cache failures
// never fail the request.
func (s *adminService) Stats(ctx context.Context, req *dto.AdminStatsRequest) (*models.Stats, error) {
	if _, err := requireAdmin(ctx, s.userRepo, req.AdminID, "reading stats"); err != nil {
		return nil, err
	}

	cached, err := s.stats.Get(ctx)
	switch {
	case err == nil:
		metrics.StatsCacheLookup("hit")
		return cached, nil
	case errors.Is(err, cache.ErrMiss):
		metrics.StatsCacheLookup("miss")
	default:
		metrics.StatsCacheLookup("error")
		log.Printf("AdminService: Stats cache read failed, recomputing: %v", err)
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.stats.Set(ctx, stats); err != nil {
		log.Printf("AdminService: Failed to cache stats: %v", err)
	}
	return stats, nil
}

func (s *adminService) compute(ctx context.Context) (*models.Stats, error) {
	byRole, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, mapRepoError(err, "counting users")
	}
	total, active, err := s.jobRepo.Count(ctx, s.cal.Today())
	if err != nil {
		return nil, mapRepoError(err, "counting jobs")
	}
	byStatus, byApproval, err := s.appRepo.CountByStatus(ctx)
	if err != nil {
		return nil, mapRepoError(err, "counting applications")
	}
	msgs, err := s.msgRepo.Count(ctx)
	if err != nil {
		return nil, mapRepoError(err, "counting messages")
	}
	ivs, err := s.ivRepo.Count(ctx)
	if err != nil {
		return nil, mapRepoError(err, "counting interviews")
	}

	return &models.Stats{
		UsersByRole:          byRole,
		TotalJobs:            total,
		ActiveJobs:           active,
		ApplicationsByStatus: byStatus,
		ApprovalsByState:     byApproval,
		Messages:             msgs,
		Interviews:           ivs,
		GeneratedAt:          s.cal.Now(),
	}, nil
}
