package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"naukri-api/internal/cache"
	"naukri-api/internal/models"
	"naukri-api/internal/services"
	"naukri-api/internal/storage/memory"
	"naukri-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// stepClock starts at a fixed instant and moves one second forward on every read.
type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.t
	c.t = c.t.Add(time.Second)
	return now
}

// Tuesday 10 March 2026, mid-morning UTC.
var start = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	ctx          context.Context
	clock        *stepClock
	users        services.IdentityService
	jobs         services.JobService
	applications services.ApplicationService
	messages     services.MessageService
	interviews   services.InterviewService
	admin        services.AdminService
}

type envOptions struct {
	ungated bool
	loc     *time.Location
	stats   cache.StatsCache
}

func newEnv(t *testing.T, opts ...func(*envOptions)) *testEnv {
	t.Helper()
	o := envOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	store := memory.NewStore()
	userRepo := memory.NewUserRepo(store)
	jobRepo := memory.NewJobRepo(store)
	appRepo := memory.NewApplicationRepo(store)
	msgRepo := memory.NewMessageRepo(store)
	ivRepo := memory.NewInterviewRepo(store)

	clock := &stepClock{t: start}
	cal := services.NewCalendar(clock, o.loc)

	return &testEnv{
		ctx:          context.Background(),
		clock:        clock,
		users:        services.NewUserService(userRepo, o.stats, bcrypt.MinCost, cal),
		jobs:         services.NewJobService(jobRepo, userRepo, cal),
		applications: services.NewApplicationService(appRepo, jobRepo, userRepo, cal),
		messages:     services.NewMessageService(msgRepo, userRepo, cal, !o.ungated),
		interviews:   services.NewInterviewService(ivRepo, jobRepo, userRepo, cal),
		admin:        services.NewAdminService(userRepo, jobRepo, appRepo, msgRepo, ivRepo, o.stats, cal),
	}
}

func ungated(o *envOptions) { o.ungated = true }

func (e *testEnv) register(t *testing.T, email string, role models.Role) *models.User {
	t.Helper()
	u, err := e.users.Register(e.ctx, &dto.RegisterRequest{Name: "User " + email, Email: email, Password: "secret", Role: role})
	require.NoError(t, err)
	return u
}

func (e *testEnv) postJob(t *testing.T, recruiterID uuid.UUID, title, endDate string) *models.Job {
	t.Helper()
	j, err := e.jobs.Post(e.ctx, &dto.CreateJobRequest{
		RecruiterID: recruiterID, Title: title, Description: "Work on the platform", Role: "Engineer",
		Location: "Bengaluru", Skills: "go", Experience: 2, Salary: "12 LPA", EndDate: endDate,
	})
	require.NoError(t, err)
	return j
}

func (e *testEnv) apply(t *testing.T, candidateID, jobID uuid.UUID) *models.Application {
	t.Helper()
	a, err := e.applications.Apply(e.ctx, &dto.ApplyRequest{CandidateID: candidateID, JobID: jobID})
	require.NoError(t, err)
	return a
}

func ptrBool(b bool) *bool { return &b }

func ptr(s string) *string { return &s }
