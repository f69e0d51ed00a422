package services_test

import (
	"sync"
	"testing"

	"naukri-api/internal/models"
	"naukri-api/internal/services"
	"naukri-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationService_EndToEnd(t *testing.T) {
	env := newEnv(t)
	candidate := env.register(t, "c@example.com", models.RoleCandidate)
	recruiter := env.register(t, "r@example.com", models.RoleRecruiter)
	job := env.postJob(t, recruiter.ID, "Go Developer", "2026-03-11")

	app := env.apply(t, candidate.ID, job.ID)
	assert.Equal(t, models.ApplicationStatusApplied, app.Status)
	assert.Equal(t, models.ApprovalPending, app.Approval)

	forJob, err := env.applications.ListForJob(env.ctx, &dto.ListApplicationsByJobRequest{JobID: job.ID})
	require.NoError(t, err)
	require.Len(t, forJob, 1)

	updated, err := env.applications.SetStatus(env.ctx, &dto.SetStatusRequest{
		ID: app.ID, RecruiterID: recruiter.ID, Status: models.ApplicationStatusShortlisted,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusShortlisted, updated.Status)
	assert.Equal(t, models.ApprovalPending, updated.Approval)

	mine, err := env.applications.ListForCandidate(env.ctx, &dto.ListApplicationsByCandidateRequest{CandidateID: candidate.ID})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, models.ApplicationStatusShortlisted, mine[0].Status)
	assert.Equal(t, "Go Developer", mine[0].JobTitle)

	theirs, err := env.applications.ListForRecruiter(env.ctx, &dto.ListApplicationsByRecruiterRequest{RecruiterID: recruiter.ID})
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, app.ID, theirs[0].ID)
}

func TestApplicationService_Apply(t *testing.T) {
	env := newEnv(t)
	candidate := env.register(t, "c@example.com", models.RoleCandidate)
	recruiter := env.register(t, "r@example.com", models.RoleRecruiter)
	open := env.postJob(t, recruiter.ID, "Open", "2026-03-10")
	expired := env.postJob(t, recruiter.ID, "Expired", "2026-03-09")
	env.apply(t, candidate.ID, open.ID)

	tests := []struct {
		name          string
		req           *dto.ApplyRequest
		expectedError error
	}{
		{name: "duplicate", req: &dto.ApplyRequest{CandidateID: candidate.ID, JobID: open.ID}, expectedError: services.ErrConflict},
		{name: "expired job", req: &dto.ApplyRequest{CandidateID: candidate.ID, JobID: expired.ID}, expectedError: services.ErrInvalidState},
		{name: "recruiter applying", req: &dto.ApplyRequest{CandidateID: recruiter.ID, JobID: open.ID}, expectedError: services.ErrForbidden},
		{name: "unknown job", req: &dto.ApplyRequest{CandidateID: candidate.ID, JobID: uuid.New()}, expectedError: services.ErrNotFound},
		{name: "unknown candidate", req: &dto.ApplyRequest{CandidateID: uuid.New(), JobID: open.ID}, expectedError: services.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := env.applications.Apply(env.ctx, tt.req)
			assert.ErrorIs(t, err, tt.expectedError)
			assert.Nil(t, app)
		})
	}
}

func TestApplicationService_ConcurrentApplyCreatesOne(t *testing.T) {
	env := newEnv(t)
	candidate := env.register(t, "c@example.com", models.RoleCandidate)
	recruiter := env.register(t, "r@example.com", models.RoleRecruiter)
	job := env.postJob(t, recruiter.ID, "Go Developer", "2026-04-01")

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.applications.Apply(env.ctx, &dto.ApplyRequest{CandidateID: candidate.ID, JobID: job.ID})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if assert.ErrorIs(t, err, services.ErrConflict) {
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, 7, conflicts)
}

func TestApplicationService_SetStatus(t *testing.T) {
	env := newEnv(t)
	candidate := env.register(t, "c@example.com", models.RoleCandidate)
	recruiter := env.register(t, "r@example.com", models.RoleRecruiter)
	other := env.register(t, "r2@example.com", models.RoleRecruiter)
	job := env.postJob(t, recruiter.ID, "Go Developer", "2026-04-01")
	app := env.apply(t, candidate.ID, job.ID)

	t.Run("any transition is allowed", func(t *testing.T) {
		for _, status := range []models.ApplicationStatus{
			models.ApplicationStatusRejected,
			models.ApplicationStatusShortlisted,
			models.ApplicationStatusApplied,
		} {
			updated, err := env.applications.SetStatus(env.ctx, &dto.SetStatusRequest{ID: app.ID, RecruiterID: recruiter.ID, Status: status})
			require.NoError(t, err)
			assert.Equal(t, status, updated.Status)
		}
	})

	t.Run("other recruiter is forbidden", func(t *testing.T) {
		_, err := env.applications.SetStatus(env.ctx, &dto.SetStatusRequest{ID: app.ID, RecruiterID: other.ID, Status: models.ApplicationStatusRejected})
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := env.applications.SetStatus(env.ctx, &dto.SetStatusRequest{ID: app.ID, RecruiterID: recruiter.ID, Status: "hired"})
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("unknown application", func(t *testing.T) {
		_, err := env.applications.SetStatus(env.ctx, &dto.SetStatusRequest{ID: uuid.New(), RecruiterID: recruiter.ID, Status: models.ApplicationStatusRejected})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestApplicationService_SetApproval(t *testing.T) {
	env := newEnv(t)
	admin := env.register(t, "root@example.com", models.RoleAdmin)
	candidate := env.register(t, "c@example.com", models.RoleCandidate)
	recruiter := env.register(t, "r@example.com", models.RoleRecruiter)
	job := env.postJob(t, recruiter.ID, "Go Developer", "2026-04-01")
	app := env.apply(t, candidate.ID, job.ID)

	_, err := env.applications.SetApproval(env.ctx, &dto.SetApprovalRequest{ID: app.ID, ActorID: recruiter.ID, Approve: ptrBool(true)})
	assert.ErrorIs(t, err, services.ErrInvalidState, "approval needs a shortlisted application")

	_, err = env.applications.SetStatus(env.ctx, &dto.SetStatusRequest{ID: app.ID, RecruiterID: recruiter.ID, Status: models.ApplicationStatusShortlisted})
	require.NoError(t, err)

	_, err = env.applications.SetApproval(env.ctx, &dto.SetApprovalRequest{ID: app.ID, ActorID: candidate.ID, Approve: ptrBool(true)})
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = env.applications.SetApproval(env.ctx, &dto.SetApprovalRequest{ID: app.ID, ActorID: recruiter.ID})
	assert.ErrorIs(t, err, services.ErrValidation)

	approved, err := env.applications.SetApproval(env.ctx, &dto.SetApprovalRequest{ID: app.ID, ActorID: recruiter.ID, Approve: ptrBool(true)})
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, approved.Approval)

	blocked, err := env.applications.SetApproval(env.ctx, &dto.SetApprovalRequest{ID: app.ID, ActorID: admin.ID, Approve: ptrBool(false)})
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalBlocked, blocked.Approval)

	// Moving the status away keeps the approval recorded.
	rejected, err := env.applications.SetStatus(env.ctx, &dto.SetStatusRequest{ID: app.ID, RecruiterID: recruiter.ID, Status: models.ApplicationStatusRejected})
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalBlocked, rejected.Approval)
}
