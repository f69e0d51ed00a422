package services_test

import (
	"context"
	"errors"
	"testing"

	"naukri-api/internal/cache"
	"naukri-api/internal/models"
	"naukri-api/internal/services"
	"naukri-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStatsCache struct {
	mock.Mock
}

func (m *mockStatsCache) Get(ctx context.Context) (*models.Stats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*models.Stats)
	return stats, args.Error(1)
}

func (m *mockStatsCache) Set(ctx context.Context, stats *models.Stats) error {
	return m.Called(ctx, stats).Error(0)
}

func (m *mockStatsCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ cache.StatsCache = (*mockStatsCache)(nil)

func TestAdminService_StatsComputed(t *testing.T) {
	env := newEnv(t)
	admin := env.register(t, "root@example.com", models.RoleAdmin)
	candidate := env.register(t, "c@example.com", models.RoleCandidate)
	recruiter := env.register(t, "r@example.com", models.RoleRecruiter)
	job := env.postJob(t, recruiter.ID, "Go Developer", "2026-04-01")
	env.postJob(t, recruiter.ID, "Old", "2026-01-01")
	app := env.apply(t, candidate.ID, job.ID)
	_, err := env.applications.SetStatus(env.ctx, &dto.SetStatusRequest{ID: app.ID, RecruiterID: recruiter.ID, Status: models.ApplicationStatusShortlisted})
	require.NoError(t, err)
	_, err = env.messages.Send(env.ctx, &dto.SendMessageRequest{FromID: admin.ID, ToID: candidate.ID, Text: "hi"})
	require.NoError(t, err)

	stats, err := env.admin.Stats(env.ctx, &dto.AdminStatsRequest{AdminID: admin.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.UsersByRole[models.RoleAdmin])
	assert.Equal(t, 1, stats.UsersByRole[models.RoleCandidate])
	assert.Equal(t, 1, stats.UsersByRole[models.RoleRecruiter])
	assert.Equal(t, 2, stats.TotalJobs)
	assert.Equal(t, 1, stats.ActiveJobs)
	assert.Equal(t, 1, stats.ApplicationsByStatus[models.ApplicationStatusShortlisted])
	assert.Equal(t, 0, stats.ApplicationsByStatus[models.ApplicationStatusApplied])
	assert.Equal(t, 1, stats.ApprovalsByState[models.ApprovalPending])
	assert.Equal(t, 1, stats.Messages)
	assert.Equal(t, 0, stats.Interviews)

	_, err = env.admin.Stats(env.ctx, &dto.AdminStatsRequest{AdminID: candidate.ID})
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestAdminService_StatsCache(t *testing.T) {
	tests := []struct {
		name      string
		getStats  *models.Stats
		getErr    error
		expectSet bool
	}{
		{name: "hit", getStats: &models.Stats{TotalJobs: 42}},
		{name: "miss", getErr: cache.ErrMiss, expectSet: true},
		{name: "read error falls back", getErr: errors.New("connection refused"), expectSet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statsCache := new(mockStatsCache)
			statsCache.On("Invalidate", mock.Anything).Return(nil)
			statsCache.On("Get", mock.Anything).Return(tt.getStats, tt.getErr).Once()
			if tt.expectSet {
				statsCache.On("Set", mock.Anything, mock.AnythingOfType("*models.Stats")).Return(errors.New("read-only replica")).Once()
			}

			env := newEnv(t, func(o *envOptions) { o.stats = statsCache })
			admin := env.register(t, "root@example.com", models.RoleAdmin)

			stats, err := env.admin.Stats(env.ctx, &dto.AdminStatsRequest{AdminID: admin.ID})
			require.NoError(t, err)
			if tt.getStats != nil {
				assert.Equal(t, 42, stats.TotalJobs)
			} else {
				assert.Equal(t, 1, stats.UsersByRole[models.RoleAdmin])
			}
			statsCache.AssertExpectations(t)
			if !tt.expectSet {
				statsCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
			}
		})
	}
}
