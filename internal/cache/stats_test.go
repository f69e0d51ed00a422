package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"naukri-api/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRedis struct {
	mock.Mock
}

func (m *mockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(key)
	return redis.NewStringResult(args.String(0), args.Error(1))
}

func (m *mockRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(key, value, expiration)
	return redis.NewStatusResult("OK", args.Error(0))
}

func (m *mockRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(keys)
	return redis.NewIntResult(int64(len(keys)), args.Error(0))
}

func sampleStats() *models.Stats {
	return &models.Stats{
		UsersByRole:          map[models.Role]int{models.RoleCandidate: 2, models.RoleRecruiter: 1},
		TotalJobs:            3,
		ActiveJobs:           2,
		ApplicationsByStatus: map[models.ApplicationStatus]int{models.ApplicationStatusApplied: 1},
		ApprovalsByState:     map[models.ApprovalState]int{models.ApprovalPending: 1},
		Messages:             4,
		GeneratedAt:          time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestRedisStatsCache_GetHit(t *testing.T) {
	ctx := context.Background()
	want := sampleStats()
	raw, err := json.Marshal(want)
	require.NoError(t, err)

	client := new(mockRedis)
	client.On("Get", StatsKey).Return(string(raw), nil)

	got, err := NewRedisStatsCache(client, time.Minute).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.TotalJobs, got.TotalJobs)
	assert.Equal(t, 2, got.UsersByRole[models.RoleCandidate])
	assert.True(t, want.GeneratedAt.Equal(got.GeneratedAt))
	client.AssertExpectations(t)
}

func TestRedisStatsCache_GetMissAndErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		err     error
		wantErr error
	}{
		{name: "missing key", err: redis.Nil, wantErr: ErrMiss},
		{name: "corrupt payload", payload: "{not json", wantErr: ErrMiss},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mockRedis)
			client.On("Get", StatsKey).Return(tt.payload, tt.err)

			_, err := NewRedisStatsCache(client, time.Minute).Get(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("connection error", func(t *testing.T) {
		client := new(mockRedis)
		client.On("Get", StatsKey).Return("", errors.New("connection refused"))

		_, err := NewRedisStatsCache(client, time.Minute).Get(context.Background())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrMiss)
	})
}

func TestRedisStatsCache_SetAndInvalidate(t *testing.T) {
	ctx := context.Background()
	client := new(mockRedis)
	client.On("Set", StatsKey, mock.AnythingOfType("[]uint8"), 45*time.Second).Return(nil)
	client.On("Del", []string{StatsKey}).Return(nil)

	c := NewRedisStatsCache(client, 45*time.Second)
	require.NoError(t, c.Set(ctx, sampleStats()))
	require.NoError(t, c.Invalidate(ctx))
	client.AssertExpectations(t)
}

func TestNopStatsCache(t *testing.T) {
	ctx := context.Background()
	var c StatsCache = NopStatsCache{}
	assert.NoError(t, c.Set(ctx, sampleStats()))
	_, err := c.Get(ctx)
	assert.ErrorIs(t, err, ErrMiss)
	assert.NoError(t, c.Invalidate(ctx))
}
