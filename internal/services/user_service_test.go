package services_test

import (
	"errors"
	"strings"
	"testing"

	"naukri-api/internal/models"
	"naukri-api/internal/services"
	"naukri-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	env := newEnv(t)
	env.register(t, "dev@example.com", models.RoleCandidate)

	tests := []struct {
		name          string
		req           *dto.RegisterRequest
		expectedError error
	}{
		{
			name: "Success - same email, different role",
			req:  &dto.RegisterRequest{Name: "Dev", Email: "dev@example.com", Password: "pw", Role: models.RoleRecruiter},
		},
		{
			name:          "Conflict - duplicate email and role",
			req:           &dto.RegisterRequest{Name: "Dev", Email: "dev@example.com", Password: "pw", Role: models.RoleCandidate},
			expectedError: services.ErrConflict,
		},
		{
			name:          "Conflict - email differs only in case",
			req:           &dto.RegisterRequest{Name: "Dev", Email: " DEV@example.com ", Password: "pw", Role: models.RoleCandidate},
			expectedError: services.ErrConflict,
		},
		{
			name:          "Validation - blank name",
			req:           &dto.RegisterRequest{Name: "   ", Email: "x@example.com", Password: "pw", Role: models.RoleCandidate},
			expectedError: services.ErrValidation,
		},
		{
			name:          "Validation - unknown role",
			req:           &dto.RegisterRequest{Name: "X", Email: "x@example.com", Password: "pw", Role: "manager"},
			expectedError: services.ErrValidation,
		},
		{
			name: "Success - password at the bcrypt limit",
			req:  &dto.RegisterRequest{Name: "X", Email: "limit@example.com", Password: strings.Repeat("p", 72), Role: models.RoleCandidate},
		},
		{
			name:          "Validation - password longer than bcrypt accepts",
			req:           &dto.RegisterRequest{Name: "X", Email: "long@example.com", Password: strings.Repeat("p", 73), Role: models.RoleCandidate},
			expectedError: services.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := env.users.Register(env.ctx, tt.req)
			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.Equal(t, tt.req.Role, user.Role)
			assert.NotEqual(t, tt.req.Password, user.PasswordHash)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	env := newEnv(t)
	candidate := env.register(t, "dev@example.com", models.RoleCandidate)

	tests := []struct {
		name     string
		req      *dto.LoginRequest
		expectOK bool
	}{
		{name: "exact match", req: &dto.LoginRequest{Email: "dev@example.com", Password: "secret", Role: models.RoleCandidate}, expectOK: true},
		{name: "email case ignored", req: &dto.LoginRequest{Email: "Dev@Example.com", Password: "secret", Role: models.RoleCandidate}, expectOK: true},
		{name: "wrong password", req: &dto.LoginRequest{Email: "dev@example.com", Password: "Secret", Role: models.RoleCandidate}},
		{name: "wrong role", req: &dto.LoginRequest{Email: "dev@example.com", Password: "secret", Role: models.RoleRecruiter}},
		{name: "unknown email", req: &dto.LoginRequest{Email: "nobody@example.com", Password: "secret", Role: models.RoleCandidate}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := env.users.Login(env.ctx, tt.req)
			if !tt.expectOK {
				assert.ErrorIs(t, err, services.ErrInvalidCredentials)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, candidate.ID, user.ID)
		})
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	env := newEnv(t)
	user := env.register(t, "dev@example.com", models.RoleCandidate)

	age := 27
	updated, err := env.users.UpdateProfile(env.ctx, &dto.UpdateProfileRequest{
		ID:            user.ID,
		ProfileFields: dto.ProfileFields{Skills: ptr("go, sql"), Age: &age},
	})
	require.NoError(t, err)
	assert.Equal(t, "go, sql", updated.Skills)
	assert.Equal(t, user.Name, updated.Name)
	require.NotNil(t, updated.Age)
	assert.Equal(t, 27, *updated.Age)
	assert.True(t, updated.UpdatedAt.After(user.UpdatedAt))

	_, err = env.users.UpdateProfile(env.ctx, &dto.UpdateProfileRequest{ID: user.ID, ProfileFields: dto.ProfileFields{Name: ptr(" ")}})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = env.users.UpdateProfile(env.ctx, &dto.UpdateProfileRequest{ID: uuid.New()})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUserService_AdminUpdateProfile(t *testing.T) {
	env := newEnv(t)
	admin := env.register(t, "root@example.com", models.RoleAdmin)
	recruiter := env.register(t, "hr@example.com", models.RoleRecruiter)

	updated, err := env.users.AdminUpdateProfile(env.ctx, &dto.AdminUpdateUserRequest{
		AdminID: admin.ID, Email: "hr@example.com", Role: models.RoleRecruiter,
		ProfileFields: dto.ProfileFields{Company: ptr("Acme")},
	})
	require.NoError(t, err)
	assert.Equal(t, recruiter.ID, updated.ID)
	assert.Equal(t, "Acme", updated.Company)

	_, err = env.users.AdminUpdateProfile(env.ctx, &dto.AdminUpdateUserRequest{
		AdminID: recruiter.ID, Email: "hr@example.com", Role: models.RoleRecruiter,
	})
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = env.users.AdminUpdateProfile(env.ctx, &dto.AdminUpdateUserRequest{
		AdminID: admin.ID, Email: "hr@example.com", Role: models.RoleCandidate,
	})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUserService_Ban(t *testing.T) {
	env := newEnv(t)
	admin := env.register(t, "root@example.com", models.RoleAdmin)
	recruiter := env.register(t, "hr@example.com", models.RoleRecruiter)
	env.register(t, "hr@example.com", models.RoleCandidate)
	candidate := env.register(t, "dev@example.com", models.RoleCandidate)

	job := env.postJob(t, recruiter.ID, "Go Developer", "2026-04-01")
	env.apply(t, candidate.ID, job.ID)

	t.Run("Forbidden for non-admin", func(t *testing.T) {
		_, err := env.users.Ban(env.ctx, &dto.BanUserRequest{AdminID: candidate.ID, Email: "hr@example.com"})
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("Admin cannot ban own email", func(t *testing.T) {
		_, err := env.users.Ban(env.ctx, &dto.BanUserRequest{AdminID: admin.ID, Email: "root@example.com"})
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("Removes every role and cascades jobs", func(t *testing.T) {
		removed, err := env.users.Ban(env.ctx, &dto.BanUserRequest{AdminID: admin.ID, Email: "HR@example.com"})
		require.NoError(t, err)
		assert.Len(t, removed, 2)

		_, err = env.jobs.GetByID(env.ctx, &dto.GetJobByIDRequest{ID: job.ID})
		assert.ErrorIs(t, err, services.ErrNotFound)

		apps, err := env.applications.ListForCandidate(env.ctx, &dto.ListApplicationsByCandidateRequest{CandidateID: candidate.ID})
		require.NoError(t, err)
		assert.Empty(t, apps)

		_, err = env.users.Login(env.ctx, &dto.LoginRequest{Email: "hr@example.com", Password: "secret", Role: models.RoleRecruiter})
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		_, err := env.users.Ban(env.ctx, &dto.BanUserRequest{AdminID: admin.ID, Email: "hr@example.com"})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
