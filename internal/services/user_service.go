package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"naukri-api/internal/cache"
	"naukri-api/internal/metrics"
	"naukri-api/internal/models"
	"naukri-api/internal/storage"
	"naukri-api/internal/transport/dto"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

type userService struct {
	repo       storage.UserRepository
	stats      cache.StatsCache
	bcryptCost int
	cal        Calendar
}

// NewUserService creates a new instance of IdentityService.
func NewUserService(repo storage.UserRepository, stats cache.StatsCache, bcryptCost int, cal Calendar) IdentityService {
	if stats == nil {
		stats = cache.NopStatsCache{}
	}
	return &userService{
		repo:       repo,
		stats:      stats,
		bcryptCost: bcryptCost,
		cal:        cal,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}
	if !req.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
	}
	if len(req.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", ErrValidation, maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		log.Printf("UserService: Error hashing password: %v", err)
		return nil, fmt.Errorf("internal error hashing password: %w", err)
	}

	now := s.cal.Now()
	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Education:    req.Education,
		Skills:       req.Skills,
		Company:      req.Company,
		Age:          req.Age,
		Phone:        req.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: email %s is already registered as %s", ErrConflict, email, req.Role)
		}
		log.Printf("UserService: Error creating user: %v", err)
		return nil, mapRepoError(err, "creating user")
	}

	metrics.Registered(string(created.Role))
	s.invalidateStats(ctx)
	log.Printf("UserService: Registered %s %s", created.Role, created.ID)
	return created, nil
}

// Login succeeds only when email, password and role all match one stored account.
func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	email := normalizeEmail(req.Email)
	user, err := s.repo.GetByEmailAndRole(ctx, email, req.Role)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s as %s: user not found", email, req.Role)
			return nil, ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", email, err)
		return nil, fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s as %s: invalid password", email, req.Role)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching user %s", req.ID))
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching user %s for update", req.ID))
	}
	return s.applyProfile(ctx, user, &req.ProfileFields)
}

func (s *userService) AdminUpdateProfile(ctx context.Context, req *dto.AdminUpdateUserRequest) (*models.User, error) {
	if _, err := requireAdmin(ctx, s.repo, req.AdminID, "updating a profile"); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)
	user, err := s.repo.GetByEmailAndRole(ctx, email, req.Role)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching %s %s for update", req.Role, email))
	}

	log.Printf("UserService: Admin %s updating profile of %s", req.AdminID, user.ID)
	return s.applyProfile(ctx, user, &req.ProfileFields)
}

func (s *userService) applyProfile(ctx context.Context, user *models.User, fields *dto.ProfileFields) (*models.User, error) {
	if fields.Name != nil {
		name := strings.TrimSpace(*fields.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be blank", ErrValidation)
		}
		user.Name = name
	}
	if fields.Education != nil {
		user.Education = *fields.Education
	}
	if fields.Skills != nil {
		user.Skills = *fields.Skills
	}
	if fields.Company != nil {
		user.Company = *fields.Company
	}
	if fields.Age != nil {
		age := *fields.Age
		user.Age = &age
	}
	if fields.Phone != nil {
		user.Phone = *fields.Phone
	}
	user.UpdatedAt = s.cal.Now()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating user %s", user.ID))
	}
	s.invalidateStats(ctx)
	return updated, nil
}

// Ban removes every account registered under the email. Posted jobs and the applications and
// interviews hanging off the removed accounts go with them.
func (s *userService) Ban(ctx context.Context, req *dto.BanUserRequest) ([]models.User, error) {
	admin, err := requireAdmin(ctx, s.repo, req.AdminID, "banning a user")
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)
	if email == admin.Email {
		return nil, fmt.Errorf("%w: admins cannot ban their own email", ErrValidation)
	}

	removed, err := s.repo.DeleteByEmail(ctx, email)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("banning %s", email))
	}

	metrics.Banned(len(removed))
	s.invalidateStats(ctx)
	log.Printf("UserService: Admin %s banned %s (%d account(s))", admin.ID, email, len(removed))
	return removed, nil
}

func (s *userService) invalidateStats(ctx context.Context) {
	if err := s.stats.Invalidate(ctx); err != nil {
		log.Printf("UserService: Failed to invalidate stats cache: %v", err)
	}
}
