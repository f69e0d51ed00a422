package memory

import (
	"context"
	"log"

	"naukri-api/internal/models"
	"naukri-api/internal/storage"

	"github.com/google/uuid"
)

// UserRepo implements storage.UserRepository on a Store.
type UserRepo struct {
	s *Store
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

var _ storage.UserRepository = (*UserRepo)(nil)

func cloneUser(u models.User) *models.User {
	if u.Age != nil {
		age := *u.Age
		u.Age = &age
	}
	return &u
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.s.usersMu.Lock()
	defer r.s.usersMu.Unlock()

	key := userKey{email: user.Email, role: user.Role}
	if _, exists := r.s.userIndex[key]; exists {
		log.Printf("Attempted to create user with duplicate email %s for role %s", user.Email, user.Role)
		return nil, storage.ErrConflict
	}
	if _, exists := r.s.users[user.ID]; exists {
		return nil, storage.ErrConflict
	}

	rec := &userRecord{seq: r.s.nextSeq(), user: *cloneUser(*user)}
	r.s.users[user.ID] = rec
	r.s.userIndex[key] = user.ID

	return cloneUser(rec.user), nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.s.usersMu.RLock()
	defer r.s.usersMu.RUnlock()

	rec, ok := r.s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return cloneUser(rec.user), nil
}

func (r *UserRepo) GetByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.User, error) {
	r.s.usersMu.RLock()
	defer r.s.usersMu.RUnlock()

	id, ok := r.s.userIndex[userKey{email: email, role: role}]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return cloneUser(r.s.users[id].user), nil
}

// Update replaces the profile fields of an existing user. Email and role are immutable.
func (r *UserRepo) Update(ctx context.Context, user *models.User) (*models.User, error) {
	r.s.usersMu.Lock()
	defer r.s.usersMu.Unlock()

	rec, ok := r.s.users[user.ID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	updated := *cloneUser(*user)
	updated.Email = rec.user.Email
	updated.Role = rec.user.Role
	updated.PasswordHash = rec.user.PasswordHash
	updated.CreatedAt = rec.user.CreatedAt
	rec.user = updated

	return cloneUser(rec.user), nil
}

func (r *UserRepo) DeleteByEmail(ctx context.Context, email string) ([]models.User, error) {
	r.s.usersMu.Lock()
	defer r.s.usersMu.Unlock()
	r.s.jobsMu.Lock()
	defer r.s.jobsMu.Unlock()
	r.s.appsMu.Lock()
	defer r.s.appsMu.Unlock()
	r.s.interviewsMu.Lock()
	defer r.s.interviewsMu.Unlock()

	var removed []models.User
	candidateIDs := make(map[uuid.UUID]struct{})
	recruiterIDs := make(map[uuid.UUID]struct{})
	for _, role := range []models.Role{models.RoleCandidate, models.RoleRecruiter, models.RoleAdmin} {
		key := userKey{email: email, role: role}
		id, ok := r.s.userIndex[key]
		if !ok {
			continue
		}
		removed = append(removed, *cloneUser(r.s.users[id].user))
		delete(r.s.users, id)
		delete(r.s.userIndex, key)
		switch role {
		case models.RoleCandidate:
			candidateIDs[id] = struct{}{}
		case models.RoleRecruiter:
			recruiterIDs[id] = struct{}{}
		}
	}
	if len(removed) == 0 {
		return nil, storage.ErrNotFound
	}

	jobIDs := make(map[uuid.UUID]struct{})
	for id, rec := range r.s.jobs {
		if _, ok := recruiterIDs[rec.job.RecruiterID]; ok {
			jobIDs[id] = struct{}{}
		}
	}
	r.s.removeJobsLocked(jobIDs, candidateIDs)

	log.Printf("Removed %d account(s) for %s and %d posted job(s)", len(removed), email, len(jobIDs))
	return removed, nil
}

func (r *UserRepo) CountByRole(ctx context.Context) (map[models.Role]int, error) {
	r.s.usersMu.RLock()
	defer r.s.usersMu.RUnlock()

	counts := map[models.Role]int{
		models.RoleCandidate: 0,
		models.RoleRecruiter: 0,
		models.RoleAdmin:     0,
	}
	for _, rec := range r.s.users {
		counts[rec.user.Role]++
	}
	return counts, nil
}
