package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"naukri-api/internal/models"
	"naukri-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, name, email, password_hash, role, education, skills, company, age, phone, created_at, updated_at`

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

var _ storage.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) collectOne(rows pgx.Rows, err error) (*models.User, error) {
	if err != nil {
		return nil, err
	}
	u, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, education, skills, company, age, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + userColumns

	rows, err := r.db.Query(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role,
		user.Education, user.Skills, user.Company, user.Age, user.Phone,
		user.CreatedAt, user.UpdatedAt,
	)
	created, err := r.collectOne(rows, err)
	if err != nil {
		mapped := mapPgError(err)
		if errors.Is(mapped, storage.ErrConflict) {
			log.Printf("Attempted to create user with duplicate email %s for role %s", user.Email, user.Role)
			return nil, mapped
		}
		log.Printf("Error creating user: %v\n", err)
		return nil, fmt.Errorf("failed to create user: %w", mapped)
	}
	return created, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := r.collectOne(rows, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return u, nil
}

func (r *UserRepo) GetByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1 AND role = $2`, email, role)
	u, err := r.collectOne(rows, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by email: %v\n", err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// Update replaces the profile fields of an existing user. Email and role are immutable.
func (r *UserRepo) Update(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		UPDATE users
		SET name = $2, education = $3, skills = $4, company = $5, age = $6, phone = $7, updated_at = $8
		WHERE id = $1
		RETURNING ` + userColumns

	rows, err := r.db.Query(ctx, query,
		user.ID, user.Name, user.Education, user.Skills, user.Company, user.Age, user.Phone, user.UpdatedAt,
	)
	updated, err := r.collectOne(rows, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found for update with ID: %s\n", user.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating user %s: %v\n", user.ID, err)
		return nil, fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}
	return updated, nil
}

// DeleteByEmail relies on ON DELETE CASCADE to clear jobs, applications and interviews.
func (r *UserRepo) DeleteByEmail(ctx context.Context, email string) ([]models.User, error) {
	rows, err := r.db.Query(ctx, `DELETE FROM users WHERE email = $1 RETURNING `+userColumns, email)
	if err != nil {
		log.Printf("Error deleting users by email: %v\n", err)
		return nil, fmt.Errorf("failed to delete users: %w", err)
	}
	removed, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		log.Printf("Error scanning deleted users: %v\n", err)
		return nil, fmt.Errorf("failed to delete users: %w", err)
	}
	if len(removed) == 0 {
		return nil, storage.ErrNotFound
	}

	log.Printf("Removed %d account(s) for %s", len(removed), email)
	return removed, nil
}

func (r *UserRepo) CountByRole(ctx context.Context) (map[models.Role]int, error) {
	rows, err := r.db.Query(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role`)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	defer rows.Close()

	counts := map[models.Role]int{
		models.RoleCandidate: 0,
		models.RoleRecruiter: 0,
		models.RoleAdmin:     0,
	}
	for rows.Next() {
		var role models.Role
		var n int
		if err := rows.Scan(&role, &n); err != nil {
			return nil, fmt.Errorf("failed to scan user count: %w", err)
		}
		counts[role] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	return counts, nil
}
