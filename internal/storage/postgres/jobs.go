package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"naukri-api/internal/models"
	"naukri-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `id, title, description, role, location, skills, experience, salary, end_date, recruiter_id, posted_at`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

// Create saves a new job posting.
func (r *JobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	query := `
		INSERT INTO jobs (id, title, description, role, location, skills, experience, salary, end_date, recruiter_id, posted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + jobColumns

	rows, err := r.db.Query(ctx, query,
		job.ID, job.Title, job.Description, job.Role, job.Location, job.Skills,
		job.Experience, job.Salary, job.EndDate, job.RecruiterID, job.PostedAt,
	)
	if err == nil {
		var created models.Job
		created, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Job])
		if err == nil {
			log.Printf("Job created successfully with ID: %s", created.ID)
			return &created, nil
		}
	}

	mapped := mapPgError(err)
	if errors.Is(mapped, storage.ErrNotFound) {
		// Foreign key violation: the recruiter is gone.
		log.Printf("Error creating job: unknown recruiter %s: %v\n", job.RecruiterID, err)
		return nil, mapped
	}
	log.Printf("Error creating job: %v\n", err)
	return nil, fmt.Errorf("failed to create job: %w", mapped)
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error querying job %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}
	job, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}
	return &job, nil
}

// ListActive retrieves jobs whose end date has not passed, newest first.
func (r *JobRepo) ListActive(ctx context.Context, filter storage.JobFilter) ([]models.Job, error) {
	baseQuery := `SELECT ` + jobColumns + ` FROM jobs`
	conditions := []string{"end_date >= $1"}
	args := []any{filter.Today}

	if kw := strings.TrimSpace(filter.Keyword); kw != "" {
		args = append(args, likePattern(kw))
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR role ILIKE $%d OR skills ILIKE $%d)", n, n, n, n))
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		args = append(args, likePattern(loc))
		conditions = append(conditions, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if filter.MaxExperience != nil {
		args = append(args, *filter.MaxExperience)
		conditions = append(conditions, fmt.Sprintf("experience <= $%d", len(args)))
	}

	query := buildJobListQuery(baseQuery, conditions, &args, filter.Offset, filter.Limit)
	return r.queryJobs(ctx, "active jobs", query, args...)
}

// ListByRecruiter retrieves every job posted by the recruiter, expired ones included.
func (r *JobRepo) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Job, error) {
	args := []any{recruiterID}
	query := buildJobListQuery(`SELECT `+jobColumns+` FROM jobs`, []string{"recruiter_id = $1"}, &args, 0, 0)
	return r.queryJobs(ctx, "jobs by recruiter", query, args...)
}

func (r *JobRepo) queryJobs(ctx context.Context, what, query string, args ...any) ([]models.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying %s: %v\n", what, err)
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		log.Printf("Error scanning %s: %v\n", what, err)
		return nil, fmt.Errorf("failed to scan %s: %w", what, err)
	}
	if jobs == nil {
		jobs = []models.Job{} // Return empty slice, not nil
	}
	return jobs, nil
}

// Delete removes a job by its ID. Applications and interviews go with it via ON DELETE CASCADE.
func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting job %s: %v\n", id, err)
		return fmt.Errorf("failed to delete job %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Job not found for deletion with ID: %s\n", id)
		return storage.ErrNotFound
	}

	log.Printf("Job deleted successfully: %s", id)
	return nil
}

func (r *JobRepo) Count(ctx context.Context, today time.Time) (int, int, error) {
	var total, active int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE end_date >= $1) FROM jobs`, today,
	).Scan(&total, &active)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return total, active, nil
}
