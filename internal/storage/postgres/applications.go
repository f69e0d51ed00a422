package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"naukri-api/internal/models"
	"naukri-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// applicationSelect joins the job title onto every application row.
const applicationSelect = `
	SELECT a.id, a.candidate_id, a.job_id, j.title AS job_title, a.status, a.approval, a.applied_at, a.updated_at
	FROM applications a
	JOIN jobs j ON j.id = a.job_id`

const applicationOrder = ` ORDER BY a.applied_at DESC, a.seq DESC`

// ApplicationRepo implements the storage.ApplicationRepository interface using PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

func (r *ApplicationRepo) one(ctx context.Context, query string, args ...any) (*models.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	app, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepo) many(ctx context.Context, what, query string, args ...any) ([]models.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying %s: %v\n", what, err)
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	apps, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		log.Printf("Error scanning %s: %v\n", what, err)
		return nil, fmt.Errorf("failed to scan %s: %w", what, err)
	}
	if apps == nil {
		apps = []models.Application{}
	}
	return apps, nil
}

// Create inserts the application. The unique (candidate_id, job_id) constraint settles concurrent applies.
func (r *ApplicationRepo) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	query := `
		WITH a AS (
			INSERT INTO applications (id, candidate_id, job_id, status, approval, applied_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, candidate_id, job_id, status, approval, applied_at, updated_at
		)
		SELECT a.id, a.candidate_id, a.job_id, j.title AS job_title, a.status, a.approval, a.applied_at, a.updated_at
		FROM a JOIN jobs j ON j.id = a.job_id`

	created, err := r.one(ctx, query,
		app.ID, app.CandidateID, app.JobID, app.Status, app.Approval, app.AppliedAt, app.UpdatedAt,
	)
	if err != nil {
		mapped := mapPgError(err)
		if errors.Is(mapped, storage.ErrConflict) || errors.Is(mapped, storage.ErrNotFound) {
			log.Printf("Application by %s for job %s rejected: %v", app.CandidateID, app.JobID, mapped)
			return nil, mapped
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return created, nil
}

func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	app, err := r.one(ctx, applicationSelect+` WHERE a.id = $1`, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting application %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get application %s: %w", id, err)
	}
	return app, nil
}

func (r *ApplicationRepo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.Application, error) {
	return r.many(ctx, "applications by candidate", applicationSelect+` WHERE a.candidate_id = $1`+applicationOrder, candidateID)
}

func (r *ApplicationRepo) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Application, error) {
	return r.many(ctx, "applications by recruiter", applicationSelect+` WHERE j.recruiter_id = $1`+applicationOrder, recruiterID)
}

func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	return r.many(ctx, "applications by job", applicationSelect+` WHERE a.job_id = $1`+applicationOrder, jobID)
}

func (r *ApplicationRepo) update(ctx context.Context, id uuid.UUID, column string, value any, at time.Time) (*models.Application, error) {
	query := fmt.Sprintf(`
		UPDATE applications a
		SET %s = $1, updated_at = $2
		FROM jobs j
		WHERE a.id = $3 AND j.id = a.job_id
		RETURNING a.id, a.candidate_id, a.job_id, j.title AS job_title, a.status, a.approval, a.applied_at, a.updated_at`, column)

	app, err := r.one(ctx, query, value, at, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found for update with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating application %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update application %s: %w", id, err)
	}
	return app, nil
}

func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus, at time.Time) (*models.Application, error) {
	return r.update(ctx, id, "status", status, at)
}

func (r *ApplicationRepo) UpdateApproval(ctx context.Context, id uuid.UUID, approval models.ApprovalState, at time.Time) (*models.Application, error) {
	return r.update(ctx, id, "approval", approval, at)
}

func (r *ApplicationRepo) CountByStatus(ctx context.Context) (map[models.ApplicationStatus]int, map[models.ApprovalState]int, error) {
	statuses := map[models.ApplicationStatus]int{
		models.ApplicationStatusApplied:     0,
		models.ApplicationStatusShortlisted: 0,
		models.ApplicationStatusRejected:    0,
	}
	approvals := map[models.ApprovalState]int{
		models.ApprovalPending:  0,
		models.ApprovalApproved: 0,
		models.ApprovalBlocked:  0,
	}

	rows, err := r.db.Query(ctx, `SELECT status, approval, COUNT(*) FROM applications GROUP BY status, approval`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count applications: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status models.ApplicationStatus
		var approval models.ApprovalState
		var n int
		if err := rows.Scan(&status, &approval, &n); err != nil {
			return nil, nil, fmt.Errorf("failed to scan application count: %w", err)
		}
		statuses[status] += n
		approvals[approval] += n
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to count applications: %w", err)
	}
	return statuses, approvals, nil
}
