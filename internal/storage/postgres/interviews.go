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

const interviewSelect = `SELECT i.id, i.candidate_id, i.job_id, i.date_time, i.status, i.created_at FROM interviews i`

// InterviewRepo implements the storage.InterviewRepository interface using PostgreSQL.
type InterviewRepo struct {
	db Querier
}

// NewInterviewRepo creates a new InterviewRepo.
func NewInterviewRepo(db *pgxpool.Pool) *InterviewRepo {
	return &InterviewRepo{db: db}
}

var _ storage.InterviewRepository = (*InterviewRepo)(nil)

func (r *InterviewRepo) Create(ctx context.Context, iv *models.Interview) (*models.Interview, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO interviews (id, candidate_id, job_id, date_time, status, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		iv.ID, iv.CandidateID, iv.JobID, iv.DateTime, iv.Status, iv.CreatedAt,
	)
	if err != nil {
		mapped := mapPgError(err)
		if errors.Is(mapped, storage.ErrNotFound) {
			return nil, mapped
		}
		log.Printf("Error scheduling interview: %v\n", err)
		return nil, fmt.Errorf("failed to schedule interview: %w", err)
	}
	created := *iv
	return &created, nil
}

func (r *InterviewRepo) list(ctx context.Context, where string, args ...any) ([]models.Interview, error) {
	rows, err := r.db.Query(ctx, interviewSelect+where+` ORDER BY i.date_time ASC, i.seq ASC`, args...)
	if err != nil {
		log.Printf("Error querying interviews: %v\n", err)
		return nil, fmt.Errorf("failed to query interviews: %w", err)
	}
	interviews, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Interview])
	if err != nil {
		return nil, fmt.Errorf("failed to scan interviews: %w", err)
	}
	if interviews == nil {
		interviews = []models.Interview{}
	}
	return interviews, nil
}

func (r *InterviewRepo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.Interview, error) {
	return r.list(ctx, ` WHERE i.candidate_id = $1`, candidateID)
}

func (r *InterviewRepo) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Interview, error) {
	return r.list(ctx, ` JOIN jobs j ON j.id = i.job_id WHERE j.recruiter_id = $1`, recruiterID)
}

func (r *InterviewRepo) ListAll(ctx context.Context) ([]models.Interview, error) {
	return r.list(ctx, ``)
}

func (r *InterviewRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM interviews`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count interviews: %w", err)
	}
	return n, nil
}
