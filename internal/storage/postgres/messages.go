package postgres

import (
	"context"
	"fmt"
	"log"

	"naukri-api/internal/models"
	"naukri-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MessageRepo implements the storage.MessageRepository interface using PostgreSQL.
type MessageRepo struct {
	db Querier
}

// NewMessageRepo creates a new MessageRepo.
func NewMessageRepo(db *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{db: db}
}

var _ storage.MessageRepository = (*MessageRepo)(nil)

func (r *MessageRepo) Create(ctx context.Context, msg *models.Message) (*models.Message, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO messages (id, from_id, to_id, text, sent_at) VALUES ($1, $2, $3, $4, $5)`,
		msg.ID, msg.FromID, msg.ToID, msg.Text, msg.Timestamp,
	)
	if err != nil {
		log.Printf("Error storing message: %v\n", err)
		return nil, fmt.Errorf("failed to store message: %w", mapPgError(err))
	}
	created := *msg
	return &created, nil
}

// CreateLinked inserts the message in the same statement that checks the application, holding a
// share lock on the matching row until the insert commits.
func (r *MessageRepo) CreateLinked(ctx context.Context, msg *models.Message, candidateID, recruiterID uuid.UUID) (*models.Message, bool, error) {
	query := `
		INSERT INTO messages (id, from_id, to_id, text, sent_at)
		SELECT $1::uuid, $2::uuid, $3::uuid, $4::text, $5::timestamptz
		WHERE EXISTS (
			SELECT 1 FROM applications a
			JOIN jobs j ON j.id = a.job_id
			WHERE a.candidate_id = $6 AND j.recruiter_id = $7 AND a.status = $8 AND a.approval = $9
			FOR SHARE OF a
		)`
	tag, err := r.db.Exec(ctx, query,
		msg.ID, msg.FromID, msg.ToID, msg.Text, msg.Timestamp,
		candidateID, recruiterID, models.ApplicationStatusShortlisted, models.ApprovalApproved,
	)
	if err != nil {
		log.Printf("Error storing linked message: %v\n", err)
		return nil, false, fmt.Errorf("failed to store message: %w", mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return nil, false, nil
	}
	created := *msg
	return &created, true, nil
}

func (r *MessageRepo) ListForUser(ctx context.Context, userID uuid.UUID, peerID *uuid.UUID) ([]models.Message, error) {
	query := `SELECT id, from_id, to_id, text, sent_at FROM messages WHERE (from_id = $1 OR to_id = $1)`
	args := []any{userID}
	if peerID != nil {
		args = append(args, *peerID)
		query += ` AND (from_id = $2 OR to_id = $2)`
	}
	query += ` ORDER BY sent_at ASC, seq ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying messages for %s: %v\n", userID, err)
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	messages, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Message])
	if err != nil {
		return nil, fmt.Errorf("failed to scan messages: %w", err)
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

func (r *MessageRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM messages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return n, nil
}
