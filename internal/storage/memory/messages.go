package memory

import (
	"context"
	"sort"

	"naukri-api/internal/models"
	"naukri-api/internal/storage"

	"github.com/google/uuid"
)

// MessageRepo implements storage.MessageRepository on a Store.
type MessageRepo struct {
	s *Store
}

// NewMessageRepo creates a new MessageRepo.
func NewMessageRepo(s *Store) *MessageRepo {
	return &MessageRepo{s: s}
}

var _ storage.MessageRepository = (*MessageRepo)(nil)

func (r *MessageRepo) Create(ctx context.Context, msg *models.Message) (*models.Message, error) {
	r.s.messagesMu.Lock()
	defer r.s.messagesMu.Unlock()

	r.s.messages = append(r.s.messages, messageRecord{seq: r.s.nextSeq(), message: *msg})
	created := *msg
	return &created, nil
}

// CreateLinked holds the job and application locks across the check so a concurrent status or
// approval change lands either before or after the append.
func (r *MessageRepo) CreateLinked(ctx context.Context, msg *models.Message, candidateID, recruiterID uuid.UUID) (*models.Message, bool, error) {
	r.s.jobsMu.RLock()
	defer r.s.jobsMu.RUnlock()
	r.s.appsMu.RLock()
	defer r.s.appsMu.RUnlock()

	if !r.s.messagingLinkLocked(candidateID, recruiterID) {
		return nil, false, nil
	}

	r.s.messagesMu.Lock()
	defer r.s.messagesMu.Unlock()
	r.s.messages = append(r.s.messages, messageRecord{seq: r.s.nextSeq(), message: *msg})
	created := *msg
	return &created, true, nil
}

func (r *MessageRepo) ListForUser(ctx context.Context, userID uuid.UUID, peerID *uuid.UUID) ([]models.Message, error) {
	r.s.messagesMu.RLock()
	defer r.s.messagesMu.RUnlock()

	var matched []messageRecord
	for _, rec := range r.s.messages {
		m := &rec.message
		if m.FromID != userID && m.ToID != userID {
			continue
		}
		if peerID != nil && m.FromID != *peerID && m.ToID != *peerID {
			continue
		}
		matched = append(matched, rec)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].message.Timestamp.Before(matched[j].message.Timestamp)
	})

	messages := make([]models.Message, 0, len(matched))
	for _, rec := range matched {
		messages = append(messages, rec.message)
	}
	return messages, nil
}

func (r *MessageRepo) Count(ctx context.Context) (int, error) {
	r.s.messagesMu.RLock()
	defer r.s.messagesMu.RUnlock()
	return len(r.s.messages), nil
}
