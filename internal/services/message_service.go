package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"naukri-api/internal/metrics"
	"naukri-api/internal/models"
	"naukri-api/internal/storage"
	"naukri-api/internal/transport/dto"

	"github.com/google/uuid"
)

type messageService struct {
	msgRepo         storage.MessageRepository
	userRepo        storage.UserRepository
	cal             Calendar
	requireApproval bool
}

// NewMessageService creates a new instance of MessageService. With requireApproval set, a candidate
// and a recruiter may only talk once an application links them as shortlisted and approved.
func NewMessageService(msgRepo storage.MessageRepository, userRepo storage.UserRepository, cal Calendar, requireApproval bool) MessageService {
	return &messageService{
		msgRepo:         msgRepo,
		userRepo:        userRepo,
		cal:             cal,
		requireApproval: requireApproval,
	}
}

func (s *messageService) Send(ctx context.Context, req *dto.SendMessageRequest) (*models.Message, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("%w: text is required", ErrValidation)
	}
	if req.FromID == req.ToID {
		return nil, fmt.Errorf("%w: cannot send a message to yourself", ErrValidation)
	}

	from, err := findUser(ctx, s.userRepo, req.FromID, "sender")
	if err != nil {
		return nil, err
	}
	to, err := findUser(ctx, s.userRepo, req.ToID, "receiver")
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		ID:        uuid.New(),
		FromID:    from.ID,
		ToID:      to.ID,
		Text:      req.Text,
		Timestamp: s.cal.Now(),
	}

	var created *models.Message
	if s.requireApproval {
		created, err = s.sendGated(ctx, msg, from, to)
	} else {
		created, err = s.msgRepo.Create(ctx, msg)
		if err != nil {
			err = mapRepoError(err, "storing message")
		}
	}
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			metrics.MessageSent("blocked")
		}
		return nil, err
	}

	metrics.MessageSent("sent")
	return created, nil
}

// sendGated lets admins talk to anyone. Everyone else needs a candidate on one side, a recruiter on
// the other and a shortlisted, approved application between them when the message is stored.
func (s *messageService) sendGated(ctx context.Context, msg *models.Message, from, to *models.User) (*models.Message, error) {
	if from.Role == models.RoleAdmin || to.Role == models.RoleAdmin {
		created, err := s.msgRepo.Create(ctx, msg)
		if err != nil {
			return nil, mapRepoError(err, "storing message")
		}
		return created, nil
	}

	var candidate, recruiter *models.User
	switch {
	case from.Role == models.RoleCandidate && to.Role == models.RoleRecruiter:
		candidate, recruiter = from, to
	case from.Role == models.RoleRecruiter && to.Role == models.RoleCandidate:
		candidate, recruiter = to, from
	default:
		log.Printf("Send: blocked %s -> %s message between %s and %s", from.ID, to.ID, from.Role, to.Role)
		return nil, fmt.Errorf("%w: messages are only exchanged between candidates and recruiters", ErrForbidden)
	}

	created, linked, err := s.msgRepo.CreateLinked(ctx, msg, candidate.ID, recruiter.ID)
	if err != nil {
		return nil, mapRepoError(err, "storing message")
	}
	if !linked {
		log.Printf("Send: blocked message between candidate %s and recruiter %s: no approved shortlist", candidate.ID, recruiter.ID)
		return nil, fmt.Errorf("%w: messaging requires a shortlisted and approved application", ErrForbidden)
	}
	return created, nil
}

// ListForUser returns every message the user sent or received, oldest first. Messages of banned
// peers are still listed.
func (s *messageService) ListForUser(ctx context.Context, req *dto.ListMessagesRequest) ([]models.Message, error) {
	msgs, err := s.msgRepo.ListForUser(ctx, req.UserID, req.PeerID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing messages for %s", req.UserID))
	}
	return msgs, nil
}
