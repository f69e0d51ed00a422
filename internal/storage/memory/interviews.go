package memory

import (
	"context"
	"sort"

	"naukri-api/internal/models"
	"naukri-api/internal/storage"

	"github.com/google/uuid"
)

// InterviewRepo implements storage.InterviewRepository on a Store.
type InterviewRepo struct {
	s *Store
}

// NewInterviewRepo creates a new InterviewRepo.
func NewInterviewRepo(s *Store) *InterviewRepo {
	return &InterviewRepo{s: s}
}

var _ storage.InterviewRepository = (*InterviewRepo)(nil)

// Create appends the interview. The candidate and job must still exist when the record lands.
func (r *InterviewRepo) Create(ctx context.Context, iv *models.Interview) (*models.Interview, error) {
	r.s.usersMu.RLock()
	defer r.s.usersMu.RUnlock()
	r.s.jobsMu.RLock()
	defer r.s.jobsMu.RUnlock()
	r.s.interviewsMu.Lock()
	defer r.s.interviewsMu.Unlock()

	if _, ok := r.s.users[iv.CandidateID]; !ok {
		return nil, storage.ErrNotFound
	}
	if _, ok := r.s.jobs[iv.JobID]; !ok {
		return nil, storage.ErrNotFound
	}

	r.s.interviews = append(r.s.interviews, interviewRecord{seq: r.s.nextSeq(), interview: *iv})
	created := *iv
	return &created, nil
}

func (r *InterviewRepo) list(match func(iv *models.Interview) bool) []models.Interview {
	r.s.jobsMu.RLock()
	defer r.s.jobsMu.RUnlock()
	r.s.interviewsMu.RLock()
	defer r.s.interviewsMu.RUnlock()

	var matched []interviewRecord
	for _, rec := range r.s.interviews {
		if match(&rec.interview) {
			matched = append(matched, rec)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i].interview.DateTime, matched[j].interview.DateTime
		if !a.Equal(b) {
			return a.Before(b)
		}
		return matched[i].seq < matched[j].seq
	})

	interviews := make([]models.Interview, 0, len(matched))
	for _, rec := range matched {
		interviews = append(interviews, rec.interview)
	}
	return interviews
}

func (r *InterviewRepo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.Interview, error) {
	return r.list(func(iv *models.Interview) bool { return iv.CandidateID == candidateID }), nil
}

func (r *InterviewRepo) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Interview, error) {
	return r.list(func(iv *models.Interview) bool {
		job, ok := r.s.jobs[iv.JobID]
		return ok && job.job.RecruiterID == recruiterID
	}), nil
}

func (r *InterviewRepo) ListAll(ctx context.Context) ([]models.Interview, error) {
	return r.list(func(*models.Interview) bool { return true }), nil
}

func (r *InterviewRepo) Count(ctx context.Context) (int, error) {
	r.s.interviewsMu.RLock()
	defer r.s.interviewsMu.RUnlock()
	return len(r.s.interviews), nil
}
