// Package memory keeps every collection in process memory. Each collection has its own lock;
// operations spanning collections take locks in the order
// users -> jobs -> applications -> interviews -> messages.
package memory

import (
	"sync"
	"sync/atomic"

	"naukri-api/internal/models"

	"github.com/google/uuid"
)

type userKey struct {
	email string
	role  models.Role
}

type appKey struct {
	candidateID uuid.UUID
	jobID       uuid.UUID
}

type userRecord struct {
	seq  uint64
	user models.User
}

type jobRecord struct {
	seq uint64
	job models.Job
}

type appRecord struct {
	seq uint64
	app models.Application
}

type interviewRecord struct {
	seq       uint64
	interview models.Interview
}

type messageRecord struct {
	seq     uint64
	message models.Message
}

// Store owns all in-memory collections. Create one per process and hand it to the repositories.
type Store struct {
	seq atomic.Uint64

	usersMu   sync.RWMutex
	users     map[uuid.UUID]*userRecord
	userIndex map[userKey]uuid.UUID

	jobsMu sync.RWMutex
	jobs   map[uuid.UUID]*jobRecord

	appsMu   sync.RWMutex
	apps     map[uuid.UUID]*appRecord
	appIndex map[appKey]uuid.UUID

	interviewsMu sync.RWMutex
	interviews   []interviewRecord

	messagesMu sync.RWMutex
	messages   []messageRecord
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:     make(map[uuid.UUID]*userRecord),
		userIndex: make(map[userKey]uuid.UUID),
		jobs:      make(map[uuid.UUID]*jobRecord),
		apps:      make(map[uuid.UUID]*appRecord),
		appIndex:  make(map[appKey]uuid.UUID),
	}
}

func (s *Store) nextSeq() uint64 {
	return s.seq.Add(1)
}

// removeJobsLocked drops the given jobs plus every application and interview that points at them
// or at one of the given candidates. Caller holds jobsMu, appsMu and interviewsMu for writing.
func (s *Store) removeJobsLocked(jobIDs map[uuid.UUID]struct{}, candidateIDs map[uuid.UUID]struct{}) {
	for id := range jobIDs {
		delete(s.jobs, id)
	}

	for id, rec := range s.apps {
		_, jobGone := jobIDs[rec.app.JobID]
		_, candidateGone := candidateIDs[rec.app.CandidateID]
		if jobGone || candidateGone {
			delete(s.apps, id)
			delete(s.appIndex, appKey{candidateID: rec.app.CandidateID, jobID: rec.app.JobID})
		}
	}

	kept := s.interviews[:0]
	for _, rec := range s.interviews {
		_, jobGone := jobIDs[rec.interview.JobID]
		_, candidateGone := candidateIDs[rec.interview.CandidateID]
		if !jobGone && !candidateGone {
			kept = append(kept, rec)
		}
	}
	s.interviews = kept
}

// messagingLinkLocked reports whether the candidate has a shortlisted, approved application to a
// job owned by the recruiter. Caller holds jobsMu and appsMu.
func (s *Store) messagingLinkLocked(candidateID, recruiterID uuid.UUID) bool {
	for _, rec := range s.apps {
		if rec.app.CandidateID != candidateID || !rec.app.MessagingAllowed() {
			continue
		}
		if job, ok := s.jobs[rec.app.JobID]; ok && job.job.RecruiterID == recruiterID {
			return true
		}
	}
	return false
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return []T{}
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
