package memory

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"naukri-api/internal/models"
	"naukri-api/internal/storage"

	"github.com/google/uuid"
)

// JobRepo implements storage.JobRepository on a Store.
type JobRepo struct {
	s *Store
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(s *Store) *JobRepo {
	return &JobRepo{s: s}
}

var _ storage.JobRepository = (*JobRepo)(nil)

// Create stores the job. The recruiter must still exist when the record lands.
func (r *JobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	r.s.usersMu.RLock()
	defer r.s.usersMu.RUnlock()
	r.s.jobsMu.Lock()
	defer r.s.jobsMu.Unlock()

	if _, ok := r.s.users[job.RecruiterID]; !ok {
		log.Printf("Job for missing recruiter %s rejected", job.RecruiterID)
		return nil, storage.ErrNotFound
	}
	if _, exists := r.s.jobs[job.ID]; exists {
		return nil, storage.ErrConflict
	}
	rec := &jobRecord{seq: r.s.nextSeq(), job: *job}
	r.s.jobs[job.ID] = rec

	created := rec.job
	return &created, nil
}

func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	r.s.jobsMu.RLock()
	defer r.s.jobsMu.RUnlock()

	rec, ok := r.s.jobs[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	job := rec.job
	return &job, nil
}

func (r *JobRepo) ListActive(ctx context.Context, filter storage.JobFilter) ([]models.Job, error) {
	r.s.jobsMu.RLock()
	defer r.s.jobsMu.RUnlock()

	keyword := strings.ToLower(strings.TrimSpace(filter.Keyword))
	location := strings.ToLower(strings.TrimSpace(filter.Location))

	var matched []*jobRecord
	for _, rec := range r.s.jobs {
		job := &rec.job
		if !job.ActiveOn(filter.Today) {
			continue
		}
		if keyword != "" && !matchesKeyword(job, keyword) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(job.Location), location) {
			continue
		}
		if filter.MaxExperience != nil && job.Experience > *filter.MaxExperience {
			continue
		}
		matched = append(matched, rec)
	}

	return paginate(sortedJobs(matched), filter.Limit, filter.Offset), nil
}

func (r *JobRepo) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Job, error) {
	r.s.jobsMu.RLock()
	defer r.s.jobsMu.RUnlock()

	var matched []*jobRecord
	for _, rec := range r.s.jobs {
		if rec.job.RecruiterID == recruiterID {
			matched = append(matched, rec)
		}
	}
	return sortedJobs(matched), nil
}

func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.jobsMu.Lock()
	defer r.s.jobsMu.Unlock()
	r.s.appsMu.Lock()
	defer r.s.appsMu.Unlock()
	r.s.interviewsMu.Lock()
	defer r.s.interviewsMu.Unlock()

	if _, ok := r.s.jobs[id]; !ok {
		return storage.ErrNotFound
	}
	r.s.removeJobsLocked(map[uuid.UUID]struct{}{id: {}}, nil)

	log.Printf("Job deleted successfully: %s", id)
	return nil
}

func (r *JobRepo) Count(ctx context.Context, today time.Time) (int, int, error) {
	r.s.jobsMu.RLock()
	defer r.s.jobsMu.RUnlock()

	active := 0
	for _, rec := range r.s.jobs {
		if rec.job.ActiveOn(today) {
			active++
		}
	}
	return len(r.s.jobs), active, nil
}

func matchesKeyword(job *models.Job, keyword string) bool {
	for _, field := range []string{job.Title, job.Description, job.Role, job.Skills} {
		if strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}
	return false
}

// sortedJobs orders newest first, later inserts winning ties.
func sortedJobs(recs []*jobRecord) []models.Job {
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].job.PostedAt.Equal(recs[j].job.PostedAt) {
			return recs[i].job.PostedAt.After(recs[j].job.PostedAt)
		}
		return recs[i].seq > recs[j].seq
	})
	jobs := make([]models.Job, 0, len(recs))
	for _, rec := range recs {
		jobs = append(jobs, rec.job)
	}
	return jobs
}
