package memory

import (
	"context"
	"log"
	"sort"
	"time"

	"naukri-api/internal/models"
	"naukri-api/internal/storage"

	"github.com/google/uuid"
)

// ApplicationRepo implements storage.ApplicationRepository on a Store.
type ApplicationRepo struct {
	s *Store
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(s *Store) *ApplicationRepo {
	return &ApplicationRepo{s: s}
}

var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

// withTitle copies the record and joins the current job title. Caller holds jobsMu.
func (r *ApplicationRepo) withTitle(rec *appRecord) models.Application {
	app := rec.app
	if job, ok := r.s.jobs[app.JobID]; ok {
		app.JobTitle = job.job.Title
	}
	return app
}

func (r *ApplicationRepo) sorted(recs []*appRecord) []models.Application {
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].app.AppliedAt.Equal(recs[j].app.AppliedAt) {
			return recs[i].app.AppliedAt.After(recs[j].app.AppliedAt)
		}
		return recs[i].seq > recs[j].seq
	})
	apps := make([]models.Application, 0, len(recs))
	for _, rec := range recs {
		apps = append(apps, r.withTitle(rec))
	}
	return apps
}

// Create stores the application if the candidate and job still exist and the pair is new.
func (r *ApplicationRepo) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	r.s.usersMu.RLock()
	defer r.s.usersMu.RUnlock()
	r.s.jobsMu.RLock()
	defer r.s.jobsMu.RUnlock()
	r.s.appsMu.Lock()
	defer r.s.appsMu.Unlock()

	if _, ok := r.s.users[app.CandidateID]; !ok {
		log.Printf("Application by missing candidate %s rejected", app.CandidateID)
		return nil, storage.ErrNotFound
	}
	if _, ok := r.s.jobs[app.JobID]; !ok {
		log.Printf("Application for missing job %s rejected", app.JobID)
		return nil, storage.ErrNotFound
	}
	key := appKey{candidateID: app.CandidateID, jobID: app.JobID}
	if _, exists := r.s.appIndex[key]; exists {
		log.Printf("Duplicate application by candidate %s for job %s", app.CandidateID, app.JobID)
		return nil, storage.ErrConflict
	}

	rec := &appRecord{seq: r.s.nextSeq(), app: *app}
	r.s.apps[app.ID] = rec
	r.s.appIndex[key] = app.ID

	created := r.withTitle(rec)
	return &created, nil
}

func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	r.s.jobsMu.RLock()
	defer r.s.jobsMu.RUnlock()
	r.s.appsMu.RLock()
	defer r.s.appsMu.RUnlock()

	rec, ok := r.s.apps[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	app := r.withTitle(rec)
	return &app, nil
}

func (r *ApplicationRepo) list(match func(app *models.Application) bool) []models.Application {
	r.s.jobsMu.RLock()
	defer r.s.jobsMu.RUnlock()
	r.s.appsMu.RLock()
	defer r.s.appsMu.RUnlock()

	var matched []*appRecord
	for _, rec := range r.s.apps {
		if match(&rec.app) {
			matched = append(matched, rec)
		}
	}
	return r.sorted(matched)
}

func (r *ApplicationRepo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.Application, error) {
	return r.list(func(app *models.Application) bool { return app.CandidateID == candidateID }), nil
}

func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	return r.list(func(app *models.Application) bool { return app.JobID == jobID }), nil
}

func (r *ApplicationRepo) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Application, error) {
	// jobsMu is held by list for the whole scan.
	return r.list(func(app *models.Application) bool {
		job, ok := r.s.jobs[app.JobID]
		return ok && job.job.RecruiterID == recruiterID
	}), nil
}

func (r *ApplicationRepo) update(id uuid.UUID, mutate func(app *models.Application)) (*models.Application, error) {
	r.s.jobsMu.RLock()
	defer r.s.jobsMu.RUnlock()
	r.s.appsMu.Lock()
	defer r.s.appsMu.Unlock()

	rec, ok := r.s.apps[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	mutate(&rec.app)
	app := r.withTitle(rec)
	return &app, nil
}

func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus, at time.Time) (*models.Application, error) {
	return r.update(id, func(app *models.Application) {
		app.Status = status
		app.UpdatedAt = at
	})
}

func (r *ApplicationRepo) UpdateApproval(ctx context.Context, id uuid.UUID, approval models.ApprovalState, at time.Time) (*models.Application, error) {
	return r.update(id, func(app *models.Application) {
		app.Approval = approval
		app.UpdatedAt = at
	})
}

func (r *ApplicationRepo) CountByStatus(ctx context.Context) (map[models.ApplicationStatus]int, map[models.ApprovalState]int, error) {
	r.s.appsMu.RLock()
	defer r.s.appsMu.RUnlock()

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
	for _, rec := range r.s.apps {
		statuses[rec.app.Status]++
		approvals[rec.app.Approval]++
	}
	return statuses, approvals, nil
}
