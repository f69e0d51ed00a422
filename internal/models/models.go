package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// scanString accepts the string or []byte forms a driver may hand back for enum columns.
func scanString(value interface{}, typeName string) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("failed to scan %s: value is not string or []byte", typeName)
	}
}

// --- Role Enum ---
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, err := scanString(value, "Role")
	if err != nil {
		return err
	}
	v := Role(strVal)
	if !v.Valid() {
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
	*r = v
	return nil
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusShortlisted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Scan implements the sql.Scanner interface for ApplicationStatus
func (s *ApplicationStatus) Scan(value interface{}) error {
	strVal, err := scanString(value, "ApplicationStatus")
	if err != nil {
		return err
	}
	v := ApplicationStatus(strVal)
	if !v.Valid() {
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (s ApplicationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Approval State Enum ---
type ApprovalState string

const (
	ApprovalPending  ApprovalState = "pending"
	ApprovalApproved ApprovalState = "approved"
	ApprovalBlocked  ApprovalState = "blocked"
)

func (a ApprovalState) Valid() bool {
	switch a {
	case ApprovalPending, ApprovalApproved, ApprovalBlocked:
		return true
	}
	return false
}

// Scan implements the sql.Scanner interface for ApprovalState
func (a *ApprovalState) Scan(value interface{}) error {
	strVal, err := scanString(value, "ApprovalState")
	if err != nil {
		return err
	}
	v := ApprovalState(strVal)
	if !v.Valid() {
		return fmt.Errorf("invalid ApprovalState value: %s", strVal)
	}
	*a = v
	return nil
}

// Value implements the driver.Valuer interface for ApprovalState
func (a ApprovalState) Value() (driver.Value, error) {
	return string(a), nil
}

// InterviewStatusScheduled is the only state an interview record ever has.
const InterviewStatusScheduled = "scheduled"

// User is an account in the identity store. Email is unique within a role.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	Education    string    `json:"education,omitempty" db:"education"`
	Skills       string    `json:"skills,omitempty" db:"skills"`
	Company      string    `json:"company,omitempty" db:"company"`
	Age          *int      `json:"age,omitempty" db:"age"`
	Phone        string    `json:"phone,omitempty" db:"phone"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Job is a posting owned by a recruiter. It drops out of active listings once EndDate is before today.
type Job struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Role        string    `json:"role" db:"role"`
	Location    string    `json:"location" db:"location"`
	Skills      string    `json:"skills" db:"skills"`
	Experience  int       `json:"experience" db:"experience"` // In years
	Salary      string    `json:"salary" db:"salary"`
	EndDate     time.Time `json:"end_date" db:"end_date"` // Date only, UTC midnight
	RecruiterID uuid.UUID `json:"recruiter_id" db:"recruiter_id"`
	PostedAt    time.Time `json:"posted_at" db:"posted_at"`
}

// ActiveOn reports whether the job is still listed on the given day.
func (j *Job) ActiveOn(today time.Time) bool {
	return !j.EndDate.Before(today)
}

// Application links a candidate to a job. At most one exists per (CandidateID, JobID).
type Application struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	CandidateID uuid.UUID         `json:"candidate_id" db:"candidate_id"`
	JobID       uuid.UUID         `json:"job_id" db:"job_id"`
	JobTitle    string            `json:"job_title" db:"job_title"`
	Status      ApplicationStatus `json:"status" db:"status"`
	Approval    ApprovalState     `json:"approval" db:"approval"`
	AppliedAt   time.Time         `json:"applied_at" db:"applied_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

// MessagingAllowed reports whether this application opens the chat between its candidate and recruiter.
func (a *Application) MessagingAllowed() bool {
	return a.Status == ApplicationStatusShortlisted && a.Approval == ApprovalApproved
}

// Message is an immutable entry in the messaging log.
type Message struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FromID    uuid.UUID `json:"from_id" db:"from_id"`
	ToID      uuid.UUID `json:"to_id" db:"to_id"`
	Text      string    `json:"text" db:"text"`
	Timestamp time.Time `json:"timestamp" db:"sent_at"`
}

// Interview is an immutable scheduling record; nothing enforces capacity or overlaps.
type Interview struct {
	ID          uuid.UUID `json:"id" db:"id"`
	CandidateID uuid.UUID `json:"candidate_id" db:"candidate_id"`
	JobID       uuid.UUID `json:"job_id" db:"job_id"`
	DateTime    time.Time `json:"date_time" db:"date_time"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Stats is the admin dashboard snapshot.
type Stats struct {
	UsersByRole          map[Role]int              `json:"users_by_role"`
	TotalJobs            int                       `json:"total_jobs"`
	ActiveJobs           int                       `json:"active_jobs"`
	ApplicationsByStatus map[ApplicationStatus]int `json:"applications_by_status"`
	ApprovalsByState     map[ApprovalState]int     `json:"approvals_by_state"`
	Messages             int                       `json:"messages"`
	Interviews           int                       `json:"interviews"`
	GeneratedAt          time.Time                 `json:"generated_at"`
}
