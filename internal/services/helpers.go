package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"naukri-api/internal/models"
	"naukri-api/internal/storage"

	"github.com/google/uuid"
)

// mapRepoError maps storage errors to service errors
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s", ErrConflict, operation)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

// Calendar decides which day it is for job expiry. Days are represented as UTC midnight, the same
// form job end dates are stored in.
type Calendar struct {
	clock Clock
	loc   *time.Location
}

// NewCalendar evaluates "today" in loc. A nil loc means UTC.
func NewCalendar(clock Clock, loc *time.Location) Calendar {
	if clock == nil {
		clock = SystemClock
	}
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{clock: clock, loc: loc}
}

// Now returns the current instant in UTC.
func (c Calendar) Now() time.Time {
	return c.clock.Now().UTC()
}

// Today returns the current date in the calendar's zone.
func (c Calendar) Today() time.Time {
	y, m, d := c.clock.Now().In(c.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate reads a YYYY-MM-DD date into its UTC-midnight form.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be in YYYY-MM-DD format", ErrValidation, s)
	}
	return d, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// findUser fetches a user and reports an unknown id as ErrNotFound naming what was looked up.
func findUser(ctx context.Context, users storage.UserRepository, id uuid.UUID, what string) (*models.User, error) {
	u, err := users.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching %s %s", what, id))
	}
	return u, nil
}

// requireAdmin returns the admin account behind adminID, or ErrForbidden when there is none.
func requireAdmin(ctx context.Context, users storage.UserRepository, adminID uuid.UUID, operation string) (*models.User, error) {
	admin, err := users.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("%s: unknown admin id %s", operation, adminID)
			return nil, fmt.Errorf("%w: %s requires an admin account", ErrForbidden, operation)
		}
		return nil, mapRepoError(err, operation)
	}
	if admin.Role != models.RoleAdmin {
		log.Printf("%s: user %s with role %s is not an admin", operation, adminID, admin.Role)
		return nil, fmt.Errorf("%w: %s requires an admin account", ErrForbidden, operation)
	}
	return admin, nil
}

// isAdmin reports whether id belongs to an admin. Unknown ids are simply not admins.
func isAdmin(ctx context.Context, users storage.UserRepository, id uuid.UUID) (bool, error) {
	u, err := users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, mapRepoError(err, "checking admin role")
	}
	return u.Role == models.RoleAdmin, nil
}
