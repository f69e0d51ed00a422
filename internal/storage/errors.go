package storage

import "errors"

// ErrNotFound is returned when the addressed user, job, application or interview does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a write would break a uniqueness rule: one account per
// (email, role) and one application per (candidate, job).
var ErrConflict = errors.New("resource conflict (duplicate key)")
