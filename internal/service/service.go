// Package service defines the interface to the dashboard's canonical state.
package service

import (
	"context"
	"errors"

	"dashboard/internal/dashboard"
)

var (
	// ErrTaskNotFound is returned when no task has the requested id.
	ErrTaskNotFound = errors.New("task not found")

	// ErrUserIDChanged is returned when an update would change the user id.
	ErrUserIDChanged = errors.New("user id cannot change")
)

// Service owns the dashboard's user and task sequence.
// The UI reads snapshots and sends intents; it never mutates state directly.
type Service interface {
	// User returns the current user.
	User(ctx context.Context) (dashboard.User, error)

	// UpdateUser replaces the user wholesale.
	// Returns ErrUserIDChanged if u.ID differs from the current id.
	UpdateUser(ctx context.Context, u dashboard.User) error

	// Tasks returns the task sequence in display order.
	// The returned slice is a copy.
	Tasks(ctx context.Context) ([]dashboard.Task, error)

	// ToggleTask flips the completed flag of the task with the given id.
	// Returns ErrTaskNotFound and leaves state unchanged if no task matches.
	ToggleTask(ctx context.Context, id int) error
}
