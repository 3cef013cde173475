// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"dashboard/internal/dashboard"
	"dashboard/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
// It records the intents it receives.
type FakeService struct {
	mu    sync.RWMutex
	user  dashboard.User
	tasks []dashboard.Task

	// Recorded intents
	Toggled []int
	Updates []dashboard.User

	// Error injection for testing
	UserErr       error
	UpdateUserErr error
	TasksErr      error
	ToggleTaskErr error
}

// NewFakeService creates a new FakeService holding the mock data.
func NewFakeService() *FakeService {
	return &FakeService{
		user:  dashboard.MockUser(),
		tasks: dashboard.MockTasks(),
	}
}

// SetUser replaces the user without recording an update.
func (f *FakeService) SetUser(u dashboard.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user = u
}

// SetTasks replaces the task sequence.
func (f *FakeService) SetTasks(tasks []dashboard.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append([]dashboard.Task(nil), tasks...)
}

// User implements service.Service.
func (f *FakeService) User(ctx context.Context) (dashboard.User, error) {
	if f.UserErr != nil {
		return dashboard.User{}, f.UserErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.user, nil
}

// UpdateUser implements service.Service.
func (f *FakeService) UpdateUser(ctx context.Context, u dashboard.User) error {
	if f.UpdateUserErr != nil {
		return f.UpdateUserErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID != f.user.ID {
		return service.ErrUserIDChanged
	}
	f.Updates = append(f.Updates, u)
	f.user = u
	return nil
}

// Tasks implements service.Service.
func (f *FakeService) Tasks(ctx context.Context) ([]dashboard.Task, error) {
	if f.TasksErr != nil {
		return nil, f.TasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]dashboard.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}

// ToggleTask implements service.Service.
func (f *FakeService) ToggleTask(ctx context.Context, id int) error {
	if f.ToggleTaskErr != nil {
		return f.ToggleTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := dashboard.FindTask(f.tasks, id); !ok {
		return fmt.Errorf("%w: %d", service.ErrTaskNotFound, id)
	}
	f.Toggled = append(f.Toggled, id)
	f.tasks = dashboard.ToggleTask(f.tasks, id)
	return nil
}
