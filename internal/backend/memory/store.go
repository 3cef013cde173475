// Package memory implements service.Service in process memory.
// State lives for the life of the process and is never written anywhere.
package memory

import (
	"context"
	"fmt"
	"sync"

	"dashboard/internal/config"
	"dashboard/internal/dashboard"
	"dashboard/internal/service"
)

// Store holds the canonical user and task sequence.
type Store struct {
	mu    sync.RWMutex
	user  dashboard.User
	tasks []dashboard.Task
}

// New creates a store holding the given state.
func New(user dashboard.User, tasks []dashboard.Task) *Store {
	return &Store{
		user:  user,
		tasks: append([]dashboard.Task(nil), tasks...),
	}
}

// NewMock creates a store holding the built-in mock data.
func NewMock() *Store {
	return New(dashboard.MockUser(), dashboard.MockTasks())
}

// Open creates a store for cfg: seeded from the seed file when one exists,
// otherwise from the mock data.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	if !cfg.HasSeed() {
		cfg.Debugf("no seed file at %s, using mock data", cfg.SeedPath())
		return NewMock(), nil
	}

	seed, err := LoadSeed(cfg.SeedPath())
	if err != nil {
		return nil, err
	}
	cfg.Debugf("loaded seed %s: %d tasks", cfg.SeedPath(), len(seed.Tasks))
	return New(seed.User, seed.Tasks), nil
}

// User implements service.Service.
func (s *Store) User(ctx context.Context) (dashboard.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, nil
}

// UpdateUser implements service.Service.
func (s *Store) UpdateUser(ctx context.Context, u dashboard.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID != s.user.ID {
		return fmt.Errorf("%w: %d -> %d", service.ErrUserIDChanged, s.user.ID, u.ID)
	}
	s.user = u
	return nil
}

// Tasks implements service.Service.
func (s *Store) Tasks(ctx context.Context) ([]dashboard.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]dashboard.Task, len(s.tasks))
	copy(result, s.tasks)
	return result, nil
}

// ToggleTask implements service.Service.
func (s *Store) ToggleTask(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := dashboard.FindTask(s.tasks, id); !ok {
		return fmt.Errorf("%w: %d", service.ErrTaskNotFound, id)
	}
	s.tasks = dashboard.ToggleTask(s.tasks, id)
	return nil
}
