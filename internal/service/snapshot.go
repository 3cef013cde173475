package service

import (
	"context"

	"dashboard/internal/dashboard"
)

// Snapshot is a read of the whole dashboard state at one point.
type Snapshot struct {
	User  dashboard.User
	Tasks []dashboard.Task
	Stats dashboard.Stats
}

// Load reads user and tasks from svc and derives the statistics.
func Load(ctx context.Context, svc Service) (Snapshot, error) {
	user, err := svc.User(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	tasks, err := svc.Tasks(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{User: user, Tasks: tasks, Stats: dashboard.Summarize(tasks)}, nil
}
