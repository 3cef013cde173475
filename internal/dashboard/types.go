// Package dashboard defines the dashboard's data model and the pure
// functions derived from it.
package dashboard

// User is the profile shown on the dashboard.
// Avatar holds either a URL or an inline data value.
type User struct {
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
	Avatar string `yaml:"avatar"`
}

// Priority is a task priority. Values outside the known set are kept as-is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task is a single task item.
// DueDate is display-only and never parsed.
type Task struct {
	ID        int      `yaml:"id"`
	Title     string   `yaml:"title"`
	Completed bool     `yaml:"completed"`
	Priority  Priority `yaml:"priority"`
	DueDate   string   `yaml:"due_date"`
}

// Header strings for the page shell.
const (
	Title       = "Dashboard"
	Description = "Welcome back! Here's what's happening with your tasks."
)
