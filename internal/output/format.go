// Package output provides plain-text formatters for the dashboard panels.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/truncate"

	"dashboard/internal/avatar"
	"dashboard/internal/dashboard"
)

const (
	// SectionSeparator is the separator line around section titles.
	SectionSeparator = "------------"

	// EmptyTasksMessage is shown when there are no tasks.
	EmptyTasksMessage = "No tasks available. Great job!"

	avatarWidth = 60
)

// FormatHeader formats the page title and description.
func FormatHeader(w io.Writer, title, description string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, description)
}

// FormatSection formats a section header.
func FormatSection(w io.Writer, title string) {
	fmt.Fprintln(w, SectionSeparator)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, SectionSeparator)
}

// FormatProfile formats the viewing state of the profile card.
// Format: "[INITIALS] NAME", then email and avatar lines indented to match.
func FormatProfile(w io.Writer, u dashboard.User) {
	badge := "[" + dashboard.Initials(u.Name) + "]"
	indent := strings.Repeat(" ", len([]rune(badge))+1)
	fmt.Fprintf(w, "%s %s\n", badge, normalize(u.Name))
	fmt.Fprintf(w, "%s%s\n", indent, normalize(u.Email))
	fmt.Fprintf(w, "%savatar: %s\n", indent, AvatarLabel(u.Avatar))
}

// AvatarLabel is the single-line description of an avatar value.
func AvatarLabel(value string) string {
	return truncate.StringWithTail(avatar.Describe(value), avatarWidth, "...")
}

// FormatStats formats the statistics summary.
func FormatStats(w io.Writer, s dashboard.Stats) {
	fmt.Fprintf(w, "%-16s %4d\n", "Total Tasks", s.Total)
	fmt.Fprintf(w, "%-16s %4d\n", "Completed", s.Completed)
	fmt.Fprintf(w, "%-16s %4d\n", "Pending", s.Pending)
	fmt.Fprintf(w, "%-16s %3d%%\n", "Completion Rate", s.CompletionRate)
}

// FormatTask formats one task row.
// Format: "{ID:>4}  [x] {TITLE}  ({PRIORITY})  Due: {DUE}"
func FormatTask(w io.Writer, t dashboard.Task) {
	check := " "
	if t.Completed {
		check = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %s  (%s)  Due: %s\n", t.ID, check, normalize(t.Title), t.Priority, t.DueDate)
}

// FormatTasks formats the task list in the order given.
func FormatTasks(w io.Writer, tasks []dashboard.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, EmptyTasksMessage)
		return
	}
	for _, t := range tasks {
		FormatTask(w, t)
	}
}

// normalize replaces newlines with spaces and marks blank values.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	if strings.TrimSpace(s) == "" {
		return "(empty)"
	}
	return s
}
