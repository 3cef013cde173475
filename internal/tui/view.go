package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dashboard/internal/dashboard"
	"dashboard/internal/output"
	"dashboard/internal/profile"
)

const (
	profileWidth = 44
	statsWidth   = 48
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := m.styles.Title.Render(dashboard.Title) + "\n" + m.styles.Subtle.Render(dashboard.Description)
	top := lipgloss.JoinHorizontal(lipgloss.Top, m.profileCard(), " ", m.statsCard())
	body := lipgloss.JoinVertical(lipgloss.Left, header, "", top, m.tasksCard())

	if m.alert != "" {
		body = m.alertView()
	}

	return body + "\n" + m.statusLine() + "\n" + m.helpView()
}

func (m Model) profileCard() string {
	style := m.styles.Card
	if m.focus == panelProfile {
		style = m.styles.FocusedCard
	}
	title := m.styles.CardTitle.Render("Profile Information")

	var content string
	if m.editor.Editing() {
		content = m.profileEditView()
	} else {
		title += "  " + m.styles.Subtle.Render("[e] edit")
		content = m.profileReadView()
	}
	return style.Width(profileWidth).Render(title + "\n\n" + content)
}

func (m Model) profileReadView() string {
	lines := []string{
		m.styles.Badge.Render(dashboard.Initials(m.user.Name)),
		"",
		m.styles.CardTitle.Render(m.user.Name),
		m.styles.Subtle.Render(m.user.Email),
		m.styles.Label.Render("avatar: ") + output.AvatarLabel(m.user.Avatar),
	}
	return strings.Join(lines, "\n")
}

func (m Model) profileEditView() string {
	var b strings.Builder

	b.WriteString(m.styles.Badge.Render(m.editor.Initials()))
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("avatar: ") + output.AvatarLabel(m.editor.DisplayAvatar()))
	if m.editor.HasPreview() {
		b.WriteString("  " + m.styles.Subtle.Render("[ctrl+r] reset"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel(fieldName, "Name") + "\n")
	b.WriteString(m.nameInput.View() + "\n")
	b.WriteString(m.fieldLabel(fieldEmail, "Email") + "\n")
	b.WriteString(m.emailInput.View() + "\n")
	b.WriteString(m.fieldLabel(fieldMethod, "Profile Picture") + "\n")

	urlBtn, uploadBtn := m.styles.Button, m.styles.Button
	if m.editor.Method() == profile.MethodURL {
		urlBtn = m.styles.ActiveBtn
	} else {
		uploadBtn = m.styles.ActiveBtn
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, urlBtn.Render("Image URL"), " ", uploadBtn.Render("Upload File")) + "\n")

	b.WriteString(m.fieldLabel(fieldAvatar, ""))
	if m.editor.Method() == profile.MethodURL {
		b.WriteString(m.urlInput.View() + "\n")
		b.WriteString(m.styles.Subtle.Render("Enter a direct link to an image (jpg, png, gif, etc.)"))
	} else {
		b.WriteString(m.fileInput.View() + "\n")
		hint := "Upload an image file (max 5 MB), enter to load"
		if m.editor.Pending() {
			hint = "Reading image..."
		}
		b.WriteString(m.styles.Subtle.Render(hint))
	}

	b.WriteString("\n\n" + m.styles.Subtle.Render("[ctrl+s] Save   [esc] Cancel"))
	return b.String()
}

// fieldLabel renders a field label, marked when the field has focus.
func (m Model) fieldLabel(f field, label string) string {
	marker := "  "
	if m.field == f {
		marker = m.styles.Selected.Render("> ")
	}
	return marker + m.styles.Label.Render(label)
}

func (m Model) statsCard() string {
	s := dashboard.Summarize(m.tasks)

	row := func(label string, n int) string {
		return fmt.Sprintf("%-16s %4d", label, n)
	}
	lines := []string{
		m.styles.CardTitle.Render("Statistics"),
		m.styles.Subtle.Render("Your task completion overview"),
		"",
		row("Total Tasks", s.Total),
		row("Completed", s.Completed),
		row("Pending", s.Pending),
		"",
		fmt.Sprintf("%-16s %3d%%", "Completion Rate", s.CompletionRate),
		m.progress.ViewAs(float64(s.CompletionRate) / 100),
	}
	return m.styles.Card.Width(statsWidth).Render(strings.Join(lines, "\n"))
}

func (m Model) tasksCard() string {
	style := m.styles.Card
	if m.focus == panelTasks && !m.editor.Editing() {
		style = m.styles.FocusedCard
	}

	var b strings.Builder
	b.WriteString(m.styles.CardTitle.Render("Tasks") + "\n")
	b.WriteString(m.styles.Subtle.Render("Manage your daily tasks and track progress") + "\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(m.styles.Subtle.Render(output.EmptyTasksMessage))
		return style.Render(b.String())
	}

	rows := make([]string, len(m.tasks))
	for i, t := range m.tasks {
		rows[i] = m.taskRow(i, t)
	}
	b.WriteString(strings.Join(rows, "\n"))
	return style.Render(b.String())
}

func (m Model) taskRow(i int, t dashboard.Task) string {
	cursor := "  "
	if m.focus == panelTasks && i == m.cursor && !m.editor.Editing() {
		cursor = m.styles.Selected.Render("> ")
	}
	check := "[ ]"
	title := t.Title
	if t.Completed {
		check = "[x]"
		title = m.styles.Done.Render(title)
	}
	due := m.styles.Subtle.Render("Due: " + t.DueDate)
	return fmt.Sprintf("%s%s %s  %s  %s", cursor, check, title, due, m.styles.PriorityTag(t.Priority))
}

func (m Model) alertView() string {
	box := m.styles.Alert.Render(m.alert + "\n\n" + m.styles.Subtle.Render("[enter] OK"))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (m Model) statusLine() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.Error.Render("error: " + m.status)
	}
	return m.styles.Status.Render(m.status)
}

func (m Model) helpView() string {
	if m.editor.Editing() {
		return m.help.View(editHelp{k: m.keys, preview: m.editor.HasPreview()})
	}
	return m.help.View(viewHelp{k: m.keys})
}
